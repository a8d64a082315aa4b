// Package buffer provides the line-oriented read model the renderer
// scrolls over: immutable Documents split into logical lines, and the
// half-open LineRange value used to address bands of those lines.
//
// Coordinates are 0-indexed line numbers. Ranges are half-open
// [Start, End): Start is the first line inside the range and End is the
// first line past it. Construction normalizes rather than errors, so a
// range never decreases and never starts below zero.
package buffer
