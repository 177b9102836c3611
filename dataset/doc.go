// Package dataset reads points from their textual record format.
//
// A record is one line of comma-separated decimal numbers:
//
//	1.0,2.5,-3
//	0.25,4,7
//
// Surrounding whitespace is ignored, both per line and per field. An empty
// line ends the input; anything after it is not read. Every record must have
// the same number of fields, and every field must be a finite number.
package dataset
