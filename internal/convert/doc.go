// Package convert runs one conversion: it discovers the input files, annotates
// every row in source order, builds the output document for the selected
// layout, and publishes it atomically.
//
// A run is all or nothing. The first row that fails to annotate aborts the run
// with an *annotate.RowError locating the row, and no output is written.
package convert
