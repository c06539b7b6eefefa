// Package annotate converts raw episode rows into typed episode records.
//
// Each row is handled independently: the chronological value is shifted by the
// series offset, tags split into primary and secondary, list columns split on
// commas, and character lists expanded through macros before being bucketed
// into main, side, and extra. Every other recognized column is coerced by
// Coerce, the single place that decides between integer, float, and string.
package annotate
