// Package publish renders converted documents as indented JSON and replaces
// output files atomically.
//
// Writes go to a temporary file in the destination directory, are synced, and
// then renamed over the target, so an interrupted or failed run never leaves a
// truncated document behind. An advisory lock beside the target keeps two
// conversions from racing on the same output.
package publish
