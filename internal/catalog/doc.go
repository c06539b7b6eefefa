// Package catalog holds the immutable lookup tables behind row annotation: the
// series offset table keyed by one-letter code, the character macro table, and
// the main/side classification sets.
//
// Character names are compared in Unicode NFC form so that composed and
// decomposed spellings of the same name classify identically.
package catalog
