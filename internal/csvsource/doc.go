// Package csvsource discovers episode metadata files and reads their
// semicolon-delimited, header-keyed rows in source order.
package csvsource
