// Package main hosts the holocron CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into conversion
// runs, catalog listings, and configuration scaffolding. Configuration is
// resolved lazily once per invocation so commands that only scaffold files
// never touch a possibly broken config.
//
// Keep this package lean: behavior belongs in the internal packages, and
// commands here only parse flags, call them, and render results.
package main
