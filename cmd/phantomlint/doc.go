// Package phantomlint provides the command-line interface for the static
// quality scanners. Each scanner is its own root command taking a single
// optional root path and printing one JSON report to stdout.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/DemeWebsolutions/Phantom.ai/cmd/phantomlint"
//	func main() { phantomlint.Execute(phantomlint.NewAccessibilityCmd) }
package phantomlint
