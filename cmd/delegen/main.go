// Package main provides the delegen CLI.
//
// delegen augments an externally generated relational data-access client
// with access-control artifacts and single-table polymorphic inheritance.
// The CLI supports:
//   - generate: run the external client generator and project the delegate
//     hierarchy over its type declarations
//   - validate: check the resolved schema graph for delegate/relation defects
//   - config: show the resolved configuration
//   - version: print version information
//
// Usage:
//
//	delegen [flags] <command>
package main

func main() {
	Execute()
}
