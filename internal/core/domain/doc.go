// Package domain defines the core types of json-split.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines:
//
//   - Value: a parsed JSON node with explicit, failing accessors
//   - DottedPath: a key path and its resolver
//   - OutputFilename: the file naming rule
//   - SplitRequest, SplitReport and IDSet: the inputs, result and
//     run-scoped state of a split
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
