// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DocumentReader: reads and parses input JSON files
//   - ElementWriter: stores one serialized element under its file name
//   - ProgressReporter: receives progress for display
//   - ConfigStore: user configuration defaults
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
