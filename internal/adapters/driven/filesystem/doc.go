// Package filesystem provides the disk-backed document reader and element
// writer used by a normal split run.
package filesystem
