// Package fileops provides filesystem validation helpers shared by the CLI
// entry points.
package fileops
