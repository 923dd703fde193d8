// Package cli defines the Cobra command for the blockgen CLI. The command
// only handles flag parsing, configuration binding, and console output; the
// scaffolding itself lives in the scaffold package.
package cli
