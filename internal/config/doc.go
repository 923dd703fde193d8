// Package config resolves where blockgen reads and writes inside a theme.
// Values come from command-line flags, BLOCKGEN_* environment variables, and
// an optional .blockgen.yaml at the theme root, in that order of precedence.
// The defaults reproduce the standard ACF theme layout.
package config
