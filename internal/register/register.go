// Package register wires a block's metadata file into the theme's block
// registration function by inserting a register_block_type call just before
// the function's closing brace.
package register

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Scope selects where the already-registered check looks for the line.
type Scope string

const (
	// ScopeFunction restricts the check to the target function's body.
	ScopeFunction Scope = "function"
	// ScopeFile matches the line anywhere in the file.
	ScopeFile Scope = "file"
)

// ParseScope converts a config value into a Scope. An empty string selects
// ScopeFunction.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeFunction:
		return ScopeFunction, nil
	case ScopeFile:
		return ScopeFile, nil
	default:
		return "", fmt.Errorf("invalid registration scope %q: must be %q or %q", s, ScopeFunction, ScopeFile)
	}
}

var (
	// ErrFunctionNotFound means no "function <name>" declaration was found.
	ErrFunctionNotFound = errors.New("function not found")
	// ErrAlreadyRegistered means the line is already present in the searched scope.
	ErrAlreadyRegistered = errors.New("line already present")
	// ErrNoOpenBrace means the declaration is not followed by a body.
	ErrNoOpenBrace = errors.New("no opening brace after function declaration")
	// ErrUnbalanced means the input ends before the body's closing brace.
	ErrUnbalanced = errors.New("unbalanced braces in function body")
)

// Outcome describes what File did to the registration file.
type Outcome int

const (
	// Inserted means the file was rewritten with the new line.
	Inserted Outcome = iota
	// AlreadyRegistered means the line was found and the file left as is.
	AlreadyRegistered
	// FunctionNotFound means the file has no such function.
	FunctionNotFound
	// FileMissing means the registration file does not exist.
	FileMissing
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case AlreadyRegistered:
		return "already registered"
	case FunctionNotFound:
		return "function not found"
	case FileMissing:
		return "file missing"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Line returns the registration statement for the block whose bundle lives
// at <blocksDir>/<id>. The trailing newline is part of the line.
func Line(blocksDir, id string) string {
	dir := strings.Trim(strings.ReplaceAll(blocksDir, `\`, "/"), "/")
	return fmt.Sprintf("register_block_type(get_template_directory() . '/%s/%s/block.json' );\n", dir, id)
}

// body locates the function named funcName in src and returns the offsets of
// its opening and matching closing brace.
func body(src, funcName string) (lbrace, rbrace int, err error) {
	start := strings.Index(src, "function "+funcName)
	if start == -1 {
		return 0, 0, fmt.Errorf("%s: %w", funcName, ErrFunctionNotFound)
	}

	rel := strings.IndexByte(src[start:], '{')
	if rel == -1 {
		return 0, 0, fmt.Errorf("%s: %w", funcName, ErrNoOpenBrace)
	}
	lbrace = start + rel

	depth := 0
	for i := lbrace; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return lbrace, i, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%s: %w", funcName, ErrUnbalanced)
}

// Insert returns src with line inserted immediately before the closing brace
// of funcName. All other bytes are preserved.
// With ScopeFile the file-wide check runs before the function is located,
// so a file that already holds the line is skipped even if it is malformed.
func Insert(src, funcName, line string, scope Scope) (string, error) {
	needle := strings.TrimSpace(line)
	if scope == ScopeFile && needle != "" && strings.Contains(src, needle) {
		if !strings.Contains(src, "function "+funcName) {
			return "", fmt.Errorf("%s: %w", funcName, ErrFunctionNotFound)
		}
		return "", fmt.Errorf("%s: %w", funcName, ErrAlreadyRegistered)
	}

	lbrace, rbrace, err := body(src, funcName)
	if err != nil {
		return "", err
	}

	if scope != ScopeFile && needle != "" && strings.Contains(src[lbrace+1:rbrace], needle) {
		return "", fmt.Errorf("%s: %w", funcName, ErrAlreadyRegistered)
	}

	return src[:rbrace] + line + src[rbrace:], nil
}

// File applies Insert to the registration file at path and rewrites it.
// A missing file, a missing function, or an existing registration are
// reported through the Outcome with a nil error. Malformed brace structure
// is returned as an error and leaves the file untouched.
func File(fsys afero.Fs, path, funcName, line string, scope Scope) (Outcome, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileMissing, nil
		}
		return 0, fmt.Errorf("checking %s: %w", path, err)
	}

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	patched, err := Insert(string(content), funcName, line, scope)
	switch {
	case errors.Is(err, ErrFunctionNotFound):
		return FunctionNotFound, nil
	case errors.Is(err, ErrAlreadyRegistered):
		return AlreadyRegistered, nil
	case err != nil:
		return 0, fmt.Errorf("patching %s: %w", path, err)
	}

	if err := afero.WriteFile(fsys, path, []byte(patched), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return Inserted, nil
}
