package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/wpblocks/blockgen/internal/config"
	"github.com/wpblocks/blockgen/internal/manifest"
	"github.com/wpblocks/blockgen/internal/naming"
	"github.com/wpblocks/blockgen/internal/register"
	"github.com/wpblocks/blockgen/internal/styleindex"
)

// ErrBlockExists is returned when the block directory is already present.
// Nothing is written in that case.
var ErrBlockExists = errors.New("block already exists")

const renderTemplate = "scaffolds/block/render.php.tmpl"

// TemplateData holds the variables available to the render template.
type TemplateData struct {
	ID         string // e.g., "hero-banner"
	Title      string // e.g., "Hero Banner"
	Identifier string // e.g., "HeroBanner"
	Namespace  string // e.g., "acf"
	BlocksDir  string // slash-separated, relative to the theme root
	PreviewKey string
}

// Result holds the outcome of a scaffold run.
type Result struct {
	BlockDir     string
	Files        []string // written files, relative to the theme root
	StyleImport  bool     // whether the style index gained a line
	Registration register.Outcome
	Warnings     []string
}

// Writer creates block bundles inside a theme.
type Writer struct {
	fs     afero.Fs
	layout *config.Layout
	out    io.Writer
	log    *slog.Logger
}

// NewWriter returns a Writer. Diagnostics for skipped steps go to out.
func NewWriter(fsys afero.Fs, layout *config.Layout, out io.Writer, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{fs: fsys, layout: layout, out: out, log: logger}
}

// Create scaffolds the block identified by id. If the block directory already
// exists it returns an error wrapping ErrBlockExists and touches nothing.
// I/O failures after the first write leave the files written so far in place.
func (w *Writer) Create(id string) (*Result, error) {
	if err := naming.Validate(id); err != nil {
		return nil, err
	}

	blockDir := w.layout.BlockDir(id)
	exists, err := afero.Exists(w.fs, blockDir)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", blockDir, err)
	}
	if exists {
		return nil, fmt.Errorf("%w at %s", ErrBlockExists, blockDir)
	}

	// Everything that can fail on bad input is prepared before the first write.
	scope, err := register.ParseScope(w.layout.RegistrationScope)
	if err != nil {
		return nil, err
	}
	block, err := manifest.NewBlock(id, manifest.Options{
		Namespace:   w.layout.Namespace,
		Category:    w.layout.Category,
		Icon:        w.layout.Icon,
		Version:     w.layout.BlockVersion,
		TemplateExt: w.layout.TemplateExt,
	})
	if err != nil {
		return nil, err
	}
	blockJSON, err := block.Marshal()
	if err != nil {
		return nil, err
	}
	identifier, err := naming.Pascal(id)
	if err != nil {
		return nil, err
	}
	data := TemplateData{
		ID:         id,
		Title:      block.Title,
		Identifier: identifier,
		Namespace:  block.Namespace(),
		BlocksDir:  slashDir(w.layout.BlocksDir),
		PreviewKey: manifest.PreviewImageKey,
	}
	php, err := render(renderTemplate, data)
	if err != nil {
		return nil, err
	}

	result := &Result{BlockDir: blockDir}

	if err := w.fs.MkdirAll(blockDir, 0755); err != nil {
		return nil, fmt.Errorf("creating block directory: %w", err)
	}
	if err := w.fs.MkdirAll(w.layout.StylesPath(), 0755); err != nil {
		return nil, fmt.Errorf("creating styles directory: %w", err)
	}

	files := []struct {
		path    string
		content []byte
	}{
		{filepath.Join(blockDir, manifest.FileName), blockJSON},
		{filepath.Join(blockDir, w.layout.TemplateFile(id)), php},
		{w.layout.StylePath(id), nil},
	}
	for _, f := range files {
		w.log.Debug("writing file", "path", f.path, "bytes", len(f.content))
		if err := afero.WriteFile(w.fs, f.path, f.content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.path, err)
		}
		result.Files = append(result.Files, w.rel(f.path))
	}

	// Validate the written descriptor against the block schema.
	manifestFile := files[0].path
	valResult, valErr := manifest.ValidateFile(w.fs, manifestFile)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate %s: %v", manifest.FileName, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	indexPath := w.layout.StyleIndexPath()
	added, err := styleindex.AppendImport(w.fs, indexPath, styleindex.ImportLine(id))
	if err != nil {
		return nil, err
	}
	result.StyleImport = added
	w.log.Debug("style index", "path", indexPath, "added", added)

	regPath := w.layout.RegistrationPath()
	outcome, err := register.File(w.fs, regPath, w.layout.InitFunction,
		register.Line(w.layout.BlocksDir, id), scope)
	if err != nil {
		return nil, err
	}
	result.Registration = outcome
	w.log.Debug("registration", "path", regPath, "outcome", outcome.String())

	regName := filepath.Base(regPath)
	switch outcome {
	case register.FileMissing:
		fmt.Fprintf(w.out, "%s not found at %s, skipping\n", regName, regPath)
	case register.FunctionNotFound, register.AlreadyRegistered:
		fmt.Fprintf(w.out, "%s not found or block already registered, skipping %s\n", w.layout.InitFunction, regName)
	}

	return result, nil
}

// rel returns p relative to the theme root for display.
func (w *Writer) rel(p string) string {
	if r, err := filepath.Rel(w.layout.Root, p); err == nil {
		return r
	}
	return p
}

// render executes an embedded template with data.
func render(name string, data TemplateData) ([]byte, error) {
	tmplBytes, err := fs.ReadFile(scaffoldFS, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(path.Base(name)).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func slashDir(dir string) string {
	return strings.Trim(filepath.ToSlash(dir), "/")
}
