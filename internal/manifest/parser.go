package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"

	"github.com/wpblocks/blockgen/internal/naming"
)

// FileName is the descriptor's file name inside a block directory.
const FileName = "block.json"

// NewBlock returns the descriptor for the block identified by id.
func NewBlock(id string, opts Options) (*Block, error) {
	if err := naming.Validate(id); err != nil {
		return nil, err
	}
	title, err := naming.Title(id)
	if err != nil {
		return nil, err
	}

	version, err := normalizeVersion(opts.Version)
	if err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(orDefault(opts.TemplateExt, "php"), ".")

	return &Block{
		Name:        orDefault(opts.Namespace, DefaultNamespace) + "/" + id,
		Title:       title,
		Description: title,
		Category:    orDefault(opts.Category, DefaultCategory),
		Icon:        orDefault(opts.Icon, DefaultIcon),
		Align:       AlignFull,
		Keywords:    []string{},
		Version:     version,
		ACF: ACF{
			Mode:           ModeEdit,
			RenderTemplate: id + "." + ext,
		},
		Example: Example{
			Attributes: ExampleAttributes{
				Mode: ModePreview,
				Data: map[string]bool{PreviewImageKey: true},
			},
		},
		Supports: Supports{
			Anchor:    true,
			ClassName: true,
		},
	}, nil
}

// Marshal encodes the descriptor as 2-space indented JSON with a trailing
// newline.
func (b *Block) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return buf.Bytes(), nil
}

// Parse decodes a block.json document.
func Parse(data []byte) (*Block, error) {
	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &b, nil
}

// ParseFile reads and decodes the block.json at path.
func ParseFile(fsys afero.Fs, path string) (*Block, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// normalizeVersion accepts an optional leading "v" and returns the canonical
// semantic version string.
func normalizeVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	sv, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid block version %q: %w", v, err)
	}
	return sv.String(), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// readFile reads the contents of a file at the given path.
func readFile(fsys afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// Namespace returns the part of Name before the slash (e.g., "acf").
func (b *Block) Namespace() string {
	ns, _, _ := strings.Cut(b.Name, "/")
	return ns
}
