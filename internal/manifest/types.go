package manifest

// Default values for a new block descriptor.
const (
	DefaultNamespace = "acf"
	DefaultCategory  = "Primary"
	DefaultIcon      = "admin-post"

	AlignFull   = "full"
	ModeEdit    = "edit"
	ModePreview = "preview"

	// PreviewImageKey is the example data key the render template checks to
	// show the inserter preview image instead of the block markup.
	PreviewImageKey = "gutenberg_preview_image"
)

// Block is the block.json descriptor. Field order matches the order keys
// are written in.
type Block struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Align       string   `json:"align"`
	Keywords    []string `json:"keywords"`
	Version     string   `json:"version,omitempty"`
	ACF         ACF      `json:"acf"`
	Example     Example  `json:"example"`
	Supports    Supports `json:"supports"`
}

// ACF holds the ACF-specific block settings.
type ACF struct {
	Mode           string `json:"mode"`
	RenderTemplate string `json:"renderTemplate"`
}

// Example is the payload shown in the block inserter preview.
type Example struct {
	Attributes ExampleAttributes `json:"attributes"`
}

// ExampleAttributes sets the preview mode and the data passed to the template.
type ExampleAttributes struct {
	Mode string          `json:"mode"`
	Data map[string]bool `json:"data"`
}

// Supports lists the editor features the block opts into.
type Supports struct {
	Anchor    bool `json:"anchor"`
	ClassName bool `json:"className"`
}

// Options customizes NewBlock. Zero values fall back to the defaults above.
type Options struct {
	Namespace   string
	Category    string
	Icon        string
	Version     string // optional; must be a semantic version when set
	TemplateExt string // render template extension, default "php"
}
