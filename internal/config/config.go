package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/wpblocks/blockgen/internal/branding"
)

const fileType = "yaml"

// Keys understood in the config file and as BLOCKGEN_<KEY> variables.
const (
	KeyRoot              = "root"
	KeyBlocksDir         = "blocks_dir"
	KeyStylesDir         = "styles_dir"
	KeyStyleIndex        = "style_index"
	KeyRegistrationFile  = "registration_file"
	KeyInitFunction      = "init_function"
	KeyRegistrationScope = "registration_scope"
	KeyNamespace         = "namespace"
	KeyCategory          = "category"
	KeyIcon              = "icon"
	KeyBlockVersion      = "block_version"
	KeyTemplateExt       = "template_ext"
	KeyStyleExt          = "style_ext"
)

// Layout is the resolved set of theme paths and block defaults. Directory
// and file fields other than Root are relative to Root.
type Layout struct {
	Root              string `mapstructure:"root"`
	BlocksDir         string `mapstructure:"blocks_dir"`
	StylesDir         string `mapstructure:"styles_dir"`
	StyleIndex        string `mapstructure:"style_index"`
	RegistrationFile  string `mapstructure:"registration_file"`
	InitFunction      string `mapstructure:"init_function"`
	RegistrationScope string `mapstructure:"registration_scope"`
	Namespace         string `mapstructure:"namespace"`
	Category          string `mapstructure:"category"`
	Icon              string `mapstructure:"icon"`
	BlockVersion      string `mapstructure:"block_version"`
	TemplateExt       string `mapstructure:"template_ext"`
	StyleExt          string `mapstructure:"style_ext"`
}

var defaults = map[string]string{
	KeyRoot:              ".",
	KeyBlocksDir:         "template-parts/blocks",
	KeyStylesDir:         "sass/blocks",
	KeyStyleIndex:        "_blocks.scss",
	KeyRegistrationFile:  "functions.php",
	KeyInitFunction:      "my_acf_blocks_init",
	KeyRegistrationScope: "function",
	KeyNamespace:         "acf",
	KeyCategory:          "Primary",
	KeyIcon:              "admin-post",
	KeyBlockVersion:      "",
	KeyTemplateExt:       "php",
	KeyStyleExt:          "scss",
}

// New returns a Viper instance with defaults and environment binding set up.
// Callers bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	return v
}

// FilePath returns the config file path for a theme root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Load reads the optional config file at the resolved root and returns the
// merged Layout. A missing config file is not an error. The root comes from
// flags or the environment only; a root key in the file is ignored.
func Load(fsys afero.Fs, v *viper.Viper) (*Layout, error) {
	v.SetFs(fsys)

	root := v.GetString(KeyRoot)
	path := FilePath(root)
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	if exists {
		v.SetConfigFile(path)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var l Layout
	if err := v.Unmarshal(&l); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	l.Root = root
	l.TemplateExt = strings.TrimPrefix(l.TemplateExt, ".")
	l.StyleExt = strings.TrimPrefix(l.StyleExt, ".")
	return &l, nil
}

// Default returns the Layout used when nothing is configured.
func Default() *Layout {
	return &Layout{
		Root:              defaults[KeyRoot],
		BlocksDir:         defaults[KeyBlocksDir],
		StylesDir:         defaults[KeyStylesDir],
		StyleIndex:        defaults[KeyStyleIndex],
		RegistrationFile:  defaults[KeyRegistrationFile],
		InitFunction:      defaults[KeyInitFunction],
		RegistrationScope: defaults[KeyRegistrationScope],
		Namespace:         defaults[KeyNamespace],
		Category:          defaults[KeyCategory],
		Icon:              defaults[KeyIcon],
		BlockVersion:      defaults[KeyBlockVersion],
		TemplateExt:       defaults[KeyTemplateExt],
		StyleExt:          defaults[KeyStyleExt],
	}
}

// BlockDir returns the directory holding the bundle for id.
func (l *Layout) BlockDir(id string) string {
	return filepath.Join(l.Root, l.BlocksDir, id)
}

// TemplateFile returns the render template name for id (e.g., "hero-banner.php").
func (l *Layout) TemplateFile(id string) string {
	return id + "." + l.TemplateExt
}

// StylesPath returns the shared block styles directory.
func (l *Layout) StylesPath() string {
	return filepath.Join(l.Root, l.StylesDir)
}

// StylePath returns the stylesheet stub path for id (e.g., "sass/blocks/_hero-banner.scss").
func (l *Layout) StylePath(id string) string {
	return filepath.Join(l.StylesPath(), "_"+id+"."+l.StyleExt)
}

// StyleIndexPath returns the shared style index path.
func (l *Layout) StyleIndexPath() string {
	return filepath.Join(l.StylesPath(), l.StyleIndex)
}

// RegistrationPath returns the path of the file holding the init function.
func (l *Layout) RegistrationPath() string {
	return filepath.Join(l.Root, l.RegistrationFile)
}
