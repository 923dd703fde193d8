package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wpblocks/blockgen/internal/branding"
	"github.com/wpblocks/blockgen/internal/config"
	"github.com/wpblocks/blockgen/internal/scaffold"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// flagKeys maps command-line flags to config keys.
var flagKeys = []struct {
	flag, key, usage string
}{
	{"root", config.KeyRoot, "Theme root directory (default: current directory)"},
	{"blocks-dir", config.KeyBlocksDir, "Block bundles directory relative to the root (default: template-parts/blocks)"},
	{"styles-dir", config.KeyStylesDir, "Block stylesheets directory relative to the root (default: sass/blocks)"},
	{"style-index", config.KeyStyleIndex, "Style index file inside the styles directory (default: _blocks.scss)"},
	{"registration-file", config.KeyRegistrationFile, "File holding the block init function (default: functions.php)"},
	{"init-function", config.KeyInitFunction, "Name of the block init function (default: my_acf_blocks_init)"},
	{"registration-scope", config.KeyRegistrationScope, "Where to look for an existing registration: function or file (default: function)"},
	{"namespace", config.KeyNamespace, "Block name namespace (default: acf)"},
	{"category", config.KeyCategory, "Block category (default: Primary)"},
	{"icon", config.KeyIcon, "Block dashicon (default: admin-post)"},
	{"block-version", config.KeyBlockVersion, "Semantic version written to block.json (default: none)"},
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	v := config.New()
	var verbose bool

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <block-name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates an ACF block bundle (block.json, render template, and
stylesheet stub), imports the stylesheet in the blocks style index, and registers
the block in the theme's init function.

Example:
  ` + branding.CLIName() + ` hero-banner`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "Please provide a block name")
				return nil
			}
			name := args[0]

			level := "warn"
			if verbose {
				level = "debug"
			}
			logger := newLogger(level, cmd.ErrOrStderr())

			layout, err := config.Load(fsys, v)
			if err != nil {
				return err
			}
			logger.Debug("resolved layout", "root", layout.Root, "blocks_dir", layout.BlocksDir,
				"styles_dir", layout.StylesDir, "registration_file", layout.RegistrationFile)

			result, err := scaffold.NewWriter(fsys, layout, out, logger).Create(name)
			if errors.Is(err, scaffold.ErrBlockExists) {
				fmt.Fprintf(out, "Block %q already exists at %s\n", name, layout.BlockDir(name))
				return nil
			}
			if err != nil {
				return err
			}

			printResult(out, name, result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	for _, f := range flagKeys {
		cmd.Flags().String(f.flag, "", fmt.Sprintf("%s [env %s]", f.usage, branding.EnvVar(f.key)))
		if err := v.BindPFlag(f.key, cmd.Flags().Lookup(f.flag)); err != nil {
			panic(fmt.Sprintf("binding --%s: %v", f.flag, err))
		}
	}

	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return newRootCmd(afero.NewOsFs()).Execute()
}

func printResult(out io.Writer, name string, result *scaffold.Result) {
	fmt.Fprintf(out, "Block structure for %q created successfully!\n", name)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
}
