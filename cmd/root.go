package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/thisguymartin/stylebook/internal/config"
	"github.com/thisguymartin/stylebook/internal/prefs"
	"github.com/thisguymartin/stylebook/internal/style"
	"github.com/thisguymartin/stylebook/internal/tui"
)

const Version = "0.1.0"

var (
	cfg        config.Config
	configPath string
	browse     bool
)

var rootCmd = &cobra.Command{
	Use:   "stylebook",
	Short: "Browse design styles and export them as prompts, markdown and code",
	Long: `STYLEBOOK is a catalog of named design styles: palettes, font stacks, radii,
shadows and decorative overlays. Every style can be previewed as a phone app
or a marketing website, checked against WCAG AA contrast, and exported as an
AI prompt, a markdown style guide, CSS variables or a SwiftUI color set.

Three surfaces share the same catalog:
  commands   one-shot output for scripts and pipes
  browse     an interactive terminal browser
  serve      an HTTP preview server (?style=<id>&view=app|website&preview=true)`,
	Example: `  # List every style grouped by category
  stylebook list

  # Copy an iOS prompt for the terminal style
  stylebook prompt terminal --platform ios --copy

  # Write cyberpunk-design-style.md into ./docs
  stylebook markdown cyberpunk --out docs

  # Check every style for contrast problems
  stylebook check

  # Serve previews on :9000
  stylebook serve --addr :9000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if cfg.Verbose {
			level = log.DebugLevel
		}
		logger := newLogger(cmd.ErrOrStderr(), level)
		cmd.SetContext(withLogger(cmd.Context(), logger))

		verbose := cfg.Verbose
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		cfg.Verbose = verbose
		logger.Debug("config loaded", "path", effectiveConfigPath(), "style", cfg.DefaultStyle, "view", cfg.DefaultView)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if browse {
			return browseCmd.RunE(cmd, args)
		}
		cwd, _ := os.Getwd()
		tui.PrintInfo(Version, effectiveConfigPath(), cwd)
		return nil
	},
}

// Execute is the entry point called by main.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("stylebook {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a TOML config file (default: "+config.DefaultPath()+")")
	rootCmd.Flags().BoolVar(&browse, "browse", false,
		"Start the interactive browser")

	rootCmd.AddCommand(listCmd, showCmd, checkCmd, urlCmd)
	rootCmd.AddCommand(promptCmd, markdownCmd, swiftCmd, skillsCmd)
	rootCmd.AddCommand(serveCmd, browseCmd, introCmd)
}

func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// resolveStyle maps a user-supplied id to a style. Unknown ids fall back to
// the configured default with a warning naming the closest matches.
func resolveStyle(ctx context.Context, raw string) style.Record {
	if rec, ok := style.Resolve(raw); ok {
		return rec
	}
	rec, ok := style.Resolve(cfg.DefaultStyle)
	if !ok {
		rec, _ = style.Lookup(style.DefaultID)
	}
	logger := loggerFromContext(ctx)
	if hints := style.Suggest(raw, 3); len(hints) > 0 {
		logger.Warn("unknown style, using default", "requested", raw, "style", rec.ID, "did_you_mean", strings.Join(hints, ", "))
	} else {
		logger.Warn("unknown style, using default", "requested", raw, "style", rec.ID)
	}
	return rec
}

// openPrefs opens the configured preference store. The returned closer is
// never nil.
func openPrefs(ctx context.Context) (prefs.Store, func(), error) {
	store, err := prefs.Open(ctx, prefs.Options{
		Backend:     cfg.Prefs.Backend,
		Path:        cfg.Prefs.Path,
		RedisAddr:   cfg.Prefs.RedisAddr,
		RedisPrefix: cfg.Prefs.RedisPrefix,
	})
	if err != nil {
		return nil, func() {}, err
	}
	closer := func() {}
	if c, ok := store.(io.Closer); ok {
		closer = func() {
			if err := c.Close(); err != nil {
				loggerFromContext(ctx).Debug("close prefs store", "err", err)
			}
		}
	}
	loggerFromContext(ctx).Debug("prefs store opened", "backend", cfg.Prefs.Backend)
	return store, closer, nil
}
