package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/server"
	"github.com/thisguymartin/stylebook/internal/tui"
)

var (
	serveAddr   string
	browseStyle string
	browseView  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve style previews and the export API over HTTP",
	Long: `Serves the explorer page at / and the read-only preview contract
?style=<id>&view=app|website&preview=true, plus JSON and text exports under
/api. Stops gracefully on interrupt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		srv := server.New(server.Options{
			BaseURL:      cfg.BaseURL,
			DefaultStyle: cfg.DefaultStyle,
			DefaultView:  cfg.View(),
			Logger:       loggerFromContext(cmd.Context()),
		})
		return srv.ListenAndServe(cmd.Context(), addr)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse styles in the terminal",
	Long: `Opens the interactive browser. The intro screen is shown first unless it
was dismissed for good or --style names a starting style.

Keys: tab app/website · i web/iOS · c copy prompt · m copy markdown ·
e export markdown · enter markdown pane · q quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := loggerFromContext(ctx)

		view, err := parseView(browseView)
		if err != nil {
			return err
		}
		store, closeStore, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		direct := cmd.Flags().Changed("style")
		proceed, err := tui.RunIntro(ctx, store, direct)
		if err != nil {
			logger.Warn("intro preference", "err", err)
		}
		if !proceed {
			return nil
		}

		start := cfg.DefaultStyle
		if direct {
			start = resolveStyle(ctx, browseStyle).ID
		}
		return tui.RunBrowser(ctx, tui.BrowserOptions{
			StyleID:   start,
			View:      view,
			BaseURL:   cfg.BaseURL,
			ExportDir: cfg.ExportDir,
		})
	},
}

var introCmd = &cobra.Command{
	Use:   "intro",
	Short: "Manage the intro screen preference",
}

var introResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Show the intro screen again on the next browse",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, closeStore, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeStore()
		if err := preview.ResetIntro(ctx, store); err != nil {
			return fmt.Errorf("reset intro: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Intro screen will show on the next browse.")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	browseCmd.Flags().StringVar(&browseStyle, "style", "", "Start on this style and skip the intro")
	browseCmd.Flags().StringVar(&browseView, "view", "", "Starting layout: app | website")
	introCmd.AddCommand(introResetCmd)
}
