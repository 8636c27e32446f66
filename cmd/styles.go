package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/thisguymartin/stylebook/internal/contrast"
	"github.com/thisguymartin/stylebook/internal/errors"
	"github.com/thisguymartin/stylebook/internal/generator"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
	"github.com/thisguymartin/stylebook/internal/tui"
)

var (
	listCategory string
	showRender   bool
	showPlatform string
	checkIOS     bool
	urlView      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List styles grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		found := false
		for _, c := range style.Categories() {
			if listCategory != "" && !strings.EqualFold(c.Name, listCategory) {
				continue
			}
			found = true
			recs := c.Records()
			fmt.Fprintf(out, "%s %s\n", tui.HeaderStyle.Render(c.Name), tui.MutedStyle.Render(fmt.Sprintf("(%d)", len(recs))))
			for _, rec := range recs {
				fmt.Fprintf(out, "  %-16s %s\n", rec.ID, tui.MutedStyle.Render(rec.Name))
			}
		}
		if !found {
			return errors.New(errors.ErrCodeInvalidInput, "no category named %q", listCategory)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a style's palette, typography and compliance",
	Example: `  stylebook show glassmorphism
  stylebook show terminal --platform ios
  stylebook show art-deco --render`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := styleArg(cmd.Context(), args)
		platform, err := parsePlatform(showPlatform)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if showRender {
			link := preview.Link(cfg.BaseURL, rec.ID, cfg.View())
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			rendered, err := r.Render(generator.Markdown(rec, link, platform))
			if err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}
			_, err = io.WriteString(out, rendered)
			return err
		}

		writeSummary(out, rec, platform)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [id...]",
	Short: "Report WCAG AA contrast and border visibility per style",
	Long: `Checks text and secondary text against the primary background (4.5:1) and
flags invisible borders. With --ios the iOS override table is applied first.
The report is informational: the exit status is zero whatever it finds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := style.All()
		if len(args) > 0 {
			recs = recs[:0]
			for _, a := range args {
				recs = append(recs, resolveStyle(cmd.Context(), a))
			}
		}
		var tbl contrast.Table
		if checkIOS {
			tbl = contrast.IOSOverrides()
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("STYLE", "STATUS", "ISSUES")
		failing := 0
		for _, rec := range recs {
			report := contrast.Evaluate(rec.Colors, tbl, rec.ID)
			status := report.Status()
			if report.Overridden {
				status = "adjusted"
			}
			if !report.Compliant && !report.Overridden {
				failing++
			}
			msgs := make([]string, len(report.Issues))
			for i, is := range report.Issues {
				msgs[i] = is.Message
			}
			t.Row(rec.ID, status, strings.Join(msgs, "\n"))
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.String())
		fmt.Fprintf(out, "%d of %d styles need adjustment\n", failing, len(recs))
		return nil
	},
}

var urlCmd = &cobra.Command{
	Use:   "url [id]",
	Short: "Print the read-only preview link for a style",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := styleArg(cmd.Context(), args)
		view, err := parseView(urlView)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), preview.Link(cfg.BaseURL, rec.ID, view))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only list this category")
	showCmd.Flags().BoolVar(&showRender, "render", false, "Render the markdown style guide instead of the summary")
	showCmd.Flags().StringVar(&showPlatform, "platform", "", "Target platform: web | ios")
	checkCmd.Flags().BoolVar(&checkIOS, "ios", false, "Apply the iOS override table")
	urlCmd.Flags().StringVar(&urlView, "view", "", "Preview layout: app | website (default from config)")
}

// styleArg resolves the optional id argument, defaulting to the configured
// style.
func styleArg(ctx context.Context, args []string) style.Record {
	if len(args) == 0 {
		return resolveStyle(ctx, cfg.DefaultStyle)
	}
	return resolveStyle(ctx, args[0])
}

func parsePlatform(s string) (generator.Platform, error) {
	p, ok := generator.ParsePlatform(s)
	if !ok && s != "" {
		return p, errors.New(errors.ErrCodeInvalidInput, "unknown platform %q (want web or ios)", s)
	}
	return p, nil
}

// parseView validates an explicit --view; empty selects the configured view.
func parseView(s string) (preview.ViewMode, error) {
	if s == "" {
		return cfg.View(), nil
	}
	v, ok := preview.ParseView(s)
	if !ok {
		return v, errors.New(errors.ErrCodeInvalidView, "unknown view %q (want app or website)", s)
	}
	return v, nil
}

func writeSummary(w io.Writer, rec style.Record, platform generator.Platform) {
	sum := style.Summarize(rec)
	fmt.Fprintln(w, tui.TitleStyle.Render(rec.Name)+" "+tui.MutedStyle.Render("("+rec.ID+")"))
	fmt.Fprintln(w, rec.Description)
	if cats := style.CategoriesOf(rec.ID); len(cats) > 0 {
		fmt.Fprintln(w, tui.MutedStyle.Render("Categories: "+strings.Join(cats, ", ")))
	}
	fmt.Fprintln(w)

	for _, row := range sum.PaletteRows {
		fmt.Fprintf(w, "%-11s", row.Name)
		for _, c := range row.Colors {
			fmt.Fprintf(w, "%s %-24s", tui.Swatch(c, rec.Colors.BgPrimary), c)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Display   %s\nBody      %s\nJapanese  %s\n", sum.DisplayFont, sum.BodyFont, style.FirstFamily(rec.Fonts.JapaneseOrFallback()))
	fmt.Fprintf(w, "Radius    %s\nShadow    %s\n", sum.Radius, sum.Shadow)
	if sum.Gradient != "" {
		fmt.Fprintf(w, "Gradient  %s\n", sum.Gradient)
	}
	if len(sum.Overlays) > 0 {
		labels := make([]string, len(sum.Overlays))
		for i, o := range sum.Overlays {
			labels[i] = o.Label()
		}
		fmt.Fprintf(w, "Effects   %s\n", strings.Join(labels, ", "))
	}
	fmt.Fprintln(w)

	var tbl contrast.Table
	if platform == generator.PlatformIOS {
		tbl = contrast.IOSOverrides()
	}
	report := contrast.Evaluate(rec.Colors, tbl, rec.ID)
	status := report.Status()
	if report.Overridden {
		status = "adjusted"
	}
	fmt.Fprintf(w, "Compliance (%s): %s\n", platform.Label(), status)
	for _, is := range report.Issues {
		fmt.Fprintf(w, "  - %s\n", is.Message)
	}
}
