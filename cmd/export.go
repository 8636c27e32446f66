package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/thisguymartin/stylebook/internal/errors"
	"github.com/thisguymartin/stylebook/internal/generator"
	"github.com/thisguymartin/stylebook/internal/output"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/skills"
)

// exportFlags are shared by the text-producing commands.
type exportFlags struct {
	platform string
	view     string
	out      string
	copy     bool
}

func (f *exportFlags) register(cmd *cobra.Command, withOut bool) {
	cmd.Flags().StringVar(&f.platform, "platform", "", "Target platform: web | ios")
	cmd.Flags().StringVar(&f.view, "view", "", "Preview layout for the reference link: app | website")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy to the clipboard instead of printing")
	if withOut {
		cmd.Flags().StringVar(&f.out, "out", "", "Write the file into this directory")
	}
}

// deliver sends content to stdout, the clipboard or a file per the flags.
func (f *exportFlags) deliver(cmd *cobra.Command, content, fileName string) error {
	if f.copy && f.out != "" {
		return errors.New(errors.ErrCodeInvalidInput, "--copy and --out are mutually exclusive")
	}
	opts := output.Options{Mode: output.ModeStdout, Content: content, Stdout: cmd.OutOrStdout()}
	switch {
	case f.copy:
		opts.Mode = output.ModeClipboard
	case f.out != "":
		opts.Mode = output.ModeFile
		opts.Dir = f.out
		opts.FileName = fileName
	}

	res, err := output.Handle(opts)
	if err != nil {
		loggerFromContext(cmd.Context()).Error("export failed", "mode", opts.Mode, "err", err)
		return err
	}
	if res.Mode != output.ModeStdout {
		loggerFromContext(cmd.Context()).Info(res.Summary())
	}
	return nil
}

var (
	promptFlags   exportFlags
	markdownFlags exportFlags
	swiftFlags    exportFlags
	skillsOut     string
)

var promptCmd = &cobra.Command{
	Use:   "prompt [id]",
	Short: "Generate an AI design prompt for a style",
	Example: `  stylebook prompt brutalist
  stylebook prompt kawaii --platform ios --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := styleArg(cmd.Context(), args)
		platform, err := parsePlatform(promptFlags.platform)
		if err != nil {
			return err
		}
		view, err := parseView(promptFlags.view)
		if err != nil {
			return err
		}
		text := generator.Prompt(rec, preview.Link(cfg.BaseURL, rec.ID, view), platform)
		return promptFlags.deliver(cmd, text, rec.ID+"-prompt.txt")
	},
}

var markdownCmd = &cobra.Command{
	Use:   "markdown [id]",
	Short: "Generate a markdown style guide for a style",
	Long: `Generates the style guide: color tokens, typography, visual properties,
form and layout CSS and a sample prompt. With --out the guide is written to
<dir>/<id>-design-style.md.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := styleArg(cmd.Context(), args)
		platform, err := parsePlatform(markdownFlags.platform)
		if err != nil {
			return err
		}
		view, err := parseView(markdownFlags.view)
		if err != nil {
			return err
		}
		text := generator.Markdown(rec, preview.Link(cfg.BaseURL, rec.ID, view), platform)
		return markdownFlags.deliver(cmd, text, generator.FileName(rec.ID))
	},
}

var swiftCmd = &cobra.Command{
	Use:   "swift [id]",
	Short: "Generate a SwiftUI Color extension for a style",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := styleArg(cmd.Context(), args)
		platform, err := parsePlatform(swiftFlags.platform)
		if err != nil {
			return err
		}
		text := generator.Swift(rec, platform)
		return swiftFlags.deliver(cmd, text, "Color+"+generator.TypeName(rec.ID)+".swift")
	},
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Write the design skills bundle as a zip archive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := loggerFromContext(cmd.Context())
		all := skills.All()
		for _, s := range all {
			logger.Debug("bundling skill", "name", s.Name, "version", s.Version.String())
		}

		var buf bytes.Buffer
		if err := skills.WriteArchive(&buf, all); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "build skills archive")
		}
		dir, name := filepath.Split(skillsOut)
		if dir == "" {
			dir = "."
		}
		res, err := output.Handle(output.Options{
			Mode:     output.ModeFile,
			Content:  buf.String(),
			Dir:      dir,
			FileName: name,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d skills, %s\n", res.Path, len(all), humanize.Bytes(uint64(res.Bytes)))
		return nil
	},
}

func init() {
	promptFlags.register(promptCmd, false)
	markdownFlags.register(markdownCmd, true)
	swiftFlags.register(swiftCmd, true)
	swiftCmd.Flags().Lookup("view").Hidden = true
	skillsCmd.Flags().StringVarP(&skillsOut, "out", "o", skills.ArchiveName, "Archive path")
}
