package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/prefs"
	"github.com/thisguymartin/stylebook/internal/style"
)

const stylebookLogo = `┏━┓╺┳╸╻ ╻╻  ┏━╸┏┓ ┏━┓┏━┓╻┏
┗━┓ ┃ ┗┳┛┃  ┣╸ ┣┻┓┃ ┃┃ ┃┣┻┓
┗━┛ ╹  ╹ ┗━╸┗━╸┗━┛┗━┛┗━┛╹ ╹`

type introModel struct {
	spinner  spinner.Model
	forever  bool
	proceed  bool
	quitting bool
}

func newIntroModel() introModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return introModel{spinner: s}
}

func (m introModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m introModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "x":
			m.forever = !m.forever
		case "enter":
			m.proceed = true
			m.quitting = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m introModel) View() string {
	if m.quitting {
		return ""
	}

	logo := BannerStyle.Render(stylebookLogo)
	width := lipgloss.Width(stylebookLogo)
	subtitle := SubtitleStyle.
		Align(lipgloss.Center).
		Width(width).
		Render(fmt.Sprintf("%d Design Styles", style.Count()))
	blurb := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Preview each style as a phone app and a website, then export prompts, markdown and SwiftUI colors.")

	check := "[ ]"
	if m.forever {
		check = SelectedStyle.Render("[x]")
	}
	toggle := check + " Don't show this again " + MutedStyle.Render("(space)")
	status := m.spinner.View() + " " + TitleStyle.Render("enter") + MutedStyle.Render(" to view designs · q to quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		subtitle,
		"",
		blurb,
		"",
		toggle,
		status,
	)
	return BoxStyle.Render(content) + "\n"
}

// RunIntro shows the intro screen when the stored preference allows it and
// reports whether the caller should go on to the browser. A direct style
// selection skips the screen. Choosing "don't show again" is persisted to
// store once the screen closes. Without a TTY it is a no-op.
func RunIntro(ctx context.Context, store prefs.Store, direct bool) (bool, error) {
	show, readErr := preview.ShouldShowIntro(ctx, store, direct)
	if !show || !term.IsTerminal(os.Stdout.Fd()) {
		return true, readErr
	}

	result, err := tea.NewProgram(newIntroModel(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, fmt.Errorf("intro: %w", err)
	}
	final := result.(introModel)
	if final.proceed && final.forever {
		if err := preview.DismissIntro(ctx, store); err != nil {
			return true, fmt.Errorf("save intro preference: %w", err)
		}
	}
	return final.proceed, readErr
}

// stylebookIconSmall is a compact swatch strip used in the info panel.
const stylebookIconSmall = `▆▆ ▆▆
▆▆ ▆▆
▆▆ ▆▆`

// PrintInfo renders a static, single-shot info panel (no animation).
func PrintInfo(version, configPath, dir string) {
	icon := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Render(stylebookIconSmall)

	title := TitleStyle.Render("STYLEBOOK") + " " + MutedStyle.Render("v"+version)
	sub := MutedStyle.Render(fmt.Sprintf("%d design styles · %d categories", style.Count(), len(style.Categories())))
	cfg := MutedStyle.Render("config " + shortenHome(configPath))
	cwd := MutedStyle.Render(shortenHome(dir))
	hint := MutedStyle.Render("run `stylebook browse` or `stylebook --help`")

	info := lipgloss.NewStyle().
		PaddingLeft(2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, sub, cfg, cwd, hint))

	content := lipgloss.JoinHorizontal(lipgloss.Center, icon, info)
	fmt.Println(BoxStyle.Render(content))
}

func shortenHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + filepath.ToSlash(path[len(home):])
	}
	return path
}
