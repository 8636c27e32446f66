package tui

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/thisguymartin/stylebook/internal/errors"
	"github.com/thisguymartin/stylebook/internal/generator"
	"github.com/thisguymartin/stylebook/internal/output"
	"github.com/thisguymartin/stylebook/internal/preview"
	"github.com/thisguymartin/stylebook/internal/style"
)

const (
	listWidth = 26
	infoWidth = 36
	statusTTL = 3 * time.Second
)

// BrowserOptions configures the style browser.
type BrowserOptions struct {
	// StyleID is selected first; unknown ids select the default style.
	StyleID   string
	View      preview.ViewMode
	BaseURL   string
	ExportDir string
	// Clipboard defaults to output.SystemClipboard.
	Clipboard output.Clipboard
}

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	View         key.Binding
	Platform     key.Binding
	CopyPrompt   key.Binding
	CopyMarkdown key.Binding
	Export       key.Binding
	Markdown     key.Binding
	Back         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		View: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "app/website"),
		),
		Platform: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "web/iOS"),
		),
		CopyPrompt: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy prompt"),
		),
		CopyMarkdown: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "copy markdown"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Markdown: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "markdown"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.View, k.Platform, k.Markdown, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Markdown, k.Back},
		{k.View, k.Platform},
		{k.CopyPrompt, k.CopyMarkdown, k.Export},
		{k.Help, k.Quit},
	}
}

// row is one line of the category tree; header rows are not selectable.
type row struct {
	header string
	id     string
}

func buildRows() []row {
	var rows []row
	for _, c := range style.Categories() {
		rows = append(rows, row{header: c.Name})
		for _, rec := range c.Records() {
			rows = append(rows, row{id: rec.ID})
		}
	}
	return rows
}

type clearStatusMsg struct{ seq int }

type browserModel struct {
	opts     BrowserOptions
	rows     []row
	cursor   int
	view     preview.ViewMode
	platform generator.Platform

	pane  bool
	pager viewport.Model
	help  help.Model
	keys  keyMap

	status    string
	statusErr bool
	statusSeq int

	width, height int
	quitting      bool
}

func newBrowserModel(opts BrowserOptions) browserModel {
	if opts.Clipboard == nil {
		opts.Clipboard = output.SystemClipboard
	}
	if opts.View == "" {
		opts.View = preview.DefaultView
	}
	rec, _ := style.Resolve(opts.StyleID)

	m := browserModel{
		opts:     opts,
		rows:     buildRows(),
		view:     opts.View,
		platform: generator.PlatformWeb,
		pager:    viewport.New(80, 20),
		help:     help.New(),
		keys:     defaultKeyMap(),
		width:    120,
		height:   40,
	}
	m.cursor = m.next(-1, 1)
	for i, r := range m.rows {
		if r.id == rec.ID {
			m.cursor = i
			break
		}
	}
	return m
}

// next returns the first selectable row after from in direction dir, or
// from itself when there is none.
func (m browserModel) next(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.rows); i += dir {
		if m.rows[i].header == "" {
			return i
		}
	}
	return from
}

func (m browserModel) selected() style.Record {
	rec, _ := style.Resolve(m.rows[m.cursor].id)
	return rec
}

func (m browserModel) previewLink() string {
	return preview.Link(m.opts.BaseURL, m.selected().ID, m.view)
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.pager.Width = msg.Width
		m.pager.Height = max(msg.Height-4, 1)
		if m.pane {
			m.pager.SetContent(m.renderMarkdown())
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status, m.statusErr = "", false
		}
		return m, nil

	case tea.KeyMsg:
		if m.pane {
			return m.updatePane(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.next(m.cursor, -1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.next(m.cursor, 1)
		case key.Matches(msg, m.keys.View):
			m.view = m.view.Toggle()
		case key.Matches(msg, m.keys.Platform):
			if m.platform == generator.PlatformIOS {
				m.platform = generator.PlatformWeb
			} else {
				m.platform = generator.PlatformIOS
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.CopyPrompt):
			rec := m.selected()
			return m.deliver(output.Options{
				Mode:      output.ModeClipboard,
				Content:   generator.Prompt(rec, m.previewLink(), m.platform),
				Clipboard: m.opts.Clipboard,
			})
		case key.Matches(msg, m.keys.CopyMarkdown):
			rec := m.selected()
			return m.deliver(output.Options{
				Mode:      output.ModeClipboard,
				Content:   generator.Markdown(rec, m.previewLink(), m.platform),
				Clipboard: m.opts.Clipboard,
			})
		case key.Matches(msg, m.keys.Export):
			rec := m.selected()
			return m.deliver(output.Options{
				Mode:     output.ModeFile,
				Content:  generator.Markdown(rec, m.previewLink(), m.platform),
				Dir:      m.opts.ExportDir,
				FileName: generator.FileName(rec.ID),
			})
		case key.Matches(msg, m.keys.Markdown):
			m.pane = true
			m.pager.SetContent(m.renderMarkdown())
			m.pager.GotoTop()
		}
	}
	return m, nil
}

func (m browserModel) updatePane(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Markdown):
		m.pane = false
		return m, nil
	}
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

// deliver runs one export and reports it on the status line, which clears
// itself after statusTTL.
func (m browserModel) deliver(opts output.Options) (tea.Model, tea.Cmd) {
	res, err := output.Handle(opts)
	if err != nil {
		m.status, m.statusErr = "failed: "+errors.UserMessage(err), true
	} else {
		m.status, m.statusErr = res.Summary(), false
	}
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m browserModel) renderMarkdown() string {
	md := generator.Markdown(m.selected(), m.previewLink(), m.platform)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(m.width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.pane {
		title := TitleStyle.Render(m.selected().Name) + MutedStyle.Render(" · "+generator.FileName(m.selected().ID))
		return lipgloss.JoinVertical(lipgloss.Left, title, m.pager.View(), m.footer())
	}

	rec := m.selected()
	mockWidth := max(m.width-listWidth-infoWidth-6, minMockWidth)
	header := TitleStyle.Render(rec.Name) + MutedStyle.Render(" · "+m.view.Label()+" · "+m.platform.Label())
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).PaddingRight(2).Render(m.renderList()),
		lipgloss.JoinVertical(lipgloss.Left, header, renderMock(rec, m.view, mockWidth)),
		lipgloss.NewStyle().Width(infoWidth).PaddingLeft(2).Render(renderInfo(rec, m.platform, infoWidth-2)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer())
}

// renderList draws the category tree, scrolled so the cursor stays visible.
func (m browserModel) renderList() string {
	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		switch {
		case r.header != "":
			lines[i] = HeaderStyle.Render(strings.ToUpper(r.header))
		case i == m.cursor:
			rec, _ := style.Lookup(r.id)
			lines[i] = SelectedStyle.Render("▸ " + rec.Name)
		default:
			rec, _ := style.Lookup(r.id)
			lines[i] = "  " + rec.Name
		}
	}
	visible := max(m.height-4, 5)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (m browserModel) footer() string {
	status := ""
	if m.status != "" {
		if m.statusErr {
			status = ErrorStyle.Render(m.status)
		} else {
			status = SubtitleStyle.Render(m.status)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}

// RunBrowser starts the interactive style browser and blocks until it exits.
func RunBrowser(ctx context.Context, opts BrowserOptions) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return errors.New(errors.ErrCodeUnsupported, "browse needs an interactive terminal")
	}
	_, err := tea.NewProgram(newBrowserModel(opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
