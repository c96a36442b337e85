package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/sheetmenu/pkg/config"
	"github.com/entrhq/sheetmenu/pkg/logging"
	"github.com/entrhq/sheetmenu/pkg/menu"
	"github.com/entrhq/sheetmenu/pkg/motion"
	"github.com/entrhq/sheetmenu/pkg/sheet"
	"github.com/entrhq/sheetmenu/pkg/ui/bottomsheet"
)

// openButtonRow is the screen row of the Open button in the base view.
const openButtonRow = 2

var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mintGreen  = lipgloss.Color("#A8E6CF")
	mutedGray  = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().Foreground(salmonPink).Bold(true)
	buttonStyle = lipgloss.NewStyle().Foreground(salmonPink).Bold(true)
	tipsStyle   = lipgloss.NewStyle().Foreground(mutedGray)
	statusStyle = lipgloss.NewStyle().Foreground(mintGreen)
)

type appKeyMap struct {
	Open key.Binding
	Quit key.Binding
}

var appKeys = appKeyMap{
	Open: key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "open menu")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// copiedMsg reports the result of copying an option to the clipboard.
type copiedMsg struct {
	text string
	err  error
}

// app is the host program. It mounts a sheet on demand and unmounts it when
// the sheet reports it has closed.
type app struct {
	width, height int

	title    string
	options  []string
	settings *config.SheetSection
	sheet    *bottomsheet.Model
	status   string

	clock    motion.Clock
	copyText func(string) error
	log      *logging.Logger
}

func newApp(m *menu.Menu, settings *config.SheetSection, logger *logging.Logger) (*app, error) {
	options, err := m.Visible()
	if err != nil {
		return nil, fmt.Errorf("failed to filter menu: %w", err)
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("every menu option is hidden")
	}
	return &app{
		title:    m.Title,
		options:  options,
		settings: settings,
		copyText: clipboard.WriteAll,
		log:      logger,
	}, nil
}

func (a *app) Init() tea.Cmd {
	return nil
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.sheet != nil {
			if idx, ok := digitIndex(msg); ok {
				return a, a.choose(idx)
			}
			return a, a.forward(msg)
		}
		switch {
		case key.Matches(msg, appKeys.Open):
			return a, a.openSheet()
		case key.Matches(msg, appKeys.Quit):
			return a, tea.Quit
		}
		return a, nil

	case tea.MouseMsg:
		if a.sheet != nil {
			return a, a.forward(msg)
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == openButtonRow {
			return a, a.openSheet()
		}
		return a, nil

	case bottomsheet.SelectMsg:
		if a.sheet == nil || msg.ID != a.sheet.ID() {
			return a, nil
		}
		// children start with the title
		return a, a.choose(msg.Index - 1)

	case bottomsheet.ClosedMsg:
		if a.sheet != nil && msg.ID == a.sheet.ID() {
			a.log.Debugf("sheet %s closed", msg.ID)
			a.sheet = nil
		}
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			a.log.Warnf("clipboard copy failed: %v", msg.err)
			a.status = fmt.Sprintf("Selected %q (clipboard unavailable)", msg.text)
		} else {
			a.status = fmt.Sprintf("Copied %q to clipboard", msg.text)
		}
		return a, nil
	}

	return a, a.forward(msg)
}

// forward passes a message to the mounted sheet, if any.
func (a *app) forward(msg tea.Msg) tea.Cmd {
	if a.sheet == nil {
		return nil
	}
	var cmd tea.Cmd
	a.sheet, cmd = a.sheet.Update(msg)
	return cmd
}

func (a *app) openSheet() tea.Cmd {
	if a.sheet != nil {
		return nil
	}

	children := make([]bottomsheet.Child, 0, len(a.options)+1)
	children = append(children, bottomsheet.Title(a.title))
	for _, opt := range a.options {
		children = append(children, bottomsheet.Text(opt))
	}

	openSpring, closeSpring := a.settings.Springs()
	backdrop, accent := a.settings.Colors()
	a.sheet = bottomsheet.New(bottomsheet.Options{
		Width:         a.width,
		Height:        a.height,
		Children:      children,
		Selectable:    true,
		Clock:         a.clock,
		FrameRate:     a.settings.GetFrameRate(),
		OpenSpring:    &openSpring,
		CloseSpring:   &closeSpring,
		BackdropColor: lipgloss.Color(backdrop),
		AccentColor:   lipgloss.Color(accent),
		HandleWidth:   a.settings.GetHandleWidth(),
		Logger:        a.log.With("sheet"),
	})
	a.status = ""
	a.log.Debugf("sheet %s opened with %d options", a.sheet.ID(), len(a.options))
	return a.sheet.Init()
}

// choose copies option idx and dismisses the sheet.
func (a *app) choose(idx int) tea.Cmd {
	if a.sheet == nil || idx < 0 || idx >= len(a.options) {
		return nil
	}
	if phase := a.sheet.Controller().Phase(); phase == sheet.PhaseClosing || phase == sheet.PhaseClosed {
		return nil
	}
	text := a.options[idx]
	a.log.Infof("option selected: %s", text)

	copyText := a.copyText
	copyCmd := func() tea.Msg {
		return copiedMsg{text: text, err: copyText(text)}
	}
	return tea.Batch(copyCmd, a.sheet.Dismiss())
}

func digitIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

func (a *app) baseView() string {
	lines := []string{
		headerStyle.Render("sheetmenu"),
		"",
		buttonStyle.Render("[ Open ]"),
		"",
		tipsStyle.Render("o / click Open to show the menu, q to quit"),
		tipsStyle.Render("In the menu: click or 1-9 to pick, esc or click outside to close, drag down to dismiss"),
	}
	if a.status != "" {
		lines = append(lines, "", statusStyle.Render(a.status))
	}
	return strings.Join(lines, "\n")
}

func (a *app) View() string {
	base := a.baseView()
	if a.sheet == nil {
		return base
	}
	return a.sheet.View(base)
}
