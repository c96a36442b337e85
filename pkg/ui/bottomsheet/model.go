// Package bottomsheet renders a sheet.Controller as a Bubble Tea component.
//
// The host's own view is drawn dimmed behind the sheet. The panel is anchored
// to the bottom edge of the terminal and can be dragged down with the mouse
// (the program needs tea.WithMouseCellMotion). Clicking the dimmed backdrop,
// pressing esc, or dragging the panel past half its height closes the sheet;
// the host is told through OnClose, which by default emits ClosedMsg.
package bottomsheet

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/entrhq/sheetmenu/pkg/motion"
	"github.com/entrhq/sheetmenu/pkg/sheet"
)

const defaultHandleWidth = 8

// Options configures a sheet.
type Options struct {
	// Width and Height are the terminal size. They are usually unknown at
	// construction and arrive later through tea.WindowSizeMsg.
	Width, Height int

	Children []Child

	// Selectable enables a cursor over the children and SelectMsg.
	Selectable bool

	Clock       motion.Clock
	FrameRate   int
	OpenSpring  *motion.Spring
	CloseSpring *motion.Spring

	// ShouldCapture filters which presses inside the panel may start a drag.
	ShouldCapture func(sheet.GestureEvent) bool

	BackdropColor lipgloss.Color
	AccentColor   lipgloss.Color
	HandleWidth   int

	// OnClose returns the command run when the close animation completes.
	// Defaults to emitting ClosedMsg.
	OnClose func() tea.Cmd

	Logger sheet.Logger
}

// Model is a mounted bottom sheet.
type Model struct {
	id       string
	ctrl     *sheet.Controller
	children []Child
	styles   styles

	width, height int
	handleWidth   int
	selectable    bool
	cursor        int

	measured    bool
	ticking     bool
	closePended bool
	onClose     func() tea.Cmd

	// pointer state between press and release
	press *pointer

	// layout from the last render, used for hit testing
	layout panelLayout
}

type pointer struct {
	startY   int
	onPanel  bool
	granted  bool
	moved    bool
	childIdx int
}

// New creates a sheet. Call Init (or forward the returned command of the
// host's Init) to start the opening animation.
func New(opts Options) *Model {
	backdrop := opts.BackdropColor
	if backdrop == "" {
		backdrop = mutedGray
	}
	accent := opts.AccentColor
	if accent == "" {
		accent = salmonPink
	}
	handleWidth := opts.HandleWidth
	if handleWidth <= 0 {
		handleWidth = defaultHandleWidth
	}

	m := &Model{
		id:          uuid.NewString(),
		children:    opts.Children,
		styles:      newStyles(backdrop, accent),
		width:       opts.Width,
		height:      opts.Height,
		handleWidth: handleWidth,
		selectable:  opts.Selectable,
		onClose:     opts.OnClose,
	}
	if m.onClose == nil {
		id := m.id
		m.onClose = func() tea.Cmd {
			return func() tea.Msg { return ClosedMsg{ID: id} }
		}
	}
	m.cursor = m.nextSelectable(-1, 1)

	m.ctrl = sheet.New(sheet.Config{
		Viewport:      m.viewport(),
		Clock:         opts.Clock,
		FrameRate:     opts.FrameRate,
		OpenSpring:    opts.OpenSpring,
		CloseSpring:   opts.CloseSpring,
		ShouldCapture: opts.ShouldCapture,
		OnClose:       func() { m.closePended = true },
		Logger:        opts.Logger,
	})
	return m
}

// ID identifies this sheet instance in the messages it emits.
func (m *Model) ID() string {
	return m.id
}

// Controller exposes the underlying state machine.
func (m *Model) Controller() *sheet.Controller {
	return m.ctrl
}

// Closed reports whether the close animation has completed.
func (m *Model) Closed() bool {
	return m.ctrl.Phase() == sheet.PhaseClosed
}

// Cursor returns the index of the highlighted child.
func (m *Model) Cursor() int {
	return m.cursor
}

// Init starts the opening animation from the bottom of the screen and
// schedules the layout measurement.
func (m *Model) Init() tea.Cmd {
	// A zero estimate falls back to the viewport height, so the panel starts
	// fully below the screen whatever its real size turns out to be.
	m.ctrl.Initialize(0)
	return tea.Batch(m.layoutCmd(), m.ensureTicking())
}

// Dismiss animates the sheet closed.
func (m *Model) Dismiss() tea.Cmd {
	m.ctrl.RequestDismiss()
	m.press = nil
	return m.ensureTicking()
}

// SetChildren replaces the panel content and schedules a re-measure.
func (m *Model) SetChildren(children []Child) tea.Cmd {
	m.children = children
	m.cursor = m.nextSelectable(-1, 1)
	return m.layoutCmd()
}

// Update handles layout, frame, window, key and mouse messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutMsg:
		if msg.ID != m.id {
			return m, nil
		}
		m.measure()
		return m, nil

	case frameMsg:
		if msg.ID != m.id {
			return m, nil
		}
		m.ticking = false
		m.ctrl.Tick()
		return m, tea.Batch(m.ensureTicking(), m.takeClose())

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ctrl.OnViewportChanged(m.viewport())
		if m.measured {
			m.measure()
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.ctrl.Phase() == sheet.PhaseClosed {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Dismiss):
		return m.Dismiss()
	case !m.selectable:
		return nil
	case key.Matches(msg, keys.Up):
		m.cursor = m.nextSelectable(m.cursor, -1)
	case key.Matches(msg, keys.Down):
		m.cursor = m.nextSelectable(m.cursor, 1)
	case key.Matches(msg, keys.Select):
		return m.selectCmd(m.cursor)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ctrl.Phase() == sheet.PhaseClosed {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		top := m.panelTopRow()
		p := &pointer{startY: msg.Y, onPanel: msg.Y >= top, childIdx: -1}
		if p.onPanel {
			p.childIdx = m.layout.childAt(msg.Y - top)
			p.granted = m.ctrl.OnGestureGrant(sheet.GestureEvent{X: float64(msg.X), Y: float64(msg.Y)})
		}
		m.press = p
		return nil

	case tea.MouseActionMotion:
		if m.press == nil || !m.press.granted {
			return nil
		}
		dy := msg.Y - m.press.startY
		if dy != 0 {
			m.press.moved = true
		}
		m.ctrl.OnGestureMove(float64(dy))
		return nil

	case tea.MouseActionRelease:
		p := m.press
		m.press = nil
		if p == nil {
			return nil
		}
		if !p.onPanel {
			if msg.Y < m.panelTopRow() {
				return m.Dismiss()
			}
			return nil
		}
		var cmd tea.Cmd
		if p.granted {
			m.ctrl.OnGestureRelease(m.ctrl.PanelTop(), m.measured)
			cmd = m.ensureTicking()
		}
		if !p.moved && msg.Y == p.startY && m.isSelectable(p.childIdx) {
			m.cursor = p.childIdx
			return tea.Batch(cmd, m.selectCmd(p.childIdx))
		}
		return cmd
	}
	return nil
}

func (m *Model) selectCmd(idx int) tea.Cmd {
	if !m.selectable || !m.isSelectable(idx) {
		return nil
	}
	id := m.id
	return func() tea.Msg { return SelectMsg{ID: id, Index: idx} }
}

func (m *Model) isSelectable(idx int) bool {
	if idx < 0 || idx >= len(m.children) {
		return false
	}
	_, isTitle := m.children[idx].(Title)
	return !isTitle
}

// nextSelectable walks from idx in direction dir and returns the first
// selectable child, or idx when there is none.
func (m *Model) nextSelectable(idx, dir int) int {
	for i := idx + dir; i >= 0 && i < len(m.children); i += dir {
		if m.isSelectable(i) {
			return i
		}
	}
	return idx
}

func (m *Model) layoutCmd() tea.Cmd {
	id := m.id
	return func() tea.Msg { return layoutMsg{ID: id} }
}

// ensureTicking schedules a frame if the controller is animating and no frame
// is already pending.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.ctrl.Animating() {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(m.ctrl.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{ID: id}
	})
}

func (m *Model) takeClose() tea.Cmd {
	if !m.closePended {
		return nil
	}
	m.closePended = false
	return m.onClose()
}

func (m *Model) measure() {
	panel, layout := m.renderPanel()
	m.layout = layout
	m.ctrl.OnLayoutMeasured(float64(lipgloss.Height(panel)))
	m.measured = true
}

func (m *Model) viewport() sheet.Viewport {
	return sheet.Viewport{Width: float64(m.width), Height: float64(m.height)}
}

// panelTopRow is the screen row of the panel's top border as drawn.
func (m *Model) panelTopRow() int {
	return int(math.Round(m.ctrl.PanelTop()))
}
