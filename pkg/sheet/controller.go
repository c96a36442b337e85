// Package sheet implements the drag-to-dismiss state machine behind a bottom
// sheet.
//
// A Controller owns the vertical offset of the panel (0 when fully open, the
// panel height when fully closed), the measured panel height, and the gesture
// session. Presentation code forwards pointer events and layout measurements
// to it, calls Tick once per frame while it is animating, and renders the
// panel translated by VisualOffset.
//
// When a drag is released the controller applies a single rule: if the top
// edge of the panel sits at or below viewportHeight - panelHeight/2 the sheet
// closes, otherwise it snaps back open. Velocity plays no part.
//
// Controllers are not safe for concurrent use; all calls are expected to come
// from the UI event loop.
package sheet

import (
	"math"
	"time"

	"github.com/entrhq/sheetmenu/pkg/motion"
)

// Viewport is the size of the screen the sheet is drawn on.
type Viewport struct {
	Width  float64
	Height float64
}

// GestureEvent describes the pointer that is asking to start a drag.
type GestureEvent struct {
	X, Y float64
}

// Logger receives debug output from the controller.
type Logger interface {
	Debugf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// CaptureAll accepts every gesture.
func CaptureAll(GestureEvent) bool { return true }

// Config configures a Controller.
type Config struct {
	Viewport Viewport

	// Clock drives animations. Defaults to wall time.
	Clock motion.Clock

	// FrameRate is the animation step rate. Defaults to motion.DefaultFrameRate.
	FrameRate int

	// OpenSpring moves the sheet to the open position. Defaults to a
	// critically damped spring.
	OpenSpring *motion.Spring

	// CloseSpring moves the sheet to the closed position. Defaults to a
	// clamped spring.
	CloseSpring *motion.Spring

	// ShouldCapture decides whether a pointer may start a drag. Defaults to
	// CaptureAll.
	ShouldCapture func(GestureEvent) bool

	// OnClose runs once, after the close transition completes.
	OnClose func()

	Logger Logger
}

// gestureSession exists between grant and release.
type gestureSession struct {
	baseline float64
}

// Controller is the bottom sheet state machine.
type Controller struct {
	viewport    Viewport
	panelHeight float64

	driver     *motion.Driver
	transition *motion.Transition
	session    *gestureSession
	phase      Phase

	openSpring    motion.Spring
	closeSpring   motion.Spring
	shouldCapture func(GestureEvent) bool

	onClose    func()
	closeFired bool

	log Logger
}

// New creates a controller. Call Initialize to start the opening animation.
func New(cfg Config) *Controller {
	openSpring := motion.CriticallyDamped(motion.DefaultOpenFrequency)
	if cfg.OpenSpring != nil {
		openSpring = *cfg.OpenSpring
	}
	closeSpring := motion.Clamped(motion.DefaultCloseFrequency, motion.DefaultCloseDamping)
	if cfg.CloseSpring != nil {
		closeSpring = *cfg.CloseSpring
	}
	shouldCapture := cfg.ShouldCapture
	if shouldCapture == nil {
		shouldCapture = CaptureAll
	}
	var log Logger = nopLogger{}
	if cfg.Logger != nil {
		log = cfg.Logger
	}

	return &Controller{
		viewport:      cfg.Viewport,
		panelHeight:   cfg.Viewport.Height,
		driver:        motion.NewDriver(cfg.Clock, cfg.Viewport.Height, cfg.FrameRate),
		openSpring:    openSpring,
		closeSpring:   closeSpring,
		shouldCapture: shouldCapture,
		onClose:       cfg.OnClose,
		log:           log,
	}
}

// Initialize places the sheet at the closed position for the estimated panel
// height and starts animating it open. A non-positive estimate falls back to
// the viewport height. Calls after the first are ignored.
func (c *Controller) Initialize(panelHeightEstimate float64) {
	if c.phase != PhaseIdle {
		return
	}
	if panelHeightEstimate <= 0 || math.IsNaN(panelHeightEstimate) {
		panelHeightEstimate = c.viewport.Height
	}
	c.panelHeight = panelHeightEstimate
	c.driver.Set(panelHeightEstimate)
	c.phase = PhaseOpening
	c.transition = c.driver.AnimateTo(0, c.openSpring)
	c.log.Debugf("sheet initialized: estimate=%.1f", panelHeightEstimate)
}

// OnLayoutMeasured records the real panel height. The current offset is left
// alone; only later threshold and target computations see the new value.
func (c *Controller) OnLayoutMeasured(actualHeight float64) {
	if actualHeight < 0 || math.IsNaN(actualHeight) {
		actualHeight = 0
	}
	if actualHeight == c.panelHeight {
		return
	}
	c.log.Debugf("panel height measured: %.1f -> %.1f", c.panelHeight, actualHeight)
	c.panelHeight = actualHeight
}

// OnViewportChanged updates the viewport after a resize.
func (c *Controller) OnViewportChanged(v Viewport) {
	c.viewport = v
}

// OnGestureGrant opens a gesture session if the pointer is accepted. A running
// transition, including a dismissal, is stopped and its current value becomes
// the baseline. It reports whether the session was opened.
func (c *Controller) OnGestureGrant(ev GestureEvent) bool {
	if c.phase == PhaseIdle || c.phase == PhaseClosed || c.session != nil {
		return false
	}
	if !c.shouldCapture(ev) {
		return false
	}
	if c.transition != nil {
		c.log.Debugf("grant interrupts %s transition at %.1f", c.phase, c.driver.Value())
		c.driver.Stop()
		c.transition = nil
	}
	c.session = &gestureSession{baseline: c.driver.Value()}
	c.phase = PhaseDragging
	return true
}

// OnGestureMove sets the offset to baseline + dy. The offset is not clamped
// here; VisualOffset clamps what is drawn.
func (c *Controller) OnGestureMove(dy float64) {
	if c.session == nil {
		return
	}
	c.driver.Set(c.session.baseline + dy)
}

// OnGestureRelease ends the gesture session and snaps the sheet open or
// closed. screenY is the panel's top edge measured at release time; ok is
// false when no measurement was available, in which case the sheet reopens.
func (c *Controller) OnGestureRelease(screenY float64, ok bool) {
	if c.session == nil {
		return
	}
	c.session = nil

	if c.pastThreshold(screenY, ok) {
		c.log.Debugf("release at %.1f past threshold %.1f: closing", screenY, c.threshold())
		c.close()
		return
	}
	c.log.Debugf("release at %.1f above threshold %.1f: reopening", screenY, c.threshold())
	c.phase = PhaseReopening
	c.transition = c.driver.AnimateTo(0, c.openSpring)
}

// RequestDismiss closes the sheet regardless of position. It does nothing
// while a dismissal is already running or after the sheet has closed.
func (c *Controller) RequestDismiss() {
	switch c.phase {
	case PhaseIdle, PhaseClosing, PhaseClosed:
		return
	}
	c.session = nil
	c.log.Debugf("dismiss requested at offset %.1f", c.driver.Value())
	c.close()
}

// Tick advances the running transition. It returns true while more frames
// are needed. The close callback runs from here once the close transition
// settles.
func (c *Controller) Tick() bool {
	if c.transition == nil {
		return false
	}
	if c.driver.Tick() {
		return true
	}

	t := c.transition
	c.transition = nil
	if !t.Finished() {
		return false
	}

	switch c.phase {
	case PhaseOpening, PhaseReopening:
		c.phase = PhaseOpen
	case PhaseClosing:
		c.phase = PhaseClosed
		c.fireClose()
	}
	c.log.Debugf("transition settled at %.1f: %s", c.driver.Value(), c.phase)
	return false
}

// Offset returns the raw offset, which may be negative or exceed the panel
// height during a drag.
func (c *Controller) Offset() float64 {
	return c.driver.Value()
}

// VisualOffset returns the translation to draw. Offsets below 0 render at 0
// so the panel never rises above its open position.
func (c *Controller) VisualOffset() float64 {
	return interpolate(c.driver.Value(), 0, c.panelHeight, 0, c.panelHeight)
}

// PanelHeight returns the latest measured (or estimated) panel height.
func (c *Controller) PanelHeight() float64 {
	return c.panelHeight
}

// PanelTop returns the screen Y of the panel's top edge as currently drawn.
func (c *Controller) PanelTop() float64 {
	return c.viewport.Height - c.panelHeight + c.VisualOffset()
}

// Viewport returns the current viewport.
func (c *Controller) Viewport() Viewport {
	return c.viewport
}

// Phase returns the lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Animating reports whether a transition is running.
func (c *Controller) Animating() bool {
	return c.transition != nil
}

// Dragging reports whether a gesture session is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// Transition returns the running transition, or nil.
func (c *Controller) Transition() *motion.Transition {
	return c.transition
}

// FrameInterval returns how often Tick should be called while animating.
func (c *Controller) FrameInterval() time.Duration {
	return c.driver.FrameInterval()
}

func (c *Controller) threshold() float64 {
	return c.viewport.Height - c.panelHeight/2
}

// pastThreshold applies the commit rule. Anything indeterminate counts as
// above the threshold so the sheet stays visible.
func (c *Controller) pastThreshold(screenY float64, ok bool) bool {
	if !ok || math.IsNaN(screenY) || math.IsInf(screenY, 0) {
		return false
	}
	if c.panelHeight <= 0 {
		return false
	}
	return screenY >= c.threshold()
}

func (c *Controller) close() {
	c.phase = PhaseClosing
	c.transition = c.driver.AnimateTo(c.panelHeight, c.closeSpring)
}

func (c *Controller) fireClose() {
	if c.closeFired {
		return
	}
	c.closeFired = true
	if c.onClose != nil {
		c.onClose()
	}
}
