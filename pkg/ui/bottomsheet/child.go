package bottomsheet

// Child is one block of content inside the panel.
type Child interface {
	View() string
}

// Text is a Child that renders a fixed string.
type Text string

// View implements Child.
func (t Text) View() string { return string(t) }

// Title is a Child rendered in the sheet's heading style. It is never
// selectable.
type Title string

// View implements Child.
func (t Title) View() string { return string(t) }
