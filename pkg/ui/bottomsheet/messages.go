package bottomsheet

// layoutMsg asks the sheet to measure its panel. It is delivered after the
// first render so the measurement reflects mounted content.
type layoutMsg struct {
	ID string
}

// frameMsg advances the sheet animation by one frame.
type frameMsg struct {
	ID string
}

// ClosedMsg is emitted once the close animation has finished. Hosts unmount
// the sheet when they receive it.
type ClosedMsg struct {
	ID string
}

// SelectMsg is emitted when a selectable child is chosen by click or key.
// Index counts children in the order they were supplied.
type SelectMsg struct {
	ID    string
	Index int
}
