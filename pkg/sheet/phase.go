package sheet

import "fmt"

// Phase is the lifecycle state of a sheet.
//
//	         Initialize              settle
//	Idle ───────────────► Opening ─────────► Open
//	                                          │ grant
//	                        release(below)    ▼
//	         Reopening ◄───────────────── Dragging
//	                                          │ release(past threshold)
//	                          settle          ▼
//	         Closed ◄──────────────────── Closing ◄── RequestDismiss
//
// Open and Closed are the resting phases. Closed is terminal.
type Phase int

const (
	// PhaseIdle means Initialize has not been called.
	PhaseIdle Phase = iota
	// PhaseOpening means the sheet is sliding up after mount.
	PhaseOpening
	// PhaseOpen means the sheet rests at offset 0.
	PhaseOpen
	// PhaseDragging means a gesture session is active.
	PhaseDragging
	// PhaseReopening means a released drag is snapping back to open.
	PhaseReopening
	// PhaseClosing means the sheet is sliding down to be dismissed.
	PhaseClosing
	// PhaseClosed means the sheet rests at the panel height and the close
	// callback has run.
	PhaseClosed
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseDragging:
		return "dragging"
	case PhaseReopening:
		return "reopening"
	case PhaseClosing:
		return "closing"
	case PhaseClosed:
		return "closed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
