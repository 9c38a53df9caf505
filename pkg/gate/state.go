package gate

// State is the gate's position in its unlock sequence.
type State int

const (
	// Locked is the initial state: the contract has not been read to the end.
	Locked State = iota
	// DwellPending means the reader is at the bottom and the dwell timer runs.
	DwellPending
	// ScrollUnlocked means the dwell elapsed; the confirmation is still missing.
	ScrollUnlocked
	// Ready means the confirm action may be taken.
	Ready
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case DwellPending:
		return "dwell-pending"
	case ScrollUnlocked:
		return "scroll-unlocked"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is the in-memory gate state. It is never persisted.
type Snapshot struct {
	State             State `json:"state"`
	ScrollUnlocked    bool  `json:"scrollUnlocked"`
	ConfirmationReady bool  `json:"confirmationReady"`
	DwellTimerArmed   bool  `json:"dwellTimerArmed"`
}
