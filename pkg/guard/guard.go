// Package guard decides whether the host window may close.
package guard

import (
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// Decision is the outcome of a close request.
type Decision int

const (
	Veto Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "veto"
}

// VetoReason is shown when a close request is refused.
const VetoReason = "Today's contract is not acknowledged yet. Finish it before leaving."

// Guard reads the acknowledgement on every close request. It never writes.
type Guard struct {
	records *store.Records
	clock   timeutil.Clock
}

func New(records *store.Records, clock timeutil.Clock) *Guard {
	return &Guard{records: records, clock: timeutil.Or(clock)}
}

// Check allows the close iff an acknowledgement dated today exists. Checklist
// and history state play no part.
func (g *Guard) Check() Decision {
	ack, ok := g.records.LoadAcknowledgement()
	if ok && ack.Covers(timeutil.Today(g.clock)) {
		return Allow
	}
	return Veto
}
