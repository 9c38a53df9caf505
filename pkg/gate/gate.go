// Package gate implements the commitment gate: the reader must scroll to the
// end of the contract, stay there for the dwell delay and then supply a
// confirmation that satisfies the configured policy.
package gate

import (
	"errors"
	"time"

	"tableflip.dev/ackgate/pkg/timeutil"
)

const (
	DefaultDwell   = 2 * time.Second
	MinDwell       = 2 * time.Second
	MaxDwell       = 4 * time.Second
	DefaultEpsilon = 10
	MinEpsilon     = 2
	MaxEpsilon     = 10
)

// Status lines that do not come from a policy.
const (
	MsgScroll = "Scroll to the bottom of the contract."
	MsgHold   = "Stay at the bottom to unlock."
	MsgReady  = "Ready to confirm."
)

var (
	// ErrNotReady is returned by Confirm before the gate reached Ready.
	ErrNotReady = errors.New("gate: not ready to confirm")
	// ErrClosed is returned once the gate was confirmed or closed.
	ErrClosed = errors.New("gate: closed")
)

// Position is a scroll position of the contract container, in any unit as
// long as all three fields share it.
type Position struct {
	Offset         float64
	ViewportHeight float64
	ContentHeight  float64
}

// AtBottom reports whether the viewport touches the end of the content,
// allowing epsilon units of slack.
func (p Position) AtBottom(epsilon float64) bool {
	return p.Offset+p.ViewportHeight >= p.ContentHeight-epsilon
}

// Options configures a Gate. Zero values take the defaults; Dwell and Epsilon
// are clamped to their allowed ranges.
type Options struct {
	Policy  Policy
	Timer   Timer
	Dwell   time.Duration
	Epsilon float64
	Clock   timeutil.Clock
}

// Submission is what a successful Confirm hands to the caller for recording.
type Submission struct {
	Action string
	Policy string
	At     time.Time
}

// Gate is one session's state machine. It is not safe for concurrent use; all
// calls, including the timer callback, must come from one event loop.
type Gate struct {
	policy  Policy
	timer   Timer
	dwell   time.Duration
	epsilon float64
	clock   timeutil.Clock

	state          State
	scrollUnlocked bool
	input          Input
	closed         bool
}

// New builds a locked gate.
func New(opts Options) *Gate {
	g := &Gate{
		policy:  opts.Policy,
		timer:   opts.Timer,
		dwell:   clampDuration(opts.Dwell, DefaultDwell, MinDwell, MaxDwell),
		epsilon: clampFloat(opts.Epsilon, DefaultEpsilon, MinEpsilon, MaxEpsilon),
		clock:   timeutil.Or(opts.Clock),
		state:   Locked,
	}
	if g.policy == nil {
		g.policy = CheckboxText{}
	}
	if g.timer == nil {
		g.timer = &ManualTimer{}
	}
	return g
}

// Scroll feeds a new scroll position. Reaching the bottom arms the dwell
// timer; leaving it before the timer fires cancels it and relocks the gate.
// Positions are ignored once the scroll condition is satisfied.
func (g *Gate) Scroll(pos Position) State {
	if g.closed || g.scrollUnlocked {
		return g.state
	}
	if pos.AtBottom(g.epsilon) {
		if !g.timer.Armed() && g.timer.Arm(g.dwell, g.dwellElapsed) {
			g.state = DwellPending
		}
		return g.state
	}
	if g.state == DwellPending {
		g.timer.Cancel()
		g.state = Locked
	}
	return g.state
}

func (g *Gate) dwellElapsed() {
	if g.closed || g.scrollUnlocked {
		return
	}
	g.scrollUnlocked = true
	g.evaluate()
}

// SetInput records the confirmation input. The policy is consulted only after
// the scroll condition holds.
func (g *Gate) SetInput(in Input) State {
	if g.closed {
		return g.state
	}
	g.input = in
	g.evaluate()
	return g.state
}

func (g *Gate) evaluate() {
	if !g.scrollUnlocked {
		return
	}
	if g.policy.Check(g.input) == UnmetNone {
		g.state = Ready
	} else {
		g.state = ScrollUnlocked
	}
}

// State returns the current state.
func (g *Gate) State() State { return g.state }

// Ready reports whether the confirm action is enabled.
func (g *Gate) Ready() bool { return !g.closed && g.state == Ready }

// Input returns the last recorded input.
func (g *Gate) Input() Input { return g.input }

// Policy returns the confirmation policy.
func (g *Gate) Policy() Policy { return g.policy }

// Dwell is the effective dwell delay.
func (g *Gate) Dwell() time.Duration { return g.dwell }

// Closed reports whether the gate was torn down.
func (g *Gate) Closed() bool { return g.closed }

// Snapshot returns the flags of the in-memory gate state.
func (g *Gate) Snapshot() Snapshot {
	return Snapshot{
		State:             g.state,
		ScrollUnlocked:    g.scrollUnlocked,
		ConfirmationReady: g.state == Ready,
		DwellTimerArmed:   g.timer.Armed(),
	}
}

// Status names the single most relevant unmet condition: scrolling first,
// then the policy's own conditions.
func (g *Gate) Status() string {
	switch {
	case g.state == DwellPending:
		return MsgHold
	case !g.scrollUnlocked:
		return MsgScroll
	default:
		return g.policy.Check(g.input).Message()
	}
}

// Submit returns the submission of a Ready gate and leaves the gate open, so
// a caller whose write fails can try again.
func (g *Gate) Submit() (Submission, error) {
	if g.closed {
		return Submission{}, ErrClosed
	}
	if g.state != Ready {
		return Submission{}, ErrNotReady
	}
	return Submission{
		Action: g.policy.Action(g.input),
		Policy: g.policy.Name(),
		At:     g.clock.Now(),
	}, nil
}

// Confirm closes a Ready gate and returns the submission to record.
func (g *Gate) Confirm() (Submission, error) {
	sub, err := g.Submit()
	if err != nil {
		return Submission{}, err
	}
	g.Close()
	return sub, nil
}

// Close tears the gate down and cancels a pending dwell timer.
func (g *Gate) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.timer.Cancel()
}

func clampDuration(v, def, lo, hi time.Duration) time.Duration {
	switch {
	case v <= 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func clampFloat(v, def, lo, hi float64) float64 {
	switch {
	case v <= 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
