package gate

import "time"

// Timer is a single-slot cancellable deferred callback. Arm is a no-op while a
// callback is pending; re-arming requires Cancel first.
type Timer interface {
	Arm(delay time.Duration, fire func()) bool
	Cancel() bool
	Armed() bool
}

// ManualTimer is a Timer whose expiry is delivered by its owner's event loop
// rather than by a goroutine: the owner schedules a wake-up for Delay() and
// calls FireGeneration with the generation it captured when scheduling.
type ManualTimer struct {
	fire  func()
	delay time.Duration
	gen   uint64
}

// Arm implements Timer.
func (t *ManualTimer) Arm(delay time.Duration, fire func()) bool {
	if t.fire != nil || fire == nil {
		return false
	}
	t.fire = fire
	t.delay = delay
	t.gen++
	return true
}

// Cancel implements Timer.
func (t *ManualTimer) Cancel() bool {
	if t.fire == nil {
		return false
	}
	t.fire = nil
	return true
}

// Armed implements Timer.
func (t *ManualTimer) Armed() bool {
	return t.fire != nil
}

// Delay is the delay passed to the last Arm.
func (t *ManualTimer) Delay() time.Duration {
	return t.delay
}

// Generation identifies the current arming. It changes on every Arm.
func (t *ManualTimer) Generation() uint64 {
	return t.gen
}

// Fire runs the pending callback, if any.
func (t *ManualTimer) Fire() bool {
	if t.fire == nil {
		return false
	}
	f := t.fire
	t.fire = nil
	f()
	return true
}

// FireGeneration runs the pending callback only if gen is still current, so a
// wake-up scheduled for a cancelled arming is dropped.
func (t *ManualTimer) FireGeneration(gen uint64) bool {
	if gen != t.gen {
		return false
	}
	return t.Fire()
}
