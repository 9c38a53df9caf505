package shell

import (
	"strings"
	"sync"
)

// Event is a process-wide input event that may be suppressed.
type Event int

const (
	EventContextMenu Event = iota
	EventCopy
	EventCut
	EventPaste
	EventSelectStart
	EventDragStart
)

func (e Event) String() string {
	switch e {
	case EventContextMenu:
		return "contextmenu"
	case EventCopy:
		return "copy"
	case EventCut:
		return "cut"
	case EventPaste:
		return "paste"
	case EventSelectStart:
		return "selectstart"
	case EventDragStart:
		return "dragstart"
	default:
		return "unknown"
	}
}

// blockedLetters are select-all, copy, paste, cut, print and save.
var blockedLetters = map[string]bool{"a": true, "c": true, "v": true, "x": true, "p": true, "s": true}

// Suppression blocks clipboard, selection and drag input while the gate view
// is active. It starts engaged.
type Suppression struct {
	mu     sync.RWMutex
	lifted bool
}

func NewSuppression() *Suppression {
	return &Suppression{}
}

// Lift stops suppressing, once the ritual view or an edit form is active.
func (s *Suppression) Lift() {
	s.mu.Lock()
	s.lifted = true
	s.mu.Unlock()
}

// Engage resumes suppressing.
func (s *Suppression) Engage() {
	s.mu.Lock()
	s.lifted = false
	s.mu.Unlock()
}

func (s *Suppression) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.lifted
}

// BlocksEvent reports whether e is dropped. Every listed event is suppressed
// while active.
func (s *Suppression) BlocksEvent(e Event) bool {
	if !s.Active() {
		return false
	}
	return e >= EventContextMenu && e <= EventDragStart
}

// BlocksKey reports whether a key chord such as "ctrl+v" or "super+shift+S"
// is dropped. Only ctrl or super combined with a blocked letter counts.
func (s *Suppression) BlocksKey(chord string) bool {
	if !s.Active() {
		return false
	}
	parts := strings.Split(strings.ToLower(chord), "+")
	if len(parts) < 2 {
		return false
	}
	var mod bool
	for _, p := range parts[:len(parts)-1] {
		if p == "ctrl" || p == "super" || p == "cmd" || p == "meta" {
			mod = true
		}
	}
	return mod && blockedLetters[parts[len(parts)-1]]
}
