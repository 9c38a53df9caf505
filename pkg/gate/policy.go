package gate

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Input is the raw confirmation input: the acknowledgement box and the text
// field (commitment or typed phrase).
type Input struct {
	Checked bool
	Text    string
}

// Unmet names the confirmation condition that is not satisfied.
type Unmet int

const (
	UnmetNone Unmet = iota
	UnmetCheckbox
	UnmetText
	UnmetPhrase
)

// Message is the status line shown for the unmet condition.
func (u Unmet) Message() string {
	switch u {
	case UnmetCheckbox:
		return "Check the acknowledgement box."
	case UnmetText:
		return "Enter your highest-leverage action for today."
	case UnmetPhrase:
		return "Type the confirmation phrase exactly."
	default:
		return MsgReady
	}
}

// Policy decides whether an input confirms the gate.
type Policy interface {
	Name() string
	// Check returns the most relevant unmet condition, or UnmetNone.
	Check(in Input) Unmet
	// Action is the commitment text recorded for a satisfying input.
	Action(in Input) string
}

const (
	PolicyCheckbox = "checkbox"
	PolicyPhrase   = "phrase"
)

// CheckboxText requires the box to be checked and a non-blank commitment.
type CheckboxText struct{}

func (CheckboxText) Name() string { return PolicyCheckbox }

func (CheckboxText) Check(in Input) Unmet {
	if !in.Checked {
		return UnmetCheckbox
	}
	if strings.TrimSpace(in.Text) == "" {
		return UnmetText
	}
	return UnmetNone
}

func (CheckboxText) Action(in Input) string { return strings.TrimSpace(in.Text) }

// TypedPhrase requires the text to match Target ignoring case and spacing.
type TypedPhrase struct {
	Target string
}

func (TypedPhrase) Name() string { return PolicyPhrase }

func (p TypedPhrase) Check(in Input) Unmet {
	got := Normalize(in.Text)
	if got == "" || got != Normalize(p.Target) {
		return UnmetPhrase
	}
	return UnmetNone
}

func (p TypedPhrase) Action(Input) string { return strings.TrimSpace(p.Target) }

// NewPolicy returns the named policy. phrase is the target for PolicyPhrase.
func NewPolicy(name, phrase string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyCheckbox:
		return CheckboxText{}, nil
	case PolicyPhrase:
		if Normalize(phrase) == "" {
			return nil, fmt.Errorf("gate: phrase policy needs a non-empty phrase")
		}
		return TypedPhrase{Target: phrase}, nil
	default:
		return nil, fmt.Errorf("gate: unknown policy %q (want %s or %s)", name, PolicyCheckbox, PolicyPhrase)
	}
}

// Normalize case-folds s and collapses whitespace runs into single spaces,
// trimming both ends. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.Join(strings.Fields(cases.Fold().String(s)), " ")
}
