package wizard

import (
	"fmt"
	"strings"
)

// Step is a stage of the booking wizard. The sequence is closed and linear:
//
//	Details -> DateTime -> Address -> Payment -> Confirmation
//
// Confirmation is terminal.
type Step int

const (
	StepDetails Step = iota
	StepDateTime
	StepAddress
	StepPayment
	StepConfirmation
)

var stepNames = [...]string{
	StepDetails:      "details",
	StepDateTime:     "date_time",
	StepAddress:      "address",
	StepPayment:      "payment",
	StepConfirmation: "confirmation",
}

// Steps lists every step in traversal order.
func Steps() []Step {
	return []Step{StepDetails, StepDateTime, StepAddress, StepPayment, StepConfirmation}
}

func (s Step) Valid() bool {
	return s >= StepDetails && s <= StepConfirmation
}

func (s Step) Terminal() bool {
	return s == StepConfirmation
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

func ParseStep(v string) (Step, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range stepNames {
		if name == v {
			return Step(i), true
		}
	}
	return 0, false
}

func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("wizard: invalid step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	parsed, ok := ParseStep(string(b))
	if !ok {
		return fmt.Errorf("wizard: unknown step %q", string(b))
	}
	*s = parsed
	return nil
}

// Event moves the wizard between steps.
type Event int

const (
	EventNext Event = iota
	EventBack
)

func (e Event) String() string {
	switch e {
	case EventNext:
		return "next"
	case EventBack:
		return "back"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Transition is the step graph without guards. It reports false when the
// event is not allowed from s: Next from Confirmation, Back from Details and
// Back from Confirmation.
func Transition(s Step, e Event) (Step, bool) {
	if !s.Valid() {
		return s, false
	}
	switch e {
	case EventNext:
		if s.Terminal() {
			return s, false
		}
		return s + 1, true
	case EventBack:
		if s == StepDetails || s.Terminal() {
			return s, false
		}
		return s - 1, true
	}
	return s, false
}
