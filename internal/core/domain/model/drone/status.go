package drone

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIllegalTransition is wrapped by every rejected status change.
var ErrIllegalTransition = errors.New("illegal drone status transition")

// Status is the lifecycle state of a drone.
type Status int

const (
	// UnknownStatus helps catch uninitialised Status values.
	UnknownStatus Status = iota

	// Idle drones wait at base and can be allocated.
	Idle

	// Loading drones have a planned flight that has not started yet.
	Loading

	// InFlight drones are flying their out-and-back route.
	InFlight

	// Delivering is kept for display compatibility; the simulation never enters it.
	Delivering

	// Returning is kept for display compatibility; the simulation never enters it.
	Returning

	// Recharging drones are refilling their battery at base.
	Recharging
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Idle:          "Idle",
		Loading:       "Loading",
		InFlight:      "InFlight",
		Delivering:    "Delivering",
		Returning:     "Returning",
		Recharging:    "Recharging",
	}
}

// getTransitions returns the allowed target states per source state.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // states without outgoing transitions are terminal for the simulation
	return map[Status][]Status{
		Idle:       {Loading, Recharging},
		Loading:    {InFlight},
		InFlight:   {Idle},
		Recharging: {Idle},
	}
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition table allows s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(getTransitions()[s], next)
}

// TransitionTo validates s -> next against the transition table.
//
// Returns:
//   - (next, nil) on an allowed transition
//   - (s, error wrapping ErrIllegalTransition) otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, next)
	}
	return next, nil
}
