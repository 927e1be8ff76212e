// Package wizard models the Home -> Input -> Results flow as a closed set of
// states. Results always carries the scores it was submitted with, so a
// results screen without data cannot be represented.
package wizard

import (
	"fmt"

	"github.com/okian/careerpath/internal/domain/model"
)

// State is one screen of the wizard. Only this package implements it.
type State interface {
	// Name is a short identifier used in logs and metrics.
	Name() string
	// Step is the number shown in the step indicator; 0 means none.
	Step() int

	isState()
}

// Home is the landing screen.
type Home struct{}

// Input is the Big Five entry form. Draft holds the form defaults.
type Input struct {
	Draft model.BigFive
}

// Results shows the analysis for the submitted scores.
type Results struct {
	Scores model.BigFive
}

func (Home) Name() string    { return "home" }
func (Input) Name() string   { return "input" }
func (Results) Name() string { return "results" }

func (Home) Step() int    { return 0 }
func (Input) Step() int   { return 1 }
func (Results) Step() int { return 2 }

func (Home) isState()    {}
func (Input) isState()   {}
func (Results) isState() {}

// Start moves from Home to an Input form prefilled with draft.
func Start(s State, draft model.BigFive) (State, error) {
	if _, ok := s.(Home); !ok {
		return s, transitionError(s, "start")
	}
	return Input{Draft: draft}, nil
}

// Submit moves from Input to Results holding scores. Any previous scores are
// replaced wholesale.
func Submit(s State, scores model.BigFive) (State, error) {
	if _, ok := s.(Input); !ok {
		return s, transitionError(s, "submit")
	}
	return Results{Scores: scores}, nil
}

// Reset returns to Home from any state, dropping held scores.
func Reset(State) State {
	return Home{}
}

func transitionError(s State, action string) error {
	name := "<nil>"
	if s != nil {
		name = s.Name()
	}
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, name)
}
