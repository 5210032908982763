package sim

import (
	"fmt"
	"math"
)

// StealValue compares the expected runs for the rest of the game when a
// runner attempts a steal against standing pat. The batter at the plate is
// the same in all three branches; a steal is not a plate appearance.
type StealValue struct {
	NoAttempt float64 // expected runs if the runner holds
	Success   float64 // expected runs after a successful steal, including a run scored on a steal of home
	Caught    float64 // expected runs after the runner is thrown out

	// BreakEven is the success probability at which attempting is neutral.
	// NaN when a successful steal is not worth more than being caught.
	BreakEven float64
}

// AttemptValue returns the expected run gain of attempting with the given
// success probability, relative to holding.
func (v StealValue) AttemptValue(successRate float64) float64 {
	return successRate*v.Success + (1-successRate)*v.Caught - v.NoAttempt
}

// EvaluateSteal values a steal attempt by the runner on base from the game
// state before, with lineup[batterUp] at the plate.
func EvaluateSteal(lineup Lineup, batterUp int, before State, base Base) (*StealValue, error) {
	successID, successRuns, err := before.StealSucceeds(base)
	if err != nil {
		return nil, err
	}
	caughtID, err := before.CaughtStealing(base)
	if err != nil {
		return nil, err
	}
	families, err := lineup.Families()
	if err != nil {
		return nil, err
	}

	remaining := func(id StateID) (float64, error) {
		cfg := DefaultChainConfig()
		cfg.StartState = id
		cfg.StartBatter = batterUp
		res, err := SimulateFamilies(families, cfg)
		if err != nil {
			return 0, fmt.Errorf("from %v: %w", mustDecode(id), err)
		}
		return res.ExpectedRuns(), nil
	}

	v := &StealValue{}
	if v.NoAttempt, err = remaining(before.ID()); err != nil {
		return nil, err
	}
	if v.Success, err = remaining(successID); err != nil {
		return nil, err
	}
	v.Success += float64(successRuns)
	if v.Caught, err = remaining(caughtID); err != nil {
		return nil, err
	}

	v.BreakEven = math.NaN()
	if gain := v.Success - v.Caught; gain > 0 {
		v.BreakEven = (v.NoAttempt - v.Caught) / gain
	}
	return v, nil
}
