package sim

import "errors"

var (
	// ErrInvalidStateID is returned when a state id falls outside [0, NumStates).
	ErrInvalidStateID = errors.New("invalid state id")

	// ErrMalformedProfile is returned for batter statistics that cannot form
	// a probability distribution (PA <= 0, negative counts, counts above PA).
	ErrMalformedProfile = errors.New("malformed batter profile")

	// ErrLineupSize is returned when a lineup does not hold exactly LineupSize batters.
	ErrLineupSize = errors.New("lineup must have exactly 9 batters")

	// ErrNonConvergence marks a chain that hit MaxIterations before the
	// absorbing state reached AbsorptionThreshold. The partial Result is
	// still returned.
	ErrNonConvergence = errors.New("chain did not converge")

	ErrInvalidBatterIndex = errors.New("batter index out of range")
	ErrInvalidBase        = errors.New("invalid base")
	ErrNoRunner           = errors.New("no runner on base")
	ErrInvalidDirection   = errors.New("invalid search direction")
)
