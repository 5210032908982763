// sim/state.go
package sim

import "fmt"

const (
	// Innings is the number of innings in a game.
	Innings = 9
	// OutsPerInning ends a half-inning.
	OutsPerInning = 3
	// statesPerInning covers 8 base configurations × 3 out counts.
	statesPerInning = 24

	// NumActiveStates is the number of non-terminal game states.
	NumActiveStates = Innings * statesPerInning
	// NumStates includes the absorbing state.
	NumStates = NumActiveStates + 1
	// AbsorbingState is three outs in the ninth inning. Once reached, the
	// game never leaves it.
	AbsorbingState StateID = NumActiveStates
	// StartState is nobody on, nobody out, first inning.
	StartState StateID = 0
)

// StateID is the dense index of a game state in [0, NumStates).
type StateID int

// Valid reports whether id names one of the NumStates game states.
func (id StateID) Valid() bool {
	return id >= 0 && int(id) < NumStates
}

// State is the decoded form of a StateID. It is a plain value; two States
// with the same fields are the same game state.
type State struct {
	First  bool // runner on first
	Second bool // runner on second
	Third  bool // runner on third
	Outs   int  // 0..2, or 3 only in the terminal state
	Inning int  // 1..9
}

// terminal is the decoded absorbing state.
var terminal = State{Outs: OutsPerInning, Inning: Innings}

// Decode maps an id to its game state. Id 216 is special-cased: it decodes
// to three outs in the ninth with the bases empty.
func Decode(id StateID) (State, error) {
	if !id.Valid() {
		return State{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidStateID, id, NumStates-1)
	}
	if id == AbsorbingState {
		return terminal, nil
	}
	n := int(id)
	return State{
		First:  n&1 == 1,
		Second: n&2 == 2,
		Third:  n&4 == 4,
		Outs:   (n % statesPerInning) / 8,
		Inning: n/statesPerInning + 1,
	}, nil
}

// mustDecode is Decode for ids produced by the engine itself.
func mustDecode(id StateID) State {
	s, err := Decode(id)
	if err != nil {
		panic(err)
	}
	return s
}

// ID encodes s with first + 2*second + 4*third + 8*outs + 24*(inning-1).
// The terminal tuple and the "first out of the tenth" tuple both land on
// AbsorbingState.
func (s State) ID() StateID {
	return StateID(b2i(s.First) + 2*b2i(s.Second) + 4*b2i(s.Third) + 8*s.Outs + statesPerInning*(s.Inning-1))
}

// Valid reports whether s is a well-formed game state: an active state
// (0..2 outs, innings 1..9) or the terminal state.
func (s State) Valid() bool {
	if s == terminal {
		return true
	}
	return s.Outs >= 0 && s.Outs < OutsPerInning && s.Inning >= 1 && s.Inning <= Innings
}

// Terminal reports whether s is the absorbing state.
func (s State) Terminal() bool {
	return s == terminal
}

// Runners returns the number of runners on base.
func (s State) Runners() int {
	return b2i(s.First) + b2i(s.Second) + b2i(s.Third)
}

func (s State) String() string {
	if s.Terminal() {
		return "final"
	}
	bases := []byte("---")
	if s.First {
		bases[0] = '1'
	}
	if s.Second {
		bases[1] = '2'
	}
	if s.Third {
		bases[2] = '3'
	}
	return fmt.Sprintf("inning %d, %d out, bases %s", s.Inning, s.Outs, bases)
}

// Outcome is the result of a plate appearance.
type Outcome int

const (
	Walk Outcome = iota // walk, intentional walk or hit by pitch
	Single
	Double
	Triple
	HomeRun
	Out

	// NumOutcomes is the number of distinct plate-appearance outcomes.
	NumOutcomes = 6
)

var outcomeNames = [NumOutcomes]string{"walk", "single", "double", "triple", "home_run", "out"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= NumOutcomes {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Advance applies o to s and returns the next state and the runs scored on
// the play. The terminal state absorbs every outcome.
func (s State) Advance(o Outcome) (StateID, int) {
	if s.Terminal() {
		return AbsorbingState, 0
	}
	switch o {
	case Walk:
		return s.walk()
	case Single:
		return s.single()
	case Double:
		return s.double()
	case Triple:
		return s.triple()
	case HomeRun:
		return s.homeRun()
	case Out:
		return s.out()
	}
	panic(fmt.Sprintf("sim: unknown outcome %d", int(o)))
}

// walk forces runners only as far as needed to free first base.
func (s State) walk() (StateID, int) {
	next := s
	next.First = true
	if !s.First {
		return next.ID(), 0
	}
	next.Second = true
	if !s.Second {
		return next.ID(), 0
	}
	next.Third = true
	if !s.Third {
		return next.ID(), 0
	}
	return next.ID(), 1
}

// single puts the batter on first and moves the runner from first to
// second. Runners on second and third score.
func (s State) single() (StateID, int) {
	next := State{First: true, Second: s.First, Outs: s.Outs, Inning: s.Inning}
	return next.ID(), b2i(s.Second) + b2i(s.Third)
}

// double puts the batter on second and the runner from first on third.
// Runners on second and third score.
func (s State) double() (StateID, int) {
	next := State{Second: true, Third: s.First, Outs: s.Outs, Inning: s.Inning}
	return next.ID(), b2i(s.Second) + b2i(s.Third)
}

func (s State) triple() (StateID, int) {
	next := State{Third: true, Outs: s.Outs, Inning: s.Inning}
	return next.ID(), s.Runners()
}

func (s State) homeRun() (StateID, int) {
	next := State{Outs: s.Outs, Inning: s.Inning}
	return next.ID(), 1 + s.Runners()
}

func (s State) out() (StateID, int) {
	return s.recordOut(s), 0
}

// recordOut charges an out to the half-inning in s, keeping the runners in
// bases. The third out clears the bases and starts the next inning; after the
// ninth that is the absorbing state.
func (s State) recordOut(bases State) StateID {
	if s.Outs == OutsPerInning-1 {
		if s.Inning == Innings {
			return AbsorbingState
		}
		return State{Inning: s.Inning + 1}.ID()
	}
	return State{First: bases.First, Second: bases.Second, Third: bases.Third, Outs: s.Outs + 1, Inning: s.Inning}.ID()
}

// Base identifies a base a runner can occupy.
type Base int

const (
	FirstBase Base = iota + 1
	SecondBase
	ThirdBase
)

// ParseBase accepts "first", "second", "third" or "1", "2", "3".
func ParseBase(name string) (Base, error) {
	switch name {
	case "first", "1":
		return FirstBase, nil
	case "second", "2":
		return SecondBase, nil
	case "third", "3":
		return ThirdBase, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBase, name)
}

func (b Base) String() string {
	switch b {
	case FirstBase:
		return "first"
	case SecondBase:
		return "second"
	case ThirdBase:
		return "third"
	}
	return fmt.Sprintf("base(%d)", int(b))
}

func (s State) occupied(b Base) (bool, error) {
	switch b {
	case FirstBase:
		return s.First, nil
	case SecondBase:
		return s.Second, nil
	case ThirdBase:
		return s.Third, nil
	}
	return false, fmt.Errorf("%w: %d", ErrInvalidBase, int(b))
}

func (s *State) set(b Base, v bool) {
	switch b {
	case FirstBase:
		s.First = v
	case SecondBase:
		s.Second = v
	case ThirdBase:
		s.Third = v
	}
}

// StealSucceeds moves the runner on b up one base. A steal of home scores
// one run. The target base must be empty.
func (s State) StealSucceeds(b Base) (StateID, int, error) {
	if err := s.checkRunner(b); err != nil {
		return 0, 0, err
	}
	next := s
	next.set(b, false)
	if b == ThirdBase {
		return next.ID(), 1, nil
	}
	if taken, _ := s.occupied(b + 1); taken {
		return 0, 0, fmt.Errorf("%w: %s is occupied", ErrInvalidBase, b+1)
	}
	next.set(b+1, true)
	return next.ID(), 0, nil
}

// CaughtStealing removes the runner on b and records an out.
func (s State) CaughtStealing(b Base) (StateID, error) {
	if err := s.checkRunner(b); err != nil {
		return 0, err
	}
	bases := s
	bases.set(b, false)
	return s.recordOut(bases), nil
}

func (s State) checkRunner(b Base) error {
	if s.Terminal() || !s.Valid() {
		return fmt.Errorf("%w: steal from %v", ErrInvalidStateID, s)
	}
	on, err := s.occupied(b)
	if err != nil {
		return err
	}
	if !on {
		return fmt.Errorf("%w: %s", ErrNoRunner, b)
	}
	return nil
}

// transition is one entry of the outcome lookup table.
type transition struct {
	next StateID
	runs int
}

// outcomeTable holds Advance for every active state and outcome. It is
// filled once; transition families read it instead of decoding states.
var outcomeTable = func() (t [NumActiveStates][NumOutcomes]transition) {
	for id := StateID(0); id < AbsorbingState; id++ {
		s := mustDecode(id)
		for o := Outcome(0); o < NumOutcomes; o++ {
			next, runs := s.Advance(o)
			t[id][o] = transition{next: next, runs: runs}
		}
	}
	return t
}()

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
