package game

// Stage is a phase of a hand
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
	Showdown
)

// String returns a human-readable stage name
func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "Pre-flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	case Showdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

// Next returns the stage that follows s and how many community cards are
// dealt on entering it. ok is false at Showdown.
func (s Stage) Next() (next Stage, deal int, ok bool) {
	switch s {
	case PreFlop:
		return Flop, 3, true
	case Flop:
		return Turn, 1, true
	case Turn:
		return River, 1, true
	case River:
		return Showdown, 0, true
	default:
		return s, 0, false
	}
}
