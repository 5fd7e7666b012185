package resource

// Policy controls what happens when a new fetch starts while a previous
// one has not settled. Invocations are never cancelled; the policy only
// decides whose completion is allowed to write the resource state.
type Policy int

const (
	// LastWins lets overlapping fetches run to completion; the last one
	// to settle writes the state. This is the default and reproduces the
	// original last-write-wins behavior under rapid key changes.
	LastWins Policy = iota

	// Fenced tags each fetch with a generation counter and discards
	// completions of superseded fetches.
	Fenced

	// Serialized makes a new fetch wait until the in-flight one settles.
	Serialized
)

// String returns the string representation of the Policy.
func (p Policy) String() string {
	switch p {
	case LastWins:
		return "LastWins"
	case Fenced:
		return "Fenced"
	case Serialized:
		return "Serialized"
	default:
		return "Unknown"
	}
}
