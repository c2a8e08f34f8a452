package operations

// State is the pipeline controller state
type State string

const (
	StateIdle   State = "idle"
	StateLoaded State = "loaded"
)

// String returns the state name
func (s State) String() string {
	return string(s)
}

// CanGenerate reports whether Generate is allowed in this state
func (s State) CanGenerate() bool {
	return s == StateLoaded
}
