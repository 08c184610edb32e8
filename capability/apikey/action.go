package apikey

// KeyAction tells the caller what to do with a validated key.
type KeyAction int

const (
	// ActionNone means the key needs no follow-up. OnProvided never returns it
	// alongside a nil error.
	ActionNone KeyAction = iota

	// ActionStore means the key must be persisted against the provider.
	ActionStore
)

// String makes KeyAction satisfy the fmt.Stringer interface.
func (a KeyAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStore:
		return "store"
	default:
		return "unknown"
	}
}
