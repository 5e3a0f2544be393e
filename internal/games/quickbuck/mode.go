package quickbuck

// Mode is the top-level game mode. Only ModePlaying runs the simulation.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModePaused
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// MarshalText lets snapshots print modes by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
