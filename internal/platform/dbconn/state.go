package dbconn

// State describes the manager's view of the database connection.
// It mirrors the underlying driver's reported state; the driver is
// authoritative and the manager reconciles against it on every use.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateDisconnecting
	StateError
)

var stateNames = [...]string{
	"disconnected",
	"connecting",
	"connected",
	"disconnecting",
	"error",
}

// String returns the lowercase name of the state, or "unknown" for
// values outside the defined range.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
