package pdfassistant

// SessionState identifies where a session is in its lifecycle.
type SessionState int

const (
	// StateEmpty means no context is held; questions get the fixed
	// not-ready answer.
	StateEmpty SessionState = iota

	// StateIngesting means an ingestion run is in flight.
	StateIngesting

	// StateReady means a context is held and questions can be answered.
	StateReady
)

// String returns the state's name.
func (s SessionState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateIngesting:
		return "ingesting"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
