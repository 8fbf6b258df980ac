package submit

import (
	"github.com/Iron-Ham/tripplan/internal/trip"
)

// Event drives a State transition.
type Event interface {
	isEvent()
}

// Started is emitted when the operator submits the form.
type Started struct{}

// Resolved carries a decoded service response.
type Resolved struct {
	Response trip.Response
}

// Errored carries any failure: transport, HTTP status, malformed body or an
// internal fault.
type Errored struct {
	Err error
}

func (Started) isEvent()  {}
func (Resolved) isEvent() {}
func (Errored) isEvent()  {}

// Reduce returns the state that follows s after e. Events that make no sense
// in s leave it unchanged: a second Started while Busy, or an outcome arriving
// when nothing is outstanding.
func Reduce(s State, e Event) State {
	if s == nil {
		s = Idle{}
	}
	busy := s.Kind() == KindBusy

	switch ev := e.(type) {
	case Started:
		if busy {
			return s
		}
		return Busy{}
	case Resolved:
		if !busy {
			return s
		}
		switch r := ev.Response.(type) {
		case trip.NeedsInfo:
			return NeedsInfo{Info: r}
		case trip.PlanResult:
			return Success{Result: r}
		default:
			return Failed{Message: "unrecognized response"}
		}
	case Errored:
		if !busy {
			return s
		}
		if ev.Err == nil {
			return Failed{}
		}
		return Failed{Message: ev.Err.Error()}
	default:
		return s
	}
}
