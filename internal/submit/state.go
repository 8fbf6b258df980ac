// Package submit owns the submission lifecycle of one planning form.
//
// The form is always in exactly one State. Transitions are computed by the
// pure Reduce function; Controller wires Reduce to the endpoint store and the
// planning client and guarantees that Busy is left on every path, including a
// panic in a collaborator.
//
//	Idle ──Started──▶ Busy ──Resolved(PlanResult)──▶ Success
//	                       ──Resolved(NeedsInfo)───▶ NeedsInfo
//	                       ──Errored──────────────▶ Failed
//
// Success, NeedsInfo and Failed accept Started again.
package submit

import (
	"github.com/Iron-Ham/tripplan/internal/trip"
)

// Kind names a State.
type Kind int

const (
	KindIdle Kind = iota
	KindBusy
	KindSuccess
	KindNeedsInfo
	KindFailed
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindBusy:
		return "busy"
	case KindSuccess:
		return "success"
	case KindNeedsInfo:
		return "needs_info"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether k ends a submission.
func (k Kind) Terminal() bool {
	return k == KindSuccess || k == KindNeedsInfo || k == KindFailed
}

// State is one of Idle, Busy, Success, NeedsInfo or Failed.
type State interface {
	Kind() Kind
	isState()
}

// Idle is the state before the first submission.
type Idle struct{}

// Busy means a request is outstanding.
type Busy struct{}

// Success holds a generated plan.
type Success struct {
	Result trip.PlanResult
}

// NeedsInfo holds the service's request for more input.
type NeedsInfo struct {
	Info trip.NeedsInfo
}

// Failed holds a human-readable failure. Message may be empty.
type Failed struct {
	Message string
}

func (Idle) Kind() Kind      { return KindIdle }
func (Busy) Kind() Kind      { return KindBusy }
func (Success) Kind() Kind   { return KindSuccess }
func (NeedsInfo) Kind() Kind { return KindNeedsInfo }
func (Failed) Kind() Kind    { return KindFailed }

func (Idle) isState()      {}
func (Busy) isState()      {}
func (Success) isState()   {}
func (NeedsInfo) isState() {}
func (Failed) isState()    {}
