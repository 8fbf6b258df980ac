package msg

import (
	"github.com/Iron-Ham/tripplan/internal/submit"
)

// SubmittedMsg is sent when a submission has finished. Err is only set when
// the controller refused to start (errors.ErrBusy); every other failure is
// already folded into State as submit.Failed.
type SubmittedMsg struct {
	State submit.State
	Err   error
}

// EndpointLoadedMsg carries the endpoint restored at startup.
type EndpointLoadedMsg struct {
	Endpoint string
}
