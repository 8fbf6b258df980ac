// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// This package contains the [tea.Msg] types produced by asynchronous work (the
// plan submission and the endpoint restore) together with the command
// factories that produce them. Keeping them apart from the model lets the form
// and its tests share one definition of each event.
package msg
