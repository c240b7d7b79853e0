// Package view runs the per-screen pipeline: one fetch per activation, a
// Loading/Ready/Failed lifecycle, and an independent detail selection.
package view

import (
	"github.com/albapepper/octofit-dashboard/internal/record"
)

// Phase is the lifecycle variant a view is in.
type Phase string

const (
	// Loading is entered on every activation and retry.
	Loading Phase = "loading"
	// Ready holds the normalized records of the last attempt.
	Ready Phase = "ready"
	// Failed holds the message of the last attempt's error.
	Failed Phase = "failed"
)

func (p Phase) String() string {
	return string(p)
}

// IsSettled reports whether the attempt that produced p has completed.
func (p Phase) IsSettled() bool {
	return p == Ready || p == Failed
}

// State is a snapshot of a view. Records is set only when Phase is Ready and
// Message only when Phase is Failed.
type State struct {
	Phase   Phase           `json:"phase"`
	Records []record.Record `json:"records,omitempty"`
	Message string          `json:"message,omitempty"`
}

func loadingState() State {
	return State{Phase: Loading}
}

func readyState(records []record.Record) State {
	if records == nil {
		records = []record.Record{}
	}
	return State{Phase: Ready, Records: records}
}

func failedState(err error) State {
	return State{Phase: Failed, Message: err.Error()}
}

// copy returns a snapshot whose Records slice is not shared with the view.
func (s State) copy() State {
	if s.Records != nil {
		s.Records = append([]record.Record(nil), s.Records...)
	}
	return s
}
