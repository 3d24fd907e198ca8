/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package actionstest provides a recording Reporter for tests.
package actionstest

import (
	"fmt"

	"chainguard.dev/commitcheck/actions"
)

// Recorder implements actions.Reporter by capturing everything it is
// handed, so tests can assert on outputs, messages, and failure state.
type Recorder struct {
	Outputs   map[string]string
	Messages  []string
	Summaries []string
	Failed    bool
}

var _ actions.Reporter = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{Outputs: map[string]string{}}
}

func (r *Recorder) SetOutput(name, value string) { r.Outputs[name] = value }

func (r *Recorder) SetFailed(message string) {
	r.Failed = true
	r.Messages = append(r.Messages, message)
}

func (r *Recorder) Info(format string, args ...any)    { r.record(format, args...) }
func (r *Recorder) Warning(format string, args ...any) { r.record(format, args...) }
func (r *Recorder) Error(format string, args ...any)   { r.record(format, args...) }

func (r *Recorder) AddStepSummary(md string) { r.Summaries = append(r.Summaries, md) }

func (r *Recorder) record(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}
