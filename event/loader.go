/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package event extracts commit records from GitHub event payloads.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-github/v84/github"
)

// Commit is a single commit record carried by an event payload.
// Immutable once read.
type Commit struct {
	// ID is the commit's opaque identifier, typically the full SHA.
	ID string `json:"id"`

	// Message is the full commit message as recorded in the payload.
	Message string `json:"message"`
}

// LoadError reports an unreadable or malformed event payload. A payload
// problem is fatal for the run; there is no partial result.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading event payload %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Commits reads the event payload at path and returns the commits carried
// by the named event, preserving payload order. Only push events carry a
// commit list; any other event name, an absent commits field, or an empty
// array yields an empty slice with no error. The payload must be valid
// JSON regardless of event name.
func Commits(eventName, path string) ([]Commit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if eventName != "push" {
		if !json.Valid(data) {
			return nil, &LoadError{Path: path, Err: errors.New("invalid JSON")}
		}
		return nil, nil
	}

	var evt github.PushEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	commits := make([]Commit, 0, len(evt.Commits))
	for _, hc := range evt.Commits {
		commits = append(commits, Commit{
			ID:      hc.GetID(),
			Message: hc.GetMessage(),
		})
	}
	return commits, nil
}
