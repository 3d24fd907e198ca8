/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package actions

import "github.com/sethvargo/go-githubactions"

// Reporter is the capability set the checker needs from the surrounding CI
// system: step outputs, log annotations, a step summary, and a failure
// signal. Keeping it an interface keeps the pipeline a pure function of
// (config, commits) under test.
type Reporter interface {
	// SetOutput publishes a step output for downstream steps.
	SetOutput(name, value string)

	// SetFailed records a failure message; the process exits non-zero
	// after the run completes.
	SetFailed(message string)

	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)

	// AddStepSummary appends markdown to the job's step summary.
	AddStepSummary(md string)
}

// GitHub reports through GitHub Actions workflow commands and the
// GITHUB_OUTPUT / GITHUB_STEP_SUMMARY file protocols.
type GitHub struct {
	action *githubactions.Action
}

var _ Reporter = (*GitHub)(nil)

// NewGitHub returns a Reporter backed by the GitHub Actions environment.
// Options are forwarded to githubactions.New, which tests use to redirect
// the command stream and environment.
func NewGitHub(opts ...githubactions.Option) *GitHub {
	return &GitHub{action: githubactions.New(opts...)}
}

func (g *GitHub) SetOutput(name, value string) { g.action.SetOutput(name, value) }

// SetFailed emits an error annotation. Unlike Action.Fatalf it does not
// exit the process, so outputs written before the failure still reach the
// runner; the non-zero exit happens in main via the checker's error.
func (g *GitHub) SetFailed(message string) { g.action.Errorf("%s", message) }

func (g *GitHub) Info(format string, args ...any)    { g.action.Infof(format, args...) }
func (g *GitHub) Warning(format string, args ...any) { g.action.Warningf(format, args...) }
func (g *GitHub) Error(format string, args ...any)   { g.action.Errorf(format, args...) }
func (g *GitHub) AddStepSummary(md string)           { g.action.AddStepSummary(md) }
