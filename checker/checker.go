/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package checker wires event loading, validation, and reporting into the
// action's single linear pipeline: load, validate, report, one shot per
// process invocation.
package checker

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/commitcheck/actions"
	"chainguard.dev/commitcheck/event"
	"chainguard.dev/commitcheck/report"
	"chainguard.dev/commitcheck/validator"
)

// ErrValidationFailed reports that one or more commit messages did not
// match the pattern and fail-on-error escalation was requested. It is a
// validation outcome, not a configuration problem.
var ErrValidationFailed = errors.New("commit message validation failed")

// Checker runs one validation pass over the triggering event's commits.
type Checker struct {
	cfg      actions.Config
	reporter actions.Reporter
}

// New returns a Checker for the given configuration and reporter.
func New(cfg actions.Config, reporter actions.Reporter) *Checker {
	return &Checker{cfg: cfg, reporter: reporter}
}

// Commits loads the commit list for the triggering event.
func (c *Checker) Commits() ([]event.Commit, error) {
	return event.Commits(c.cfg.EventName, c.cfg.EventPath)
}

// Run executes the pipeline. An unreadable payload or a pattern that does
// not compile aborts the run before any output is written. A validation
// failure always produces complete outputs and is escalated through
// SetFailed only when FailOnError is set, so downstream steps can branch
// on the `valid` output instead of the step status.
func (c *Checker) Run(ctx context.Context) error {
	commits, err := c.Commits()
	if err != nil {
		c.reporter.SetFailed(fmt.Sprintf("reading event payload: %v", err))
		return err
	}

	pattern := c.cfg.Pattern
	if pattern == "" {
		pattern = validator.DefaultPattern
	}
	v, err := validator.New(pattern,
		validator.WithCheckAll(c.cfg.CheckAllCommits),
		validator.WithCaseSensitive(c.cfg.CaseSensitive),
	)
	if err != nil {
		c.reporter.SetFailed(fmt.Sprintf("invalid pattern: %v", err))
		return err
	}

	res := v.Validate(commits)
	clog.FromContext(ctx).With("event", c.cfg.EventName).
		With("total", res.Total).
		With("failed", len(res.Failed)).
		Info("validated commit messages")

	c.reporter.SetOutput("valid", strconv.FormatBool(res.Valid))
	c.reporter.SetOutput("total-commits", strconv.Itoa(res.Total))

	if res.Valid {
		if res.Total == 0 {
			c.reporter.Info("no commits to validate")
		} else {
			c.reporter.Info("all %d commit message(s) match the expected format", res.Total)
		}
		return nil
	}

	expected := c.cfg.PatternDescription
	if expected == "" {
		expected = pattern
	}
	for _, fc := range res.Failed {
		c.reporter.Error("%s", report.Failure(fc, expected))
	}
	c.reporter.AddStepSummary(report.Summary(commits, res, expected))

	msg := c.cfg.CustomErrorMessage
	if msg == "" {
		msg = fmt.Sprintf("%d commit message(s) do not match the expected format: %s",
			len(res.Failed), expected)
	}
	if c.cfg.FailOnError {
		c.reporter.SetFailed(msg)
		return ErrValidationFailed
	}
	c.reporter.Warning("%s", msg)
	return nil
}
