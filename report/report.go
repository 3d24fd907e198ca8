/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders validation failures for log annotations and the
// step summary.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"chainguard.dev/commitcheck/event"
	"chainguard.dev/commitcheck/validator"
)

// maxMessageRunes bounds the commit message text quoted in reports.
const maxMessageRunes = 72

// Truncate reduces a commit message to its subject line, capped at
// maxMessageRunes.
func Truncate(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	runes := []rune(msg)
	if len(runes) <= maxMessageRunes {
		return msg
	}
	return string(runes[:maxMessageRunes]) + "..."
}

// shortID abbreviates a commit identifier the way git log does.
func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

// Failure renders the log line for a single failed commit.
func Failure(c event.Commit, expected string) string {
	return fmt.Sprintf("commit %s: %q does not match the expected format: %s",
		c.ID, Truncate(c.Message), expected)
}

// Summary renders the markdown step summary for a failed run: a count
// line, the expected format, and one table row per commit with its
// pass/fail status. Commits the run never evaluated (after the stop point
// of the first-failure policy) are marked skipped rather than guessed at.
func Summary(commits []event.Commit, res validator.Result, expected string) string {
	var sb strings.Builder
	sb.WriteString("## Commit message check\n\n")
	sb.WriteString(fmt.Sprintf("%d of %d commit message(s) do not match the expected format.\n\n",
		len(res.Failed), res.Total))
	sb.WriteString(fmt.Sprintf("Expected format: `%s`\n\n", expected))

	failed := make(map[string]bool, len(res.Failed))
	for _, c := range res.Failed {
		failed[c.ID] = true
	}

	var buf bytes.Buffer
	table := newSummaryTable(&buf)
	for i, c := range commits {
		status := "✅ Valid"
		switch {
		case failed[c.ID]:
			status = "❌ Invalid"
		case i >= res.Checked:
			status = "Skipped"
		}
		_ = table.Append([]string{shortID(c.ID), Truncate(c.Message), status})
	}
	_ = table.Render()
	sb.Write(buf.Bytes())

	return sb.String()
}
