/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"strings"
	"testing"

	"chainguard.dev/commitcheck/event"
	"chainguard.dev/commitcheck/validator"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "short message unchanged",
		in:   "feat: add parser",
		want: "feat: add parser",
	}, {
		name: "subject line only",
		in:   "feat: add parser\n\nlong body with details",
		want: "feat: add parser",
	}, {
		name: "long subject capped",
		in:   strings.Repeat("x", 100),
		want: strings.Repeat("x", 72) + "...",
	}, {
		name: "exactly at the cap",
		in:   strings.Repeat("y", 72),
		want: strings.Repeat("y", 72),
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in); got != tt.want {
				t.Errorf("Truncate(): got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailure(t *testing.T) {
	line := Failure(event.Commit{ID: "def456", Message: "bad commit"}, "type: description")

	for _, want := range []string{"def456", "bad commit", "type: description"} {
		if !strings.Contains(line, want) {
			t.Errorf("Failure() = %q, missing %q", line, want)
		}
	}
}

func TestSummary(t *testing.T) {
	commits := []event.Commit{
		{ID: "abc123789abcdef", Message: "feat: add parser"},
		{ID: "def456789abcdef", Message: "bad commit"},
		{ID: "0123456789abcdef", Message: "also bad"},
	}
	res := validator.Result{
		Valid:   false,
		Failed:  []event.Commit{commits[1], commits[2]},
		Checked: 3,
		Total:   3,
	}

	md := Summary(commits, res, "conventional commit subject")

	for _, want := range []string{
		"## Commit message check",
		"2 of 3 commit message(s)",
		"conventional commit subject",
		"| Commit", // markdown table header
		"| Status",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Summary() missing %q in:\n%s", want, md)
		}
	}

	// One row per commit, passing ones included, with a status cell.
	for _, row := range []struct{ id, status string }{
		{"abc1237", "✅ Valid"},
		{"def4567", "❌ Invalid"},
		{"0123456", "❌ Invalid"},
	} {
		line := tableRow(t, md, row.id)
		if !strings.Contains(line, row.status) {
			t.Errorf("row for %s: got %q, want status %q", row.id, line, row.status)
		}
	}
}

func TestSummarySkippedAfterStop(t *testing.T) {
	commits := []event.Commit{
		{ID: "a1", Message: "feat: ok"},
		{ID: "b2", Message: "bad"},
		{ID: "c3", Message: "never evaluated"},
	}
	res := validator.Result{
		Valid:   false,
		Failed:  []event.Commit{commits[1]},
		Checked: 2, // first-failure policy stopped here
		Total:   3,
	}

	md := Summary(commits, res, "type: description")

	if line := tableRow(t, md, "a1"); !strings.Contains(line, "✅ Valid") {
		t.Errorf("row for a1: got %q, want valid status", line)
	}
	if line := tableRow(t, md, "b2"); !strings.Contains(line, "❌ Invalid") {
		t.Errorf("row for b2: got %q, want invalid status", line)
	}
	if line := tableRow(t, md, "c3"); !strings.Contains(line, "Skipped") {
		t.Errorf("row for c3: got %q, want skipped status", line)
	}
}

// tableRow returns the markdown table line containing id.
func tableRow(t *testing.T, md, id string) string {
	t.Helper()
	for _, line := range strings.Split(md, "\n") {
		if strings.Contains(line, id) {
			return line
		}
	}
	t.Fatalf("no table row for %s in:\n%s", id, md)
	return ""
}
