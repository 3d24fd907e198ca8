/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package actions holds the GitHub Actions boundary: the typed input
// configuration and the reporting adapter. Validation logic never reads
// the environment directly; everything it needs is parsed into Config once
// at process start.
package actions

// Config captures the action's inputs (the INPUT_* convention) and the
// runner variables identifying the triggering event.
type Config struct {
	// Pattern is the regular expression a commit message must match.
	// Empty means the default Conventional Commits pattern.
	Pattern string `env:"INPUT_PATTERN"`

	// PatternDescription is free text describing the expected message
	// shape, quoted in failure messages instead of the raw pattern.
	PatternDescription string `env:"INPUT_PATTERN_DESCRIPTION"`

	// CheckAllCommits reports every offending commit instead of stopping
	// at the first failure.
	CheckAllCommits bool `env:"INPUT_CHECK_ALL_COMMITS,default=false"`

	// CaseSensitive controls whether matching distinguishes letter case.
	CaseSensitive bool `env:"INPUT_CASE_SENSITIVE,default=true"`

	// FailOnError marks the step failed when validation fails. When
	// false the step succeeds and downstream steps branch on the `valid`
	// output instead.
	FailOnError bool `env:"INPUT_FAIL_ON_ERROR,default=true"`

	// CustomErrorMessage overrides the generated failure message.
	CustomErrorMessage string `env:"INPUT_CUSTOM_ERROR_MESSAGE"`

	// EventName and EventPath identify the event payload to inspect.
	EventName string `env:"GITHUB_EVENT_NAME"`
	EventPath string `env:"GITHUB_EVENT_PATH"`
}
