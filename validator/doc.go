/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks commit messages against a configurable pattern.
//
// A Validator is a pure function of its configuration and input: it holds a
// compiled pattern and a check policy, and reports which commits fail to
// match. Reporting and environment access live elsewhere, so validation
// itself stays trivially testable.
//
//	v, err := validator.New(validator.DefaultPattern,
//		validator.WithCheckAll(true),
//	)
//	if err != nil { ... }
//	res := v.Validate(commits)
//
// Matching is anchored to the start of the message, and case-insensitive
// matching (WithCaseSensitive(false)) is applied as the regex engine's
// (?i) mode rather than by normalizing the message, so capture groups and
// literal tokens never drift apart.
package validator
