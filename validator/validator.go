/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"regexp"
	"strings"

	"chainguard.dev/commitcheck/event"
)

// ConventionalTypes lists the commit types accepted by DefaultPattern.
var ConventionalTypes = []string{
	"feat", "fix", "docs", "style", "refactor",
	"test", "chore", "build", "ci", "perf", "revert",
}

// DefaultPattern matches Conventional Commits subjects like
// "feat: add parser" or "fix(auth): handle expired tokens".
var DefaultPattern = `^(` + strings.Join(ConventionalTypes, "|") + `)(\(.+\))?: .+`

// Validator holds a compiled pattern and the check policy for a single
// validation run.
type Validator struct {
	re            *regexp.Regexp
	caseSensitive bool
	checkAll      bool
}

// Result is the outcome of a validation run. Failed preserves input order
// and is always a subset of the validated commits; with the first-failure
// policy it holds at most one element.
type Result struct {
	Valid  bool
	Failed []event.Commit

	// Checked counts the commits evaluated before the run stopped; under
	// the first-failure policy commits after the first miss are never
	// examined.
	Checked int

	Total int
}

// New compiles pattern and returns a Validator applying the given options.
// A pattern that does not compile is a configuration error.
func New(pattern string, opts ...Option) (*Validator, error) {
	v := &Validator{caseSensitive: true}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	// \A pins the match to the start of the message so a pattern without
	// its own ^ anchor cannot match mid-string.
	expr := `\A(?:` + pattern + `)`
	if !v.caseSensitive {
		expr = `(?i)` + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	v.re = re
	return v, nil
}

// Validate checks each commit message against the pattern, in input order.
// Under the check-all policy every non-matching commit is collected;
// otherwise evaluation stops at the first failure. An empty input is
// always valid.
func (v *Validator) Validate(commits []event.Commit) Result {
	res := Result{Total: len(commits)}
	for i, c := range commits {
		res.Checked = i + 1
		if v.re.MatchString(c.Message) {
			continue
		}
		res.Failed = append(res.Failed, c)
		if !v.checkAll {
			break
		}
	}
	res.Valid = len(res.Failed) == 0
	return res
}
