/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

// Option is a functional option for configuring a Validator.
type Option func(*Validator) error

// WithCheckAll controls whether every non-matching commit is reported.
// When false (the default) validation stops at the first failure.
func WithCheckAll(all bool) Option {
	return func(v *Validator) error {
		v.checkAll = all
		return nil
	}
}

// WithCaseSensitive controls whether matching distinguishes letter case.
// Matching is case-sensitive by default.
func WithCaseSensitive(sensitive bool) Option {
	return func(v *Validator) error {
		v.caseSensitive = sensitive
		return nil
	}
}
