/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the commit message pattern check GitHub Action:
// it reads the triggering event's commits, validates each message against
// the configured pattern, and reports the result through step outputs and
// workflow commands.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"chainguard.dev/commitcheck/actions"
	"chainguard.dev/commitcheck/checker"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg actions.Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	reporter := actions.NewGitHub()
	if err := checker.New(cfg, reporter).Run(ctx); err != nil {
		clog.FatalContextf(ctx, "commit check failed: %v", err)
	}
}
