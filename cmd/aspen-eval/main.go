// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

// Command aspen-eval evaluates a policy document against a request
// document and prints the resulting decision, exiting 0 for Allow and 1
// otherwise. It is the only process-level surface over the aspen
// library — the library itself stays exit-code-free.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aspen-iam/aspen"
	"github.com/aspen-iam/aspen/audit"
	"github.com/aspen-iam/aspen/internal/logging"
	"github.com/aspen-iam/aspen/metrics"
	"github.com/aspen-iam/aspen/schema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var policyPath string
	var requestPath string
	var validate bool
	var logFormat string

	cmd := &cobra.Command{
		Use:   "aspen-eval",
		Short: "Evaluate an Aspen access policy document against a request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if policyPath != "" {
				cfg.PolicyPath = policyPath
			}
			if requestPath != "" {
				cfg.RequestPath = requestPath
			}
			if validate {
				cfg.Validate = true
			}
			if logFormat != "text" {
				cfg.LogFormat = logFormat
			}

			logging.SetDefault("aspen-eval", "dev", cfg.LogFormat)
			return runEvaluate(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	cmd.Flags().StringVar(&policyPath, "policy", "", "path to the policy JSON document")
	cmd.Flags().StringVar(&requestPath, "request", "", "path to the request JSON document")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the policy document's JSON shape before evaluating")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

func runEvaluate(cmd *cobra.Command, cfg *cliConfig) error {
	if cfg.PolicyPath == "" || cfg.RequestPath == "" {
		return fmt.Errorf("aspen-eval: --policy and --request are required")
	}

	policyData, err := os.ReadFile(cfg.PolicyPath)
	if err != nil {
		return fmt.Errorf("aspen-eval: read policy: %w", err)
	}

	if cfg.Validate {
		if err := schema.Validate(policyData); err != nil {
			return fmt.Errorf("aspen-eval: policy schema validation failed: %w", err)
		}
	}

	policy, err := aspen.ParsePolicy(policyData)
	if err != nil {
		return fmt.Errorf("aspen-eval: parse policy: %w", err)
	}

	requestData, err := os.ReadFile(cfg.RequestPath)
	if err != nil {
		return fmt.Errorf("aspen-eval: read request: %w", err)
	}

	var wire requestWire
	if err := json.Unmarshal(requestData, &wire); err != nil {
		return fmt.Errorf("aspen-eval: parse request: %w", err)
	}
	req, err := wire.toRequest()
	if err != nil {
		return fmt.Errorf("aspen-eval: build request: %w", err)
	}

	start := time.Now()
	decision, err := metrics.Evaluate(policy, req)
	if err != nil {
		return fmt.Errorf("aspen-eval: evaluate: %w", err)
	}
	audit.Record(context.Background(), audit.NopWriter{}, audit.Entry{
		Service:   req.Service,
		Action:    req.Action,
		Decision:  decision,
		Duration:  time.Since(start),
		Timestamp: start,
	})

	cmd.Println(decision.String())
	if !decision.IsAllowed() {
		os.Exit(1)
	}
	return nil
}
