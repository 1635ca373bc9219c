// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/holomush/propsheet/internal/content"
	"github.com/holomush/propsheet/pkg/errutil"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a content types manifest",
		Long: `Validates a content types manifest against the manifest JSON Schema
and checks version syntax and name uniqueness.
Exits with code 0 on success, non-zero on failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, path string) error {
	m, err := content.LoadManifest(path)
	if err != nil {
		errutil.LogError(cmd.Context(), slog.Default(), "manifest validation failed", err)
		return fmt.Errorf("invalid manifest %s: %s", path, content.FormatSchemaError(err))
	}

	sheets := 0
	for _, tm := range m.Types {
		sheets += len(tm.PropertySheets)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (version %s, %d types, %d property sheets)\n",
		path, m.Version, len(m.Types), sheets)
	return err
}
