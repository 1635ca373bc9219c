// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holomush/propsheet/internal/property"
	"github.com/holomush/propsheet/internal/resource"
)

// NewTypesCmd creates the types subcommand.
func NewTypesCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List content types and the property sheets they declare",
		Long: `Lists every content type in the manifest with its declared property
sheets and whether it satisfies the "propertied" view predicate.
Use --match with a glob such as "doc.*" to filter types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runTypes(cmd, e, pattern)
		},
	}

	cmd.Flags().StringVar(&pattern, "match", "", "glob pattern selecting content types")
	return cmd
}

func runTypes(cmd *cobra.Command, e *env, pattern string) error {
	names := e.types.Types()
	if pattern != "" {
		var err error
		if names, err = e.types.Match(pattern); err != nil {
			return err
		}
	}

	req := e.request()
	out := cmd.OutOrStdout()
	for _, name := range names {
		ct, _ := e.types.Lookup(name)
		sheetNames := make([]string, 0, len(ct.PropertySheets()))
		for _, decl := range ct.PropertySheets() {
			sheetNames = append(sheetNames, decl.Name)
		}
		propertied := property.IsPropertied(resource.New(name), req)
		if _, err := fmt.Fprintf(out, "%s\tpropertied=%t\tsheets=%s\n", name, propertied, strings.Join(sheetNames, ",")); err != nil {
			return err
		}
	}
	return nil
}
