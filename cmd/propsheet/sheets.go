// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/propsheet/internal/event"
	"github.com/holomush/propsheet/internal/property"
	"github.com/holomush/propsheet/internal/resource"
)

type sheetsOptions struct {
	sheet string
	set   map[string]string
	omit  []string
}

// NewSheetsCmd creates the sheets subcommand.
func NewSheetsCmd() *cobra.Command {
	opts := &sheetsOptions{}

	cmd := &cobra.Command{
		Use:   "sheets TYPE",
		Short: "Show the property sheets of a scratch resource",
		Long: `Creates an empty resource of the given content type and prints every
declared property sheet with its current values. With --sheet and --set
the values are written through that sheet first; --omit excludes fields
from the write. Modification events are reported as they are published.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runSheets(cmd, e, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "sheet to write through")
	cmd.Flags().StringToStringVar(&opts.set, "set", nil, "field=value pairs to write")
	cmd.Flags().StringSliceVar(&opts.omit, "omit", nil, "fields to leave untouched")
	return cmd
}

func runSheets(cmd *cobra.Command, e *env, typeName string, opts *sheetsOptions) error {
	if _, ok := e.types.Lookup(typeName); !ok {
		return oops.Code("CONTENT_TYPE_NOT_FOUND").With("content_type", typeName).Errorf("unknown content type %q", typeName)
	}
	if len(opts.set) > 0 && opts.sheet == "" {
		return oops.Code("SHEET_REQUIRED").Errorf("--set requires --sheet")
	}

	out := cmd.OutOrStdout()
	err := e.registry.Subscribe(event.TypeObjectModified, func(_ context.Context, ev event.Event) error {
		_, err := fmt.Fprintf(out, "event %s %s subject=%q\n", ev.Type, ev.ID, ev.Subject)
		return err
	})
	if err != nil {
		return err
	}

	res := resource.New(typeName)
	req := e.request()

	if opts.sheet != "" {
		sheet, err := property.SheetFor(res, req, opts.sheet)
		if err != nil {
			return err
		}
		values := make(property.Values, len(opts.set))
		for k, v := range opts.set {
			values[k] = v
		}
		changed, err := sheet.Set(cmd.Context(), values, opts.omit...)
		if err != nil {
			return err
		}
		slog.DebugContext(cmd.Context(), "sheet written", "sheet", opts.sheet, "changed", changed)
		if _, err := fmt.Fprintf(out, "set %s changed=%t\n", opts.sheet, changed); err != nil {
			return err
		}
	}

	sheets, err := property.SheetsFor(res, req)
	if err != nil {
		return err
	}
	domain, err := property.GetDomain(e.registry)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%s %s predicates=%v\n", typeName, res.ID(), domain.All(res, req)); err != nil {
		return err
	}
	for _, named := range sheets {
		if err := printSheet(out, named); err != nil {
			return err
		}
	}
	return nil
}

func printSheet(w io.Writer, named property.NamedSheet) error {
	if _, err := fmt.Fprintf(w, "[%s]\n", named.Name); err != nil {
		return err
	}
	vals := named.Sheet.Get()
	for _, name := range named.Sheet.Schema.Names() {
		if _, err := fmt.Fprintf(w, "  %s = %v\n", name, vals[name]); err != nil {
			return err
		}
	}
	return nil
}
