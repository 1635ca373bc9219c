// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/holomush/propsheet/internal/config"
	"github.com/holomush/propsheet/internal/content"
	"github.com/holomush/propsheet/internal/logging"
	"github.com/holomush/propsheet/internal/observability"
	"github.com/holomush/propsheet/internal/property"
	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/pkg/errutil"
)

const serviceName = "propsheet"

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the propsheet CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propsheet",
		Short: "Inspect content types and their property sheets",
		Long: `propsheet loads a content types manifest and lets operators inspect
which property sheets each type declares, validate manifests, and try
sheet writes against a scratch resource.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default $XDG_CONFIG_HOME/propsheet/config.yaml)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewTypesCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewSheetsCmd())

	return cmd
}

// env is the wiring shared by commands that work on a loaded manifest.
type env struct {
	cfg      config.Config
	types    *content.Registry
	registry *registry.Registry
}

// request returns a request bound to the environment's registry.
func (e *env) request() *registry.Request {
	return registry.NewRequest(e.registry, e.cfg.Subject)
}

// loadEnv reads configuration, installs the logger, loads the manifest and
// wires the registries together.
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(config.ResolvePath(configFile), cmd.Flags())
	if err != nil {
		return nil, err
	}
	logging.SetDefault(cfg.LoggingOptions(serviceName, version), cmd.ErrOrStderr())

	manifest, err := content.LoadManifest(cfg.Manifest)
	if err != nil {
		errutil.LogError(cmd.Context(), nil, "load manifest failed", err)
		return nil, err
	}

	types := content.NewRegistry()
	if err := manifest.Install(types); err != nil {
		errutil.LogError(cmd.Context(), nil, "install manifest failed", err)
		return nil, err
	}

	reg := registry.New()
	reg.SetContent(types)
	reg.SetMetrics(observability.NewMetrics(prometheus.NewRegistry()))
	if err := property.Include(reg); err != nil {
		return nil, err
	}

	return &env{cfg: cfg, types: types, registry: reg}, nil
}
