// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package property_test

import (
	"context"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/prometheus/client_golang/prometheus"

	"github.com/holomush/propsheet/internal/content"
	"github.com/holomush/propsheet/internal/event"
	"github.com/holomush/propsheet/internal/observability"
	"github.com/holomush/propsheet/internal/property"
	"github.com/holomush/propsheet/internal/registry"
)

const manifestPath = "../../../content-types.yaml"

func TestProperty(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Property Sheet Integration Suite")
}

// testEnv wires the registries the way the CLI does, with an event sink.
type testEnv struct {
	types    *content.Registry
	registry *registry.Registry
	metrics  *observability.Metrics

	mu     sync.Mutex
	events []event.Event
}

func (e *testEnv) record(_ context.Context, ev event.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
	return nil
}

func (e *testEnv) received() []event.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]event.Event(nil), e.events...)
}

func setupTestEnv() *testEnv {
	manifest, err := content.LoadManifest(manifestPath)
	Expect(err).NotTo(HaveOccurred())

	types := content.NewRegistry()
	Expect(manifest.Install(types)).To(Succeed())

	env := &testEnv{
		types:    types,
		registry: registry.New(),
		metrics:  observability.NewMetrics(prometheus.NewRegistry()),
	}
	env.registry.SetContent(types)
	env.registry.SetMetrics(env.metrics)
	Expect(env.registry.Subscribe(event.TypeObjectModified, env.record)).To(Succeed())
	Expect(property.Include(env.registry)).To(Succeed())
	return env
}
