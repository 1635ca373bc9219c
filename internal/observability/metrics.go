// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package observability provides Prometheus metrics for property sheet activity.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the counters recorded by registries and property sheets.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	NotificationsTotal *prometheus.CounterVec
	SheetSetsTotal     *prometheus.CounterVec
}

// NewMetrics creates and registers the property sheet metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "propsheet_notifications_total",
				Help: "Total number of event notifications dispatched by event type",
			},
			[]string{"event"},
		),
		SheetSetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "propsheet_sheet_sets_total",
				Help: "Total number of property sheet writes by whether any value changed",
			},
			[]string{"changed"},
		),
	}

	reg.MustRegister(m.NotificationsTotal)
	reg.MustRegister(m.SheetSetsTotal)

	return m
}

// RecordNotification counts one dispatched event of the given type.
func (m *Metrics) RecordNotification(eventType string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(eventType).Inc()
}

// RecordSheetSet counts one property sheet write.
func (m *Metrics) RecordSheetSet(changed bool) {
	if m == nil {
		return
	}
	m.SheetSetsTotal.WithLabelValues(strconv.FormatBool(changed)).Inc()
}
