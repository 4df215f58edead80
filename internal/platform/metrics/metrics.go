// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry at package init via promauto,
// so importing the package is enough to expose them.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// # HTTP

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nolfolio_http_requests_total",
			Help: "Total number of HTTP requests by route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nolfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// # Domain

var (
	CatalogFilterActive = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nolfolio_catalog_filter_active_count",
			Help:    "Number of active facet selections per catalog request",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		},
	)

	CatalogFilterResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nolfolio_catalog_filter_results",
			Help:    "Number of videos returned by a filtered catalog request",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)

	LayoutsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nolfolio_layouts_generated_total",
			Help: "Total number of generated layouts by kind",
		},
		[]string{"kind"}, // "messy", "wide", "scatter"
	)

	ScatterFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nolfolio_scatter_fallback_placements_total",
			Help: "Scatter slots placed at an anchor zone after the random search gave up",
		},
	)

	ScatterRerolls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nolfolio_scatter_rerolls_total",
			Help: "Scatter slot content swaps pushed to live sessions",
		},
	)

	ScatterSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nolfolio_scatter_sessions_active",
			Help: "Current number of live scatter websocket sessions",
		},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nolfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"outcome"}, // "sent", "duplicate", "invalid", "relay_failed"
	)
)

// ObserveHTTPRequest records one finished request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
