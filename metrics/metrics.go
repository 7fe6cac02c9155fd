// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package metrics provides Prometheus metrics for URL rule compilation and
// matching.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jongio/browsers-core/urlrule"
)

// Namespace prefixes every metric name.
const Namespace = "browsers"

// Kinds label what a pattern or match belongs to.
const (
	KindRule    = "rule"
	KindProfile = "profile"
)

// Registry holds every collector in this package.
var Registry = prometheus.NewRegistry()

var (
	compileTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rule_compile_total",
			Help:      "Total number of URL patterns compiled",
		},
		[]string{"kind", "result"},
	)

	matchTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "match_total",
			Help:      "Total number of URL evaluations",
		},
		[]string{"kind", "result"},
	)

	matchErrors = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "match_errors_total",
			Help:      "Total number of URLs that could not be evaluated",
		},
		[]string{"kind", "error_type"},
	)
)

// RecordCompile records the outcome of compiling one pattern.
func RecordCompile(kind string, err error) {
	result := "success"
	if err != nil {
		result = ErrorType(err)
	}
	compileTotal.WithLabelValues(kind, result).Inc()
}

// RecordMatch records the outcome of evaluating one URL.
func RecordMatch(kind string, matched bool, err error) {
	switch {
	case err != nil:
		matchTotal.WithLabelValues(kind, "error").Inc()
		matchErrors.WithLabelValues(kind, ErrorType(err)).Inc()
	case matched:
		matchTotal.WithLabelValues(kind, "matched").Inc()
	default:
		matchTotal.WithLabelValues(kind, "unmatched").Inc()
	}
}

// ErrorType categorizes urlrule errors for metric labels.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, urlrule.ErrMalformedPattern):
		return "malformed_pattern"
	case errors.Is(err, urlrule.ErrInvalidGlob):
		return "invalid_glob"
	case errors.Is(err, urlrule.ErrMissingHost):
		return "missing_host"
	case errors.Is(err, urlrule.ErrInvalidURL):
		return "invalid_url"
	default:
		return "unknown"
	}
}

// Handler returns an HTTP handler exposing Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Reset clears all recorded values.
func Reset() {
	compileTotal.Reset()
	matchTotal.Reset()
	matchErrors.Reset()
}
