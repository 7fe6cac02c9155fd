// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jongio/browsers-core/cliout"
	"github.com/jongio/browsers-core/metrics"
)

type metricSample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
}

func gatherMetrics() ([]metricSample, error) {
	families, err := metrics.Registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var samples []metricSample
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			s := metricSample{Name: fam.GetName(), Value: m.GetCounter().GetValue()}
			if len(m.GetLabel()) > 0 {
				s.Labels = make(map[string]string, len(m.GetLabel()))
				for _, l := range m.GetLabel() {
					s.Labels[l.GetName()] = l.GetValue()
				}
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}

func printMetrics() error {
	samples, err := gatherMetrics()
	if err != nil {
		return err
	}

	return cliout.Print(samples, func() {
		cliout.Header("Metrics")
		rows := make([]cliout.TableRow, 0, len(samples))
		for _, s := range samples {
			rows = append(rows, cliout.TableRow{
				"METRIC": s.Name,
				"LABELS": formatLabels(s.Labels),
				"VALUE":  strconv.FormatFloat(s.Value, 'f', -1, 64),
			})
		}
		cliout.Table([]string{"METRIC", "LABELS", "VALUE"}, rows)
	})
}

func formatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+labels[k])
	}
	return strings.Join(pairs, ",")
}
