// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_recipe_parse_duration_seconds",
			Help:    "Duration of recipe source parsing in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)

	parseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_recipe_parse_errors_total",
			Help: "Total number of recipe files that failed to parse",
		},
		[]string{"code"},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_recipe_cache_lookups_total",
			Help: "Total number of parse cache lookups by result",
		},
		[]string{"result"},
	)

	recipesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cookbook_recipes_loaded",
			Help: "Number of recipes in the most recently loaded library",
		},
	)
)

func recordCacheLookup(hit bool) {
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	cacheLookups.WithLabelValues("miss").Inc()
}
