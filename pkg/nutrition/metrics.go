package nutrition

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	unresolvedIngredients = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_nutrition_unresolved_ingredients_total",
			Help: "Total number of ingredients skipped during nutrition calculation",
		},
		[]string{"reason"},
	)

	catalogWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_nutrition_catalog_warnings_total",
			Help: "Total number of catalog entries or portions dropped while loading",
		},
	)
)

const (
	reasonMissing = "missing"
	reasonPartial = "partial"
)
