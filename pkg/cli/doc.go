// Package cli implements the cookbook command-line interface.
//
// # Commands
//
// parse - Parse one recipe file:
//
//	cookbook parse [--category C] [--id ID] FILE
//
// validate - Check every recipe under a recipe directory:
//
//	cookbook validate --recipes DIR [--catalog FILE] [--omit a,b] [--fail-on-error]
//
// ingredients - List the aggregated ingredients of a recipe, cross-references expanded:
//
//	cookbook ingredients --recipes DIR --recipe SLUG [--scale N]
//
// nutrition - Compute recipe nutrition against a catalog:
//
//	cookbook nutrition --recipes DIR --recipe SLUG --catalog FILE [--omit a,b]
//
// Flags go before positional arguments.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--config       YAML or JSON file with recipes, catalog and omit defaults
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--metrics-file Write Prometheus metrics in text format on exit
//
// # Configuration
//
// Settings resolve in this order, later winning: config file, environment,
// flags. Relative paths in the config file are resolved against its directory.
//
//	recipes: ./recipes
//	catalog: ./catalog.yaml
//	omit:
//	  - Water
//	  - Salt
//
// # Environment Variables
//
//	LOG_LEVEL          Logging verbosity
//	COOKBOOK_CONFIG    Config file path
//	COOKBOOK_RECIPES   Recipe root directory
//	COOKBOOK_CATALOG   Nutrition catalog file
//	COOKBOOK_OMIT      Comma-separated ingredients to omit from nutrition
//	COOKBOOK_METRICS_FILE  Metrics output file
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, parse or validation failure)
//	2  Context canceled
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/cookbook/pkg/cli.version=1.0.0'"
package cli
