package nutrition

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadCatalog decodes a YAML catalog (ingredient name to entry) and builds a
// Catalog. An entry that fails to decode is dropped with a warning instead of
// failing the whole load. Warnings are also logged.
func LoadCatalog(r io.Reader) (*Catalog, []Warning, error) {
	var nodes map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if stderrors.Is(err, io.EOF) {
			c, _ := NewCatalog(nil)
			return c, nil, nil
		}
		return nil, nil, cberrors.Wrap(cberrors.ErrCodeInvalidRequest, "failed to decode nutrition catalog", err)
	}

	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	slices.Sort(names)

	var warnings []Warning
	raw := make(map[string]RawEntry, len(nodes))
	for _, name := range names {
		node := nodes[name]
		var re RawEntry
		if err := node.Decode(&re); err != nil {
			warnings = append(warnings, Warning{Ingredient: name, Message: fmt.Sprintf("invalid entry: %v", err)})
			continue
		}
		raw[name] = re
	}

	c, cw := NewCatalog(raw)
	warnings = append(warnings, cw...)

	for _, w := range warnings {
		slog.Warn("nutrition catalog entry skipped", "ingredient", w.Ingredient, "reason", w.Message)
		catalogWarnings.Inc()
	}
	slog.Debug("nutrition catalog loaded", "entries", c.Len(), "warnings", len(warnings))

	return c, warnings, nil
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, cberrors.WrapWithContext(cberrors.ErrCodeNotFound, "failed to open nutrition catalog", err,
			map[string]any{"path": path})
	}
	defer f.Close()

	return LoadCatalog(f)
}
