// Package export orchestrates the CX conversion pipelines and exposes
// them through a small named registry (the CLI selects an exporter by
// name, e.g. "graphml").
package export

import (
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/graphkit/cxport/config"
	"github.com/graphkit/cxport/errors"
)

// Exporter consumes a CX document from r and writes the converted
// output to w. One call is one self-contained conversion: no state
// survives between calls, so concurrent calls on separate instances
// need no locking.
type Exporter interface {
	Export(r io.Reader, w io.Writer) error
}

// Factory constructs a configured exporter
type Factory func(cfg config.ExportConfig, log *zap.SugaredLogger) Exporter

var registry = map[string]Factory{
	"graphml": func(cfg config.ExportConfig, log *zap.SugaredLogger) Exporter {
		return NewGraphML(cfg, log)
	},
}

// Lookup returns the factory registered under name
func Lookup(name string) (Factory, error) {
	factory, ok := registry[name]
	if !ok {
		err := errors.Wrapf(errors.ErrUnknownExporter, "%q", name)
		return nil, errors.WithHintf(err, "available exporters: %v", Names())
	}
	return factory, nil
}

// Names returns the registered exporter names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
