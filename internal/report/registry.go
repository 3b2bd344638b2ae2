// Package report renders department-level reports from timesheet records.
//
// Each report kind is registered at init time with [Register]. [Generate]
// looks the kind up and renders the whole report before writing anything,
// so an unknown kind or a render failure leaves the writer untouched.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/JonMunkholm/timesheet/internal/core"
	"github.com/cockroachdb/errors"
)

// Kind identifies a report layout.
type Kind string

// RenderFunc writes a report for the merged records.
type RenderFunc func(w io.Writer, records []core.Record) error

// Definition contains everything needed to render one report kind.
type Definition struct {
	Kind        Kind
	Description string
	Render      RenderFunc
}

var (
	registry   = make(map[Kind]Definition)
	registryMu sync.RWMutex
)

// Register adds a report definition to the registry.
// Panics if a report with the same kind is already registered.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Kind]; exists {
		panic(fmt.Sprintf("report already registered: %s", def.Kind))
	}
	registry[def.Kind] = def
}

// Get returns a report definition by kind.
// Returns false if not found.
func Get(kind Kind) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[kind]
	return def, ok
}

// All returns every registered definition sorted by kind.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Kind < result[j].Kind })
	return result
}

// Kinds returns the registered kinds as strings, sorted.
func Kinds() []string {
	defs := All()
	kinds := make([]string, len(defs))
	for i, def := range defs {
		kinds[i] = string(def.Kind)
	}
	return kinds
}

// Generate renders the report of the given kind to w.
// Nothing is written unless rendering succeeds.
func Generate(w io.Writer, kind Kind, records []core.Record) error {
	def, ok := Get(kind)
	if !ok {
		return &UnsupportedReportError{Kind: kind, Supported: Kinds()}
	}

	var buf bytes.Buffer
	if err := def.Render(&buf, records); err != nil {
		return errors.Wrapf(err, "render %s", kind)
	}
	_, err := buf.WriteTo(w)
	return err
}
