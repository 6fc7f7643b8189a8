package converter

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"converter-generator/builder"
	"converter-generator/config"
	"converter-generator/internal/common"
	"converter-generator/internal/diagnostic"
	"converter-generator/internal/metrics"
	"converter-generator/internal/plan"
	"converter-generator/override"
	"converter-generator/record"
)

// Generation modes used as metric labels.
const (
	modeRegistered = "registered"
	modeLazy       = "lazy"
)

// UnstructureHook converts a value of the hooked type into generic data.
type UnstructureHook func(v any) (any, error)

// StructureHook builds a value of type t from generic data.
type StructureHook func(data any, t reflect.Type) (any, error)

// Converter caches generated functions per record type and dispatches
// every other value by its Kind. It is safe for concurrent use.
type Converter struct {
	omitIfDefault bool
	strict        bool
	log           zerolog.Logger
	metrics       *metrics.Collector
	cfg           *config.File
	ns            *record.Namespace

	mu               sync.RWMutex
	pairs            map[reflect.Type]*builder.Pair
	unstructureHooks map[reflect.Type]UnstructureHook
	structureHooks   map[reflect.Type]StructureHook
	diags            diagnostic.Diagnostics
}

var _ builder.Converter = (*Converter)(nil)

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		log:              zerolog.Nop(),
		pairs:            make(map[reflect.Type]*builder.Pair),
		unstructureHooks: make(map[reflect.Type]UnstructureHook),
		structureHooks:   make(map[reflect.Type]StructureHook),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.ns == nil {
		c.ns = record.NewNamespace()
	}

	return c
}

// Register generates and caches the functions of the record described by d,
// replacing any earlier pair of the same type. Nothing is cached on failure.
func (c *Converter) Register(d *record.Descriptor, overrides override.Set) error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrUnsupportedType)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.generate(d, overrides, modeRegistered)

	return err
}

// Register describes T with opts and registers it with c.
func Register[T any](c *Converter, overrides override.Set, opts ...record.Option) error {
	d, err := record.Of[T](opts...)
	if err != nil {
		c.metrics.RecordGenerationFailure(record.TypeName(reflect.TypeFor[T]()))
		return err
	}

	return c.Register(d, overrides)
}

// RegisterUnstructureHook makes fn handle every value of exactly type t.
func (c *Converter) RegisterUnstructureHook(t reflect.Type, fn UnstructureHook) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unstructureHooks[t] = fn
}

// RegisterStructureHook makes fn build every value of exactly type t.
func (c *Converter) RegisterStructureHook(t reflect.Type, fn StructureHook) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.structureHooks[t] = fn
}

// Pair returns the cached functions of t, if any.
func (c *Converter) Pair(t reflect.Type) (*builder.Pair, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.pairs[t]

	return p, ok
}

// Namespace returns the namespace used for forward references.
func (c *Converter) Namespace() *record.Namespace {
	return c.ns
}

// Diagnostics returns everything reported while generating functions so far.
func (c *Converter) Diagnostics() diagnostic.Diagnostics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out diagnostic.Diagnostics
	out.Merge(c.diags)

	return out
}

// pairFor returns the functions of record type t, generating them on first use.
func (c *Converter) pairFor(t reflect.Type) (*builder.Pair, error) {
	if p, ok := c.Pair(t); ok {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pairs[t]; ok {
		return p, nil
	}

	d, err := record.Describe(t)
	if err != nil {
		c.metrics.RecordGenerationFailure(record.TypeName(t))
		return nil, err
	}

	return c.generate(d, nil, modeLazy)
}

// generate builds and caches the pair of d. The caller holds the write lock.
// Builders never call back into the converter, so holding it is safe.
func (c *Converter) generate(d *record.Descriptor, overrides override.Set, mode string) (*builder.Pair, error) {
	name := d.Name()
	names := typeNames(d.Type)
	overrides = c.cfg.Overrides(names...).Merge(overrides)
	log := c.log.With().Str("type", name).Logger()

	diags := plan.Check(plan.FromDescriptor(d), overrides)
	c.diags.Merge(diags)

	for _, w := range diags.WithCode(diagnostic.CodeUnknownOverride) {
		if c.strict {
			c.metrics.RecordGenerationFailure(name)
			return nil, fmt.Errorf("%w: %s", ErrUnknownOverride, w.String())
		}

		log.Warn().Str("field", w.Field).Strs("suggestions", w.Suggestions).Msg("override matches no field")
	}

	c.define(d.Type, log)

	omit := c.cfg.OmitIfDefaultOr(c.omitIfDefault, names...)

	pair, err := builder.Build(d, c, c.ns, omit, overrides)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate converter functions")
		c.metrics.RecordGenerationFailure(name)

		return nil, err
	}

	c.pairs[d.Type] = pair
	c.metrics.RecordGenerated(name, mode)

	log.Debug().
		Str("mode", mode).
		Int("fields", len(d.Fields)).
		Bool("omit_if_default", omit).
		Int("overrides", len(overrides)).
		Msg("generated converter functions")

	return pair, nil
}

// define makes t available to forward references under every name it is known by.
func (c *Converter) define(t reflect.Type, log zerolog.Logger) {
	names := typeNames(t)
	if t.Name() != "" {
		names = append(names, t.Name())
	}

	for _, name := range names {
		if err := c.ns.Define(name, t); err != nil {
			log.Debug().Err(err).Msg("type name not defined in namespace")
		}
	}
}

// typeNames returns the package-qualified and the short-package name of t,
// e.g. "example.com/shop.Order" and "shop.Order".
func typeNames(t reflect.Type) []string {
	full := record.TypeName(t)
	if t.PkgPath() == "" {
		return []string{full}
	}

	short := common.PkgAlias(t.PkgPath()) + "." + t.Name()
	if short == full {
		return []string{full}
	}

	return []string{full, short}
}

func (c *Converter) unstructureHook(t reflect.Type) (UnstructureHook, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.unstructureHooks[t]

	return h, ok
}

func (c *Converter) structureHook(t reflect.Type) (StructureHook, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.structureHooks[t]

	return h, ok
}
