package shear

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// Purger removes the fragments of T's marked fields from serialized documents.
//
// The field plan is resolved once at construction; Purge itself never fails
// and never touches anything but its argument. Purgers are safe for
// concurrent use.
//
// Purging is plain substring surgery, not parsing. It relies on every marked
// field's element or attribute text occurring at most once in the document,
// which holds when T's fields are specific to the concrete type that was
// serialized. When that assumption is broken the first occurrence is removed,
// wherever it is.
type Purger[T any] struct {
	typeName string
	plan     []fieldPlan
}

// fieldPlan is a marked field with its precomputed document name.
type fieldPlan struct {
	name   string // declared field name, for events
	dashed string // element/attribute name searched for
}

// PurgerOption configures a Purger.
type PurgerOption func(*purgerConfig)

type purgerConfig struct {
	source FieldSource
}

// WithFieldSource replaces the default struct tag source.
func WithFieldSource(src FieldSource) PurgerOption {
	return func(c *purgerConfig) {
		c.source = src
	}
}

func newPurgerConfig(opts []PurgerOption) *purgerConfig {
	cfg := &purgerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.source == nil {
		cfg.source = NewTagSource(DefaultMarkerTag)
	}
	return cfg
}

// NewPurger resolves T's marked fields and returns a Purger for them.
// Field enumeration errors are returned unchanged.
func NewPurger[T any](opts ...PurgerOption) (*Purger[T], error) {
	typ := reflect.TypeFor[T]()
	src := newPurgerConfig(opts).source
	if tags, ok := src.(*TagSource); ok {
		if meta, err := sentinel.TryScan[T](); err == nil {
			src = &scannedSource{tags: tags, meta: meta}
		}
	}

	p, err := newPurger[T](typ, src)
	if err != nil {
		return nil, err
	}

	emitPurgerCreated(context.Background(), p.typeName, len(p.plan))
	return p, nil
}

func newPurger[T any](typ reflect.Type, src FieldSource) (*Purger[T], error) {
	fields, err := MarkedFields(src, typ)
	if err != nil {
		return nil, err
	}
	return &Purger[T]{
		typeName: typeName(typ),
		plan:     buildPlan(fields),
	}, nil
}

// buildPlan computes the dashed name of each field once.
func buildPlan(fields []FieldDescriptor) []fieldPlan {
	plan := make([]fieldPlan, 0, len(fields))
	for _, f := range fields {
		plan = append(plan, fieldPlan{name: f.Name, dashed: Dashed(f.Name)})
	}
	return plan
}

// Names returns the element/attribute names the purger searches for,
// in declared field order.
func (p *Purger[T]) Names() []string {
	names := make([]string, len(p.plan))
	for i, f := range p.plan {
		names[i] = f.dashed
	}
	return names
}

// Purge returns doc with the element and attribute fragments of every
// marked field removed.
func (p *Purger[T]) Purge(ctx context.Context, doc string) string {
	return purgeDocument(ctx, p.typeName, p.plan, doc)
}

// Purge resolves T's marked fields and purges them from doc.
func Purge[T any](ctx context.Context, doc string, opts ...PurgerOption) (string, error) {
	p, err := NewPurger[T](opts...)
	if err != nil {
		return "", err
	}
	return p.Purge(ctx, doc), nil
}

// PurgeType purges the marked fields src reports for typ from doc.
// It is the non-generic form of Purge for callers that only hold a reflect.Type.
func PurgeType(ctx context.Context, src FieldSource, typ reflect.Type, doc string) (string, error) {
	fields, err := MarkedFields(src, typ)
	if err != nil {
		return "", err
	}
	return purgeDocument(ctx, typeName(typ), buildPlan(fields), doc), nil
}

// purgeDocument applies the plan field by field. Each search runs against the
// document as left by the previous removal.
func purgeDocument(ctx context.Context, typeName string, plan []fieldPlan, doc string) string {
	start := time.Now()
	size := len(doc)
	emitPurgeStart(ctx, typeName, size)

	removed := 0
	for _, f := range plan {
		if s, ok := LocateElement(doc, f.dashed); ok {
			doc = Remove(doc, s)
			removed++
			emitFieldPurged(ctx, typeName, f.name, SyntaxElement, s.Len())
		}
		if s, ok := LocateAttribute(doc, f.dashed); ok {
			doc = Remove(doc, s)
			removed++
			emitFieldPurged(ctx, typeName, f.name, SyntaxAttribute, s.Len())
		}
	}

	emitPurgeComplete(ctx, typeName, size, len(doc), removed, time.Since(start))
	return doc
}

func typeName(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}
	return typ.String()
}
