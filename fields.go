package shear

import (
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

// DefaultMarkerTag is the struct tag that marks a field as serialized.
const DefaultMarkerTag = "xml"

func init() {
	sentinel.Tag(DefaultMarkerTag)
}

// FieldDescriptor describes one declared field of a type.
type FieldDescriptor struct {
	Name   string `yaml:"name"`
	Marked bool   `yaml:"marked"`
}

// FieldSource enumerates the declared fields of a type in declaration order.
type FieldSource interface {
	Fields(typ reflect.Type) ([]FieldDescriptor, error)
}

// TagSource enumerates struct fields through sentinel metadata and marks
// those carrying the marker tag. Embedded fields belong to the embedded type,
// not the declaring one, and are left out.
type TagSource struct {
	tag string
}

// NewTagSource returns a TagSource that treats tag as the serialization marker.
// A field is marked when it carries the tag and the tag's name part is not "-".
func NewTagSource(tag string) *TagSource {
	sentinel.Tag(tag)
	return &TagSource{tag: tag}
}

// Fields implements FieldSource.
func (s *TagSource) Fields(typ reflect.Type) ([]FieldDescriptor, error) {
	rt, err := structType(typ)
	if err != nil {
		return nil, err
	}
	return s.describe(rt, lookupMetadata(rt)), nil
}

// describe turns sentinel field metadata for rt into descriptors.
// Tags sentinel did not record (empty values, or tags registered after the
// type was cached) are read from the struct field itself.
func (s *TagSource) describe(rt reflect.Type, meta sentinel.Metadata) []FieldDescriptor {
	fields := make([]FieldDescriptor, 0, len(meta.Fields))
	for _, field := range meta.Fields {
		if len(field.Index) != 1 {
			continue
		}
		sf := rt.Field(field.Index[0])
		if sf.Anonymous {
			continue
		}

		val, ok := field.Tags[s.tag]
		if !ok {
			val, ok = sf.Tag.Lookup(s.tag)
		}

		fields = append(fields, FieldDescriptor{
			Name:   field.Name,
			Marked: ok && markerName(val) != "-",
		})
	}
	return fields
}

// scannedSource serves a type from metadata returned by sentinel.Scan and
// defers to its TagSource for anything else.
type scannedSource struct {
	tags *TagSource
	meta sentinel.Metadata
}

// Fields implements FieldSource.
func (s *scannedSource) Fields(typ reflect.Type) ([]FieldDescriptor, error) {
	rt, err := structType(typ)
	if err != nil {
		return nil, err
	}
	if !describes(s.meta, rt) {
		return s.tags.Fields(typ)
	}
	return s.tags.describe(rt, s.meta), nil
}

// lookupMetadata returns sentinel's cached metadata for rt, or metadata
// built from the reflected struct when sentinel holds none for it.
func lookupMetadata(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.Name()); ok && describes(meta, rt) {
		return meta
	}
	return reflectMetadata(rt)
}

// describes reports whether meta was extracted from rt. Sentinel keys its
// cache by bare type name, so same-named types from other packages (or
// function-local types) can sit under rt's key.
func describes(meta sentinel.Metadata, rt reflect.Type) bool {
	if rt.Name() == "" || meta.TypeName != rt.Name() || meta.PackageName != rt.PkgPath() {
		return false
	}
	for _, field := range meta.Fields {
		if len(field.Index) == 0 || field.Index[0] >= rt.NumField() {
			return false
		}
		sf := rt.Field(field.Index[0])
		if sf.Name != field.Name || sf.Type != field.ReflectType {
			return false
		}
	}
	return true
}

// reflectMetadata mirrors sentinel's extraction: exported fields only, in
// declaration order. Tags are left for describe to read.
func reflectMetadata(rt reflect.Type) sentinel.Metadata {
	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		meta.Fields = append(meta.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		})
	}

	return meta
}

// markerName returns the name part of a tag value ("feed-rate,attr" -> "feed-rate").
func markerName(val string) string {
	name, _, _ := strings.Cut(val, ",")
	return name
}

// structType dereferences pointers and rejects anything that is not a struct.
func structType(typ reflect.Type) (reflect.Type, error) {
	if typ == nil {
		return nil, newSourceError(ErrNotStruct, "<nil>")
	}
	rt := typ
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, newSourceError(ErrNotStruct, typ.String())
	}
	return rt, nil
}

// MarkedFields returns the marked fields src reports for typ, in declared order.
// Types implementing FieldLister report their own fields and bypass src.
func MarkedFields(src FieldSource, typ reflect.Type) ([]FieldDescriptor, error) {
	all, err := fieldsOf(src, typ)
	if err != nil {
		return nil, err
	}

	marked := make([]FieldDescriptor, 0, len(all))
	for _, f := range all {
		if f.Marked {
			marked = append(marked, f)
		}
	}
	return marked, nil
}

// fieldsOf consults the FieldLister override before the source.
func fieldsOf(src FieldSource, typ reflect.Type) ([]FieldDescriptor, error) {
	if typ != nil {
		if l, ok := lister(typ); ok {
			return l.PurgeFields(), nil
		}
	}
	return src.Fields(typ)
}

// lister returns a FieldLister for typ if the type or its pointer implements one.
func lister(typ reflect.Type) (FieldLister, bool) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if l, ok := reflect.Zero(typ).Interface().(FieldLister); ok {
		return l, true
	}
	if l, ok := reflect.New(typ).Interface().(FieldLister); ok {
		return l, true
	}
	return nil, false
}
