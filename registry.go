package shear

import (
	"fmt"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry is a manually maintained FieldSource keyed by type name.
//
// Types are looked up by their qualified name (reflect.Type.String(), e.g.
// "driver.AsyncDriver") first and their bare name ("AsyncDriver") second.
// Registries are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string][]FieldDescriptor
}

// registryDocument is the YAML layout accepted by ParseRegistry and Load.
//
//	types:
//	  - name: AsyncDriver
//	    fields:
//	      - name: Timeout
//	        marked: true
//	      - name: Label
type registryDocument struct {
	Types []registryEntry `yaml:"types"`
}

type registryEntry struct {
	Name   string            `yaml:"name"`
	Fields []FieldDescriptor `yaml:"fields"`
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string][]FieldDescriptor)}
}

// ParseRegistry builds a registry from YAML data.
func ParseRegistry(data []byte) (*Registry, error) {
	r := NewRegistry()
	if err := r.Load(data); err != nil {
		return nil, err
	}
	return r, nil
}

// Load merges YAML data into the registry. Entries replace any existing
// registration for the same type. Nothing is merged if any entry is invalid.
func (r *Registry) Load(data []byte) error {
	var doc registryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return newRegistryError("", err)
	}

	for i, entry := range doc.Types {
		if entry.Name == "" {
			return newRegistryError("", fmt.Errorf("entry %d has no name", i))
		}
		if err := validateFields(entry.Fields); err != nil {
			return newRegistryError(entry.Name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range doc.Types {
		r.types[entry.Name] = append([]FieldDescriptor(nil), entry.Fields...)
	}
	return nil
}

// Register records the declared fields of a type, replacing any previous
// registration. Returns the registry for chaining.
func (r *Registry) Register(typeName string, fields ...FieldDescriptor) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[typeName] = append([]FieldDescriptor(nil), fields...)
	return r
}

// Lookup returns a copy of the fields registered for typeName.
func (r *Registry) Lookup(typeName string) ([]FieldDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields, ok := r.types[typeName]
	if !ok {
		return nil, false
	}
	return append([]FieldDescriptor(nil), fields...), true
}

// Fields implements FieldSource.
func (r *Registry) Fields(typ reflect.Type) ([]FieldDescriptor, error) {
	if typ == nil {
		return nil, newSourceError(ErrUnknownType, "<nil>")
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if fields, ok := r.Lookup(typ.String()); ok {
		return fields, nil
	}
	if fields, ok := r.Lookup(typ.Name()); ok {
		return fields, nil
	}
	return nil, newSourceError(ErrUnknownType, typ.String())
}

// Reset removes every registration.
// This is primarily useful for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = make(map[string][]FieldDescriptor)
}

// validateFields rejects unnamed and duplicate fields.
func validateFields(fields []FieldDescriptor) error {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("field %d has no name", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %s", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
