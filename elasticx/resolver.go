package elasticx

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/vespry/x/errorx"
)

// DocumentMapping describes where documents of one entity type live in the
// store: the target index and the document type discriminator carried in
// bulk action metadata. DocumentType may be empty for stores that dropped
// mapping types.
type DocumentMapping struct {
	Index        string
	DocumentType string
}

// MappingResolver is the document-mapping collaborator consumed by the
// context: it maps entity types to their store location and turns raw
// documents back into typed entities.
type MappingResolver interface {
	// Resolve returns the mapping for the given entity type.
	Resolve(entityType reflect.Type) (DocumentMapping, error)

	// Parse deserializes a raw document into a new entity of the given type.
	// The returned value is a pointer to the entity.
	Parse(source json.RawMessage, entityType reflect.Type) (any, error)
}

// MappingRegistry is an explicit, in-process MappingResolver. Types may be
// registered with a mapping; unregistered struct types fall back to a
// lowercased, pluralized index name derived from the type name.
type MappingRegistry struct {
	prefix   string
	mappings map[reflect.Type]DocumentMapping
}

var _ MappingResolver = (*MappingRegistry)(nil)

// NewMappingRegistry creates a registry. The prefix, when non-empty, is
// prepended to every resolved index name.
func NewMappingRegistry(prefix string) *MappingRegistry {
	return &MappingRegistry{
		prefix:   prefix,
		mappings: map[reflect.Type]DocumentMapping{},
	}
}

// Register associates the document's type with a mapping. The document value
// is only used as a type carrier; a zero value works fine.
func (r *MappingRegistry) Register(document any, mapping DocumentMapping) {
	r.mappings[indirectType(reflect.TypeOf(document))] = mapping
}

func (r *MappingRegistry) Resolve(entityType reflect.Type) (DocumentMapping, error) {
	if entityType == nil {
		return DocumentMapping{}, errorx.InvalidArgumentErrorf("cannot resolve a mapping for a nil entity type")
	}

	entityType = indirectType(entityType)

	if mapping, ok := r.mappings[entityType]; ok {
		mapping.Index = r.prefix + mapping.Index
		return mapping, nil
	}

	name := entityType.Name()
	if name == "" {
		return DocumentMapping{}, errorx.InvalidArgumentErrorf("no mapping registered for unnamed type %s", entityType.String())
	}

	return DocumentMapping{
		Index: r.prefix + strings.ToLower(name) + "s",
	}, nil
}

func (r *MappingRegistry) Parse(source json.RawMessage, entityType reflect.Type) (any, error) {
	if entityType == nil {
		return nil, errorx.InvalidArgumentErrorf("cannot parse a document for a nil entity type")
	}

	entity := reflect.New(indirectType(entityType)).Interface()
	if err := json.Unmarshal(source, entity); err != nil {
		return nil, errorx.InvalidArgumentErrorf("failed to parse document as %s: %s", entityType.String(), err)
	}

	return entity, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
