package teal

import (
	"sort"

	"gopkg.in/yaml.v3"

	"tealc/errors"
	"tealc/protocol/scope"
	"tealc/protocol/types"
)

// Schema maps the fields of a state store to their types.
type Schema map[string]types.Primitive

// UnmarshalYAML decodes a mapping of field names to type names.
// Integer fields are written uint64 or int, byte fields bytes
// or byteslice.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Schema, len(raw))
	for name, typ := range raw {
		switch typ {
		case "uint64", "int":
			out[name] = types.UInt64
		case "bytes", "byteslice":
			out[name] = types.Byteslice
		default:
			return errors.WithData(
				errors.WithDetailf(ErrSchemaType, "field %s has type %q", name, typ),
				"field", name, "type", typ,
			)
		}
	}
	*s = out
	return nil
}

// MarshalYAML encodes the schema as a mapping of field names
// to type names.
func (s Schema) MarshalYAML() (interface{}, error) {
	raw := make(map[string]string, len(s))
	for name, t := range s {
		switch t {
		case types.UInt64:
			raw[name] = "uint64"
		case types.Byteslice:
			raw[name] = "bytes"
		default:
			return nil, errors.WithDetailf(ErrSchemaType, "field %s has type %s", name, t)
		}
	}
	return raw, nil
}

// Fields returns the field names in sorted order.
func (s Schema) Fields() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scope returns the schema as a type scope.
func (s Schema) scope() *scope.Scope[string, types.Type] {
	m := make(map[string]types.Type, len(s))
	for name, t := range s {
		m[name] = t
	}
	return scope.FromMap[string, types.Type](nil, m)
}

// Schemas is the state layout of a contract.
type Schemas struct {
	Global Schema `yaml:"global"`
	Local  Schema `yaml:"local"`
}

// ParseSchemas decodes a YAML document with global and local
// schema mappings.
func ParseSchemas(data []byte) (Schemas, error) {
	var s Schemas
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schemas{}, errors.Wrap(err, "parsing schemas")
	}
	return s, nil
}
