package versionfile

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/MacroPower/appversion/pkg/verrors"
)

func newSchemaReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
}

// Schema returns the JSON schema of files written by the store.
func (s *Store) Schema() *jsonschema.Schema {
	doc := newSchemaReflector().ReflectFromType(reflect.TypeOf(Document{}))
	doc.Version = ""

	props := jsonschema.NewProperties()
	props.Set(s.namespace, doc)

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Application version file",
		Type:        "object",
		Properties:  props,
		Required:    []string{s.namespace},
		Description: "Generated by appversion. The header comment is ignored on read.",
	}
}

// SchemaJSON returns the indented JSON encoding of [Store.Schema].
func (s *Store) SchemaJSON() ([]byte, error) {
	b, err := json.MarshalIndent(s.Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrJSONMarshal, err)
	}

	return b, nil
}
