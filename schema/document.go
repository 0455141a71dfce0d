package schema

import (
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadDocuments reads one or more YAML schema documents, each holding a
// sequence of operator records, and flattens them into a single record list
// in input order. Unrecognized fields on a record are ignored; the scalar
// shorthands for variants and dispatch are both accepted.
func LoadDocuments(paths ...string) ([]FunctionSpec, error) {
	var specs []FunctionSpec
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var raw []map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for i, record := range raw {
			spec, err := DecodeSpec(record)
			if err != nil {
				return nil, fmt.Errorf("%s: record %d: %w", path, i, err)
			}
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

// DecodeSpec decodes one loosely structured record into a FunctionSpec.
// Every recognized field is enumerated on FunctionSpec; anything else in
// the record is dropped silently.
func DecodeSpec(record map[string]any) (FunctionSpec, error) {
	var spec FunctionSpec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &spec,
		TagName:    "json",
		DecodeHook: scalarShorthandHook,
	})
	if err != nil {
		return FunctionSpec{}, err
	}
	if err := dec.Decode(record); err != nil {
		return FunctionSpec{}, err
	}
	if spec.Func == "" {
		return FunctionSpec{}, fmt.Errorf("record has no func field")
	}
	return spec, nil
}

// scalarShorthandHook expands "variants: function, method" and
// "dispatch: impl_name" into their structured forms.
func scalarShorthandHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	switch to {
	case reflect.TypeOf([]string(nil)):
		return splitTopLevel(s), nil
	case reflect.TypeOf(DispatchTable(nil)):
		return DispatchTable{"": s}, nil
	}
	return data, nil
}
