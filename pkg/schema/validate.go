package schema

import "sort"

// Schema is a map of prop keys to their expected types.
type Schema map[string]Type

// Validate checks if data conforms to the schema.
// Errors of nested objects are flattened into dotted keys. Keys absent from the
// schema are ignored.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		return nil
	}

	var errs []error
	for _, fieldName := range sortedKeys(schema) {
		value, exists := data[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
			})
			continue
		}
		errs = append(errs, check(fieldName, schema[fieldName], value)...)
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func check(key string, typ Type, value any) []error {
	err := typ.Validate(value)
	if err == nil {
		return nil
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		return []error{&ValidationError{Key: key, Reason: err.Error(), Value: value}}
	}

	out := make([]error, 0, len(aggr.Errors))
	for _, n := range aggr.Errors {
		if ve, ok := n.(*ValidationError); ok {
			out = append(out, &ValidationError{Key: key + "." + ve.Key, Reason: ve.Reason, Value: ve.Value})
			continue
		}
		out = append(out, n)
	}
	return out
}

func sortedKeys(s Schema) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
