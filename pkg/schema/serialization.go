package schema

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON writes the contract as prop key → type name, e.g. {"columns":"int"}.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	names := make(map[string]string, len(s))
	for _, key := range sortedKeys(s) {
		typ := s[key]
		if typ == nil {
			return nil, fmt.Errorf("prop %s: nil type", key)
		}
		names[key] = typ.Name()
	}
	return json.Marshal(names)
}
