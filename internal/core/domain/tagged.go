package domain

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// kindField is the discriminator the backend uses for every tagged variant.
const kindField = "__kind__"

func marshalTagged(kind string, payload any) ([]byte, error) {
	return json.Marshal(map[string]any{kindField: kind, kind: payload})
}

// unmarshalTagged splits a tagged variant into its kind and the raw payload
// stored under the key of the same name.
func unmarshalTagged(data []byte) (string, []byte, error) {
	if !gjson.ValidBytes(data) {
		return "", nil, fmt.Errorf("tagged variant: invalid json")
	}
	kind := gjson.GetBytes(data, kindField)
	if kind.Type != gjson.String || kind.Str == "" {
		return "", nil, fmt.Errorf("tagged variant: missing %s", kindField)
	}
	payload := gjson.GetBytes(data, gjson.Escape(kind.Str))
	if !payload.Exists() {
		return "", nil, fmt.Errorf("tagged variant: missing payload for %q", kind.Str)
	}
	return kind.Str, []byte(payload.Raw), nil
}
