package filter

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// decodeWeak decodes a loosely typed map into out. Numbers and booleans sent
// as strings are accepted, and a lone string becomes a one-element list.
// Unknown keys are ignored here; ValidateProperties reports them.
func decodeWeak(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Squash:           true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Decode converts caller input into a Specification.
func Decode(raw map[string]any) (Specification, error) {
	var spec Specification
	if err := decodeWeak(raw, &spec); err != nil {
		return Specification{}, fmt.Errorf("decode task filter: %w", err)
	}
	return spec, nil
}
