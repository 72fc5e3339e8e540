package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema renders the JSON schema for the config file format. The
// config schema command prints it so editors can validate
// picodino.yaml.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Config{})
	schema.Title = "picodino configuration"
	schema.Description = "Tuning for the dino runner: screen geometry, tick cadence, jump physics, obstacles, scoring and presentation."
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
