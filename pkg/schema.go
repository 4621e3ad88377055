package egeria

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

// schemaBodies lists every typed request body by class
func schemaBodies() map[string]RequestBody {
	out := make(map[string]RequestBody, len(bodyTypes)+1)
	for _, b := range bodyTypes {
		out[b.BodyClass()] = b
	}
	out[ValidMetadataValue{}.BodyClass()] = ValidMetadataValue{}
	return out
}

// BodyNames returns the class names of the typed request bodies, sorted
func BodyNames() []string {
	names := make([]string, 0, len(bodyTypes)+1)
	for name := range schemaBodies() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BodySchema generates the JSON schema (Draft 2020-12) of a request body.
// The class discriminator, which the Go types inject while marshalling, is
// added as a required constant.
func BodySchema(name string) ([]byte, error) {
	body, ok := schemaBodies()[name]
	if !ok {
		return nil, invalidParameter("unknown request body %q", name)
	}

	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(body)
	schema.Title = name
	if schema.Properties != nil {
		schema.Properties.Set("class", &jsonschema.Schema{Type: "string", Const: name})
		schema.Required = append([]string{"class"}, schema.Required...)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
