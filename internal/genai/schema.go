package genai

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// generateSchema reflects T into a structured-output schema the OpenAI
// API accepts: no references, no additional properties, every property
// required.
func generateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	requireAllProperties(m)
	return m
}

func requireAllProperties(schema map[string]interface{}) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]interface{}); ok {
			var required []string
			for name := range props {
				required = append(required, name)
			}
			if len(required) > 0 {
				schema["required"] = required
			}
			for _, p := range props {
				if pm, ok := p.(map[string]interface{}); ok {
					requireAllProperties(pm)
				}
			}
		}
	}
	if items, ok := schema["items"].(map[string]interface{}); ok {
		requireAllProperties(items)
	}
}
