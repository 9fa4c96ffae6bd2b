package narrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedResponse is returned when the backend's reply cannot be parsed
// into the turn contract after code-fence stripping and schema validation.
var ErrMalformedResponse = fmt.Errorf("malformed narrator response")

// turnSchema validates the four-key turn contract before decoding. Choices is
// pinned at exactly three entries so downstream formatting never indexes out
// of range.
const turnSchema = `{
	"type": "object",
	"required": ["narrative", "choices", "image_prompt", "new_inventory"],
	"properties": {
		"narrative": {"type": "string"},
		"choices": {"type": "array", "items": {"type": "string"}, "minItems": 3, "maxItems": 3},
		"image_prompt": {"type": "string"},
		"new_inventory": {"type": "array", "items": {"type": "string"}}
	}
}`

var turnSchemaLoader = gojsonschema.NewStringLoader(turnSchema)

// ParseTurn converts a raw backend reply into a validated Turn. Surrounding
// markdown code fences are stripped first; backends routinely wrap the JSON
// object in a fenced block despite being asked not to.
func ParseTurn(raw string) (*Turn, error) {
	clean := StripCodeFences(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	result, err := gojsonschema.Validate(turnSchemaLoader, gojsonschema.NewStringLoader(clean))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(details, "; "))
	}

	var turn Turn
	if err := json.Unmarshal([]byte(clean), &turn); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if turn.NewInventory == nil {
		turn.NewInventory = []string{}
	}
	return &turn, nil
}

// StripCodeFences removes a surrounding markdown code fence (with or without a
// language tag) from the reply, returning the trimmed inner text.
func StripCodeFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```json")
		clean = strings.TrimPrefix(clean, "```")
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	}
	return strings.TrimSpace(clean)
}
