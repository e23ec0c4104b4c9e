package imports

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/csvmap"
)

// mappingSchemaJSON pins what a role->column mapping may look like on the
// wire: known roles only, phone required, no blank column names.
const mappingSchemaJSON = `{
  "type": "object",
  "properties": {
    "phone":       {"type": "string", "minLength": 1},
    "name":        {"type": "string", "minLength": 1},
    "email":       {"type": "string", "minLength": 1},
    "company":     {"type": "string", "minLength": 1},
    "external_id": {"type": "string", "minLength": 1}
  },
  "required": ["phone"],
  "additionalProperties": false
}`

var mappingSchema = jsonschema.MustCompileString("mapping.json", mappingSchemaJSON)

// ValidateMapping checks the wire mapping against the schema and types it
// for the importer.
func ValidateMapping(raw map[string]string) (map[csvmap.Role]string, error) {
	doc := make(map[string]any, len(raw))
	for k, v := range raw {
		doc[k] = v
	}
	if err := mappingSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMapping, err)
	}
	out := make(map[csvmap.Role]string, len(raw))
	for k, v := range raw {
		out[csvmap.Role(k)] = v
	}
	return out, nil
}
