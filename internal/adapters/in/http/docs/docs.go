// Package docs registers the OpenAPI document served under /swagger.
package docs

import (
	"encoding/json"

	"tracking/internal/generated/servers"

	"github.com/swaggo/swag"
)

// Document hands the embedded OpenAPI document to swag.
type Document struct{}

// ReadDoc renders the document as JSON, or an empty object when it cannot be loaded.
func (Document) ReadDoc() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(swagger)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, Document{})
}
