// Package docs embeds the OpenAPI document served under /swagger.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed swagger.json
var swaggerJSON []byte

// JSON returns a copy of the embedded document.
func JSON() []byte {
	out := make([]byte, len(swaggerJSON))
	copy(out, swaggerJSON)
	return out
}

// Handler serves the document as application/json.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(swaggerJSON)
	})
}
