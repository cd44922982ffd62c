package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"profile-service/internal/envelope"
)

const (
	defaultPage = 0
	defaultSize = 10
)

// envelopeBody is the serialized form of a service envelope. The status
// classification becomes the HTTP status code; the body itself carries the
// payload (or null), the message and the success flag.
type envelopeBody struct {
	Data      any    `json:"data"`
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

func render(w http.ResponseWriter, env envelope.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.Status.HTTPStatus())

	json.NewEncoder(w).Encode(envelopeBody{
		Data:      env.Data,
		Message:   env.Message,
		Success:   env.Success,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// pageParams parses the page/size query parameters, falling back to the
// defaults on absent or malformed values. Page is zero-based.
func pageParams(r *http.Request) (page, size int) {
	page, size = defaultPage, defaultSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			size = v
		}
	}

	return page, size
}
