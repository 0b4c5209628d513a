package lib

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes v before touching the ResponseWriter so that an encoding
// failure can still be answered with a 500. Write errors are wrapped in
// ErrResponseStarted.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("%w: %w", ErrResponseStarted, err)
	}
	return nil
}
