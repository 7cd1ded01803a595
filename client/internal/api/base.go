package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Endpoint paths relative to the service base URL.
const (
	SearchPath = "/api/search"
	HealthPath = "/api/health"
)

func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// decodeJSON decodes exactly one JSON value from body. Numbers are kept as
// json.Number so re-encoding reproduces them verbatim.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}
	return v, nil
}
