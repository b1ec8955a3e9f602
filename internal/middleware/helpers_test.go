package middleware

import (
	"encoding/json"
	"io"
)

func decodeBody(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
