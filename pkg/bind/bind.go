// Package bind decodes an HTTP request body into a struct.
// JSON and urlencoded form bodies are both accepted; form fields are matched
// against the struct's json tag names.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/gorilla/schema"

	"github.com/shashiranjanraj/dinein/config"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}

// Decode fills dest from r's body without validating it. The body is capped
// at MAX_BODY_BYTES.
func Decode(r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return bodyError(err)
		}
		for key, values := range r.PostForm {
			for i := range values {
				values[i] = strings.TrimSpace(values[i])
			}
			r.PostForm[key] = values
		}
		if err := formDecoder.Decode(dest, r.PostForm); err != nil {
			return bodyError(err)
		}
		return nil
	default:
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return bodyError(err)
		}
		return nil
	}
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
	}
	return fmt.Errorf("invalid request body: %w", err)
}
