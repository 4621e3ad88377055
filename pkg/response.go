package egeria

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Response is a successful reply from an Egeria platform
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

// Decode unmarshals the whole response body into v
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", r.URL, err)
	}
	return nil
}

// Text returns the body as a string (the token endpoint replies with plain text)
func (r *Response) Text() string {
	return string(r.Body)
}

// Field returns a top level field of the JSON envelope
func (r *Response) Field(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// GUID returns the "guid" field of the envelope
func (r *Response) GUID() string {
	return r.Field("guid").String()
}

// MermaidGraph returns the "mermaidGraph" field of the envelope, falling
// back to the one attached to the returned element.
func (r *Response) MermaidGraph() string {
	if g := r.Field("mermaidGraph"); g.Exists() {
		return g.String()
	}
	return r.Field("element.mermaidGraph").String()
}

// Element decodes the "element" field. It returns (nil, nil) when the server
// sent none.
func (r *Response) Element() (*Element, error) {
	raw := r.Field("element")
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, nil
	}
	var el Element
	if err := json.Unmarshal([]byte(raw.Raw), &el); err != nil {
		return nil, fmt.Errorf("failed to decode element from %s: %w", r.URL, err)
	}
	return &el, nil
}

// Elements decodes "elementList" (or "relationshipList" for relationship
// queries) into a slice. An absent list yields an empty slice.
func (r *Response) Elements() ([]Element, error) {
	for _, key := range []string{"elementList", "relationshipList", "elements"} {
		raw := r.Field(key)
		if !raw.Exists() || raw.Type == gjson.Null {
			continue
		}
		var list []Element
		if err := json.Unmarshal([]byte(raw.Raw), &list); err != nil {
			return nil, fmt.Errorf("failed to decode %s from %s: %w", key, r.URL, err)
		}
		return list, nil
	}
	return []Element{}, nil
}

// Strings decodes a list of strings held in field key
func (r *Response) Strings(key string) []string {
	var out []string
	for _, v := range r.Field(key).Array() {
		out = append(out, v.String())
	}
	return out
}

// Map decodes the object held in field key. It returns (nil, nil) when the
// field is absent.
func (r *Response) Map(key string) (map[string]any, error) {
	raw := r.Field(key)
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw.Raw), &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s from %s: %w", key, r.URL, err)
	}
	return out, nil
}
