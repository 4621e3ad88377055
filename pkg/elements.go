package egeria

import (
	"encoding/json"
	"fmt"
	"maps"
)

// ElementType names the open metadata type of an element
type ElementType struct {
	TypeID         string   `json:"typeId,omitempty"`
	TypeName       string   `json:"typeName"`
	SuperTypeNames []string `json:"superTypeNames,omitempty"`
	TypeVersion    int64    `json:"typeVersion,omitempty"`
}

// ElementOrigin describes where an element is homed
type ElementOrigin struct {
	SourceServer               string `json:"sourceServer,omitempty"`
	OriginCategory             string `json:"originCategory,omitempty"`
	HomeMetadataCollectionID   string `json:"homeMetadataCollectionId,omitempty"`
	HomeMetadataCollectionName string `json:"homeMetadataCollectionName,omitempty"`
}

// ElementVersions carries the audit fields. Times are kept as the server's
// strings since Egeria mixes ISO timestamps and epoch values across versions.
type ElementVersions struct {
	CreatedBy  string `json:"createdBy,omitempty"`
	UpdatedBy  string `json:"updatedBy,omitempty"`
	CreateTime any    `json:"createTime,omitempty"`
	UpdateTime any    `json:"updateTime,omitempty"`
	Version    int64  `json:"version,omitempty"`
}

// ElementClassification is a classification attached to an element
type ElementClassification struct {
	ClassificationName       string         `json:"classificationName"`
	ClassificationProperties map[string]any `json:"classificationProperties,omitempty"`
}

// ElementHeader identifies an element
type ElementHeader struct {
	Class           string                  `json:"class,omitempty"`
	GUID            string                  `json:"guid"`
	Type            ElementType             `json:"type"`
	Status          string                  `json:"status,omitempty"`
	Origin          *ElementOrigin          `json:"origin,omitempty"`
	Versions        *ElementVersions        `json:"versions,omitempty"`
	Classifications []ElementClassification `json:"classifications,omitempty"`
}

// Element is a metadata element as returned by a view service. Entries of a
// relationship list are decoded into the same shape: their
// relationshipHeader and relationshipProperties fill Header and Properties
// and Relationship is set. Fields the SDK does not model (relationship ends,
// related elements, anchors) are kept in Extra so nothing the server
// returned is lost.
type Element struct {
	Header       ElementHeader  `json:"elementHeader"`
	Properties   map[string]any `json:"properties,omitempty"`
	MermaidGraph string         `json:"mermaidGraph,omitempty"`
	Relationship bool           `json:"-"`

	Extra map[string]json.RawMessage `json:"-"`
}

var modelledElementKeys = []string{"elementHeader", "properties", "mermaidGraph"}

// relationshipEntry is the shape of a relationshipList item
type relationshipEntry struct {
	Header     *ElementHeader `json:"relationshipHeader"`
	Properties map[string]any `json:"relationshipProperties"`
}

func (e *Element) UnmarshalJSON(data []byte) error {
	type plain Element
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	_, hasElement := all["elementHeader"]
	for _, key := range modelledElementKeys {
		delete(all, key)
	}

	if !hasElement {
		var rel relationshipEntry
		if err := json.Unmarshal(data, &rel); err != nil {
			return err
		}
		if rel.Header != nil {
			p.Header = *rel.Header
			if p.Properties == nil {
				p.Properties = rel.Properties
			}
			p.Relationship = true
			delete(all, "relationshipHeader")
			delete(all, "relationshipProperties")
		}
	}

	if len(all) > 0 {
		p.Extra = all
	}

	*e = Element(p)
	return nil
}

func (e Element) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Extra)+3)
	for k, v := range e.Extra {
		out[k] = v
	}
	headerKey, propertiesKey := "elementHeader", "properties"
	if e.Relationship {
		headerKey, propertiesKey = "relationshipHeader", "relationshipProperties"
	}
	out[headerKey] = e.Header
	if len(e.Properties) > 0 {
		out[propertiesKey] = e.Properties
	}
	if e.MermaidGraph != "" {
		out["mermaidGraph"] = e.MermaidGraph
	}
	return json.Marshal(out)
}

// GUID returns the element's unique identifier
func (e Element) GUID() string {
	return e.Header.GUID
}

// TypeName returns the open metadata type name
func (e Element) TypeName() string {
	return e.Header.Type.TypeName
}

// Property returns a property value, or nil
func (e Element) Property(key string) any {
	if e.Properties == nil {
		return nil
	}
	return e.Properties[key]
}

// StringProperty returns a property rendered as a string, or ""
func (e Element) StringProperty(key string) string {
	v := e.Property(key)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// QualifiedName returns the qualifiedName property
func (e Element) QualifiedName() string {
	return e.StringProperty("qualifiedName")
}

// DisplayName falls back through the naming properties different element
// types use.
func (e Element) DisplayName() string {
	for _, key := range []string{"displayName", "name", "title", "identifier", "userId"} {
		if v := e.StringProperty(key); v != "" {
			return v
		}
	}
	return e.QualifiedName()
}

// Classification returns the named classification, if present
func (e Element) Classification(name string) (ElementClassification, bool) {
	for _, c := range e.Header.Classifications {
		if c.ClassificationName == name {
			return c, true
		}
	}
	return ElementClassification{}, false
}

// Decode unmarshals an unmodelled field (for example "relatedElement") into v
func (e Element) Decode(key string, v any) error {
	raw, ok := e.Extra[key]
	if !ok {
		return fmt.Errorf("element %s has no field %q", e.GUID(), key)
	}
	return json.Unmarshal(raw, v)
}

// Fields returns a copy of the unmodelled fields
func (e Element) Fields() map[string]json.RawMessage {
	return maps.Clone(e.Extra)
}
