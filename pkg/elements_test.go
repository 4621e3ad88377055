package egeria

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const termJSON = `{
	"elementHeader": {
		"class": "ElementHeader",
		"guid": "term-1",
		"status": "ACTIVE",
		"type": {"typeName": "GlossaryTerm", "superTypeNames": ["Referenceable"]},
		"versions": {"createdBy": "erinoverview", "version": 3},
		"classifications": [{"classificationName": "Anchors", "classificationProperties": {"anchorGUID": "glossary-1"}}]
	},
	"properties": {"qualifiedName": "GlossaryTerm::Sustainability", "displayName": "Sustainability", "usage": 7},
	"relatedElement": {"relationshipHeader": {"guid": "rel-1"}},
	"mermaidGraph": "flowchart TD"
}`

func TestElement_UnmarshalKeepsUnmodelledFields(t *testing.T) {
	var el Element
	require.NoError(t, json.Unmarshal([]byte(termJSON), &el))

	assert.Equal(t, "term-1", el.GUID())
	assert.Equal(t, "GlossaryTerm", el.TypeName())
	assert.Equal(t, "ACTIVE", el.Header.Status)
	assert.Equal(t, []string{"Referenceable"}, el.Header.Type.SuperTypeNames)
	assert.Equal(t, "flowchart TD", el.MermaidGraph)
	require.NotNil(t, el.Header.Versions)
	assert.Equal(t, int64(3), el.Header.Versions.Version)

	require.Contains(t, el.Extra, "relatedElement")
	assert.NotContains(t, el.Extra, "elementHeader")
	assert.NotContains(t, el.Extra, "properties")

	var related struct {
		RelationshipHeader struct {
			GUID string `json:"guid"`
		} `json:"relationshipHeader"`
	}
	require.NoError(t, el.Decode("relatedElement", &related))
	assert.Equal(t, "rel-1", related.RelationshipHeader.GUID)
	assert.Error(t, el.Decode("missing", &related))

	anchors, ok := el.Classification("Anchors")
	require.True(t, ok)
	assert.Equal(t, "glossary-1", anchors.ClassificationProperties["anchorGUID"])
	_, ok = el.Classification("Memento")
	assert.False(t, ok)
}

func TestElement_MarshalRoundTripKeepsExtra(t *testing.T) {
	var el Element
	require.NoError(t, json.Unmarshal([]byte(termJSON), &el))

	data, err := json.Marshal(el)
	require.NoError(t, err)

	var again Element
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, el.Header, again.Header)
	assert.Equal(t, el.Properties, again.Properties)
	assert.Equal(t, el.MermaidGraph, again.MermaidGraph)
	require.Contains(t, again.Extra, "relatedElement")
	assert.JSONEq(t, string(el.Extra["relatedElement"]), string(again.Extra["relatedElement"]))
}

func TestElement_Properties(t *testing.T) {
	el := Element{Properties: map[string]any{"usage": float64(7), "qualifiedName": "Term::x"}}
	assert.Equal(t, "7", el.StringProperty("usage"))
	assert.Equal(t, "", el.StringProperty("missing"))
	assert.Nil(t, Element{}.Property("anything"))
	assert.Equal(t, "Term::x", el.QualifiedName())
}

func TestElement_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		props    map[string]any
		expected string
	}{
		{name: "display name", props: map[string]any{"displayName": "Glossary", "name": "n"}, expected: "Glossary"},
		{name: "name", props: map[string]any{"name": "To do", "title": "t"}, expected: "To do"},
		{name: "title", props: map[string]any{"title": "Data policy"}, expected: "Data policy"},
		{name: "identifier", props: map[string]any{"identifier": "PRJ-1"}, expected: "PRJ-1"},
		{name: "user id", props: map[string]any{"userId": "erinoverview"}, expected: "erinoverview"},
		{name: "qualified name", props: map[string]any{"qualifiedName": "Collection::x"}, expected: "Collection::x"},
		{name: "nothing", props: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Element{Properties: tt.props}.DisplayName())
		})
	}
}

func TestResponse_Envelope(t *testing.T) {
	resp := &Response{Body: []byte(`{
		"class": "ElementsResponse",
		"relatedHTTPCode": 200,
		"guid": "g1",
		"elementList": [` + termJSON + `],
		"serverList": ["a", "b"],
		"element": {"elementHeader": {"guid": "single", "type": {"typeName": "Project"}}},
		"omagserverConfig": {"localServerName": "qs-view-server"}
	}`)}

	assert.Equal(t, "g1", resp.GUID())
	assert.Equal(t, []string{"a", "b"}, resp.Strings("serverList"))
	assert.Nil(t, resp.Strings("missing"))

	elements, err := resp.Elements()
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "term-1", elements[0].GUID())

	el, err := resp.Element()
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Equal(t, "single", el.GUID())

	cfg, err := resp.Map("omagserverConfig")
	require.NoError(t, err)
	assert.Equal(t, "qs-view-server", cfg["localServerName"])

	missing, err := resp.Map("absent")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestResponse_EmptyEnvelope(t *testing.T) {
	resp := &Response{Body: []byte(`{"class":"ElementsResponse","relatedHTTPCode":200,"element":null}`)}

	el, err := resp.Element()
	require.NoError(t, err)
	assert.Nil(t, el)

	elements, err := resp.Elements()
	require.NoError(t, err)
	assert.NotNil(t, elements)
	assert.Empty(t, elements)

	assert.Equal(t, "", resp.MermaidGraph())
}

func TestResponse_MermaidGraph(t *testing.T) {
	top := &Response{Body: []byte(`{"mermaidGraph":"flowchart LR"}`)}
	assert.Equal(t, "flowchart LR", top.MermaidGraph())

	nested := &Response{Body: []byte(`{"element":{"mermaidGraph":"flowchart TD"}}`)}
	assert.Equal(t, "flowchart TD", nested.MermaidGraph())
}

const membershipListJSON = `{
	"class": "RelatedMetadataElementsListResponse",
	"relatedHTTPCode": 200,
	"relationshipList": [{
		"relationshipHeader": {
			"class": "ElementHeader",
			"guid": "rel-1",
			"status": "ACTIVE",
			"type": {"typeName": "CollectionMembership"}
		},
		"relationshipProperties": {"membershipRationale": "curated", "confidence": 90},
		"end1": {"guid": "collection-1", "type": {"typeName": "Collection"}},
		"end2": {"guid": "term-1", "type": {"typeName": "GlossaryTerm"}}
	}]
}`

func TestResponse_RelationshipList(t *testing.T) {
	resp := &Response{Body: []byte(membershipListJSON)}
	relationships, err := resp.Elements()
	require.NoError(t, err)
	require.Len(t, relationships, 1)

	rel := relationships[0]
	assert.True(t, rel.Relationship)
	assert.Equal(t, "rel-1", rel.GUID())
	assert.Equal(t, "CollectionMembership", rel.TypeName())
	assert.Equal(t, "ACTIVE", rel.Header.Status)
	assert.Equal(t, "curated", rel.StringProperty("membershipRationale"))
	assert.NotContains(t, rel.Extra, "relationshipHeader")
	assert.NotContains(t, rel.Extra, "relationshipProperties")

	var end2 struct {
		GUID string `json:"guid"`
	}
	require.NoError(t, rel.Decode("end2", &end2))
	assert.Equal(t, "term-1", end2.GUID)

	dicts := ToDicts(relationships, nil)
	require.Len(t, dicts, 1)
	assert.Equal(t, "rel-1", dicts[0]["guid"])
	assert.Equal(t, "CollectionMembership", dicts[0]["typeName"])
	assert.Equal(t, "curated", dicts[0]["membershipRationale"])

	table, err := Render(relationships, FormatTable, nil)
	require.NoError(t, err)
	assert.Contains(t, table, "rel-1")

	data, err := json.Marshal(rel)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"relationshipHeader": {"class": "ElementHeader", "guid": "rel-1", "status": "ACTIVE", "type": {"typeName": "CollectionMembership"}},
		"relationshipProperties": {"membershipRationale": "curated", "confidence": 90},
		"end1": {"guid": "collection-1", "type": {"typeName": "Collection"}},
		"end2": {"guid": "term-1", "type": {"typeName": "GlossaryTerm"}}
	}`, string(data))
}

func TestResponse_RelationshipListWithElementHeader(t *testing.T) {
	resp := &Response{Body: []byte(`{"relationshipList":[{"elementHeader":{"guid":"r1","type":{"typeName":"DataFlow"}}}]}`)}
	elements, err := resp.Elements()
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "DataFlow", elements[0].TypeName())
	assert.False(t, elements[0].Relationship)
}
