package egeria

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRequestBodies_ClassDiscriminator(t *testing.T) {
	for _, body := range bodyTypes {
		t.Run(body.BodyClass(), func(t *testing.T) {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			assert.Equal(t, body.BodyClass(), gjson.GetBytes(data, "class").String())
		})
	}
}

func TestNewElementRequestBody_Marshal(t *testing.T) {
	body := NewElementRequestBody{
		AnchorGUID:                 "glossary-guid",
		ParentGUID:                 "folder-guid",
		ParentRelationshipTypeName: "CollectionMembership",
		ParentAtEnd1:               true,
		Properties: CollectionProperties{
			ReferenceableProperties: ReferenceableProperties{
				QualifiedName:        "Collection::Sustainability",
				AdditionalProperties: map[string]string{"owner": "erin"},
			},
			DisplayName: "Sustainability",
			Category:    "campaign",
		},
		InitialClassifications: map[string]Properties{
			"Folder": RawProperties{Class: "FolderProperties", Values: map[string]any{"orderBy": "NAME"}},
		},
	}

	data, err := encodeBody(body)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"class": "NewElementRequestBody",
		"anchorGUID": "glossary-guid",
		"isOwnAnchor": false,
		"parentGUID": "folder-guid",
		"parentRelationshipTypeName": "CollectionMembership",
		"parentAtEnd1": true,
		"properties": {
			"class": "CollectionProperties",
			"qualifiedName": "Collection::Sustainability",
			"additionalProperties": {"owner": "erin"},
			"displayName": "Sustainability",
			"category": "campaign"
		},
		"initialClassifications": {
			"Folder": {"class": "FolderProperties", "orderBy": "NAME"}
		}
	}`, string(data))
}

func TestEncodeBody(t *testing.T) {
	effective := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     any
		expected string
	}{
		{name: "nil", body: nil, expected: ""},
		{name: "raw json", body: json.RawMessage(`{"class":"Custom"}`), expected: `{"class":"Custom"}`},
		{name: "bytes", body: []byte(`{"a":1}`), expected: `{"a":1}`},
		{name: "map", body: map[string]any{"class": "ViewServiceRequestBody", "omagserverName": "s"}, expected: `{"class":"ViewServiceRequestBody","omagserverName":"s"}`},
		{
			name:     "search string",
			body:     SearchOptions{PageSize: 5, IgnoreCase: true}.body("*"),
			expected: `{"class":"SearchStringRequestBody","searchString":"","startsWith":false,"endsWith":false,"ignoreCase":true,"startFrom":0,"pageSize":5}`,
		},
		{
			name:     "effective time",
			body:     GetRequestBody{Effectivity: Effectivity{EffectiveTime: &effective, ForLineage: true}},
			expected: `{"class":"GetRequestBody","effectiveTime":"2025-03-01T12:00:00Z","forLineage":true}`,
		},
		{
			name:     "delete cascade",
			body:     DeleteElementRequestBody{CascadedDelete: true, ExternalSource: ExternalSource{ExternalSourceName: "catalog"}},
			expected: `{"class":"DeleteElementRequestBody","cascadedDelete":true,"externalSourceName":"catalog"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := encodeBody(tt.body)
			require.NoError(t, err)
			if tt.expected == "" {
				assert.Nil(t, data)
				return
			}
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestEncodeBody_Validation(t *testing.T) {
	tests := []struct {
		name string
		body RequestBody
	}{
		{name: "missing properties", body: NewElementRequestBody{}},
		{name: "missing qualified name", body: NewElementRequestBody{Properties: GlossaryProperties{DisplayName: "Glossary"}}},
		{name: "missing display name", body: NewElementRequestBody{Properties: GlossaryProperties{ReferenceableProperties: ReferenceableProperties{QualifiedName: "Glossary::x"}}}},
		{name: "parent without relationship", body: NewElementRequestBody{ParentGUID: "p", Properties: RawProperties{Class: "X"}}},
		{name: "missing template", body: TemplateRequestBody{}},
		{name: "missing filter", body: FilterRequestBody{}},
		{name: "negative page size", body: FilterRequestBody{Filter: "x", Paging: Paging{PageSize: -1}}},
		{name: "missing status", body: UpdateStatusRequestBody{}},
		{name: "missing property names", body: FindPropertyNamesRequestBody{PropertyValue: "v"}},
		{name: "confidence out of range", body: NewRelationshipRequestBody{Properties: CollectionMembershipProperties{Confidence: 101}}},
		{name: "incomplete action target", body: ActionRequestBody{ActionTargets: []ActionTarget{{ActionTargetName: "asset"}}}},
		{name: "missing preferred value", body: ValidMetadataValue{}},
		{name: "replacing update without qualified name", body: UpdateElementRequestBody{Properties: CollectionProperties{DisplayName: "Renamed"}}},
		{name: "merge update without properties", body: UpdateElementRequestBody{MergeUpdate: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encodeBody(tt.body)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Contains(t, err.Error(), tt.body.BodyClass())
		})
	}
}

func TestEncodeBody_PartialProperties(t *testing.T) {
	tests := []struct {
		name     string
		body     RequestBody
		expected string
	}{
		{
			name: "template replacement",
			body: TemplateRequestBody{
				TemplateGUID:              "template-guid",
				ReplacementProperties:     CollectionProperties{DisplayName: "Copy"},
				PlaceholderPropertyValues: map[string]string{"qualifiedName": "Collection::Copy"},
			},
			expected: `{
				"class": "TemplateRequestBody",
				"templateGUID": "template-guid",
				"isOwnAnchor": false,
				"replacementProperties": {"class": "CollectionProperties", "displayName": "Copy"},
				"placeholderPropertyValues": {"qualifiedName": "Collection::Copy"}
			}`,
		},
		{
			name: "merge element update",
			body: UpdateElementRequestBody{MergeUpdate: true, Properties: GlossaryTermProperties{Summary: "Revised"}},
			expected: `{
				"class": "UpdateElementRequestBody",
				"mergeUpdate": true,
				"properties": {"class": "GlossaryTermProperties", "displayName": "", "summary": "Revised"}
			}`,
		},
		{
			name: "merge relationship update",
			body: UpdateRelationshipRequestBody{MergeUpdate: true, Properties: CollectionMembershipProperties{MembershipRationale: "curated"}},
			expected: `{
				"class": "UpdateRelationshipRequestBody",
				"mergeUpdate": true,
				"properties": {"class": "CollectionMembershipProperties", "membershipRationale": "curated"}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := encodeBody(tt.body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestRawProperties(t *testing.T) {
	data, err := json.Marshal(RawProperties{Class: "ToDoProperties", Values: map[string]any{"toDoStatus": "COMPLETE"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"class":"ToDoProperties","toDoStatus":"COMPLETE"}`, string(data))

	values := map[string]any{"a": 1}
	_, err = json.Marshal(RawProperties{Class: "X", Values: values})
	require.NoError(t, err)
	assert.NotContains(t, values, "class", "marshalling does not modify the caller's map")

	data, err = json.Marshal(RawProperties{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestPropertiesWithClass(t *testing.T) {
	data, err := json.Marshal(LineageProperties{Label: "nightly"}.withClass("DataFlowProperties"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"class":"DataFlowProperties","label":"nightly"}`, string(data))

	data, err = json.Marshal(GovernanceClassificationProperties{LevelIdentifier: 3}.withClass("ConfidentialityProperties"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"class":"ConfidentialityProperties","levelIdentifier":3}`, string(data))
}
