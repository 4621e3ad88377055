package egeria

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/sjson"
)

// validate is shared; building a validator per call is expensive.
var validate = validator.New()

// RequestBody is a typed request model. Egeria dispatches on the "class"
// field of each body, which MarshalJSON fills in from BodyClass.
type RequestBody interface {
	BodyClass() string
}

// Properties is a typed property bag nested in a request body
type Properties interface {
	PropertiesClass() string
}

// marshalWithClass encodes v and sets the class discriminator
func marshalWithClass(class string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(data, "class", class)
}

// mergeBody is implemented by update bodies. A merge update sends only the
// properties that change, so the nested property rules do not apply to it.
type mergeBody interface {
	mergeProperties() (Properties, bool)
}

// validateBody runs struct validation on typed bodies
func validateBody(body RequestBody) error {
	var err error
	if m, ok := body.(mergeBody); ok {
		if props, merge := m.mergeProperties(); merge {
			if props == nil {
				return invalidParameter("%s: properties are required", body.BodyClass())
			}
			err = validate.StructExcept(body, "Properties")
		} else {
			err = validate.Struct(body)
		}
	} else {
		err = validate.Struct(body)
	}
	if err != nil {
		return invalidParameter("%s: %v", body.BodyClass(), err)
	}
	return nil
}

// encodeBody turns any supported body into JSON. Typed bodies are validated
// first. A nil body yields nil.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	case RequestBody:
		if err := validateBody(b); err != nil {
			return nil, err
		}
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", b.BodyClass(), err)
		}
		return data, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, invalidParameter("failed to marshal request body: %v", err)
		}
		return data, nil
	}
}

// ExternalSource names the external metadata source an update is made on
// behalf of.
type ExternalSource struct {
	ExternalSourceGUID string `json:"externalSourceGUID,omitempty"`
	ExternalSourceName string `json:"externalSourceName,omitempty"`
}

// Effectivity controls which version of the graph a request sees
type Effectivity struct {
	EffectiveTime          *time.Time `json:"effectiveTime,omitempty"`
	ForLineage             bool       `json:"forLineage,omitempty"`
	ForDuplicateProcessing bool       `json:"forDuplicateProcessing,omitempty"`
}

// NewElementRequestBody creates an element, optionally anchored and linked
// to a parent in the same call.
type NewElementRequestBody struct {
	ExternalSource
	Effectivity
	AnchorGUID                   string                `json:"anchorGUID,omitempty"`
	IsOwnAnchor                  bool                  `json:"isOwnAnchor"`
	AnchorScopeGUID              string                `json:"anchorScopeGUID,omitempty"`
	ParentGUID                   string                `json:"parentGUID,omitempty"`
	ParentRelationshipTypeName   string                `json:"parentRelationshipTypeName,omitempty" validate:"required_with=ParentGUID"`
	ParentAtEnd1                 bool                  `json:"parentAtEnd1,omitempty"`
	Properties                   Properties            `json:"properties" validate:"required"`
	ParentRelationshipProperties Properties            `json:"parentRelationshipProperties,omitempty"`
	InitialClassifications       map[string]Properties `json:"initialClassifications,omitempty"`
}

func (NewElementRequestBody) BodyClass() string { return "NewElementRequestBody" }

func (b NewElementRequestBody) MarshalJSON() ([]byte, error) {
	type plain NewElementRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// UpdateElementRequestBody updates an element's properties. With MergeUpdate
// only the supplied properties change; otherwise the set is replaced.
type UpdateElementRequestBody struct {
	ExternalSource
	Effectivity
	MergeUpdate bool       `json:"mergeUpdate"`
	Properties  Properties `json:"properties" validate:"required"`
}

func (UpdateElementRequestBody) BodyClass() string { return "UpdateElementRequestBody" }

func (b UpdateElementRequestBody) mergeProperties() (Properties, bool) {
	return b.Properties, b.MergeUpdate
}

func (b UpdateElementRequestBody) MarshalJSON() ([]byte, error) {
	type plain UpdateElementRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// NewRelationshipRequestBody links two elements
type NewRelationshipRequestBody struct {
	ExternalSource
	Effectivity
	Properties Properties `json:"properties,omitempty"`
}

func (NewRelationshipRequestBody) BodyClass() string { return "NewRelationshipRequestBody" }

func (b NewRelationshipRequestBody) MarshalJSON() ([]byte, error) {
	type plain NewRelationshipRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// UpdateRelationshipRequestBody updates the properties of a link
type UpdateRelationshipRequestBody struct {
	ExternalSource
	Effectivity
	MergeUpdate bool       `json:"mergeUpdate"`
	Properties  Properties `json:"properties" validate:"required"`
}

func (UpdateRelationshipRequestBody) BodyClass() string { return "UpdateRelationshipRequestBody" }

func (b UpdateRelationshipRequestBody) mergeProperties() (Properties, bool) {
	return b.Properties, b.MergeUpdate
}

func (b UpdateRelationshipRequestBody) MarshalJSON() ([]byte, error) {
	type plain UpdateRelationshipRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// DeleteElementRequestBody removes an element. CascadedDelete also removes
// anchored elements.
type DeleteElementRequestBody struct {
	ExternalSource
	Effectivity
	CascadedDelete bool `json:"cascadedDelete,omitempty"`
}

func (DeleteElementRequestBody) BodyClass() string { return "DeleteElementRequestBody" }

func (b DeleteElementRequestBody) MarshalJSON() ([]byte, error) {
	type plain DeleteElementRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// DeleteRelationshipRequestBody removes a link between two elements
type DeleteRelationshipRequestBody struct {
	ExternalSource
	Effectivity
}

func (DeleteRelationshipRequestBody) BodyClass() string { return "DeleteRelationshipRequestBody" }

func (b DeleteRelationshipRequestBody) MarshalJSON() ([]byte, error) {
	type plain DeleteRelationshipRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// NewClassificationRequestBody classifies an element
type NewClassificationRequestBody struct {
	ExternalSource
	Effectivity
	Properties Properties `json:"properties,omitempty"`
}

func (NewClassificationRequestBody) BodyClass() string { return "NewClassificationRequestBody" }

func (b NewClassificationRequestBody) MarshalJSON() ([]byte, error) {
	type plain NewClassificationRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// DeleteClassificationRequestBody declassifies an element
type DeleteClassificationRequestBody struct {
	ExternalSource
	Effectivity
}

func (DeleteClassificationRequestBody) BodyClass() string { return "DeleteClassificationRequestBody" }

func (b DeleteClassificationRequestBody) MarshalJSON() ([]byte, error) {
	type plain DeleteClassificationRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// Paging holds the paging and sequencing fields shared by query bodies
type Paging struct {
	StartFrom            int        `json:"startFrom"`
	PageSize             int        `json:"pageSize" validate:"gte=0"`
	AsOfTime             *time.Time `json:"asOfTime,omitempty"`
	LimitResultsByStatus []string   `json:"limitResultsByStatus,omitempty"`
	SequencingOrder      string     `json:"sequencingOrder,omitempty"`
	SequencingProperty   string     `json:"sequencingProperty,omitempty"`
}

// SearchStringRequestBody carries a regular-expression search
type SearchStringRequestBody struct {
	Effectivity
	Paging
	SearchString            string `json:"searchString"`
	StartsWith              bool   `json:"startsWith"`
	EndsWith                bool   `json:"endsWith"`
	IgnoreCase              bool   `json:"ignoreCase"`
	MetadataElementTypeName string `json:"metadataElementTypeName,omitempty"`
}

func (SearchStringRequestBody) BodyClass() string { return "SearchStringRequestBody" }

func (b SearchStringRequestBody) MarshalJSON() ([]byte, error) {
	type plain SearchStringRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// FilterRequestBody carries an exact-match filter (names, categories, types)
type FilterRequestBody struct {
	Effectivity
	Paging
	Filter                  string `json:"filter" validate:"required"`
	MetadataElementTypeName string `json:"metadataElementTypeName,omitempty"`
}

func (FilterRequestBody) BodyClass() string { return "FilterRequestBody" }

func (b FilterRequestBody) MarshalJSON() ([]byte, error) {
	type plain FilterRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// GetRequestBody retrieves a single element
type GetRequestBody struct {
	Effectivity
	AsOfTime *time.Time `json:"asOfTime,omitempty"`
}

func (GetRequestBody) BodyClass() string { return "GetRequestBody" }

func (b GetRequestBody) MarshalJSON() ([]byte, error) {
	type plain GetRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// ResultsRequestBody retrieves a page of related elements
type ResultsRequestBody struct {
	Effectivity
	Paging
	MetadataElementTypeName string `json:"metadataElementTypeName,omitempty"`
}

func (ResultsRequestBody) BodyClass() string { return "ResultsRequestBody" }

func (b ResultsRequestBody) MarshalJSON() ([]byte, error) {
	type plain ResultsRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// TemplateRequestBody creates an element by copying a template.
// ReplacementProperties override the template's values and may be partial.
type TemplateRequestBody struct {
	ExternalSource
	Effectivity
	TemplateGUID                 string            `json:"templateGUID" validate:"required"`
	AnchorGUID                   string            `json:"anchorGUID,omitempty"`
	IsOwnAnchor                  bool              `json:"isOwnAnchor"`
	ParentGUID                   string            `json:"parentGUID,omitempty"`
	ParentRelationshipTypeName   string            `json:"parentRelationshipTypeName,omitempty" validate:"required_with=ParentGUID"`
	ParentAtEnd1                 bool              `json:"parentAtEnd1,omitempty"`
	ReplacementProperties        Properties        `json:"replacementProperties,omitempty" validate:"-"`
	PlaceholderPropertyValues    map[string]string `json:"placeholderPropertyValues,omitempty"`
	ParentRelationshipProperties Properties        `json:"parentRelationshipProperties,omitempty"`
}

func (TemplateRequestBody) BodyClass() string { return "TemplateRequestBody" }

func (b TemplateRequestBody) MarshalJSON() ([]byte, error) {
	type plain TemplateRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// UpdateStatusRequestBody changes the lifecycle status of an element
type UpdateStatusRequestBody struct {
	ExternalSource
	Effectivity
	NewStatus string `json:"newStatus" validate:"required"`
}

func (UpdateStatusRequestBody) BodyClass() string { return "UpdateStatusRequestBody" }

func (b UpdateStatusRequestBody) MarshalJSON() ([]byte, error) {
	type plain UpdateStatusRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// NewAttachmentRequestBody attaches feedback (comments, ratings, likes) to an
// element.
type NewAttachmentRequestBody struct {
	ExternalSource
	Effectivity
	Properties Properties `json:"properties" validate:"required"`
}

func (NewAttachmentRequestBody) BodyClass() string { return "NewAttachmentRequestBody" }

func (b NewAttachmentRequestBody) MarshalJSON() ([]byte, error) {
	type plain NewAttachmentRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// FindPropertyNamesRequestBody searches for elements whose named properties
// match a value.
type FindPropertyNamesRequestBody struct {
	Effectivity
	Paging
	PropertyValue string   `json:"propertyValue" validate:"required"`
	PropertyNames []string `json:"propertyNames" validate:"required,min=1"`
}

func (FindPropertyNamesRequestBody) BodyClass() string { return "FindPropertyNamesRequestBody" }

func (b FindPropertyNamesRequestBody) MarshalJSON() ([]byte, error) {
	type plain FindPropertyNamesRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// ActionRequestBody starts a governance action
type ActionRequestBody struct {
	ExternalSource
	GovernanceActionTypeQualifiedName string            `json:"governanceActionTypeQualifiedName,omitempty"`
	RequestType                       string            `json:"requestType,omitempty"`
	RequestParameters                 map[string]string `json:"requestParameters,omitempty"`
	RequestSourceGUIDs                []string          `json:"requestSourceGUIDs,omitempty"`
	ActionTargets                     []ActionTarget    `json:"actionTargets,omitempty" validate:"dive"`
	StartDate                         *time.Time        `json:"startDate,omitempty"`
	OriginatorServiceName             string            `json:"originatorServiceName,omitempty"`
	OriginatorEngineName              string            `json:"originatorEngineName,omitempty"`
}

// ActionTarget names an element a governance action works on
type ActionTarget struct {
	ActionTargetName string `json:"actionTargetName" validate:"required"`
	ActionTargetGUID string `json:"actionTargetGUID" validate:"required"`
}

func (ActionRequestBody) BodyClass() string { return "ActionRequestBody" }

func (b ActionRequestBody) MarshalJSON() ([]byte, error) {
	type plain ActionRequestBody
	return marshalWithClass(b.BodyClass(), plain(b))
}

// bodyTypes lists the typed bodies by class for schema export
var bodyTypes = []RequestBody{
	ActionRequestBody{},
	DeleteClassificationRequestBody{},
	DeleteElementRequestBody{},
	DeleteRelationshipRequestBody{},
	FilterRequestBody{},
	FindPropertyNamesRequestBody{},
	GetRequestBody{},
	NewAttachmentRequestBody{},
	NewClassificationRequestBody{},
	NewElementRequestBody{},
	NewRelationshipRequestBody{},
	ResultsRequestBody{},
	SearchStringRequestBody{},
	TemplateRequestBody{},
	UpdateElementRequestBody{},
	UpdateRelationshipRequestBody{},
	UpdateStatusRequestBody{},
}
