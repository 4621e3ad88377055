package egeria

import (
	"context"
)

const classificationManagerService = "classification-manager"

func init() {
	register(classificationManagerService, "Classification Manager",
		"Classify elements for governance and query elements by classification.",
		TierTech, NewClassificationManager)
}

// ClassificationManager wraps the Classification Manager view service
type ClassificationManager struct {
	viewService
}

// NewClassificationManager creates the facade on a shared client
func NewClassificationManager(client *ServerClient) *ClassificationManager {
	return &ClassificationManager{viewService: newViewService(client, classificationManagerService)}
}

// GetElementsByClassification returns the elements carrying a classification
func (m *ClassificationManager) GetElementsByClassification(ctx context.Context, classificationName string, opts SearchOptions) ([]Element, error) {
	if classificationName == "" {
		return nil, invalidParameter("classification name is required")
	}
	return m.client.postForElements(ctx, m.url("elements", "by-classification", classificationName), opts.resultsBody())
}

// GetElementsByPropertyValue returns the elements where one of
// propertyNames holds exactly value
func (m *ClassificationManager) GetElementsByPropertyValue(ctx context.Context, value string, propertyNames []string, opts SearchOptions) ([]Element, error) {
	body := FindPropertyNamesRequestBody{
		Effectivity:   opts.Effectivity,
		Paging:        opts.resultsBody().Paging,
		PropertyValue: value,
		PropertyNames: propertyNames,
	}
	return m.client.postForElements(ctx, m.url("elements", "by-exact-property-value"), body)
}

func (m *ClassificationManager) classify(ctx context.Context, elementGUID, classification string, props Properties) error {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return err
	}
	body := NewClassificationRequestBody{Properties: props}
	return m.client.postNoResult(ctx, m.url("elements", elementGUID, classification), body)
}

func (m *ClassificationManager) declassify(ctx context.Context, elementGUID, classification string) error {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("elements", elementGUID, classification, "remove"), DeleteClassificationRequestBody{})
}

// SetConfidentiality classifies how confidential an element is.
// LevelIdentifier carries the confidentiality level.
func (m *ClassificationManager) SetConfidentiality(ctx context.Context, elementGUID string, props GovernanceClassificationProperties) error {
	return m.classify(ctx, elementGUID, "confidentiality", props.withClass("ConfidentialityProperties"))
}

// ClearConfidentiality removes the Confidentiality classification
func (m *ClassificationManager) ClearConfidentiality(ctx context.Context, elementGUID string) error {
	return m.declassify(ctx, elementGUID, "confidentiality")
}

// SetCriticality classifies how critical an element is to the business
func (m *ClassificationManager) SetCriticality(ctx context.Context, elementGUID string, props GovernanceClassificationProperties) error {
	return m.classify(ctx, elementGUID, "criticality", props.withClass("CriticalityProperties"))
}

// ClearCriticality removes the Criticality classification
func (m *ClassificationManager) ClearCriticality(ctx context.Context, elementGUID string) error {
	return m.declassify(ctx, elementGUID, "criticality")
}

// SetRetention classifies how long an element must be kept
func (m *ClassificationManager) SetRetention(ctx context.Context, elementGUID string, props GovernanceClassificationProperties) error {
	return m.classify(ctx, elementGUID, "retention", props.withClass("RetentionProperties"))
}

// ClearRetention removes the Retention classification
func (m *ClassificationManager) ClearRetention(ctx context.Context, elementGUID string) error {
	return m.declassify(ctx, elementGUID, "retention")
}

// AddGovernedBy links an element to the governance definition it is
// governed by
func (m *ClassificationManager) AddGovernedBy(ctx context.Context, elementGUID, definitionGUID string) error {
	if err := requireGUIDs("element guid", elementGUID, "definition guid", definitionGUID); err != nil {
		return err
	}
	return m.link(ctx, NewRelationshipRequestBody{}, "elements", elementGUID, "governed-by", "definition", definitionGUID)
}

// AddSecurityTags labels an element for access control
func (m *ClassificationManager) AddSecurityTags(ctx context.Context, elementGUID string, props SecurityTagsProperties) error {
	return m.classify(ctx, elementGUID, "security-tags", props)
}

// ClearSecurityTags removes the security labels of an element
func (m *ClassificationManager) ClearSecurityTags(ctx context.Context, elementGUID string) error {
	return m.declassify(ctx, elementGUID, "security-tags")
}

// SetOwnership records who owns an element
func (m *ClassificationManager) SetOwnership(ctx context.Context, elementGUID string, props OwnershipProperties) error {
	return m.classify(ctx, elementGUID, "ownership", props)
}

// ClearOwnership removes the recorded owner
func (m *ClassificationManager) ClearOwnership(ctx context.Context, elementGUID string) error {
	return m.declassify(ctx, elementGUID, "ownership")
}
