package egeria

import (
	"context"
	"net/url"
	"strconv"
)

const automatedCurationService = "automated-curation"

func init() {
	register(automatedCurationService, "Automated Curation",
		"Technology types, integration connector catalog targets and governance actions.",
		TierTech, NewAutomatedCuration)
}

// TechnologyTypeColumns are the default output columns for technology types
var TechnologyTypeColumns = []Column{
	{Name: "Technology Type", Key: "displayName"},
	{Name: "Description", Key: "description"},
	{Name: "Qualified Name", Key: "qualifiedName"},
}

// EngineActionColumns are the default output columns for engine actions
var EngineActionColumns = []Column{
	{Name: "Name", Key: "displayName"},
	{Name: "Status", Key: "actionStatus"},
	{Name: "Request Type", Key: "requestType"},
	{Name: "Started", Key: "startTime"},
	{Name: "GUID", Key: "guid"},
}

// AutomatedCuration wraps the Automated Curation view service
type AutomatedCuration struct {
	viewService
}

// NewAutomatedCuration creates the facade on a shared client
func NewAutomatedCuration(client *ServerClient) *AutomatedCuration {
	return &AutomatedCuration{viewService: newViewService(client, automatedCurationService)}
}

func pageQuery(opts SearchOptions) url.Values {
	query := url.Values{}
	if opts.StartFrom > 0 {
		query.Set("startFrom", strconv.Itoa(opts.StartFrom))
	}
	query.Set("pageSize", strconv.Itoa(opts.pageSize()))
	return query
}

// GetTechnologyTypeDetail returns the technology type with an exact name
func (m *AutomatedCuration) GetTechnologyTypeDetail(ctx context.Context, typeName string) (*Element, error) {
	if typeName == "" {
		return nil, invalidParameter("technology type name is required")
	}
	return m.client.postForElement(ctx, m.url("technology-types", "by-name"), FilterRequestBody{Filter: typeName})
}

// FindTechnologyTypes returns the technology types matching search
func (m *AutomatedCuration) FindTechnologyTypes(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "technology-types", search, opts)
}

// GetTechnologyTypeElements returns the elements deployed with a technology type
func (m *AutomatedCuration) GetTechnologyTypeElements(ctx context.Context, typeName string, opts SearchOptions) ([]Element, error) {
	if typeName == "" {
		return nil, invalidParameter("technology type name is required")
	}
	return m.client.postForElements(ctx, m.url("technology-types", "elements"), opts.filterBody(typeName))
}

// GetCatalogTargets returns the elements an integration connector catalogs
func (m *AutomatedCuration) GetCatalogTargets(ctx context.Context, connectorGUID string, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("integration connector guid", connectorGUID); err != nil {
		return nil, err
	}
	rawURL := slimURL(m.url("integration-connectors", connectorGUID, "catalog-targets"), pageQuery(opts))
	return m.client.getForElements(ctx, rawURL)
}

// AddCatalogTarget points an integration connector at an element and returns
// the GUID of the new relationship
func (m *AutomatedCuration) AddCatalogTarget(ctx context.Context, connectorGUID, elementGUID, catalogTargetName string) (string, error) {
	if err := requireGUIDs("integration connector guid", connectorGUID, "element guid", elementGUID); err != nil {
		return "", err
	}
	props := RawProperties{
		Class:  "CatalogTargetProperties",
		Values: map[string]any{"catalogTargetName": catalogTargetName},
	}
	rawURL := m.url("integration-connectors", connectorGUID, "catalog-targets", elementGUID)
	return m.client.postForGUID(ctx, rawURL, NewRelationshipRequestBody{Properties: props})
}

// RemoveCatalogTarget deletes a catalog target relationship
func (m *AutomatedCuration) RemoveCatalogTarget(ctx context.Context, relationshipGUID string) error {
	if err := requireGUID("catalog target relationship guid", relationshipGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("catalog-targets", relationshipGUID, "remove"), nil)
}

// InitiateGovernanceActionType starts the governance action type named in
// body and returns the GUID of the first engine action
func (m *AutomatedCuration) InitiateGovernanceActionType(ctx context.Context, body ActionRequestBody) (string, error) {
	if body.GovernanceActionTypeQualifiedName == "" {
		return "", invalidParameter("governance action type qualified name is required")
	}
	return m.client.postForGUID(ctx, m.url("governance-action-types", "initiate"), body)
}

// GetEngineActions lists the engine actions known to the platform
func (m *AutomatedCuration) GetEngineActions(ctx context.Context, opts SearchOptions) ([]Element, error) {
	return m.client.getForElements(ctx, slimURL(m.url("engine-actions"), pageQuery(opts)))
}
