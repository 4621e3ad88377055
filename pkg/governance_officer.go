package egeria

import (
	"context"
)

const governanceOfficerService = "governance-officer"

func init() {
	register(governanceOfficerService, "Governance Officer",
		"Author governance definitions and connect them to what they govern.",
		TierTech, NewGovernanceOfficer)
}

// GovernanceDefinitionColumns are the default output columns for
// governance definitions
var GovernanceDefinitionColumns = []Column{
	{Name: "Title", Key: "title"},
	{Name: "Type", Key: "typeName"},
	{Name: "Summary", Key: "summary"},
	{Name: "Status", Key: "status"},
	{Name: "GUID", Key: "guid"},
}

// Relationship types accepted by LinkSupportingDefinitions
const (
	GovernanceResponse       = "GovernanceResponse"
	GovernanceImplementation = "GovernanceImplementation"
	GovernanceDriverLink     = "GovernanceDriverLink"
	GovernancePolicyLink     = "GovernancePolicyLink"
)

// GovernanceOfficer wraps the Governance Officer view service
type GovernanceOfficer struct {
	viewService
}

// NewGovernanceOfficer creates the facade on a shared client
func NewGovernanceOfficer(client *ServerClient) *GovernanceOfficer {
	return &GovernanceOfficer{viewService: newViewService(client, governanceOfficerService)}
}

// CreateGovernanceDefinition creates a policy, principle, rule or other
// definition; the subtype is the TypeName of the properties.
func (m *GovernanceOfficer) CreateGovernanceDefinition(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "governance-definitions", body)
}

// UpdateGovernanceDefinition updates the properties of a governance definition
func (m *GovernanceOfficer) UpdateGovernanceDefinition(ctx context.Context, definitionGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "governance-definitions", definitionGUID, body)
}

// UpdateGovernanceDefinitionStatus moves a definition through its lifecycle
func (m *GovernanceOfficer) UpdateGovernanceDefinitionStatus(ctx context.Context, definitionGUID, status string) error {
	return m.updateStatus(ctx, "governance-definitions", definitionGUID, status)
}

// DeleteGovernanceDefinition removes a governance definition
func (m *GovernanceOfficer) DeleteGovernanceDefinition(ctx context.Context, definitionGUID string) error {
	return m.delete(ctx, "governance-definitions", definitionGUID, DeleteElementRequestBody{})
}

// FindGovernanceDefinitions returns the definitions of any subtype matching search
func (m *GovernanceOfficer) FindGovernanceDefinitions(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "governance-definitions", search, opts)
}

// GetGovernanceDefinitionByGUID returns one governance definition
func (m *GovernanceOfficer) GetGovernanceDefinitionByGUID(ctx context.Context, definitionGUID string) (*Element, error) {
	return m.retrieve(ctx, "governance-definitions", definitionGUID)
}

// GetGovernanceDefinitionGraph returns the mermaid graph of a definition and its links
func (m *GovernanceOfficer) GetGovernanceDefinitionGraph(ctx context.Context, definitionGUID string) (string, error) {
	return m.graph(ctx, "governance-definitions", definitionGUID)
}

// LinkSupportingDefinitions links a definition to one that supports it, for
// example a policy implemented by a rule.
func (m *GovernanceOfficer) LinkSupportingDefinitions(ctx context.Context, relationshipType, definitionGUID, supportingGUID string, body NewRelationshipRequestBody) error {
	if relationshipType == "" {
		return invalidParameter("relationship type is required")
	}
	if err := requireGUIDs("definition guid", definitionGUID, "supporting definition guid", supportingGUID); err != nil {
		return err
	}
	return m.link(ctx, body, "governance-definitions", definitionGUID, "supporting-definitions", relationshipType, supportingGUID)
}

// DetachSupportingDefinitions removes the link added by LinkSupportingDefinitions
func (m *GovernanceOfficer) DetachSupportingDefinitions(ctx context.Context, relationshipType, definitionGUID, supportingGUID string) error {
	if relationshipType == "" {
		return invalidParameter("relationship type is required")
	}
	if err := requireGUIDs("definition guid", definitionGUID, "supporting definition guid", supportingGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "governance-definitions", definitionGUID, "supporting-definitions", relationshipType, supportingGUID)
}

// LinkGovernedBy records that elementGUID is governed by definitionGUID
func (m *GovernanceOfficer) LinkGovernedBy(ctx context.Context, elementGUID, definitionGUID string) error {
	if err := requireGUIDs("element guid", elementGUID, "definition guid", definitionGUID); err != nil {
		return err
	}
	return m.link(ctx, NewRelationshipRequestBody{}, "elements", elementGUID, "governed-by", definitionGUID)
}

// DetachGovernedBy removes the link added by LinkGovernedBy
func (m *GovernanceOfficer) DetachGovernedBy(ctx context.Context, elementGUID, definitionGUID string) error {
	if err := requireGUIDs("element guid", elementGUID, "definition guid", definitionGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "elements", elementGUID, "governed-by", definitionGUID)
}
