package egeria

import (
	"context"
)

const solutionArchitectService = "solution-architect"

func init() {
	register(solutionArchitectService, "Solution Architect",
		"Information supply chains, solution blueprints and solution components.",
		TierTech, NewSolutionArchitect)
}

// SolutionComponentColumns are the default output columns for solution
// components
var SolutionComponentColumns = []Column{
	{Name: "Component Name", Key: "displayName"},
	{Name: "Component Type", Key: "solutionComponentType"},
	{Name: "Planned Deployment", Key: "plannedDeployedImplementationType"},
	{Name: "GUID", Key: "guid"},
}

// SolutionArchitect wraps the Solution Architect view service
type SolutionArchitect struct {
	viewService
}

// NewSolutionArchitect creates the facade on a shared client
func NewSolutionArchitect(client *ServerClient) *SolutionArchitect {
	return &SolutionArchitect{viewService: newViewService(client, solutionArchitectService)}
}

// CreateInformationSupplyChain creates a supply chain and returns its GUID
func (m *SolutionArchitect) CreateInformationSupplyChain(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "information-supply-chains", body)
}

// FindInformationSupplyChains returns the information supply chains matching search
func (m *SolutionArchitect) FindInformationSupplyChains(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "information-supply-chains", search, opts)
}

// LinkSupplyChainSegments connects two segments of an information supply
// chain
func (m *SolutionArchitect) LinkSupplyChainSegments(ctx context.Context, segment1GUID, segment2GUID string, body NewRelationshipRequestBody) error {
	if err := requireGUIDs("segment guid", segment1GUID, "linked segment guid", segment2GUID); err != nil {
		return err
	}
	return m.link(ctx, body, "information-supply-chain-segments", segment1GUID, "link-to", segment2GUID)
}

// CreateSolutionBlueprint creates a blueprint and returns its GUID
func (m *SolutionArchitect) CreateSolutionBlueprint(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "solution-blueprints", body)
}

// FindSolutionBlueprints returns the solution blueprints matching search
func (m *SolutionArchitect) FindSolutionBlueprints(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "solution-blueprints", search, opts)
}

// CreateSolutionComponent creates a component and returns its GUID
func (m *SolutionArchitect) CreateSolutionComponent(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "solution-components", body)
}

// FindSolutionComponents returns the solution components matching search
func (m *SolutionArchitect) FindSolutionComponents(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "solution-components", search, opts)
}

// LinkSubcomponent nests componentGUID inside parentComponentGUID
func (m *SolutionArchitect) LinkSubcomponent(ctx context.Context, parentComponentGUID, componentGUID string) error {
	if err := requireGUIDs("parent component guid", parentComponentGUID, "component guid", componentGUID); err != nil {
		return err
	}
	return m.link(ctx, NewRelationshipRequestBody{}, "solution-components", parentComponentGUID, "subcomponents", componentGUID)
}

// DetachSubcomponent removes a nested component from its parent
func (m *SolutionArchitect) DetachSubcomponent(ctx context.Context, parentComponentGUID, componentGUID string) error {
	if err := requireGUIDs("parent component guid", parentComponentGUID, "component guid", componentGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "solution-components", parentComponentGUID, "subcomponents", componentGUID)
}

// GetSolutionComponentGraph returns the mermaid graph of a component and its subcomponents
func (m *SolutionArchitect) GetSolutionComponentGraph(ctx context.Context, componentGUID string) (string, error) {
	return m.graph(ctx, "solution-components", componentGUID)
}
