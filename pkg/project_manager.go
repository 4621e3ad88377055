package egeria

import (
	"context"
)

const projectManagerService = "project-manager"

func init() {
	register(projectManagerService, "Project Manager",
		"Maintain projects, their teams and dependencies.",
		TierTech, NewProjectManager)
}

// ProjectColumns are the default output columns for projects
var ProjectColumns = []Column{
	{Name: "Project Name", Key: "displayName"},
	{Name: "Identifier", Key: "identifier"},
	{Name: "Status", Key: "projectStatus"},
	{Name: "Phase", Key: "projectPhase"},
	{Name: "Health", Key: "projectHealth"},
	{Name: "GUID", Key: "guid"},
}

// ProjectManager wraps the Project Manager view service
type ProjectManager struct {
	viewService
}

// NewProjectManager creates the facade on a shared client
func NewProjectManager(client *ServerClient) *ProjectManager {
	return &ProjectManager{viewService: newViewService(client, projectManagerService)}
}

// CreateProject creates a project. The Campaign, Task and PersonalProject
// classifications can be requested through InitialClassifications.
func (m *ProjectManager) CreateProject(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "projects", body)
}

// UpdateProject updates the properties of a project
func (m *ProjectManager) UpdateProject(ctx context.Context, projectGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "projects", projectGUID, body)
}

// DeleteProject removes a project. With cascade its anchored elements go too.
func (m *ProjectManager) DeleteProject(ctx context.Context, projectGUID string, cascade bool) error {
	return m.delete(ctx, "projects", projectGUID, DeleteElementRequestBody{CascadedDelete: cascade})
}

// FindProjects returns the projects matching search
func (m *ProjectManager) FindProjects(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "projects", search, opts)
}

// GetProjectByGUID returns one project
func (m *ProjectManager) GetProjectByGUID(ctx context.Context, projectGUID string) (*Element, error) {
	return m.retrieve(ctx, "projects", projectGUID)
}

// GetProjectTeam returns the actors assigned to a project. role narrows the
// result to one team role and may be empty.
func (m *ProjectManager) GetProjectTeam(ctx context.Context, projectGUID, role string, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("project guid", projectGUID); err != nil {
		return nil, err
	}
	rawURL := m.url("projects", projectGUID, "team")
	if role == "" {
		return m.client.postForElements(ctx, rawURL, opts.resultsBody())
	}
	return m.client.postForElements(ctx, rawURL, opts.filterBody(role))
}

// AddToProjectTeam assigns an actor to the project team
func (m *ProjectManager) AddToProjectTeam(ctx context.Context, projectGUID, actorGUID string, props *AssignmentProperties) error {
	if err := requireGUIDs("project guid", projectGUID, "actor guid", actorGUID); err != nil {
		return err
	}
	body := NewRelationshipRequestBody{}
	if props != nil {
		body.Properties = *props
	}
	return m.link(ctx, body, "projects", projectGUID, "team-members", actorGUID)
}

// RemoveFromProjectTeam unassigns an actor from the project team
func (m *ProjectManager) RemoveFromProjectTeam(ctx context.Context, projectGUID, actorGUID string) error {
	if err := requireGUIDs("project guid", projectGUID, "actor guid", actorGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "projects", projectGUID, "team-members", actorGUID)
}

// LinkProjectDependency records that projectGUID depends on dependsOnGUID
func (m *ProjectManager) LinkProjectDependency(ctx context.Context, projectGUID, dependsOnGUID string, props *DependencyProperties) error {
	if err := requireGUIDs("project guid", projectGUID, "dependent project guid", dependsOnGUID); err != nil {
		return err
	}
	body := NewRelationshipRequestBody{}
	if props != nil {
		body.Properties = *props
	}
	return m.link(ctx, body, "projects", projectGUID, "project-dependencies", dependsOnGUID)
}

// DetachProjectDependency removes the link added by LinkProjectDependency
func (m *ProjectManager) DetachProjectDependency(ctx context.Context, projectGUID, dependsOnGUID string) error {
	if err := requireGUIDs("project guid", projectGUID, "dependent project guid", dependsOnGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "projects", projectGUID, "project-dependencies", dependsOnGUID)
}

// GetProjectGraph returns the mermaid graph of a project's hierarchy
func (m *ProjectManager) GetProjectGraph(ctx context.Context, projectGUID string) (string, error) {
	return m.graph(ctx, "projects", projectGUID)
}
