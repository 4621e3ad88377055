package egeria

import (
	"context"
)

const actorManagerService = "actor-manager"

func init() {
	register(actorManagerService, "Actor Manager",
		"Maintain actor profiles, user identities and actor roles.",
		TierTech, NewActorManager)
}

// ActorProfileColumns are the default output columns for actor profiles
var ActorProfileColumns = []Column{
	{Name: "Display Name", Key: "displayName"},
	{Name: "Qualified Name", Key: "qualifiedName"},
	{Name: "Type", Key: "typeName"},
	{Name: "GUID", Key: "guid"},
}

// ActorManager wraps the Actor Manager view service
type ActorManager struct {
	viewService
}

// NewActorManager creates the facade on a shared client
func NewActorManager(client *ServerClient) *ActorManager {
	return &ActorManager{viewService: newViewService(client, actorManagerService)}
}

// CreateActorProfile creates a profile and returns its GUID. The properties
// class picks the profile subtype.
func (m *ActorManager) CreateActorProfile(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "actor-profiles", body)
}

// UpdateActorProfile updates the properties of a profile
func (m *ActorManager) UpdateActorProfile(ctx context.Context, profileGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "actor-profiles", profileGUID, body)
}

// DeleteActorProfile removes a profile
func (m *ActorManager) DeleteActorProfile(ctx context.Context, profileGUID string) error {
	return m.delete(ctx, "actor-profiles", profileGUID, DeleteElementRequestBody{})
}

// FindActorProfiles returns the profiles matching search
func (m *ActorManager) FindActorProfiles(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "actor-profiles", search, opts)
}

// GetActorProfileByGUID returns one profile
func (m *ActorManager) GetActorProfileByGUID(ctx context.Context, profileGUID string) (*Element, error) {
	return m.retrieve(ctx, "actor-profiles", profileGUID)
}

// CreateUserIdentity registers a user account with the catalog
func (m *ActorManager) CreateUserIdentity(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "user-identities", body)
}

// LinkIdentityToProfile attaches a user identity to the profile of the actor
// it belongs to
func (m *ActorManager) LinkIdentityToProfile(ctx context.Context, identityGUID, profileGUID string) error {
	if err := requireGUIDs("user identity guid", identityGUID, "profile guid", profileGUID); err != nil {
		return err
	}
	return m.link(ctx, NewRelationshipRequestBody{}, "user-identities", identityGUID, "profiles", profileGUID)
}

// DetachIdentityFromProfile unlinks a user identity from its profile
func (m *ActorManager) DetachIdentityFromProfile(ctx context.Context, identityGUID, profileGUID string) error {
	if err := requireGUIDs("user identity guid", identityGUID, "profile guid", profileGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "user-identities", identityGUID, "profiles", profileGUID)
}

// CreateActorRole creates a role such as a data steward or product manager
func (m *ActorManager) CreateActorRole(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "actor-roles", body)
}

// LinkRoleToProfile records that the profile performs the role
func (m *ActorManager) LinkRoleToProfile(ctx context.Context, roleGUID, profileGUID string, props *AssignmentProperties) error {
	if err := requireGUIDs("actor role guid", roleGUID, "profile guid", profileGUID); err != nil {
		return err
	}
	body := NewRelationshipRequestBody{}
	if props != nil {
		body.Properties = *props
	}
	return m.link(ctx, body, "actor-roles", roleGUID, "profiles", profileGUID)
}

// DetachRoleFromProfile removes a role from a profile
func (m *ActorManager) DetachRoleFromProfile(ctx context.Context, roleGUID, profileGUID string) error {
	if err := requireGUIDs("actor role guid", roleGUID, "profile guid", profileGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "actor-roles", roleGUID, "profiles", profileGUID)
}

// FindActorRoles returns the roles matching search
func (m *ActorManager) FindActorRoles(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "actor-roles", search, opts)
}
