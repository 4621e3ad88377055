package egeria

import (
	"context"
)

const myProfileService = "my-profile"

func init() {
	register(myProfileService, "My Profile",
		"The calling user's own profile, roles and to-dos.",
		TierTech, NewMyProfile)
}

// ToDoColumns are the default output columns for to-dos
var ToDoColumns = []Column{
	{Name: "Name", Key: "name"},
	{Name: "Type", Key: "toDoType"},
	{Name: "Priority", Key: "priority"},
	{Name: "Status", Key: "toDoStatus"},
	{Name: "Due", Key: "dueTime"},
	{Name: "GUID", Key: "guid"},
}

// To-do statuses
const (
	ToDoOpen       = "OPEN"
	ToDoInProgress = "IN_PROGRESS"
	ToDoWaiting    = "WAITING"
	ToDoComplete   = "COMPLETE"
	ToDoAbandoned  = "ABANDONED"
)

// MyProfile wraps the My Profile view service. Every call acts on behalf of
// the user the bearer token was issued to.
type MyProfile struct {
	viewService
}

// NewMyProfile creates the facade on a shared client
func NewMyProfile(client *ServerClient) *MyProfile {
	return &MyProfile{viewService: newViewService(client, myProfileService)}
}

// GetMyProfile returns the profile linked to the calling user
func (m *MyProfile) GetMyProfile(ctx context.Context) (*Element, error) {
	return m.client.getForElement(ctx, m.url())
}

// GetMyRoles returns the roles the calling user performs
func (m *MyProfile) GetMyRoles(ctx context.Context, opts SearchOptions) ([]Element, error) {
	return m.client.postForElements(ctx, m.url("roles"), opts.resultsBody())
}

// CreateToDo creates an action item. Set ParentGUID to an actor role or
// profile to assign it.
func (m *MyProfile) CreateToDo(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "to-dos", body)
}

// GetToDo returns one action item
func (m *MyProfile) GetToDo(ctx context.Context, toDoGUID string) (*Element, error) {
	return m.retrieve(ctx, "to-dos", toDoGUID)
}

// UpdateToDoStatus sets the toDoStatus of an action item
func (m *MyProfile) UpdateToDoStatus(ctx context.Context, toDoGUID, status string) error {
	if status == "" {
		return invalidParameter("to-do status is required")
	}
	props := RawProperties{Class: ToDoProperties{}.PropertiesClass(), Values: map[string]any{"toDoStatus": status}}
	return m.update(ctx, "to-dos", toDoGUID, UpdateElementRequestBody{MergeUpdate: true, Properties: props})
}

// FindToDos returns the action items matching search
func (m *MyProfile) FindToDos(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "to-dos", search, opts)
}
