package egeria

import (
	"context"
)

const dataDesignerService = "data-designer"

func init() {
	register(dataDesignerService, "Data Designer",
		"Design data structures, data fields and data classes.",
		TierTech, NewDataDesigner)
}

// DataFieldColumns are the default output columns for data fields
var DataFieldColumns = []Column{
	{Name: "Field Name", Key: "displayName"},
	{Name: "Data Type", Key: "dataType"},
	{Name: "Nullable", Key: "isNullable"},
	{Name: "Description", Key: "description"},
	{Name: "GUID", Key: "guid"},
}

// DataDesigner wraps the Data Designer view service
type DataDesigner struct {
	viewService
}

// NewDataDesigner creates the facade on a shared client
func NewDataDesigner(client *ServerClient) *DataDesigner {
	return &DataDesigner{viewService: newViewService(client, dataDesignerService)}
}

// CreateDataStructure creates a data structure and returns its GUID
func (m *DataDesigner) CreateDataStructure(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "data-structures", body)
}

// UpdateDataStructure updates the properties of a data structure
func (m *DataDesigner) UpdateDataStructure(ctx context.Context, structureGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "data-structures", structureGUID, body)
}

// DeleteDataStructure removes a structure. With cascade its anchored elements go too.
func (m *DataDesigner) DeleteDataStructure(ctx context.Context, structureGUID string, cascade bool) error {
	return m.delete(ctx, "data-structures", structureGUID, DeleteElementRequestBody{CascadedDelete: cascade})
}

// FindDataStructures returns the data structures matching search
func (m *DataDesigner) FindDataStructures(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "data-structures", search, opts)
}

// CreateDataField creates a data field and returns its GUID
func (m *DataDesigner) CreateDataField(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "data-fields", body)
}

// UpdateDataField updates the properties of a data field
func (m *DataDesigner) UpdateDataField(ctx context.Context, fieldGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "data-fields", fieldGUID, body)
}

// DeleteDataField removes a data field
func (m *DataDesigner) DeleteDataField(ctx context.Context, fieldGUID string) error {
	return m.delete(ctx, "data-fields", fieldGUID, DeleteElementRequestBody{})
}

// FindDataFields returns the data fields matching search
func (m *DataDesigner) FindDataFields(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "data-fields", search, opts)
}

// LinkMemberDataField adds a field to a data structure
func (m *DataDesigner) LinkMemberDataField(ctx context.Context, structureGUID, fieldGUID string, body NewRelationshipRequestBody) error {
	if err := requireGUIDs("data structure guid", structureGUID, "data field guid", fieldGUID); err != nil {
		return err
	}
	return m.link(ctx, body, "data-structures", structureGUID, "member-data-fields", fieldGUID)
}

// DetachMemberDataField removes a field from a data structure
func (m *DataDesigner) DetachMemberDataField(ctx context.Context, structureGUID, fieldGUID string) error {
	if err := requireGUIDs("data structure guid", structureGUID, "data field guid", fieldGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "data-structures", structureGUID, "member-data-fields", fieldGUID)
}

// CreateDataClass creates a data class and returns its GUID
func (m *DataDesigner) CreateDataClass(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "data-classes", body)
}

// FindDataClasses returns the data classes matching search
func (m *DataDesigner) FindDataClasses(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "data-classes", search, opts)
}
