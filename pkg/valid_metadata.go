package egeria

import (
	"context"
	"net/url"
)

const validMetadataService = "valid-metadata"

func init() {
	register(validMetadataService, "Valid Metadata",
		"Maintain the valid values of open metadata properties and browse the type system.",
		TierTech, NewValidMetadataManager)
}

// ValidValueColumns are the default output columns for valid values
var ValidValueColumns = []Column{
	{Name: "Display Name", Key: "displayName"},
	{Name: "Preferred Value", Key: "preferredValue"},
	{Name: "Description", Key: "description"},
	{Name: "Deprecated", Key: "isDeprecated"},
}

// ValidMetadataManager wraps the Valid Metadata view service. Valid values
// are not elements; responses carry them as plain maps.
type ValidMetadataManager struct {
	viewService
}

// NewValidMetadataManager creates the facade on a shared client
func NewValidMetadataManager(client *ServerClient) *ValidMetadataManager {
	return &ValidMetadataManager{viewService: newViewService(client, validMetadataService)}
}

func propertyQuery(typeName string) url.Values {
	return url.Values{"typeName": {typeName}}
}

// SetUpValidMetadataValue adds or replaces an allowed value of propertyName.
// typeName may be empty to apply the value to every type.
func (m *ValidMetadataManager) SetUpValidMetadataValue(ctx context.Context, propertyName, typeName string, value ValidMetadataValue) error {
	if propertyName == "" {
		return invalidParameter("property name is required")
	}
	rawURL := slimURL(m.url("setup-value", propertyName), propertyQuery(typeName))
	return m.client.postNoResult(ctx, rawURL, value)
}

// ClearUpValidMetadataValue removes an allowed value
func (m *ValidMetadataManager) ClearUpValidMetadataValue(ctx context.Context, propertyName, typeName, preferredValue string) error {
	if propertyName == "" || preferredValue == "" {
		return invalidParameter("property name and preferred value are required")
	}
	query := propertyQuery(typeName)
	query.Set("preferredValue", preferredValue)
	rawURL := slimURL(m.url("clear-value", propertyName), query)
	return m.client.postNoResult(ctx, rawURL, nil)
}

// GetValidMetadataValues returns the allowed values of a property
func (m *ValidMetadataManager) GetValidMetadataValues(ctx context.Context, propertyName, typeName string) ([]map[string]any, error) {
	if propertyName == "" {
		return nil, invalidParameter("property name is required")
	}
	rawURL := slimURL(m.url("get-valid-metadata-values", propertyName), propertyQuery(typeName))
	resp, err := m.client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		ElementList []map[string]any `json:"elementList"`
	}
	if err := resp.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.ElementList == nil {
		return []map[string]any{}, nil
	}
	return envelope.ElementList, nil
}

// ValidateMetadataValue reports whether actualValue is allowed for a property
func (m *ValidMetadataManager) ValidateMetadataValue(ctx context.Context, propertyName, typeName, actualValue string) (bool, error) {
	if propertyName == "" {
		return false, invalidParameter("property name is required")
	}
	query := propertyQuery(typeName)
	query.Set("actualValue", actualValue)
	rawURL := slimURL(m.url("validate-value", propertyName), query)
	resp, err := m.client.Get(ctx, rawURL)
	if err != nil {
		return false, err
	}
	return resp.Field("flag").Bool(), nil
}

// GetAllEntityTypes returns the entity type definitions known to the platform
func (m *ValidMetadataManager) GetAllEntityTypes(ctx context.Context) ([]map[string]any, error) {
	return m.typeDefs(ctx, m.url("open-metadata-types", "entity-defs"))
}

// GetAllRelationshipTypes returns the relationship type definitions
func (m *ValidMetadataManager) GetAllRelationshipTypes(ctx context.Context) ([]map[string]any, error) {
	return m.typeDefs(ctx, m.url("open-metadata-types", "relationship-defs"))
}

// GetSubTypes returns the names of the subtypes of typeName
func (m *ValidMetadataManager) GetSubTypes(ctx context.Context, typeName string) ([]string, error) {
	if typeName == "" {
		return nil, invalidParameter("type name is required")
	}
	resp, err := m.client.Get(ctx, m.url("open-metadata-types", "sub-types", typeName))
	if err != nil {
		return nil, err
	}
	names := resp.Strings("stringList")
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (m *ValidMetadataManager) typeDefs(ctx context.Context, rawURL string) ([]map[string]any, error) {
	resp, err := m.client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		TypeDefs []map[string]any `json:"typeDefs"`
	}
	if err := resp.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.TypeDefs == nil {
		return []map[string]any{}, nil
	}
	return envelope.TypeDefs, nil
}
