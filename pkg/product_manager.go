package egeria

import (
	"context"
)

const productManagerService = "product-manager"

func init() {
	register(productManagerService, "Product Manager",
		"Maintain digital products, their dependencies and managers.",
		TierTech, NewProductManager)
}

// DigitalProductColumns are the default output columns for digital products
var DigitalProductColumns = []Column{
	{Name: "Display Name", Key: "displayName"},
	{Name: "Product Name", Key: "productName"},
	{Name: "Status", Key: "productStatus"},
	{Name: "Maturity", Key: "maturity"},
	{Name: "GUID", Key: "guid"},
}

// ProductManager wraps the Product Manager view service
type ProductManager struct {
	viewService
}

// NewProductManager creates the facade on a shared client
func NewProductManager(client *ServerClient) *ProductManager {
	return &ProductManager{viewService: newViewService(client, productManagerService)}
}

// FindDigitalProducts returns the products matching search
func (m *ProductManager) FindDigitalProducts(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "digital-products", search, opts)
}

// GetDigitalProductByGUID returns one digital product
func (m *ProductManager) GetDigitalProductByGUID(ctx context.Context, productGUID string) (*Element, error) {
	return m.retrieve(ctx, "digital-products", productGUID)
}

// CreateDigitalProduct creates a product. Set ParentGUID to place it in a
// product catalog at the same time.
func (m *ProductManager) CreateDigitalProduct(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "digital-products", body)
}

// UpdateDigitalProduct updates the properties of a digital product
func (m *ProductManager) UpdateDigitalProduct(ctx context.Context, productGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "digital-products", productGUID, body)
}

// DeleteDigitalProduct removes a product. With cascade its anchored elements go too.
func (m *ProductManager) DeleteDigitalProduct(ctx context.Context, productGUID string, cascade bool) error {
	return m.delete(ctx, "digital-products", productGUID, DeleteElementRequestBody{CascadedDelete: cascade})
}

// LinkProductDependency records that consumerGUID depends on providerGUID
func (m *ProductManager) LinkProductDependency(ctx context.Context, consumerGUID, providerGUID string, props *DependencyProperties) error {
	if err := requireGUIDs("consumer product guid", consumerGUID, "provider product guid", providerGUID); err != nil {
		return err
	}
	body := NewRelationshipRequestBody{}
	if props != nil {
		body.Properties = *props
	}
	return m.link(ctx, body, "digital-products", consumerGUID, "product-dependencies", providerGUID)
}

// DetachProductDependency removes the link added by LinkProductDependency
func (m *ProductManager) DetachProductDependency(ctx context.Context, consumerGUID, providerGUID string) error {
	if err := requireGUIDs("consumer product guid", consumerGUID, "provider product guid", providerGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "digital-products", consumerGUID, "product-dependencies", providerGUID)
}

// LinkProductManager assigns the actor role managerRoleGUID to a product
func (m *ProductManager) LinkProductManager(ctx context.Context, productGUID, managerRoleGUID string, props *AssignmentProperties) error {
	if err := requireGUIDs("product guid", productGUID, "manager role guid", managerRoleGUID); err != nil {
		return err
	}
	body := NewRelationshipRequestBody{}
	if props != nil {
		body.Properties = *props
	}
	return m.link(ctx, body, "digital-products", productGUID, "product-managers", managerRoleGUID)
}

// DetachProductManager removes a manager role from a product
func (m *ProductManager) DetachProductManager(ctx context.Context, productGUID, managerRoleGUID string) error {
	if err := requireGUIDs("product guid", productGUID, "manager role guid", managerRoleGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "digital-products", productGUID, "product-managers", managerRoleGUID)
}
