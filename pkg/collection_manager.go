package egeria

import (
	"context"
	"iter"
)

const collectionManagerService = "collection-manager"

func init() {
	register(collectionManagerService, "Collection Manager",
		"Create and maintain collections, folders and their members.",
		TierTech, NewCollectionManager)
}

// CollectionColumns are the default output columns for collections
var CollectionColumns = []Column{
	{Name: "Display Name", Key: "displayName"},
	{Name: "Qualified Name", Key: "qualifiedName"},
	{Name: "Category", Key: "category"},
	{Name: "Description", Key: "description"},
	{Name: "GUID", Key: "guid"},
}

// CollectionManager wraps the Collection Manager view service
type CollectionManager struct {
	viewService
}

// NewCollectionManager creates the facade on a shared client
func NewCollectionManager(client *ServerClient) *CollectionManager {
	return &CollectionManager{viewService: newViewService(client, collectionManagerService)}
}

// GetAttachedCollections returns the collections linked to parentGUID
func (m *CollectionManager) GetAttachedCollections(ctx context.Context, parentGUID string, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("parent guid", parentGUID); err != nil {
		return nil, err
	}
	return m.client.postForElements(ctx, m.url("metadata-elements", parentGUID, "collections"), opts.resultsBody())
}

// FindCollections searches collections by a regular expression. "*" matches
// every collection.
func (m *CollectionManager) FindCollections(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "collections", search, opts)
}

// FindCollectionsSeq pages through every collection matching search
func (m *CollectionManager) FindCollectionsSeq(ctx context.Context, search string, opts SearchOptions) iter.Seq2[Element, error] {
	return m.findSeq(ctx, "collections", search, opts)
}

// GetCollectionsByName returns the collections with an exact name
func (m *CollectionManager) GetCollectionsByName(ctx context.Context, name string, opts SearchOptions) ([]Element, error) {
	return m.byName(ctx, "collections", name, opts)
}

// GetCollectionsByCategory returns the collections of a category
func (m *CollectionManager) GetCollectionsByCategory(ctx context.Context, category string, opts SearchOptions) ([]Element, error) {
	if category == "" {
		return nil, invalidParameter("collection category is required")
	}
	return m.client.postForElements(ctx, m.url("collections", "by-category"), opts.filterBody(category))
}

// GetCollectionByGUID returns one collection. A missing collection is ErrNotFound.
func (m *CollectionManager) GetCollectionByGUID(ctx context.Context, collectionGUID string) (*Element, error) {
	return m.retrieve(ctx, "collections", collectionGUID)
}

// GetCollectionMembers returns the elements in a collection
func (m *CollectionManager) GetCollectionMembers(ctx context.Context, collectionGUID string, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("collection guid", collectionGUID); err != nil {
		return nil, err
	}
	return m.client.postForElements(ctx, m.url("collections", collectionGUID, "members"), opts.resultsBody())
}

// GetCollectionGraph returns the mermaid graph of a collection and its members
func (m *CollectionManager) GetCollectionGraph(ctx context.Context, collectionGUID string) (string, error) {
	return m.graph(ctx, "collections", collectionGUID)
}

// CreateCollection creates a collection and returns its GUID. The properties
// are usually CollectionProperties; a classification such as Folder can be
// requested through InitialClassifications.
func (m *CollectionManager) CreateCollection(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "collections", body)
}

// CreateCollectionFromTemplate copies a template collection
func (m *CollectionManager) CreateCollectionFromTemplate(ctx context.Context, body TemplateRequestBody) (string, error) {
	return m.createFromTemplate(ctx, "collections", body)
}

// UpdateCollection updates a collection; MergeUpdate keeps unset properties
func (m *CollectionManager) UpdateCollection(ctx context.Context, collectionGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "collections", collectionGUID, body)
}

// DeleteCollection removes a collection. With cascade its anchored elements go too.
func (m *CollectionManager) DeleteCollection(ctx context.Context, collectionGUID string, cascade bool) error {
	return m.delete(ctx, "collections", collectionGUID, DeleteElementRequestBody{CascadedDelete: cascade})
}

// AddToCollection makes elementGUID a member of collectionGUID. props may be
// nil.
func (m *CollectionManager) AddToCollection(ctx context.Context, collectionGUID, elementGUID string, props *CollectionMembershipProperties) error {
	if err := requireGUIDs("collection guid", collectionGUID, "element guid", elementGUID); err != nil {
		return err
	}
	body := NewRelationshipRequestBody{}
	if props != nil {
		body.Properties = *props
	}
	return m.link(ctx, body, "collections", collectionGUID, "members", elementGUID)
}

// UpdateCollectionMembership changes the properties of a membership link
func (m *CollectionManager) UpdateCollectionMembership(ctx context.Context, collectionGUID, elementGUID string, props CollectionMembershipProperties, merge bool) error {
	if err := requireGUIDs("collection guid", collectionGUID, "element guid", elementGUID); err != nil {
		return err
	}
	body := UpdateRelationshipRequestBody{MergeUpdate: merge, Properties: props}
	return m.client.postNoResult(ctx, m.url("collections", collectionGUID, "members", elementGUID, "update"), body)
}

// RemoveFromCollection removes a member; the element itself is kept
func (m *CollectionManager) RemoveFromCollection(ctx context.Context, collectionGUID, elementGUID string) error {
	if err := requireGUIDs("collection guid", collectionGUID, "element guid", elementGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "collections", collectionGUID, "members", elementGUID)
}

// AttachCollection links a collection to the element it describes
func (m *CollectionManager) AttachCollection(ctx context.Context, parentGUID, collectionGUID string, body NewRelationshipRequestBody) error {
	if err := requireGUIDs("parent guid", parentGUID, "collection guid", collectionGUID); err != nil {
		return err
	}
	return m.link(ctx, body, "metadata-elements", parentGUID, "collections", collectionGUID)
}

// DetachCollection unlinks a collection from the element it was attached to
func (m *CollectionManager) DetachCollection(ctx context.Context, parentGUID, collectionGUID string) error {
	if err := requireGUIDs("parent guid", parentGUID, "collection guid", collectionGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "metadata-elements", parentGUID, "collections", collectionGUID)
}
