package egeria

import (
	"context"
	"iter"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

const metadataExplorerService = "metadata-explorer"

// maxConcurrentFetches bounds the parallel requests of the bulk getters
const maxConcurrentFetches = 8

func init() {
	register(metadataExplorerService, "Metadata Explorer",
		"Generic navigation of any metadata element and its relationships.",
		TierTech, NewMetadataExplorer)
}

// MetadataExplorer wraps the Metadata Explorer view service
type MetadataExplorer struct {
	viewService
}

// NewMetadataExplorer creates the facade on a shared client
func NewMetadataExplorer(client *ServerClient) *MetadataExplorer {
	return &MetadataExplorer{viewService: newViewService(client, metadataExplorerService)}
}

// GetMetadataElementByGUID returns any element by its GUID
func (m *MetadataExplorer) GetMetadataElementByGUID(ctx context.Context, elementGUID string) (*Element, error) {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return nil, err
	}
	return m.client.postForElement(ctx, m.url("metadata-elements", elementGUID), GetRequestBody{})
}

// GetMetadataElementsByGUIDs fetches several elements in parallel. The result
// keeps the order of guids; the first failure cancels the rest.
func (m *MetadataExplorer) GetMetadataElementsByGUIDs(ctx context.Context, guids []string) ([]Element, error) {
	out := make([]Element, len(guids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, guid := range guids {
		g.Go(func() error {
			el, err := m.GetMetadataElementByGUID(gctx, guid)
			if err != nil {
				return err
			}
			out[i] = *el
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindMetadataElements searches elements of every type
func (m *MetadataExplorer) FindMetadataElements(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "metadata-elements", search, opts)
}

// FindMetadataElementsSeq pages through every element matching search
func (m *MetadataExplorer) FindMetadataElementsSeq(ctx context.Context, search string, opts SearchOptions) iter.Seq2[Element, error] {
	return m.findSeq(ctx, "metadata-elements", search, opts)
}

// GetMetadataElementsByType returns the elements of an open metadata type
// and its subtypes
func (m *MetadataExplorer) GetMetadataElementsByType(ctx context.Context, typeName string, opts SearchOptions) ([]Element, error) {
	if typeName == "" {
		return nil, invalidParameter("type name is required")
	}
	opts.MetadataElementTypeName = typeName
	return m.client.postForElements(ctx, m.url("metadata-elements", "by-type"), opts.resultsBody())
}

// GetRelatedElements returns the relationships of an element. An empty
// relationshipType matches every type.
func (m *MetadataExplorer) GetRelatedElements(ctx context.Context, elementGUID, relationshipType string, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return nil, err
	}
	rawURL := m.url("related-elements", elementGUID, "any-type")
	if relationshipType != "" {
		rawURL = m.url("related-elements", elementGUID, "type", relationshipType)
	}
	return m.client.postForElements(ctx, rawURL, opts.resultsBody())
}

// GetAnchoredElementsGraph returns the mermaid graph of an element and the
// elements anchored to it
func (m *MetadataExplorer) GetAnchoredElementsGraph(ctx context.Context, elementGUID string) (string, error) {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return "", err
	}
	return m.client.postForMermaid(ctx, m.url("metadata-elements", elementGUID, "with-anchored-elements"), GetRequestBody{})
}

// GetElementHistory returns the stored versions of an element, newest first
// unless oldestFirst is set
func (m *MetadataExplorer) GetElementHistory(ctx context.Context, elementGUID string, oldestFirst bool, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return nil, err
	}
	query := url.Values{}
	if oldestFirst {
		query.Set("oldestFirst", strconv.FormatBool(oldestFirst))
	}
	rawURL := slimURL(m.url("metadata-elements", elementGUID, "history"), query)
	return m.client.postForElements(ctx, rawURL, opts.resultsBody())
}
