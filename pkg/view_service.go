package egeria

import (
	"context"
	"iter"
)

// viewService carries the request plumbing every OMVS facade shares. The
// facades embed it and expose typed, documented methods on top.
type viewService struct {
	client      *ServerClient
	commandRoot string
}

func newViewService(client *ServerClient, service string) viewService {
	return viewService{client: client, commandRoot: client.ViewServiceURL(service)}
}

// Client returns the shared ServerClient
func (s viewService) Client() *ServerClient {
	return s.client
}

// CommandRoot returns the URL prefix of the view service
func (s viewService) CommandRoot() string {
	return s.commandRoot
}

func (s viewService) url(segments ...string) string {
	return joinURL(s.commandRoot, segments...)
}

func (s viewService) create(ctx context.Context, kind string, body RequestBody) (string, error) {
	return s.client.postForGUID(ctx, s.url(kind), body)
}

func (s viewService) createFromTemplate(ctx context.Context, kind string, body TemplateRequestBody) (string, error) {
	return s.client.postForGUID(ctx, s.url(kind, "from-template"), body)
}

func (s viewService) update(ctx context.Context, kind, guid string, body UpdateElementRequestBody) error {
	if err := requireGUID(kind+" guid", guid); err != nil {
		return err
	}
	return s.client.postNoResult(ctx, s.url(kind, guid, "update"), body)
}

func (s viewService) updateStatus(ctx context.Context, kind, guid, status string) error {
	if err := requireGUID(kind+" guid", guid); err != nil {
		return err
	}
	return s.client.postNoResult(ctx, s.url(kind, guid, "update-status"), UpdateStatusRequestBody{NewStatus: status})
}

func (s viewService) delete(ctx context.Context, kind, guid string, body DeleteElementRequestBody) error {
	if err := requireGUID(kind+" guid", guid); err != nil {
		return err
	}
	return s.client.postNoResult(ctx, s.url(kind, guid, "delete"), body)
}

func (s viewService) retrieve(ctx context.Context, kind, guid string) (*Element, error) {
	if err := requireGUID(kind+" guid", guid); err != nil {
		return nil, err
	}
	return s.client.postForElement(ctx, s.url(kind, guid, "retrieve"), GetRequestBody{})
}

func (s viewService) find(ctx context.Context, kind, search string, opts SearchOptions) ([]Element, error) {
	return s.client.postForElements(ctx, s.url(kind, "by-search-string"), opts.body(search))
}

func (s viewService) findSeq(ctx context.Context, kind, search string, opts SearchOptions) iter.Seq2[Element, error] {
	return Paginate(ctx, opts.pageSize(), s.client.searchPages(s.url(kind, "by-search-string"), search, opts))
}

func (s viewService) byName(ctx context.Context, kind, name string, opts SearchOptions) ([]Element, error) {
	if name == "" {
		return nil, invalidParameter("%s name is required", kind)
	}
	return s.client.postForElements(ctx, s.url(kind, "by-name"), opts.filterBody(name))
}

func (s viewService) graph(ctx context.Context, kind, guid string) (string, error) {
	if err := requireGUID(kind+" guid", guid); err != nil {
		return "", err
	}
	return s.client.postForMermaid(ctx, s.url(kind, guid, "graph"), GetRequestBody{})
}

// link posts to {segments}/attach, the shape every relationship endpoint uses
func (s viewService) link(ctx context.Context, body NewRelationshipRequestBody, segments ...string) error {
	return s.client.postNoResult(ctx, s.url(append(segments, "attach")...), body)
}

// detach posts to {segments}/detach
func (s viewService) detach(ctx context.Context, body DeleteRelationshipRequestBody, segments ...string) error {
	return s.client.postNoResult(ctx, s.url(append(segments, "detach")...), body)
}
