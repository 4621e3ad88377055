package egeria

import (
	"context"
	"iter"
)

const glossaryManagerService = "glossary-manager"

func init() {
	register(glossaryManagerService, "Glossary Manager",
		"Author glossaries, glossary terms and the relationships between terms.",
		TierTech, NewGlossaryManager)
}

// GlossaryColumns are the default output columns for glossaries
var GlossaryColumns = []Column{
	{Name: "Glossary Name", Key: "displayName"},
	{Name: "Qualified Name", Key: "qualifiedName"},
	{Name: "Language", Key: "language"},
	{Name: "Description", Key: "description"},
	{Name: "GUID", Key: "guid"},
}

// TermColumns are the default output columns for glossary terms
var TermColumns = []Column{
	{Name: "Term Name", Key: "displayName"},
	{Name: "Summary", Key: "summary"},
	{Name: "Abbreviation", Key: "abbreviation"},
	{Name: "Status", Key: "status"},
	{Name: "GUID", Key: "guid"},
}

// Relationship types accepted by LinkRelatedTerms
const (
	RelatedTermRelationship     = "RelatedTerm"
	SynonymRelationship         = "Synonym"
	AntonymRelationship         = "Antonym"
	ReplacementTermRelationship = "ReplacementTerm"
	TranslationRelationship     = "Translation"
	ISARelationship             = "ISARelationship"
)

// GlossaryManager wraps the Glossary Manager view service
type GlossaryManager struct {
	viewService
}

// NewGlossaryManager creates the facade on a shared client
func NewGlossaryManager(client *ServerClient) *GlossaryManager {
	return &GlossaryManager{viewService: newViewService(client, glossaryManagerService)}
}

// CreateGlossary creates a glossary and returns its GUID
func (m *GlossaryManager) CreateGlossary(ctx context.Context, body NewElementRequestBody) (string, error) {
	return m.create(ctx, "glossaries", body)
}

// UpdateGlossary updates the properties of a glossary
func (m *GlossaryManager) UpdateGlossary(ctx context.Context, glossaryGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "glossaries", glossaryGUID, body)
}

// DeleteGlossary removes a glossary. With cascade its terms go too.
func (m *GlossaryManager) DeleteGlossary(ctx context.Context, glossaryGUID string, cascade bool) error {
	return m.delete(ctx, "glossaries", glossaryGUID, DeleteElementRequestBody{CascadedDelete: cascade})
}

// FindGlossaries returns the glossaries matching search
func (m *GlossaryManager) FindGlossaries(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "glossaries", search, opts)
}

// GetGlossaryByGUID returns one glossary
func (m *GlossaryManager) GetGlossaryByGUID(ctx context.Context, glossaryGUID string) (*Element, error) {
	return m.retrieve(ctx, "glossaries", glossaryGUID)
}

// CreateTerm creates a term. Terms are anchored to their glossary, so
// AnchorGUID (or ParentGUID) should name the glossary.
func (m *GlossaryManager) CreateTerm(ctx context.Context, body NewElementRequestBody) (string, error) {
	if body.AnchorGUID == "" && body.ParentGUID == "" {
		return "", invalidParameter("a term needs an anchor or parent glossary guid")
	}
	return m.create(ctx, "glossary-terms", body)
}

// UpdateTerm updates a term; MergeUpdate keeps unset properties
func (m *GlossaryManager) UpdateTerm(ctx context.Context, termGUID string, body UpdateElementRequestBody) error {
	return m.update(ctx, "glossary-terms", termGUID, body)
}

// UpdateTermStatus moves a term through its lifecycle (DRAFT, ACTIVE, ...)
func (m *GlossaryManager) UpdateTermStatus(ctx context.Context, termGUID, status string) error {
	return m.updateStatus(ctx, "glossary-terms", termGUID, status)
}

// DeleteTerm removes a term
func (m *GlossaryManager) DeleteTerm(ctx context.Context, termGUID string) error {
	return m.delete(ctx, "glossary-terms", termGUID, DeleteElementRequestBody{})
}

// FindTerms returns one page of the terms matching search
func (m *GlossaryManager) FindTerms(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "glossary-terms", search, opts)
}

// FindTermsSeq pages through every term matching search
func (m *GlossaryManager) FindTermsSeq(ctx context.Context, search string, opts SearchOptions) iter.Seq2[Element, error] {
	return m.findSeq(ctx, "glossary-terms", search, opts)
}

// GetTermsByName returns the terms with an exact name
func (m *GlossaryManager) GetTermsByName(ctx context.Context, name string, opts SearchOptions) ([]Element, error) {
	return m.byName(ctx, "glossary-terms", name, opts)
}

// GetTermByGUID returns one term
func (m *GlossaryManager) GetTermByGUID(ctx context.Context, termGUID string) (*Element, error) {
	return m.retrieve(ctx, "glossary-terms", termGUID)
}

// GetTermsForGlossary returns the terms anchored to a glossary
func (m *GlossaryManager) GetTermsForGlossary(ctx context.Context, glossaryGUID string, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("glossary guid", glossaryGUID); err != nil {
		return nil, err
	}
	return m.client.postForElements(ctx, m.url("glossaries", glossaryGUID, "terms"), opts.resultsBody())
}

// LinkTermToGlossary moves a term into another glossary
func (m *GlossaryManager) LinkTermToGlossary(ctx context.Context, glossaryGUID, termGUID string) error {
	if err := requireGUIDs("glossary guid", glossaryGUID, "term guid", termGUID); err != nil {
		return err
	}
	return m.link(ctx, NewRelationshipRequestBody{}, "glossaries", glossaryGUID, "terms", termGUID)
}

// LinkRelatedTerms links two terms with one of the term relationship types
func (m *GlossaryManager) LinkRelatedTerms(ctx context.Context, relationshipType, termGUID, relatedTermGUID string, props *RelatedTermProperties) error {
	if relationshipType == "" {
		return invalidParameter("relationship type is required")
	}
	if err := requireGUIDs("term guid", termGUID, "related term guid", relatedTermGUID); err != nil {
		return err
	}
	body := NewRelationshipRequestBody{}
	if props != nil {
		body.Properties = *props
	}
	return m.link(ctx, body, "glossary-terms", termGUID, "relationships", relationshipType, "glossary-terms", relatedTermGUID)
}

// DetachRelatedTerms removes a relationship added by LinkRelatedTerms
func (m *GlossaryManager) DetachRelatedTerms(ctx context.Context, relationshipType, termGUID, relatedTermGUID string) error {
	if relationshipType == "" {
		return invalidParameter("relationship type is required")
	}
	if err := requireGUIDs("term guid", termGUID, "related term guid", relatedTermGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "glossary-terms", termGUID, "relationships", relationshipType, "glossary-terms", relatedTermGUID)
}
