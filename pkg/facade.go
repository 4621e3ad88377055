package egeria

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
)

// hub owns the shared ServerClient and the sub-clients built so far. Every
// accessor of every composite facade goes through the same hub, so a
// sub-client is built at most once and all of them share one bearer token.
type hub struct {
	client *ServerClient
	tiers  []Tier

	mu     sync.Mutex
	loaded map[string]any
}

func newHub(client *ServerClient, tiers ...Tier) *hub {
	return &hub{client: client, tiers: tiers, loaded: map[string]any{}}
}

// load returns the sub-client registered under name, building it on first use
func load[T any](h *hub, name string, build func(*ServerClient) T) T {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.loaded[name]; ok {
		return v.(T)
	}
	v := build(h.client)
	h.loaded[name] = v
	return v
}

// Client returns the shared ServerClient
func (h *hub) Client() *ServerClient {
	return h.client
}

// Service returns a sub-client by its view service name. Names outside the
// facade's tiers fail with ErrUnknownService.
func (h *hub) Service(name string) (any, error) {
	info, ok := LookupService(name)
	if !ok || info.build == nil || !slices.Contains(h.tiers, info.Tier) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, name)
	}
	return load(h, name, info.build), nil
}

// ServiceNames lists the services reachable through this facade
func (h *hub) ServiceNames() []string {
	var names []string
	for _, s := range Services() {
		if slices.Contains(h.tiers, s.Tier) {
			names = append(names, s.Name)
		}
	}
	return names
}

// Loaded lists the sub-clients built so far, sorted by name
func (h *hub) Loaded() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.loaded))
	for name := range h.loaded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBearerToken logs in on behalf of every sub-client
func (h *hub) CreateBearerToken(ctx context.Context, userID, password string) (string, error) {
	return h.client.CreateBearerToken(ctx, userID, password)
}

// RefreshBearerToken recreates the shared token from the stored credentials
func (h *hub) RefreshBearerToken(ctx context.Context) (string, error) {
	return h.client.RefreshBearerToken(ctx)
}

// Close releases the shared client's idle connections
func (h *hub) Close() {
	h.client.Close()
}

// EgeriaTech exposes the technical view services
type EgeriaTech struct {
	*hub
}

// NewEgeriaTech connects the technical view services
func NewEgeriaTech(cfg Config) (*EgeriaTech, error) {
	client, err := NewServerClient(cfg)
	if err != nil {
		return nil, err
	}
	return &EgeriaTech{hub: newHub(client, TierTech)}, nil
}

// Collections returns the Collection Manager
func (e *EgeriaTech) Collections() *CollectionManager {
	return load(e.hub, collectionManagerService, NewCollectionManager)
}

// Products returns the Product Manager
func (e *EgeriaTech) Products() *ProductManager {
	return load(e.hub, productManagerService, NewProductManager)
}

// Glossary returns the Glossary Manager
func (e *EgeriaTech) Glossary() *GlossaryManager {
	return load(e.hub, glossaryManagerService, NewGlossaryManager)
}

// Actors returns the Actor Manager
func (e *EgeriaTech) Actors() *ActorManager {
	return load(e.hub, actorManagerService, NewActorManager)
}

// Profile returns My Profile
func (e *EgeriaTech) Profile() *MyProfile {
	return load(e.hub, myProfileService, NewMyProfile)
}

// Governance returns the Governance Officer
func (e *EgeriaTech) Governance() *GovernanceOfficer {
	return load(e.hub, governanceOfficerService, NewGovernanceOfficer)
}

// Projects returns the Project Manager
func (e *EgeriaTech) Projects() *ProjectManager {
	return load(e.hub, projectManagerService, NewProjectManager)
}

// Lineage returns the Lineage Linker
func (e *EgeriaTech) Lineage() *LineageLinker {
	return load(e.hub, lineageLinkerService, NewLineageLinker)
}

// Classifications returns the Classification Manager
func (e *EgeriaTech) Classifications() *ClassificationManager {
	return load(e.hub, classificationManagerService, NewClassificationManager)
}

// Feedback returns the Feedback Manager
func (e *EgeriaTech) Feedback() *FeedbackManager {
	return load(e.hub, feedbackManagerService, NewFeedbackManager)
}

// Explorer returns the Metadata Explorer
func (e *EgeriaTech) Explorer() *MetadataExplorer {
	return load(e.hub, metadataExplorerService, NewMetadataExplorer)
}

// ValidMetadata returns the Valid Metadata manager
func (e *EgeriaTech) ValidMetadata() *ValidMetadataManager {
	return load(e.hub, validMetadataService, NewValidMetadataManager)
}

// Curation returns Automated Curation
func (e *EgeriaTech) Curation() *AutomatedCuration {
	return load(e.hub, automatedCurationService, NewAutomatedCuration)
}

// DataDesigner returns the Data Designer
func (e *EgeriaTech) DataDesigner() *DataDesigner {
	return load(e.hub, dataDesignerService, NewDataDesigner)
}

// SolutionArchitect returns the Solution Architect
func (e *EgeriaTech) SolutionArchitect() *SolutionArchitect {
	return load(e.hub, solutionArchitectService, NewSolutionArchitect)
}

// EgeriaOps exposes the runtime and platform services
type EgeriaOps struct {
	*hub
}

// NewEgeriaOps connects the operational services
func NewEgeriaOps(cfg Config) (*EgeriaOps, error) {
	client, err := NewServerClient(cfg)
	if err != nil {
		return nil, err
	}
	return &EgeriaOps{hub: newHub(client, TierOps)}, nil
}

// Runtime returns the Runtime Manager
func (e *EgeriaOps) Runtime() *RuntimeManager {
	return load(e.hub, runtimeManagerService, NewRuntimeManager)
}

// Platform returns the platform services
func (e *EgeriaOps) Platform() *PlatformServices {
	return load(e.hub, platformServicesService, NewPlatformServices)
}

// EgeriaConfig exposes server configuration
type EgeriaConfig struct {
	*hub
}

// NewEgeriaConfig connects the configuration services
func NewEgeriaConfig(cfg Config) (*EgeriaConfig, error) {
	client, err := NewServerClient(cfg)
	if err != nil {
		return nil, err
	}
	return &EgeriaConfig{hub: newHub(client, TierConfig)}, nil
}

// ServerConfig returns the administration services
func (e *EgeriaConfig) ServerConfig() *ServerConfig {
	return load(e.hub, serverConfigService, NewServerConfig)
}

// Egeria exposes every service of every tier through one shared client
type Egeria struct {
	*EgeriaTech
	*EgeriaOps
	*EgeriaConfig

	all *hub
}

// NewEgeria connects every service
func NewEgeria(cfg Config) (*Egeria, error) {
	client, err := NewServerClient(cfg)
	if err != nil {
		return nil, err
	}
	return newEgeria(client), nil
}

func newEgeria(client *ServerClient) *Egeria {
	all := newHub(client, TierTech, TierOps, TierConfig)
	return &Egeria{
		EgeriaTech:   &EgeriaTech{hub: all},
		EgeriaOps:    &EgeriaOps{hub: all},
		EgeriaConfig: &EgeriaConfig{hub: all},
		all:          all,
	}
}

// The tier facades all promote the same hub methods, so Egeria forwards them
// explicitly.

// Client returns the shared client
func (e *Egeria) Client() *ServerClient { return e.all.Client() }

// Service returns a sub-client by its view service name
func (e *Egeria) Service(name string) (any, error) { return e.all.Service(name) }

// ServiceNames lists the services of every tier
func (e *Egeria) ServiceNames() []string { return e.all.ServiceNames() }

// Loaded lists the sub-clients built so far
func (e *Egeria) Loaded() []string { return e.all.Loaded() }

// CreateBearerToken logs in and stores the token on the shared client
func (e *Egeria) CreateBearerToken(ctx context.Context, userID, password string) (string, error) {
	return e.all.CreateBearerToken(ctx, userID, password)
}

// RefreshBearerToken logs in again with the stored credentials
func (e *Egeria) RefreshBearerToken(ctx context.Context) (string, error) {
	return e.all.RefreshBearerToken(ctx)
}

// Close releases the shared client's idle connections
func (e *Egeria) Close() { e.all.Close() }
