package egeria

import (
	"context"
)

const runtimeManagerService = "runtime-manager"

func init() {
	register(runtimeManagerService, "Runtime Manager",
		"Inspect and control the platforms and servers of an Egeria deployment.",
		TierOps, NewRuntimeManager)
}

// ServerColumns are the default output columns for platforms and servers
var ServerColumns = []Column{
	{Name: "Name", Key: "displayName"},
	{Name: "Deployed Implementation Type", Key: "deployedImplementationType"},
	{Name: "Qualified Name", Key: "qualifiedName"},
	{Name: "GUID", Key: "guid"},
}

// RuntimeManager wraps the Runtime Manager view service
type RuntimeManager struct {
	viewService
}

// NewRuntimeManager creates the facade on a shared client
func NewRuntimeManager(client *ServerClient) *RuntimeManager {
	return &RuntimeManager{viewService: newViewService(client, runtimeManagerService)}
}

// GetPlatformsByDeployedImplementationType lists the catalogued platforms
// of one implementation type. "*" lists every platform.
func (m *RuntimeManager) GetPlatformsByDeployedImplementationType(ctx context.Context, implementationType string, opts SearchOptions) ([]Element, error) {
	return m.byImplementationType(ctx, "platforms", implementationType, opts)
}

// GetServersByDeployedImplementationType lists the catalogued servers of
// one implementation type. "*" lists every server.
func (m *RuntimeManager) GetServersByDeployedImplementationType(ctx context.Context, implementationType string, opts SearchOptions) ([]Element, error) {
	return m.byImplementationType(ctx, "software-servers", implementationType, opts)
}

func (m *RuntimeManager) byImplementationType(ctx context.Context, kind, implementationType string, opts SearchOptions) ([]Element, error) {
	rawURL := m.url(kind, "by-deployed-implementation-type")
	filter := searchString(implementationType)
	if filter == "" {
		return m.client.postForElements(ctx, rawURL, opts.resultsBody())
	}
	return m.client.postForElements(ctx, rawURL, opts.filterBody(filter))
}

// GetPlatformReport returns the live report of a running platform
func (m *RuntimeManager) GetPlatformReport(ctx context.Context, platformGUID string) (map[string]any, error) {
	if err := requireGUID("platform guid", platformGUID); err != nil {
		return nil, err
	}
	return m.report(ctx, m.url("platforms", platformGUID, "report"))
}

// GetServerReport returns the live report of a running server
func (m *RuntimeManager) GetServerReport(ctx context.Context, serverGUID string) (map[string]any, error) {
	if err := requireGUID("server guid", serverGUID); err != nil {
		return nil, err
	}
	return m.report(ctx, m.url("omag-servers", serverGUID, "instance", "report"))
}

func (m *RuntimeManager) report(ctx context.Context, rawURL string) (map[string]any, error) {
	resp, err := m.client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	report, err := resp.Map("element")
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, notFound(resp.Method, resp.URL)
	}
	return report, nil
}

// ActivateServer starts a server from its stored configuration
func (m *RuntimeManager) ActivateServer(ctx context.Context, serverGUID string) error {
	if err := requireGUID("server guid", serverGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("omag-servers", serverGUID, "instance", "load", "from-stored-config"), nil)
}

// ShutdownServer stops a running server
func (m *RuntimeManager) ShutdownServer(ctx context.Context, serverGUID string) error {
	if err := requireGUID("server guid", serverGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("omag-servers", serverGUID, "instance", "shutdown"), nil)
}

// RefreshConfig asks a running governance or integration server to reload
// its configuration from the metadata store
func (m *RuntimeManager) RefreshConfig(ctx context.Context, serverGUID string) error {
	if err := requireGUID("server guid", serverGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("omag-servers", serverGUID, "instance", "refresh-config"), nil)
}
