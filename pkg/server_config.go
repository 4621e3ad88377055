package egeria

import (
	"context"
	"net/url"
)

const serverConfigService = "admin-services"

func init() {
	register(serverConfigService, "Server Configuration",
		"Build, store and activate OMAG server configuration documents.",
		TierConfig, NewServerConfig)
}

// ServerConfig calls the administration services of the OMAG server
// platform. Like PlatformServices they are addressed per user, not per view
// server.
type ServerConfig struct {
	client *ServerClient
}

// NewServerConfig creates the facade on a shared client
func NewServerConfig(client *ServerClient) *ServerConfig {
	return &ServerConfig{client: client}
}

func (s *ServerConfig) url(serverName string, segments ...string) (string, error) {
	if serverName == "" {
		return "", invalidParameter("server name is required")
	}
	return s.client.PlatformServiceURL(serverConfigService, append([]string{"servers", serverName}, segments...)...)
}

// GetStoredConfiguration returns the configuration document of a server
func (s *ServerConfig) GetStoredConfiguration(ctx context.Context, serverName string) (map[string]any, error) {
	rawURL, err := s.url(serverName, "configuration")
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	config, err := resp.Map("omagserverConfig")
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, notFound(resp.Method, resp.URL)
	}
	return config, nil
}

// SetServerType sets the descriptive server type name
func (s *ServerConfig) SetServerType(ctx context.Context, serverName, typeName string) error {
	rawURL, err := s.url(serverName, "server-type")
	if err != nil {
		return err
	}
	return s.client.postNoResult(ctx, slimURL(rawURL, url.Values{"typeName": {typeName}}), nil)
}

// SetServerURLRoot sets the platform URL the server is reached on
func (s *ServerConfig) SetServerURLRoot(ctx context.Context, serverName, urlRoot string) error {
	if urlRoot == "" {
		return invalidParameter("url root is required")
	}
	rawURL, err := s.url(serverName, "server-url-root")
	if err != nil {
		return err
	}
	return s.client.postNoResult(ctx, slimURL(rawURL, url.Values{"url": {urlRoot}}), nil)
}

// SetDefaultAuditLog routes the audit log to the default destinations
func (s *ServerConfig) SetDefaultAuditLog(ctx context.Context, serverName string) error {
	rawURL, err := s.url(serverName, "audit-log-destinations", "default")
	if err != nil {
		return err
	}
	return s.client.postNoResult(ctx, rawURL, nil)
}

// ConfigureViewServices enables every view service on a view server,
// pointing them at the metadata server remoteServer on remotePlatformURL
func (s *ServerConfig) ConfigureViewServices(ctx context.Context, serverName, remotePlatformURL, remoteServer string) error {
	if remotePlatformURL == "" || remoteServer == "" {
		return invalidParameter("remote platform url and server name are required")
	}
	rawURL, err := s.url(serverName, "view-services")
	if err != nil {
		return err
	}
	body := map[string]any{
		"class":                     "ViewServiceRequestBody",
		"omagserverPlatformRootURL": remotePlatformURL,
		"omagserverName":            remoteServer,
	}
	return s.client.postNoResult(ctx, rawURL, body)
}

// ActivateWithStoredConfig starts a server from its stored configuration
func (s *ServerConfig) ActivateWithStoredConfig(ctx context.Context, serverName string) error {
	rawURL, err := s.url(serverName, "instance")
	if err != nil {
		return err
	}
	return s.client.postNoResult(ctx, rawURL, nil)
}

// DeactivateServer stops a running server; its configuration is kept
func (s *ServerConfig) DeactivateServer(ctx context.Context, serverName string) error {
	rawURL, err := s.url(serverName, "instance")
	if err != nil {
		return err
	}
	_, err = s.client.Delete(ctx, rawURL)
	return err
}

// DeleteServerConfig removes the stored configuration document
func (s *ServerConfig) DeleteServerConfig(ctx context.Context, serverName string) error {
	rawURL, err := s.url(serverName)
	if err != nil {
		return err
	}
	_, err = s.client.Delete(ctx, rawURL)
	return err
}
