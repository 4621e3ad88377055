package egeria

import (
	"context"
	"strings"
)

const platformServicesService = "platform-services"

func init() {
	register(platformServicesService, "Platform Services",
		"Query the OMAG server platform itself: origin, servers and their status.",
		TierOps, NewPlatformServices)
}

// PlatformServices calls the platform services of the OMAG server platform.
// They are not routed through a view server; URLs carry the calling user.
type PlatformServices struct {
	client *ServerClient
}

// NewPlatformServices creates the facade on a shared client
func NewPlatformServices(client *ServerClient) *PlatformServices {
	return &PlatformServices{client: client}
}

func (p *PlatformServices) url(segments ...string) (string, error) {
	return p.client.PlatformServiceURL(platformServicesService, append([]string{"server-platform"}, segments...)...)
}

// GetPlatformOrigin returns the platform's build description
func (p *PlatformServices) GetPlatformOrigin(ctx context.Context) (string, error) {
	rawURL, err := p.url("origin")
	if err != nil {
		return "", err
	}
	resp, err := p.client.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// GetActiveServers lists the servers running on the platform
func (p *PlatformServices) GetActiveServers(ctx context.Context) ([]string, error) {
	return p.serverList(ctx, "servers", "active")
}

// GetKnownServers lists every server started on the platform since it came up
func (p *PlatformServices) GetKnownServers(ctx context.Context) ([]string, error) {
	return p.serverList(ctx, "servers")
}

func (p *PlatformServices) serverList(ctx context.Context, segments ...string) ([]string, error) {
	rawURL, err := p.url(segments...)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	servers := resp.Strings("serverList")
	if servers == nil {
		servers = []string{}
	}
	return servers, nil
}

// IsServerActive reports whether serverName is running on the platform
func (p *PlatformServices) IsServerActive(ctx context.Context, serverName string) (bool, error) {
	if serverName == "" {
		return false, invalidParameter("server name is required")
	}
	rawURL, err := p.url("servers", serverName, "is-active")
	if err != nil {
		return false, err
	}
	resp, err := p.client.Get(ctx, rawURL)
	if err != nil {
		return false, err
	}
	return resp.Field("flag").Bool(), nil
}

// ServerStatus is the status envelope of one server
type ServerStatus struct {
	ServerName      string `json:"serverName"`
	ServerType      string `json:"serverType"`
	IsActive        bool   `json:"active"`
	ServerStartTime any    `json:"serverStartTime,omitempty"`
	ServerEndTime   any    `json:"serverEndTime,omitempty"`
}

// GetServerStatus returns the status of a server known to the platform
func (p *PlatformServices) GetServerStatus(ctx context.Context, serverName string) (*ServerStatus, error) {
	if serverName == "" {
		return nil, invalidParameter("server name is required")
	}
	rawURL, err := p.url("servers", serverName, "status")
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	var status ServerStatus
	if err := resp.Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ShutdownPlatform stops every server and then the platform
func (p *PlatformServices) ShutdownPlatform(ctx context.Context) error {
	rawURL, err := p.url("instance")
	if err != nil {
		return err
	}
	_, err = p.client.Delete(ctx, rawURL)
	return err
}
