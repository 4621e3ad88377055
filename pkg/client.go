// Package egeria is a client SDK for the view services (OMVS) of an Egeria
// open metadata platform.
package egeria

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultUserAgent = "egeria-go"

// ServerClient holds the connection to one Egeria platform and view server.
// It is safe for concurrent use; every OMVS facade built on it shares its
// bearer token.
type ServerClient struct {
	platformURL string
	viewServer  string
	userAgent   string
	http        *http.Client
	logger      *zap.Logger

	mu       sync.RWMutex
	token    string
	userID   string
	password string
}

// NewServerClient creates a new client from configuration
func NewServerClient(cfg Config) (*ServerClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // self-signed dev platforms
		}
		httpClient = &http.Client{Timeout: timeout, Transport: transport}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &ServerClient{
		platformURL: strings.TrimRight(cfg.PlatformURL, "/"),
		viewServer:  cfg.ViewServer,
		userAgent:   userAgent,
		http:        httpClient,
		logger:      logger.With(zap.String("viewServer", cfg.ViewServer)),
		token:       cfg.Token,
		userID:      cfg.UserID,
		password:    cfg.UserPassword,
	}, nil
}

// PlatformURL returns the platform root URL without a trailing slash
func (c *ServerClient) PlatformURL() string {
	return c.platformURL
}

// ViewServer returns the name of the view server requests are routed to
func (c *ServerClient) ViewServer() string {
	return c.viewServer
}

// UserID returns the user the current token was issued for
func (c *ServerClient) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// Logger returns the client's logger
func (c *ServerClient) Logger() *zap.Logger {
	return c.logger
}

// CreateBearerToken logs in and stores the returned token for later calls
func (c *ServerClient) CreateBearerToken(ctx context.Context, userID, password string) (string, error) {
	if userID == "" {
		return "", invalidParameter("user id is required to create a bearer token")
	}
	if password == "" {
		return "", invalidParameter("password is required to create a bearer token")
	}

	body := map[string]string{"userId": userID, "password": password}
	resp, err := c.send(ctx, http.MethodPost, c.platformURL+"/api/token", body, false)
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(resp.Text())
	if token == "" {
		return "", &Error{Kind: KindUnauthorized, Method: resp.Method, URL: resp.URL, StatusCode: resp.StatusCode, Message: "empty token returned"}
	}

	c.mu.Lock()
	c.token = token
	c.userID = userID
	c.password = password
	c.mu.Unlock()

	c.logger.Info("created bearer token", zap.String("userId", userID))
	return token, nil
}

// RefreshBearerToken recreates the token from the stored credentials
func (c *ServerClient) RefreshBearerToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	userID, password := c.userID, c.password
	c.mu.RUnlock()

	if userID == "" || password == "" {
		return "", invalidParameter("no stored credentials to refresh the bearer token")
	}
	return c.CreateBearerToken(ctx, userID, password)
}

// SetBearerToken installs a token obtained elsewhere
func (c *ServerClient) SetBearerToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// BearerToken returns the current token, or ""
func (c *ServerClient) BearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ClearBearerToken forgets the token and the stored credentials
func (c *ServerClient) ClearBearerToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.password = ""
}

// Close releases idle connections
func (c *ServerClient) Close() {
	c.http.CloseIdleConnections()
}

// Get issues an authenticated GET
func (c *ServerClient) Get(ctx context.Context, rawURL string) (*Response, error) {
	return c.send(ctx, http.MethodGet, rawURL, nil, true)
}

// Post issues an authenticated POST. body may be nil, a RequestBody, a map
// or raw JSON.
func (c *ServerClient) Post(ctx context.Context, rawURL string, body any) (*Response, error) {
	return c.send(ctx, http.MethodPost, rawURL, body, true)
}

// Delete issues an authenticated DELETE. Only the platform and admin
// services use it; view services delete through POST.
func (c *ServerClient) Delete(ctx context.Context, rawURL string) (*Response, error) {
	return c.send(ctx, http.MethodDelete, rawURL, nil, true)
}

func (c *ServerClient) send(ctx context.Context, method, rawURL string, body any, authenticate bool) (*Response, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, invalidParameter("failed to build request for %s: %v", rawURL, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticate {
		if token := c.BearerToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("url", rawURL),
			zap.String("requestId", requestID),
			zap.Error(err))
		return nil, transportError(method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(method, rawURL, fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("requestId", requestID))

	if err := responseError(method, rawURL, resp.StatusCode, data); err != nil {
		return nil, err
	}

	return &Response{
		Method:     method,
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}

// ViewServiceURL builds {platform}/servers/{viewServer}/api/open-metadata/{service}/{segments...}.
// Every segment is path-escaped, so GUIDs and names can be passed as is.
func (c *ServerClient) ViewServiceURL(service string, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.platformURL)
	b.WriteString("/servers/")
	b.WriteString(url.PathEscape(c.viewServer))
	b.WriteString("/api/open-metadata/")
	b.WriteString(url.PathEscape(service))
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// PlatformServiceURL builds {platform}/open-metadata/{service}/users/{user}/{segments...}
// for the platform level services that are not routed through a view server.
// It fails when no user is known.
func (c *ServerClient) PlatformServiceURL(service string, segments ...string) (string, error) {
	if c.UserID() == "" {
		return "", invalidParameter("a user id is required to call %s", service)
	}
	var b strings.Builder
	b.WriteString(c.platformURL)
	b.WriteString("/open-metadata/")
	b.WriteString(url.PathEscape(service))
	b.WriteString("/users/")
	b.WriteString(url.PathEscape(c.UserID()))
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String(), nil
}

// joinURL appends already-escaped path segments to a command root
func joinURL(root string, segments ...string) string {
	if len(segments) == 0 {
		return root
	}
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return root + "/" + strings.Join(escaped, "/")
}

// slimURL appends the non-empty query parameters to base
func slimURL(base string, query url.Values) string {
	slim := url.Values{}
	for key, values := range query {
		for _, v := range values {
			if v != "" {
				slim.Add(key, v)
			}
		}
	}
	if len(slim) == 0 {
		return base
	}
	return base + "?" + slim.Encode()
}

// postForGUID posts body and returns the "guid" of the envelope
func (c *ServerClient) postForGUID(ctx context.Context, rawURL string, body any) (string, error) {
	resp, err := c.Post(ctx, rawURL, body)
	if err != nil {
		return "", err
	}
	guid := resp.GUID()
	if guid == "" {
		return "", &Error{Kind: KindAPI, Method: resp.Method, URL: resp.URL, StatusCode: resp.StatusCode, Message: "no guid returned"}
	}
	return guid, nil
}

// postForElement posts body and returns the single element of the envelope
func (c *ServerClient) postForElement(ctx context.Context, rawURL string, body any) (*Element, error) {
	resp, err := c.Post(ctx, rawURL, body)
	if err != nil {
		return nil, err
	}
	return elementOrNotFound(resp)
}

// getForElement is postForElement for GET endpoints
func (c *ServerClient) getForElement(ctx context.Context, rawURL string) (*Element, error) {
	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return elementOrNotFound(resp)
}

func elementOrNotFound(resp *Response) (*Element, error) {
	el, err := resp.Element()
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, notFound(resp.Method, resp.URL)
	}
	return el, nil
}

// postForElements posts body and returns the element list of the envelope
func (c *ServerClient) postForElements(ctx context.Context, rawURL string, body any) ([]Element, error) {
	resp, err := c.Post(ctx, rawURL, body)
	if err != nil {
		return nil, err
	}
	return resp.Elements()
}

// getForElements is postForElements for GET endpoints
func (c *ServerClient) getForElements(ctx context.Context, rawURL string) ([]Element, error) {
	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return resp.Elements()
}

// postForMermaid posts body and returns the mermaid graph of the envelope
func (c *ServerClient) postForMermaid(ctx context.Context, rawURL string, body any) (string, error) {
	resp, err := c.Post(ctx, rawURL, body)
	if err != nil {
		return "", err
	}
	graph := resp.MermaidGraph()
	if graph == "" {
		return "", notFound(resp.Method, resp.URL)
	}
	return graph, nil
}

// postNoResult posts body and discards the envelope
func (c *ServerClient) postNoResult(ctx context.Context, rawURL string, body any) error {
	_, err := c.Post(ctx, rawURL, body)
	return err
}

// requireGUID rejects empty identifiers before a request is built
func requireGUID(name, guid string) error {
	if strings.TrimSpace(guid) == "" {
		return invalidParameter("%s is required", name)
	}
	return nil
}

// requireGUIDs checks several name/guid pairs
func requireGUIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := requireGUID(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
