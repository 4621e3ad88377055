package testhelpers

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/demetere/egeria-go/pkg"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// TestToken is what the mock token endpoint hands out
	TestToken = "test-token"

	TestUser       = "erinoverview"
	TestPassword   = "secret"
	TestViewServer = "qs-view-server"
)

// Request is one call received by MockEgeria
type Request struct {
	Method  string
	Path    string
	RawPath string
	Query   url.Values
	Header  http.Header
	Body    map[string]any
	RawBody []byte
}

type route struct {
	method string
	suffix string
	status int
	body   []byte
}

// MockEgeria is an httptest server speaking enough of the Egeria REST
// envelope to exercise the client: it records every request and replies
// with canned responses.
type MockEgeria struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []Request
	routes   []route
}

// NewMockEgeria starts a mock platform that is closed when the test ends
func NewMockEgeria(t *testing.T) *MockEgeria {
	t.Helper()
	m := &MockEgeria{}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Server.Close)
	m.Handle(http.MethodPost, "/api/token", http.StatusOK, TestToken)
	return m
}

// URL returns the platform root URL
func (m *MockEgeria) URL() string {
	return m.Server.URL
}

// Config returns a client configuration pointing at the mock
func (m *MockEgeria) Config() egeria.Config {
	return egeria.Config{
		PlatformURL: m.Server.URL,
		ViewServer:  TestViewServer,
		UserID:      TestUser,
		Token:       TestToken,
		HTTPClient:  m.Server.Client(),
	}
}

// Client returns a ServerClient pointing at the mock
func (m *MockEgeria) Client(t *testing.T) *egeria.ServerClient {
	t.Helper()
	client, err := egeria.NewServerClient(m.Config())
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

// Handle registers a canned reply for requests whose escaped path ends with
// suffix. body may be a string (sent as is) or any value (sent as JSON). The
// most recently registered matching route wins.
func (m *MockEgeria) Handle(method, suffix string, status int, body any) {
	var data []byte
	switch b := body.(type) {
	case string:
		data = []byte(b)
	case []byte:
		data = b
	default:
		var err error
		data, err = json.Marshal(b)
		if err != nil {
			panic(err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = append(m.routes, route{method: method, suffix: suffix, status: status, body: data})
}

// Requests returns every request received so far
func (m *MockEgeria) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, failing the test if none
func (m *MockEgeria) LastRequest(t *testing.T) Request {
	t.Helper()
	reqs := m.Requests()
	require.NotEmpty(t, reqs, "no request reached the mock platform")
	return reqs[len(reqs)-1]
}

// Reset forgets the recorded requests; routes are kept
func (m *MockEgeria) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
}

func (m *MockEgeria) serve(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	req := Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		RawPath: r.URL.EscapedPath(),
		Query:   r.URL.Query(),
		Header:  r.Header.Clone(),
		RawBody: data,
	}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &req.Body)
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	status, body := http.StatusOK, []byte(`{"class":"VoidResponse","relatedHTTPCode":200}`)
	for i := len(m.routes) - 1; i >= 0; i-- {
		rt := m.routes[i]
		if rt.method == r.Method && strings.HasSuffix(req.RawPath, rt.suffix) {
			status, body = rt.status, rt.body
			break
		}
	}
	m.mu.Unlock()

	if json.Valid(body) {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// ELEMENT FIXTURES

// Element builds an element the way view services return them
func Element(guid, typeName string, properties map[string]any) map[string]any {
	return map[string]any{
		"elementHeader": map[string]any{
			"class":  "ElementHeader",
			"guid":   guid,
			"status": "ACTIVE",
			"type":   map[string]any{"typeName": typeName},
		},
		"properties": properties,
	}
}

// GUIDResponse is the envelope of a create call
func GUIDResponse(guid string) map[string]any {
	return map[string]any{"class": "GUIDResponse", "relatedHTTPCode": 200, "guid": guid}
}

// ElementResponse is the envelope of a single-element getter
func ElementResponse(element map[string]any) map[string]any {
	return map[string]any{"class": "ElementResponse", "relatedHTTPCode": 200, "element": element}
}

// ElementListResponse is the envelope of a find or list call
func ElementListResponse(elements ...map[string]any) map[string]any {
	if elements == nil {
		elements = []map[string]any{}
	}
	return map[string]any{"class": "ElementsResponse", "relatedHTTPCode": 200, "elementList": elements}
}

// MermaidResponse is the envelope of a graph call
func MermaidResponse(graph string) map[string]any {
	return map[string]any{"class": "ElementResponse", "relatedHTTPCode": 200, "mermaidGraph": graph}
}

// ExceptionResponse is the envelope of a failed call
func ExceptionResponse(status int, exceptionClass, messageID, message string) map[string]any {
	return map[string]any{
		"class":                   "VoidResponse",
		"relatedHTTPCode":         status,
		"exceptionClassName":      exceptionClass,
		"exceptionErrorMessageId": messageID,
		"exceptionErrorMessage":   message,
		"exceptionSystemAction":   "The request was rejected.",
		"exceptionUserAction":     "Correct the request and retry.",
	}
}

// CONTAINER

// SetupEgeriaContainer starts an Egeria platform container and returns a
// logged-in client. Image, view server and credentials can be overridden
// through EGERIA_IMAGE, EGERIA_VIEW_SERVER, EGERIA_USER and
// EGERIA_USER_PASSWORD.
func SetupEgeriaContainer(t *testing.T, ctx context.Context) (testcontainers.Container, *egeria.Egeria) {
	t.Helper()

	image := envOr("EGERIA_IMAGE", "docker.io/odpi/egeria-platform:latest")
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"9443/tcp"},
			WaitingFor: wait.ForHTTP("/open-metadata/platform-services/users/"+envOr("EGERIA_USER", TestUser)+"/server-platform/origin").
				WithPort("9443/tcp").
				WithTLS(true, &tls.Config{InsecureSkipVerify: true}). //nolint:gosec // self-signed platform certificate
				WithStartupTimeout(5 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)

	endpoint, err := container.PortEndpoint(ctx, "9443/tcp", "https")
	require.NoError(t, err)

	client, err := egeria.NewEgeria(egeria.Config{
		PlatformURL:        endpoint,
		ViewServer:         envOr("EGERIA_VIEW_SERVER", TestViewServer),
		InsecureSkipVerify: true,
		Timeout:            time.Minute,
	})
	require.NoError(t, err)

	_, err = client.CreateBearerToken(ctx, envOr("EGERIA_USER", TestUser), envOr("EGERIA_USER_PASSWORD", TestPassword))
	require.NoError(t, err)

	return container, client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
