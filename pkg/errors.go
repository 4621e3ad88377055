package egeria

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrorKind classifies a failed call
type ErrorKind int

const (
	KindAPI ErrorKind = iota
	KindInvalidParameter
	KindUnauthorized
	KindNotFound
	KindConnection
	KindTimeout
)

// String returns the kind name used in error messages
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid parameter"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindConnection:
		return "connection error"
	case KindTimeout:
		return "timeout"
	default:
		return "api error"
	}
}

// Sentinels matched by errors.Is against an *Error of the same kind
var (
	ErrAPI              = errors.New("egeria: api error")
	ErrInvalidParameter = errors.New("egeria: invalid parameter")
	ErrUnauthorized     = errors.New("egeria: unauthorized")
	ErrNotFound         = errors.New("egeria: not found")

	// ErrConnection also covers a request abandoned because its context was
	// cancelled; errors.Is(err, context.Canceled) still reports the cause.
	ErrConnection = errors.New("egeria: connection error")

	ErrTimeout        = errors.New("egeria: timeout")
	ErrUnknownService = errors.New("egeria: unknown service")
)

// Error is the single error type returned by every call that reaches (or
// tries to reach) an Egeria platform.
type Error struct {
	Kind       ErrorKind
	Method     string
	URL        string
	StatusCode int

	// Fields copied from the Egeria exception envelope when present
	ExceptionClass string
	Message        string
	MessageID      string
	SystemAction   string
	UserAction     string

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("egeria: ")
	b.WriteString(e.Kind.String())
	if e.Method != "" {
		fmt.Fprintf(&b, " (%s %s", e.Method, e.URL)
		if e.StatusCode != 0 {
			fmt.Fprintf(&b, " -> %d", e.StatusCode)
		}
		b.WriteString(")")
	}
	if e.MessageID != "" {
		fmt.Fprintf(&b, ": %s", e.MessageID)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindConnection:
		return ErrConnection
	case KindTimeout:
		return ErrTimeout
	default:
		return ErrAPI
	}
}

// invalidParameter builds a client-side validation error; no request was sent.
func invalidParameter(format string, args ...any) error {
	return &Error{Kind: KindInvalidParameter, Err: fmt.Errorf(format, args...)}
}

func notFound(method, url string) error {
	return &Error{Kind: KindNotFound, Method: method, URL: url, Message: "no element returned"}
}

// kindForStatus maps an HTTP status (or an Egeria relatedHTTPCode) to a kind
func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return KindInvalidParameter
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return KindTimeout
	default:
		return KindAPI
	}
}

// responseError inspects a response and returns nil when the call succeeded.
// Egeria reports failures either through the HTTP status or through the
// relatedHTTPCode field of an otherwise 200 response.
func responseError(method, url string, status int, body []byte) error {
	related := 0
	if gjson.ValidBytes(body) {
		related = int(gjson.GetBytes(body, "relatedHTTPCode").Int())
	}

	code := status
	switch {
	case status < 200 || status > 299:
	case related != 0 && related != http.StatusOK:
		code = related
	default:
		return nil
	}

	e := &Error{
		Kind:       kindForStatus(code),
		Method:     method,
		URL:        url,
		StatusCode: code,
	}
	if gjson.ValidBytes(body) {
		fields := gjson.GetManyBytes(body,
			"exceptionClassName",
			"exceptionErrorMessage",
			"exceptionErrorMessageId",
			"exceptionSystemAction",
			"exceptionUserAction",
		)
		e.ExceptionClass = fields[0].String()
		e.Message = fields[1].String()
		e.MessageID = fields[2].String()
		e.SystemAction = fields[3].String()
		e.UserAction = fields[4].String()
	}
	if e.Message == "" && len(body) > 0 && !gjson.ValidBytes(body) {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}

// transportError classifies a failure that happened before any response.
// Deadlines are timeouts; everything else, caller cancellation included, is
// a connection error wrapping the cause.
func transportError(method, url string, err error) error {
	kind := KindConnection
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	}
	return &Error{Kind: kind, Method: method, URL: url, Err: err}
}
