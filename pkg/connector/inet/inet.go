package inet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/volvooncall-cn/vehicle-command/internal/log"
	"github.com/volvooncall-cn/vehicle-command/pkg/connector"
	"github.com/volvooncall-cn/vehicle-command/pkg/protocol"
)

// DefaultHost is the API gateway used by the mainland China Volvo Cars app.
const DefaultHost = "apigateway.digitalvolvo.com"

var hostRE = regexp.MustCompile(`^[A-Za-z0-9-.]+(:[0-9]+)?$`) // We're mostly interested in stopping paths; the http package handles the rest.

// ValidHost returns true if host is a bare hostname, optionally followed by a port.
func ValidHost(host string) bool {
	return hostRE.MatchString(host)
}

type HttpError struct {
	Code    int
	Message string
}

func (e *HttpError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Code)
	}
	return fmt.Sprintf("%s: %s", http.StatusText(e.Code), e.Message)
}

func (e *HttpError) MayHaveSucceeded() bool {
	if e.Code >= 400 && e.Code < 500 {
		return false
	}
	return e.Code != http.StatusServiceUnavailable
}

func (e *HttpError) Temporary() bool {
	return e.Code == http.StatusServiceUnavailable ||
		e.Code == http.StatusGatewayTimeout ||
		e.Code == http.StatusRequestTimeout ||
		e.Code == http.StatusTooManyRequests
}

// restyLogger forwards resty's diagnostics to the package logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { log.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { log.Warning(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { log.Debug(format, v...) }

// NewClient returns a client for the API gateway at host. The client is safe for concurrent use
// and is normally shared by an account and all of its vehicle connections. Response bodies longer
// than connector.MaxResponseLength are abandoned while they are read.
func NewClient(host, userAgent string) *resty.Client {
	return resty.New().
		SetBaseURL("https://"+host).
		SetTimeout(connector.DefaultTimeout).
		SetResponseBodyLimit(connector.MaxResponseLength).
		SetLogger(restyLogger{}).
		SetHeader("User-Agent", userAgent).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-Id", uuid.NewString())
			return nil
		})
}

// Do executes request against path and returns the data member of the response envelope.
func Do(ctx context.Context, request *resty.Request, method, path string) ([]byte, error) {
	log.Debug("Sending %s request to %s", method, path)
	response, err := request.SetContext(ctx).Execute(method, path)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, protocol.ErrResponseTooLarge
	}
	if err != nil {
		// A request that timed out after being written may still have been executed.
		ambiguous := method != http.MethodGet && errors.Is(err, context.DeadlineExceeded)
		return nil, &protocol.CommandError{Err: err, PossibleSuccess: ambiguous, PossibleTemporary: true}
	}

	body := response.Body()
	status := response.StatusCode()
	log.Debug("Server returned %d: %s: %s", status, http.StatusText(status), body)
	switch {
	case status >= 200 && status < 300:
		data, err := protocol.UnwrapEnvelope(body)
		if err != nil && errors.Is(err, protocol.ErrBadResponse) {
			return nil, &protocol.CommandError{Err: err, PossibleSuccess: method != http.MethodGet, PossibleTemporary: false}
		}
		return data, err
	case status == http.StatusUnauthorized:
		return nil, protocol.ErrUnauthorized
	case status == http.StatusRequestTimeout:
		if bytes.Contains(body, []byte("offline")) {
			return nil, protocol.ErrVehicleOffline
		}
	}
	message := string(bytes.TrimSpace(body))
	if _, err := protocol.UnwrapEnvelope(body); err != nil {
		var apiErr *protocol.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Error()
		}
	}
	return nil, &HttpError{Code: status, Message: message}
}

// Connection implements the connector.Connector interface using the cloud API's REST endpoints.
type Connection struct {
	vin        string
	prefix     string
	authHeader string
	client     *resty.Client

	lock   sync.Mutex
	closed bool
}

// NewConnection creates a Connection for the vehicle with the given vin. Vehicle resources are
// located under prefix (e.g., "/app/vehicle/v1").
func NewConnection(client *resty.Client, vin, authHeader, prefix string) *Connection {
	return &Connection{
		vin:        vin,
		prefix:     prefix,
		authHeader: authHeader,
		client:     client,
	}
}

func (c *Connection) VIN() string {
	return c.vin
}

func (c *Connection) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.closed = true
}

func (c *Connection) request() (*resty.Request, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return nil, protocol.ErrNotConnected
	}
	return c.client.R().SetHeader("Authorization", c.authHeader), nil
}

func (c *Connection) path(elements ...string) string {
	path := fmt.Sprintf("%s/%s", c.prefix, url.PathEscape(c.vin))
	for _, e := range elements {
		path += "/" + url.PathEscape(e)
	}
	return path
}

// Get fetches a vehicle resource, such as "status".
func (c *Connection) Get(ctx context.Context, resource string) ([]byte, error) {
	request, err := c.request()
	if err != nil {
		return nil, err
	}
	return Do(ctx, request, http.MethodGet, c.path(resource))
}

// SendCommand POSTs command to the remote command endpoint called name. A []byte command is sent
// as-is; a nil command is sent as an empty JSON object.
func (c *Connection) SendCommand(ctx context.Context, name string, command interface{}) ([]byte, error) {
	request, err := c.request()
	if err != nil {
		return nil, err
	}
	if command == nil {
		command = struct{}{}
	}
	request.SetBody(command)
	return Do(ctx, request, http.MethodPost, c.path("command", name))
}
