package account

import (
	"context"
	_ "embed" // Used to embed version for use with user agent
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/volvooncall-cn/vehicle-command/internal/log"
	"github.com/volvooncall-cn/vehicle-command/pkg/connector/inet"
	"github.com/volvooncall-cn/vehicle-command/pkg/protocol"
	"github.com/volvooncall-cn/vehicle-command/pkg/vehicle"
)

var (
	//go:embed version.txt
	libraryVersion string
)

const (
	loginEndpoint    = "/app/iam/api/v1/auth"
	vehiclesEndpoint = "/app/account/vehicles/v1/list"

	// Vehicle resources live under different prefixes depending on the head unit platform.
	legacyVehiclePrefix = "/app/vehicle/v1"
	aaosVehiclePrefix   = "/app/vehicle/v2"
)

var (
	ErrInvalidHost = errors.New("invalid API host")
	ErrNotLoggedIn = errors.New("not logged in")
)

// deviceNamespace scopes the name-based UUIDs used as device identifiers.
var deviceNamespace = uuid.MustParse("6f1d2c8e-3b5a-4c1e-9a7d-2e4f6b8c0d1a")

func buildUserAgent(app string) string {
	library := strings.TrimSpace("voc-sdk/" + libraryVersion)
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return library
	}
	path := strings.Split(build.Path, "/")
	if len(path) == 0 {
		return library
	}

	if app == "" {
		app = path[len(path)-1]
		var version string
		if build.Main.Version != "(devel)" && build.Main.Version != "" {
			version = build.Main.Version
		} else {
			for _, info := range build.Settings {
				if info.Key == "vcs.revision" {
					if len(info.Value) > 8 {
						version = info.Value[0:8]
					}
					break
				}
			}
		}

		if version != "" {
			app = fmt.Sprintf("%s/%s", app, version)
		}
	}
	if app == "" {
		return library
	}

	return fmt.Sprintf("%s %s", app, library)
}

// DeviceID returns the device identifier presented to the server when username logs in. The same
// username always yields the same identifier so that repeated logins are not reported to the
// account owner as new devices.
func DeviceID(username string) string {
	return uuid.NewSHA1(deviceNamespace, []byte(username)).String()
}

// Account allows interaction with a Volvo On Call account.
type Account struct {
	// The default UserAgent is constructed from the build information, but can be overridden.
	UserAgent string
	Host      string
	// Subject identifies the account holder. Populated from the access token after Login when
	// available.
	Subject string

	client *resty.Client

	lock       sync.Mutex
	authHeader string
	expiresAt  time.Time
}

type loginRequest struct {
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	DeviceID  string `json:"deviceId"`
	GrantType string `json:"grantType"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// New returns an [Account] for the API gateway at host. Use [Account.Login] before fetching
// vehicles. Optional userAgent can be passed in; otherwise it will be generated from the build
// information.
func New(host, userAgent string) (*Account, error) {
	if host == "" {
		host = inet.DefaultHost
	}
	if !inet.ValidHost(host) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHost, host)
	}
	ua := buildUserAgent(userAgent)
	return &Account{
		UserAgent: ua,
		Host:      host,
		client:    inet.NewClient(host, ua),
	}, nil
}

// SetTransport replaces the HTTP transport used for requests made through the Account and the
// vehicles it returns.
func (a *Account) SetTransport(transport http.RoundTripper) {
	a.client.SetTransport(transport)
}

// Login exchanges username and password for an access token. Subsequent requests made through
// the Account, or through vehicles it returns, are authorized with that token.
func (a *Account) Login(ctx context.Context, username, password string) error {
	request := loginRequest{
		Phone:     username,
		Password:  password,
		DeviceID:  DeviceID(username),
		GrantType: "password",
	}
	data, err := inet.Do(ctx, a.client.R().SetBody(&request), http.MethodPost, loginEndpoint)
	if err != nil {
		var apiErr *protocol.APIError
		var httpErr *inet.HttpError
		if errors.As(err, &apiErr) || errors.Is(err, protocol.ErrUnauthorized) ||
			(errors.As(err, &httpErr) && httpErr.Code == http.StatusForbidden) {
			return fmt.Errorf("%w: %s", protocol.ErrLoginFailed, err)
		}
		return fmt.Errorf("error logging in: %w", err)
	}

	var token loginResponse
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("%w: %s", protocol.ErrBadResponse, err)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("%w: missing access token", protocol.ErrBadResponse)
	}

	expiresAt := time.Time{}
	if token.ExpiresIn > 0 {
		expiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}
	subject, tokenExpiry, err := inspectToken(token.AccessToken)
	if err != nil {
		log.Debug("Access token is not a JWT: %s", err)
	} else {
		a.Subject = subject
		if !tokenExpiry.IsZero() {
			expiresAt = tokenExpiry
		}
	}
	if !expiresAt.IsZero() {
		log.Debug("Access token expires at %s", expiresAt.Format(time.RFC3339))
	}

	a.lock.Lock()
	defer a.lock.Unlock()
	a.authHeader = "Bearer " + strings.TrimSpace(token.AccessToken)
	a.expiresAt = expiresAt
	return nil
}

// We don't verify access tokens; that's the server's job. The claims are only read to report the
// account subject and token lifetime.
func inspectToken(accessToken string) (subject string, expiresAt time.Time, err error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return "", time.Time{}, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, errors.New("invalid token claims")
	}
	subject, _ = claims.GetSubject()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	return subject, expiresAt, nil
}

// LoggedIn returns true if Login succeeded and the token has not expired.
func (a *Account) LoggedIn() bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.authHeader == "" {
		return false
	}
	return a.expiresAt.IsZero() || time.Now().Before(a.expiresAt)
}

// ExpiresAt returns the expiry time of the access token, or the zero time if it is unknown.
func (a *Account) ExpiresAt() time.Time {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.expiresAt
}

func (a *Account) authorization() (string, error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.authHeader == "" {
		return "", ErrNotLoggedIn
	}
	return a.authHeader, nil
}

func (a *Account) authorizedRequest() (*resty.Request, error) {
	authHeader, err := a.authorization()
	if err != nil {
		return nil, err
	}
	return a.client.R().SetHeader("Authorization", authHeader), nil
}

// Get sends an HTTP GET request to endpoint and returns the data member of the response.
//
// The endpoint should contain only the path (e.g., "/app/account/vehicles/v1/list"); the domain
// is determined by a.Host.
func (a *Account) Get(ctx context.Context, endpoint string) ([]byte, error) {
	request, err := a.authorizedRequest()
	if err != nil {
		return nil, err
	}
	return inet.Do(ctx, request, http.MethodGet, endpoint)
}

// Post sends an HTTP POST request to endpoint and returns the data member of the response. The
// body must support JSON serialization; a []byte body is sent as-is.
func (a *Account) Post(ctx context.Context, endpoint string, body interface{}) ([]byte, error) {
	request, err := a.authorizedRequest()
	if err != nil {
		return nil, err
	}
	if body != nil {
		request.SetBody(body)
	}
	return inet.Do(ctx, request, http.MethodPost, endpoint)
}

// Vehicles returns the vehicles bound to the account.
func (a *Account) Vehicles(ctx context.Context) ([]vehicle.Info, error) {
	data, err := a.Get(ctx, vehiclesEndpoint)
	if err != nil {
		return nil, fmt.Errorf("error fetching vehicles: %w", err)
	}
	var vehicles []vehicle.Info
	if len(data) == 0 || string(data) == "null" {
		return vehicles, nil
	}
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("%w: %s", protocol.ErrBadResponse, err)
	}
	return vehicles, nil
}

// GetVehicle returns a [vehicle.Vehicle] for a vehicle returned by [Account.Vehicles]. The vehicle
// shares the account's access token.
func (a *Account) GetVehicle(ctx context.Context, info vehicle.Info) (*vehicle.Vehicle, error) {
	authHeader, err := a.authorization()
	if err != nil {
		return nil, err
	}
	if info.VIN == "" {
		return nil, fmt.Errorf("%w: vehicle has no VIN", protocol.ErrBadResponse)
	}
	prefix := legacyVehiclePrefix
	if info.IsAAOS {
		prefix = aaosVehiclePrefix
	}
	conn := inet.NewConnection(a.client, info.VIN, authHeader, prefix)
	return vehicle.NewVehicle(conn, info), nil
}
