package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// Error exposes methods useful for categorizing errors.
type Error interface {
	error

	// MayHaveSucceeded returns true if the Error was triggered by a command that might have been
	// executed. For example, if a client times out while waiting for a response, then the client
	// cannot tell if the command reached the vehicle. (Not all timeouts mean the command
	// MayHaveSucceeded, so the common Timeout() error interface is not appropriate here).
	MayHaveSucceeded() bool

	// Temporary returns true if the Error might be the result of a transient condition. For
	// example, the cloud service reports vehicles that are asleep or out of coverage as offline
	// until the telematics unit reconnects.
	Temporary() bool
}

var (
	// ErrNotConnected indicates the connection to the vehicle was closed.
	ErrNotConnected = NewError("vehicle not connected", false, false)
	// ErrVehicleOffline indicates the cloud service could not reach the vehicle.
	ErrVehicleOffline = NewError("vehicle unavailable: vehicle is offline or asleep", false, true)
	// ErrResponseTooLarge indicates the server sent a response that exceeded the maximum supported
	// length. The request may have been executed.
	ErrResponseTooLarge = NewError("response exceeds maximum length", true, false)
	// ErrUnauthorized indicates the server rejected the access token.
	ErrUnauthorized = NewError("access token rejected; log in again", false, false)
	// ErrLoginFailed indicates the server rejected the account credentials.
	ErrLoginFailed = errors.New("login failed: invalid username or password")
	// ErrBadResponse indicates the server sent a response the client could not parse.
	ErrBadResponse = errors.New("invalid response")
)

type CommandError struct {
	Err               error
	PossibleSuccess   bool
	PossibleTemporary bool
}

func NewError(message string, mayHaveSucceeded bool, temporary bool) error {
	return &CommandError{Err: errors.New(message), PossibleSuccess: mayHaveSucceeded, PossibleTemporary: temporary}
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) MayHaveSucceeded() bool {
	return e.PossibleSuccess
}

func (e *CommandError) Temporary() bool {
	return e.PossibleTemporary
}

// APIError is returned when the server answers a request with an envelope whose success flag is
// false.
type APIError struct {
	Code    string
	Message string
}

var unauthorizedCodes = map[string]bool{
	"401":           true,
	"UNAUTHORIZED":  true,
	"TOKEN_EXPIRED": true,
	"TOKEN_INVALID": true,
}

var temporaryCodes = map[string]bool{
	"VEHICLE_OFFLINE": true,
	"VEHICLE_BUSY":    true,
	"SERVICE_BUSY":    true,
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned error code %s", e.Code)
	}
	return fmt.Sprintf("%s (code %s)", e.Message, e.Code)
}

// Is allows errors.Is(err, ErrUnauthorized) to match API errors that report an invalid or expired
// token.
func (e *APIError) Is(target error) bool {
	if target == ErrUnauthorized {
		return unauthorizedCodes[strings.ToUpper(e.Code)]
	}
	if target == ErrVehicleOffline {
		return strings.ToUpper(e.Code) == "VEHICLE_OFFLINE"
	}
	return false
}

// MayHaveSucceeded is always false: the server answered, and it reported failure.
func (e *APIError) MayHaveSucceeded() bool {
	return false
}

func (e *APIError) Temporary() bool {
	return temporaryCodes[strings.ToUpper(e.Code)]
}

// MayHaveSucceeded returns true if err is an Error that indicates the command may have been
// executed but the client did not receive a confirmation.
func MayHaveSucceeded(err error) bool {
	var commErr Error
	if errors.As(err, &commErr) && commErr.MayHaveSucceeded() {
		return true
	}
	return false
}

// Temporary returns true if err is an Error that indicates the command failed due to possibly
// transient conditions that do not require user action to resolve.
func Temporary(err error) bool {
	var commErr Error
	if errors.As(err, &commErr) && commErr.Temporary() {
		return true
	}
	return false
}

// ShouldRetry returns true if issuing the same command again could succeed without user action.
// Callers decide whether to act on it; this package never retries.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	var e Error
	if errors.As(err, &e) {
		if e.MayHaveSucceeded() {
			return false
		}
		if e.Temporary() {
			return true
		}
	}
	return false
}
