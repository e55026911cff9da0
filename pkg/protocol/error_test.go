package protocol

import (
	"errors"
	"fmt"
	"testing"
)

func TestRetriableError(t *testing.T) {
	type params struct {
		err         error
		shouldRetry bool
	}
	testCases := []params{
		{err: nil, shouldRetry: false},
		{err: errors.New("plain error"), shouldRetry: false},
		{err: ErrNotConnected, shouldRetry: false},
		{err: ErrVehicleOffline, shouldRetry: true},
		{err: ErrResponseTooLarge, shouldRetry: false},
		{err: NewError("both", true, true), shouldRetry: false},
		{err: fmt.Errorf("wrapped: %w", ErrVehicleOffline), shouldRetry: true},
		{err: &APIError{Code: "VEHICLE_OFFLINE"}, shouldRetry: true},
		{err: &APIError{Code: "service_busy"}, shouldRetry: true},
		{err: &APIError{Code: "500"}, shouldRetry: false},
		{err: &APIError{Code: "TOKEN_EXPIRED"}, shouldRetry: false},
	}
	for _, test := range testCases {
		if ShouldRetry(test.err) != test.shouldRetry {
			t.Errorf("Unexpected retry behavior for error %v", test.err)
		}
	}
}

func TestMayHaveSucceeded(t *testing.T) {
	if MayHaveSucceeded(nil) {
		t.Error("nil error may not have succeeded")
	}
	if !MayHaveSucceeded(fmt.Errorf("lock: %w", ErrResponseTooLarge)) {
		t.Error("Expected wrapped oversized response to be ambiguous")
	}
	if MayHaveSucceeded(&APIError{Code: "VEHICLE_OFFLINE"}) {
		t.Error("API errors are definitive failures")
	}
}

func TestAPIErrorMatchesSentinels(t *testing.T) {
	for _, code := range []string{"401", "unauthorized", "TOKEN_EXPIRED"} {
		err := fmt.Errorf("status: %w", &APIError{Code: code, Message: "expired"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("code %s did not match ErrUnauthorized", code)
		}
	}
	if errors.Is(&APIError{Code: "VEHICLE_OFFLINE"}, ErrUnauthorized) {
		t.Error("VEHICLE_OFFLINE matched ErrUnauthorized")
	}
	if !errors.Is(&APIError{Code: "vehicle_offline"}, ErrVehicleOffline) {
		t.Error("vehicle_offline did not match ErrVehicleOffline")
	}
}

func TestAPIErrorString(t *testing.T) {
	if s := (&APIError{Code: "E42"}).Error(); s != "server returned error code E42" {
		t.Errorf("unexpected message: %s", s)
	}
	if s := (&APIError{Code: "E42", Message: "no"}).Error(); s != "no (code E42)" {
		t.Errorf("unexpected message: %s", s)
	}
}

func TestUnwrapEnvelope(t *testing.T) {
	data, err := UnwrapEnvelope([]byte(`{"success": true, "code": "0", "data": {"vinCode": "VIN1"}}`))
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if string(data) != `{"vinCode": "VIN1"}` {
		t.Errorf("Unexpected data: %s", data)
	}

	_, err = UnwrapEnvelope([]byte(`{"success": false, "code": 1001, "message": "vehicle offline"}`))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError but got %v", err)
	}
	if apiErr.Code != "1001" || apiErr.Message != "vehicle offline" {
		t.Errorf("Unexpected APIError %+v", apiErr)
	}

	_, err = UnwrapEnvelope([]byte(`{"success": false}`))
	if !errors.As(err, &apiErr) || apiErr.Code != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN code but got %v", err)
	}

	if _, err = UnwrapEnvelope([]byte(`<html>`)); !errors.Is(err, ErrBadResponse) {
		t.Errorf("Expected ErrBadResponse but got %v", err)
	}
	if _, err = UnwrapEnvelope([]byte(`{"success": true, "code": [1]}`)); !errors.Is(err, ErrBadResponse) {
		t.Errorf("Expected ErrBadResponse for malformed code but got %v", err)
	}
}
