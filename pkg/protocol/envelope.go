package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Code is a server status code. The service is inconsistent about whether codes are JSON strings
// or numbers, so both are accepted.
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid status code %s", data)
	}
	*c = Code(n.String())
	return nil
}

// Envelope wraps every response body returned by the cloud API.
type Envelope struct {
	Success bool            `json:"success"`
	Code    Code            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// UnwrapEnvelope parses body and returns its data member. If the envelope reports failure, the
// returned error is an *APIError.
func UnwrapEnvelope(body []byte) (json.RawMessage, error) {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadResponse, err)
	}
	if !envelope.Success {
		code := string(envelope.Code)
		if code == "" {
			code = "UNKNOWN"
		}
		return nil, &APIError{Code: code, Message: envelope.Message}
	}
	return envelope.Data, nil
}
