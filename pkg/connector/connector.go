package connector

import (
	"context"
	"time"
)

// MaxResponseLength caps the maximum byte-length of responses that connectors must support.
const MaxResponseLength = 100000

// DefaultTimeout is used for requests whose context has no deadline.
const DefaultTimeout = 30 * time.Second

// Connector sends requests concerning a single vehicle to the cloud API.
type Connector interface {
	// VIN returns the vehicle identification number of the connected vehicle.
	VIN() string

	// Get fetches a vehicle resource and returns the data member of the response envelope.
	//
	// Implementations must be thread safe.
	Get(ctx context.Context, resource string) ([]byte, error)

	// SendCommand asks the server to relay a remote command to the vehicle. The command must
	// support JSON serialization. Returns the data member of the response envelope.
	//
	// Depending on the error, the vehicle may have received and even acted on the command. For
	// some errors, such as network timeouts, the client will not be able to determine if this is
	// the case. If the returned error implements the protocol.Error interface, then the client may
	// be able to determine if the command was received by using the appropriate methods.
	//
	// Implementations must be thread safe.
	SendCommand(ctx context.Context, name string, command interface{}) ([]byte, error)

	// Close terminates the connection to the vehicle.
	//
	// Repeated calls to Close() must be idempotent. Get and SendCommand return
	// protocol.ErrNotConnected after Close has been called.
	Close()
}
