package vehicle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/volvooncall-cn/vehicle-command/internal/log"
	"github.com/volvooncall-cn/vehicle-command/pkg/action"
	"github.com/volvooncall-cn/vehicle-command/pkg/connector"
	"github.com/volvooncall-cn/vehicle-command/pkg/protocol"
)

var (
	// ErrVehicleStateUnknown indicates the client requested vehicle state before calling
	// [Vehicle.Update].
	ErrVehicleStateUnknown = errors.New("could not determine vehicle state; update the vehicle first")

	// ErrCommandRejected indicates the server accepted a command but reported that the vehicle
	// refused to execute it.
	ErrCommandRejected = protocol.NewError("vehicle rejected command", false, false)
)

// Info identifies a vehicle bound to an account, as returned by the vehicle list endpoint.
type Info struct {
	VIN        string `json:"vinCode"`
	ModelName  string `json:"modelName"`
	SeriesName string `json:"seriesName"`
	Nickname   string `json:"nickname"`
	// IsAAOS is true for vehicles with an Android Automotive head unit. These use a different set
	// of endpoints.
	IsAAOS bool `json:"isAaos"`
}

// DisplayName returns the most human-friendly name available for the vehicle.
func (i Info) DisplayName() string {
	if i.Nickname != "" {
		return i.Nickname
	}
	if i.ModelName != "" {
		return i.ModelName
	}
	return i.VIN
}

// A Vehicle represents a vehicle reachable through the cloud API.
type Vehicle struct {
	info Info
	conn connector.Connector

	lock   sync.Mutex
	status *Status
}

// NewVehicle creates a new Vehicle that sends requests over conn.
func NewVehicle(conn connector.Connector, info Info) *Vehicle {
	if info.VIN == "" {
		info.VIN = conn.VIN()
	}
	return &Vehicle{info: info, conn: conn}
}

func (v *Vehicle) VIN() string {
	return v.info.VIN
}

func (v *Vehicle) Info() Info {
	return v.info
}

func (v *Vehicle) DisplayName() string {
	return v.info.DisplayName()
}

// Disconnect closes the connection to v.
// Calling this method invokes the underlying [connector.Connector.Close] method, so it is safe to
// call more than once.
func (v *Vehicle) Disconnect() {
	if v.conn != nil {
		v.conn.Close()
	}
}

// Update fetches the vehicle's current status and position.
func (v *Vehicle) Update(ctx context.Context) error {
	data, err := v.conn.Get(ctx, "status")
	if err != nil {
		return fmt.Errorf("error fetching status: %w", err)
	}
	var status Status
	if err := decodeData(data, &status); err != nil {
		return err
	}

	data, err = v.conn.Get(ctx, "location")
	if err != nil {
		return fmt.Errorf("error fetching location: %w", err)
	}
	if string(data) != "null" && len(data) > 0 {
		var position Position
		if err := decodeData(data, &position); err != nil {
			return err
		}
		status.Position = &position
	}

	v.lock.Lock()
	defer v.lock.Unlock()
	v.status = &status
	return nil
}

// Status returns the status retrieved by the most recent call to [Vehicle.Update].
func (v *Vehicle) Status() (Status, error) {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.status == nil {
		return Status{}, ErrVehicleStateUnknown
	}
	return *v.status, nil
}

type commandResult struct {
	ServiceID string `json:"serviceId"`
	Status    string `json:"status"`
}

// ExecuteAction sends a command built by the action package to the vehicle.
func (v *Vehicle) ExecuteAction(ctx context.Context, command *action.Command) error {
	log.Debug("Sending %s to %s", command.Name, v.info.VIN)
	data, err := v.conn.SendCommand(ctx, command.Name, command.Body)
	if err != nil {
		return err
	}
	var result commandResult
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &result); err != nil {
			return &protocol.CommandError{Err: fmt.Errorf("unable to parse server response: %w", err), PossibleSuccess: true, PossibleTemporary: false}
		}
	}
	switch strings.ToUpper(result.Status) {
	case "FAILED", "REJECTED":
		return ErrCommandRejected
	}
	log.Debug("Command %s accepted (service ID %q, status %q)", command.Name, result.ServiceID, result.Status)
	return nil
}

func decodeData(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s", protocol.ErrBadResponse, err)
	}
	return nil
}
