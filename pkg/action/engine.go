package action

import (
	"errors"
	"fmt"
)

const (
	// DefaultEngineRuntime is the engine runtime used by the mobile app when none is chosen.
	DefaultEngineRuntime = 10
	// MaxEngineRuntime is the longest remote start the service accepts.
	MaxEngineRuntime = 15
)

var ErrInvalidDuration = errors.New("invalid engine runtime")

type engineStartBody struct {
	RuntimeMinutes int `json:"runtimeMinutes"`
}

// CheckEngineRuntime returns ErrInvalidDuration if minutes is not an engine runtime the service
// accepts.
func CheckEngineRuntime(minutes int) error {
	if minutes < 1 || minutes > MaxEngineRuntime {
		return fmt.Errorf("%w: %d minutes (must be 1-%d)", ErrInvalidDuration, minutes, MaxEngineRuntime)
	}
	return nil
}

// EngineStart starts the engine remotely for the given number of minutes, which must be between 1
// and MaxEngineRuntime.
func EngineStart(minutes int) (*Command, error) {
	if err := CheckEngineRuntime(minutes); err != nil {
		return nil, err
	}
	return buildCommand("engine_start", &engineStartBody{RuntimeMinutes: minutes}), nil
}

// EngineStop stops an engine that was started remotely.
func EngineStop() *Command {
	return buildCommand("engine_stop", nil)
}
