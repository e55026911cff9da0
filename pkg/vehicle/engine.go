package vehicle

import (
	"context"

	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

// EngineStart remotely starts the engine for the given number of minutes. See
// [action.EngineStart] for the permitted range.
func (v *Vehicle) EngineStart(ctx context.Context, minutes int) error {
	command, err := action.EngineStart(minutes)
	if err != nil {
		return err
	}
	return v.ExecuteAction(ctx, command)
}

// EngineStop stops an engine that was started remotely.
func (v *Vehicle) EngineStop(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.EngineStop())
}
