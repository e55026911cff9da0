package vehicle

import (
	"context"

	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

func (v *Vehicle) Lock(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.Lock())
}

func (v *Vehicle) Unlock(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.Unlock())
}

// Honk sounds the horn.
func (v *Vehicle) Honk(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.Honk())
}

// Flash flashes the exterior lights.
func (v *Vehicle) Flash(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.Flash())
}

func (v *Vehicle) HonkAndFlash(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.HonkAndFlash())
}
