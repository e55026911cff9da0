package vehicle

import (
	"context"

	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

func (v *Vehicle) OpenTailgate(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.OpenTailgate())
}

func (v *Vehicle) CloseTailgate(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.CloseTailgate())
}

// OpenSunroof opens the sunroof. The server accepts the command even if the vehicle has no
// sunroof.
func (v *Vehicle) OpenSunroof(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.OpenSunroof())
}

func (v *Vehicle) CloseSunroof(ctx context.Context) error {
	return v.ExecuteAction(ctx, action.CloseSunroof())
}
