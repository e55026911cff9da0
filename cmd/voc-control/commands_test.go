package main

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/volvooncall-cn/vehicle-command/internal/shell"
	"github.com/volvooncall-cn/vehicle-command/mocks"
	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

func TestGetMinutes(t *testing.T) {
	type params struct {
		str     string
		minutes int
		err     error
	}
	testCases := []params{
		{str: "1", minutes: 1},
		{str: "10", minutes: 10},
		{str: "15", minutes: 15},
		{str: "0", err: action.ErrInvalidDuration},
		{str: "16", err: action.ErrInvalidDuration},
		{str: "-3", err: action.ErrInvalidDuration},
		{str: "ten", err: action.ErrInvalidDuration},
		{str: "", err: action.ErrInvalidDuration},
	}
	for _, test := range testCases {
		minutes, err := GetMinutes(test.str)
		if !errors.Is(err, test.err) {
			t.Errorf("expected '%s' to result in error %s, but got %s", test.str, test.err, err)
		} else if test.minutes != minutes {
			t.Errorf("expected GetMinutes('%s') = %d, but got %d", test.str, test.minutes, minutes)
		}
	}
}

func TestExecute(t *testing.T) {
	ctrl := gomock.NewController(t)
	car := mocks.NewShellVehicle(ctrl)
	ctx := context.Background()

	car.EXPECT().Lock(gomock.Any()).Return(nil)
	if err := execute(ctx, car, []string{"lock"}); err != nil {
		t.Errorf("lock failed: %s", err)
	}

	car.EXPECT().EngineStart(gomock.Any(), action.DefaultEngineRuntime).Return(nil)
	if err := execute(ctx, car, []string{"engine-start"}); err != nil {
		t.Errorf("engine-start failed: %s", err)
	}

	car.EXPECT().EngineStart(gomock.Any(), 3).Return(nil)
	if err := execute(ctx, car, []string{"engine-start", "3"}); err != nil {
		t.Errorf("engine-start 3 failed: %s", err)
	}

	if err := execute(ctx, car, []string{"engine-start", "30"}); !errors.Is(err, action.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration but got %v", err)
	}

	sendErr := errors.New("vehicle is asleep")
	car.EXPECT().OpenSunroof(gomock.Any()).Return(sendErr)
	if err := execute(ctx, car, []string{"sunroof-open"}); err != sendErr {
		t.Errorf("expected %s but got %v", sendErr, err)
	}
}

func TestExecuteRejectsBadArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	car := mocks.NewShellVehicle(ctrl)
	ctx := context.Background()

	if err := execute(ctx, car, nil); err == nil {
		t.Error("expected error for missing command")
	}
	if err := execute(ctx, car, []string{"self-destruct"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand but got %v", err)
	}
	if err := execute(ctx, car, []string{"lock", "now"}); !errors.Is(err, ErrCommandLineArgs) {
		t.Errorf("expected ErrCommandLineArgs but got %v", err)
	}
	if err := execute(ctx, car, []string{"engine-start", "5", "6"}); !errors.Is(err, ErrCommandLineArgs) {
		t.Errorf("expected ErrCommandLineArgs but got %v", err)
	}
}

func TestSelectVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewShellVehicle(ctrl)
	first.EXPECT().VIN().Return("LVYZBAKD0PP000001").AnyTimes()
	second := mocks.NewShellVehicle(ctrl)
	second.EXPECT().VIN().Return("LVYZBAKD0PP000002").AnyTimes()

	car, err := selectVehicle([]shell.Vehicle{first}, "")
	if err != nil || car != first {
		t.Errorf("expected the only vehicle, got %v (%v)", car, err)
	}
	if _, err := selectVehicle([]shell.Vehicle{first, second}, ""); !errors.Is(err, ErrRequiresVIN) {
		t.Errorf("expected ErrRequiresVIN but got %v", err)
	}
	car, err = selectVehicle([]shell.Vehicle{first, second}, "lvyzbakd0pp000002")
	if err != nil || car != second {
		t.Errorf("expected second vehicle, got %v (%v)", car, err)
	}
	if _, err := selectVehicle([]shell.Vehicle{first, second}, "LVYZBAKD0PP000003"); !errors.Is(err, ErrUnknownVIN) {
		t.Errorf("expected ErrUnknownVIN but got %v", err)
	}
}

func TestCommandsHaveHelp(t *testing.T) {
	for name, info := range commands {
		if info.help == "" || info.handler == nil {
			t.Errorf("command %s is incomplete", name)
		}
	}
}
