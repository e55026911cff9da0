package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/volvooncall-cn/vehicle-command/internal/shell"
	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

var (
	ErrCommandLineArgs = errors.New("invalid command line arguments")
	ErrUnknownCommand  = errors.New("unrecognized command")
	ErrRequiresVIN     = errors.New("account has more than one vehicle; select one with -vin")
	ErrUnknownVIN      = errors.New("no vehicle with that VIN on this account")
)

type Argument struct {
	name string
	help string
}

type Handler func(ctx context.Context, car shell.Vehicle, args map[string]string) error

type Command struct {
	help     string
	args     []Argument
	optional []Argument
	handler  Handler
}

// GetMinutes parses an engine runtime.
func GetMinutes(minutesStr string) (int, error) {
	minutes, err := strconv.Atoi(minutesStr)
	if err != nil {
		return 0, fmt.Errorf("%w: expected a number of minutes", action.ErrInvalidDuration)
	}
	if err := action.CheckEngineRuntime(minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}

func selectVehicle(vehicles []shell.Vehicle, vin string) (shell.Vehicle, error) {
	if vin == "" {
		if len(vehicles) != 1 {
			return nil, ErrRequiresVIN
		}
		return vehicles[0], nil
	}
	for _, car := range vehicles {
		if strings.EqualFold(car.VIN(), vin) {
			return car, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownVIN, vin)
}

func execute(ctx context.Context, car shell.Vehicle, args []string) error {
	if len(args) == 0 {
		return errors.New("missing COMMAND")
	}

	info, ok := commands[args[0]]
	if !ok {
		return ErrUnknownCommand
	}

	var err error
	if len(args)-1 < len(info.args) || len(args)-1 > len(info.args)+len(info.optional) {
		writeErr("Invalid number of command line arguments: %d (%d required, %d optional).", len(args)-1, len(info.args), len(info.optional))
		err = ErrCommandLineArgs
	} else {
		keywords := make(map[string]string)
		for i, argInfo := range info.args {
			keywords[argInfo.name] = args[i+1]
		}
		index := len(info.args) + 1
		for _, argInfo := range info.optional {
			if index >= len(args) {
				break
			}
			keywords[argInfo.name] = args[index]
			index++
		}
		err = info.handler(ctx, car, keywords)
	}

	// Print command-specific help
	if errors.Is(err, ErrCommandLineArgs) {
		info.Usage(args[0])
	}
	return err
}

func (c *Command) Usage(name string) {
	fmt.Printf("Usage: %s", name)
	maxLength := 0
	for _, arg := range c.args {
		fmt.Printf(" %s", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	for _, arg := range c.optional {
		fmt.Printf(" [%s]", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	fmt.Printf("\n%s\n", c.help)
	if maxLength > 0 {
		fmt.Printf("Arguments:\n")
		for _, arg := range append(c.args, c.optional...) {
			fmt.Printf("  %s%s  %s\n", arg.name, strings.Repeat(" ", maxLength-len(arg.name)), arg.help)
		}
	}
}

func noArgs(f func(shell.Vehicle, context.Context) error) Handler {
	return func(ctx context.Context, car shell.Vehicle, _ map[string]string) error {
		return f(car, ctx)
	}
}

var commands = map[string]*Command{
	"status": {
		help: "Fetch and print vehicle status",
		handler: func(ctx context.Context, car shell.Vehicle, args map[string]string) error {
			if err := car.Update(ctx); err != nil {
				return err
			}
			lines, err := shell.StatusLines(car)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	},
	"lock": {
		help:    "Lock vehicle",
		handler: noArgs(shell.Vehicle.Lock),
	},
	"unlock": {
		help:    "Unlock vehicle",
		handler: noArgs(shell.Vehicle.Unlock),
	},
	"honk": {
		help:    "Honk horn",
		handler: noArgs(shell.Vehicle.Honk),
	},
	"flash": {
		help:    "Flash lights",
		handler: noArgs(shell.Vehicle.Flash),
	},
	"honk-flash": {
		help:    "Honk horn and flash lights",
		handler: noArgs(shell.Vehicle.HonkAndFlash),
	},
	"engine-start": {
		help: "Start engine remotely",
		optional: []Argument{
			Argument{name: "MINUTES", help: fmt.Sprintf("Runtime in minutes (1-%d, default %d)", action.MaxEngineRuntime, action.DefaultEngineRuntime)},
		},
		handler: func(ctx context.Context, car shell.Vehicle, args map[string]string) error {
			minutes := action.DefaultEngineRuntime
			if minutesStr, ok := args["MINUTES"]; ok {
				var err error
				if minutes, err = GetMinutes(minutesStr); err != nil {
					return err
				}
			}
			return car.EngineStart(ctx, minutes)
		},
	},
	"engine-stop": {
		help:    "Stop an engine started remotely",
		handler: noArgs(shell.Vehicle.EngineStop),
	},
	"tailgate-open": {
		help:    "Open tailgate",
		handler: noArgs(shell.Vehicle.OpenTailgate),
	},
	"tailgate-close": {
		help:    "Close tailgate",
		handler: noArgs(shell.Vehicle.CloseTailgate),
	},
	"sunroof-open": {
		help:    "Open sunroof",
		handler: noArgs(shell.Vehicle.OpenSunroof),
	},
	"sunroof-close": {
		help:    "Close sunroof",
		handler: noArgs(shell.Vehicle.CloseSunroof),
	},
}
