// Package shell implements the numbered interactive menu used to exercise vehicle commands.
package shell

//go:generate mockgen -destination=../../mocks/shell_vehicle.go -package=mocks -mock_names=Vehicle=ShellVehicle . Vehicle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/shlex"

	"github.com/volvooncall-cn/vehicle-command/internal/log"
	"github.com/volvooncall-cn/vehicle-command/pkg/action"
	"github.com/volvooncall-cn/vehicle-command/pkg/protocol"
	"github.com/volvooncall-cn/vehicle-command/pkg/vehicle"
)

// Vehicle is the subset of [vehicle.Vehicle] driven by the menu.
type Vehicle interface {
	VIN() string
	DisplayName() string
	Update(ctx context.Context) error
	Attributes() ([]vehicle.Attribute, error)
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
	Honk(ctx context.Context) error
	Flash(ctx context.Context) error
	HonkAndFlash(ctx context.Context) error
	EngineStart(ctx context.Context, minutes int) error
	EngineStop(ctx context.Context) error
	OpenTailgate(ctx context.Context) error
	CloseTailgate(ctx context.Context) error
	OpenSunroof(ctx context.Context) error
	CloseSunroof(ctx context.Context) error
}

var _ Vehicle = (*vehicle.Vehicle)(nil)

const (
	choiceExit          = 0
	choiceUpdate        = 1
	choiceSelectVehicle = 13
)

const (
	msgInvalidInput     = "Invalid input. Please enter a number."
	msgInvalidSelection = "Invalid selection. Please try again."
	msgInvalidCommand   = "Invalid command. Please try again."
	msgSuccess          = "Command sent successfully."
	msgContinue         = "\nPress Enter to continue..."
)

type menuCommand struct {
	label     string
	checkArgs func(args []string) error
	progress  func(args []string) string
	handler   func(ctx context.Context, v Vehicle, args []string) error
}

func fixed(message string) func([]string) string {
	return func([]string) string { return message }
}

func simple(f func(Vehicle, context.Context) error) func(context.Context, Vehicle, []string) error {
	return func(ctx context.Context, v Vehicle, _ []string) error {
		return f(v, ctx)
	}
}

// Choices 2 through 12. Choice 1 (update) and 13 (vehicle selection) are handled by the loop.
var commands = map[int]*menuCommand{
	2: {label: "Lock vehicle", progress: fixed("Locking vehicle..."), handler: simple(Vehicle.Lock)},
	3: {label: "Unlock vehicle", progress: fixed("Unlocking vehicle..."), handler: simple(Vehicle.Unlock)},
	4: {label: "Honk horn", progress: fixed("Honking horn..."), handler: simple(Vehicle.Honk)},
	5: {label: "Flash lights", progress: fixed("Flashing lights..."), handler: simple(Vehicle.Flash)},
	6: {label: "Honk and flash", progress: fixed("Honking and flashing..."), handler: simple(Vehicle.HonkAndFlash)},
	7: {
		label: fmt.Sprintf("Start engine (%d min)", action.DefaultEngineRuntime),
		checkArgs: func(args []string) error {
			_, err := engineRuntime(args)
			return err
		},
		progress: func(args []string) string {
			minutes, _ := engineRuntime(args)
			return fmt.Sprintf("Starting engine (%d min)...", minutes)
		},
		handler: func(ctx context.Context, v Vehicle, args []string) error {
			minutes, err := engineRuntime(args)
			if err != nil {
				return err
			}
			return v.EngineStart(ctx, minutes)
		},
	},
	8:  {label: "Stop engine", progress: fixed("Stopping engine..."), handler: simple(Vehicle.EngineStop)},
	9:  {label: "Open tailgate", progress: fixed("Opening tailgate..."), handler: simple(Vehicle.OpenTailgate)},
	10: {label: "Close tailgate", progress: fixed("Closing tailgate..."), handler: simple(Vehicle.CloseTailgate)},
	11: {label: "Open sunroof", progress: fixed("Opening sunroof..."), handler: simple(Vehicle.OpenSunroof)},
	12: {label: "Close sunroof", progress: fixed("Closing sunroof..."), handler: simple(Vehicle.CloseSunroof)},
}

// engineRuntime returns the optional runtime argument of the engine start choice, which must be
// between 1 and action.MaxEngineRuntime minutes.
func engineRuntime(args []string) (int, error) {
	if len(args) < 2 {
		return action.DefaultEngineRuntime, nil
	}
	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		return action.DefaultEngineRuntime, fmt.Errorf("%w: %q is not a number of minutes", action.ErrInvalidDuration, args[1])
	}
	if err := action.CheckEngineRuntime(minutes); err != nil {
		return action.DefaultEngineRuntime, err
	}
	return minutes, nil
}

// StatusLines renders the most recently fetched status of v, one attribute per line, preceded by
// a header naming the vehicle.
func StatusLines(v Vehicle) ([]string, error) {
	attributes, err := v.Attributes()
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(attributes)+1)
	lines = append(lines, fmt.Sprintf("Status for vehicle: %s", v.DisplayName()))
	for _, attr := range attributes {
		lines = append(lines, fmt.Sprintf("  %s: %s", attr.Name, attr.Value))
	}
	return lines, nil
}

// Shell reads menu choices from an input stream and runs them against one of a fixed set of
// vehicles.
type Shell struct {
	scanner  *bufio.Scanner
	out      io.Writer
	vehicles []Vehicle
	timeout  time.Duration
	selected Vehicle
}

// New returns a Shell over vehicles. Each command is given timeout to complete; a zero timeout
// means commands are bounded only by the context passed to [Shell.Run].
func New(in io.Reader, out io.Writer, vehicles []Vehicle, timeout time.Duration) *Shell {
	s := &Shell{
		scanner:  bufio.NewScanner(in),
		out:      out,
		vehicles: vehicles,
		timeout:  timeout,
	}
	if len(vehicles) == 1 {
		s.selected = vehicles[0]
	}
	return s
}

func (s *Shell) println(a ...interface{}) {
	fmt.Fprintln(s.out, a...)
}

// readLine prompts for and returns the next input line. The second return value is false at the
// end of input.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return s.scanner.Text(), true
}

// readChoice prompts for a line and splits it into shell-style tokens. The first token must be a
// number.
func (s *Shell) readChoice(prompt string) (choice int, args []string, ok bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, nil, false
	}
	args, err := shlex.Split(line)
	if err != nil || len(args) == 0 {
		return -1, nil, true
	}
	choice, err = strconv.Atoi(args[0])
	if err != nil {
		return -1, nil, true
	}
	return choice, args, true
}

// Run executes the menu until the user exits, the input is exhausted or ctx is done. The returned
// error is non-nil only if reading the input fails or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.selected == nil {
			if !s.selectVehicle() {
				return s.scanner.Err()
			}
			continue
		}

		s.printCommands()
		choice, args, ok := s.readChoice("\nEnter command: ")
		if !ok || choice == choiceExit {
			return s.scanner.Err()
		}
		if choice == choiceSelectVehicle {
			s.selected = nil
			continue
		}
		s.execute(ctx, choice, args)
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := s.readLine(msgContinue); !ok {
			return s.scanner.Err()
		}
	}
}

// selectVehicle lists the vehicles and reads a selection. It returns false if the user quits or
// the input is exhausted.
func (s *Shell) selectVehicle() bool {
	s.println("\nAvailable vehicles:")
	for i, v := range s.vehicles {
		fmt.Fprintf(s.out, "%d. %s (VIN: %s)\n", i+1, v.DisplayName(), v.VIN())
	}
	choice, args, ok := s.readChoice("\nSelect a vehicle (or 0 to quit): ")
	switch {
	case !ok:
		return false
	case args == nil:
		s.println(msgInvalidInput)
	case choice == choiceExit:
		return false
	case choice < 1 || choice > len(s.vehicles):
		s.println(msgInvalidSelection)
	default:
		s.selected = s.vehicles[choice-1]
		log.Debug("Selected vehicle %s", s.selected.VIN())
	}
	return true
}

func (s *Shell) printCommands() {
	s.println("\nAvailable commands:")
	s.println("1. Update vehicle status")
	for choice := 2; choice < choiceSelectVehicle; choice++ {
		fmt.Fprintf(s.out, "%d. %s\n", choice, commands[choice].label)
	}
	s.println("13. Select different vehicle")
	s.println("0. Exit")
}

func (s *Shell) execute(ctx context.Context, choice int, args []string) {
	if args == nil {
		s.println(msgInvalidInput)
		return
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var err error
	if choice == choiceUpdate {
		s.println("Updating vehicle status...")
		err = s.update(ctx)
	} else if command, ok := commands[choice]; ok {
		if command.checkArgs != nil {
			if err := command.checkArgs(args); err != nil {
				s.println(msgInvalidInput)
				return
			}
		}
		s.println(command.progress(args))
		if err = command.handler(ctx, s.selected, args); err == nil {
			s.println(msgSuccess)
		}
	} else {
		s.println(msgInvalidCommand)
		return
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error executing command: %s\n", err)
		if protocol.MayHaveSucceeded(err) {
			s.println("The command may still have reached the vehicle. Update the vehicle status to check.")
		}
	}
}

func (s *Shell) update(ctx context.Context) error {
	if err := s.selected.Update(ctx); err != nil {
		return err
	}
	lines, err := StatusLines(s.selected)
	if err != nil {
		return err
	}
	for _, line := range lines {
		s.println(line)
	}
	return nil
}
