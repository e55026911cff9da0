package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/volvooncall-cn/vehicle-command/internal/log"
	"github.com/volvooncall-cn/vehicle-command/internal/shell"
	"github.com/volvooncall-cn/vehicle-command/pkg/account"
	"github.com/volvooncall-cn/vehicle-command/pkg/cli"
	"github.com/volvooncall-cn/vehicle-command/pkg/protocol"
	"github.com/volvooncall-cn/vehicle-command/pkg/vehicle"
)

var logger = log.Named("voc-control")

func writeErr(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n")
}

const usage = `
 * Without a COMMAND, an interactive menu is started after listing the account's vehicles.
 * With a COMMAND, it is sent to the vehicle selected by -vin (optional if the account has one
   vehicle) and the program exits.`

func Usage() {
	fmt.Printf("Usage: %s [OPTION...] [COMMAND [ARG...]]\n", os.Args[0])
	fmt.Printf("\nRun %s help COMMAND for more information. Valid COMMANDs are listed below.", os.Args[0])
	fmt.Println("")
	fmt.Println(usage)
	fmt.Println("")

	fmt.Printf("Available OPTIONs:\n")
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Printf("Available COMMANDs:\n")
	maxLength := 0
	var labels []string
	for command := range commands {
		labels = append(labels, command)
		if len(command) > maxLength {
			maxLength = len(command)
		}
	}
	sort.Strings(labels)
	for _, command := range labels {
		info := commands[command]
		fmt.Printf("  %s%s %s\n", command, strings.Repeat(" ", maxLength-len(command)), info.help)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func logStatus(car shell.Vehicle) error {
	lines, err := shell.StatusLines(car)
	if err != nil {
		return err
	}
	for _, line := range lines {
		logger.Info("%s", line)
	}
	return nil
}

// loadVehicles fetches the vehicles bound to acct. When interactive is set, each vehicle is also
// updated and its status logged before the menu starts.
func loadVehicles(ctx context.Context, acct *account.Account, interactive bool, timeout time.Duration) ([]*vehicle.Vehicle, error) {
	logger.Info("Retrieving vehicles...")
	infos, err := acct.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, nil
	}
	logger.Info("Found %d vehicles", len(infos))

	var vehicles []*vehicle.Vehicle
	for i, info := range infos {
		logger.Info("Vehicle %d: VIN: %s, Model: %s, Series: %s", i+1, info.VIN, orUnknown(info.ModelName), orUnknown(info.SeriesName))
		logger.Info("Initializing Vehicle instance for VIN %s...", info.VIN)
		car, err := acct.GetVehicle(ctx, info)
		if err != nil {
			return vehicles, err
		}
		vehicles = append(vehicles, car)
		if !interactive {
			continue
		}

		logger.Info("Updating vehicle data for VIN %s...", info.VIN)
		updateCtx, cancel := context.WithTimeout(context.Background(), timeout)
		err = car.Update(updateCtx)
		cancel()
		if err != nil {
			return vehicles, err
		}
		if err := logStatus(car); err != nil {
			return vehicles, err
		}
	}
	return vehicles, nil
}

// startSession retrieves the vehicles bound to acct and reports them, updating each one first when
// interactive is set. It returns false, after logging why, if the run cannot continue.
func startSession(ctx context.Context, acct *account.Account, interactive bool, timeout time.Duration) ([]*vehicle.Vehicle, bool) {
	vehicles, err := loadVehicles(ctx, acct, interactive, timeout)
	if err != nil {
		for _, car := range vehicles {
			car.Disconnect()
		}
		logger.Error("Error during API test: %s", err)
		return nil, false
	}
	if len(vehicles) == 0 {
		logger.Error("No vehicles found for this account.")
		return nil, false
	}
	return vehicles, true
}

func runCommand(car shell.Vehicle, args []string, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := execute(ctx, car, args); err != nil {
		if protocol.MayHaveSucceeded(err) {
			writeErr("Couldn't verify success: %s", err)
		} else if errors.Is(err, protocol.ErrUnauthorized) {
			writeErr("The session is no longer valid; run the command again to log in: %s", err)
		} else {
			writeErr("Failed to execute command: %s", err)
		}
		return 1
	}
	return 0
}

func runInteractiveShell(vehicles []shell.Vehicle, timeout time.Duration) int {
	if err := shell.New(os.Stdin, os.Stdout, vehicles, timeout).Run(context.Background()); err != nil {
		writeErr("Error reading command: %s", err)
		return 1
	}
	return 0
}

func main() {
	status := 1
	defer func() {
		os.Exit(status)
	}()

	var (
		debug          bool
		vin            string
		commandTimeout time.Duration
		connTimeout    time.Duration
	)
	config, err := cli.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credential configuration: %s\n", err)
		os.Exit(1)
	}
	flag.Usage = Usage
	flag.BoolVar(&debug, "debug", false, "Enable verbose debugging messages")
	flag.StringVar(&vin, "vin", "", "Vehicle Identification Number of the vehicle that receives COMMAND")
	flag.DurationVar(&commandTimeout, "command-timeout", 30*time.Second, "Set timeout for commands sent to the vehicle.")
	flag.DurationVar(&connTimeout, "connect-timeout", 20*time.Second, "Set timeout for logging in and listing vehicles.")

	config.RegisterCommandLineFlags()
	flag.Parse()
	if !debug {
		if debugEnv, ok := os.LookupEnv(cli.EnvVerbose); ok {
			debug = debugEnv != "false" && debugEnv != "0"
		}
	}
	if debug {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelInfo)
	}
	if err := config.ReadFromEnvironment(); err != nil {
		writeErr("%s", err)
		return
	}

	args := flag.Args()
	if len(args) > 0 {
		if args[0] == "help" {
			if len(args) == 1 {
				Usage()
				return
			}
			info, ok := commands[args[1]]
			if !ok {
				writeErr("Unrecognized command: %s", args[1])
				return
			}
			info.Usage(args[1])
			status = 0
			return
		}
		if _, ok := commands[args[0]]; !ok {
			writeErr("Unrecognized command: %s", args[0])
			return
		}
	}

	logger.Info("Initializing Volvo On Call CN API test...")
	if err := config.LoadCredentials(); err != nil {
		writeErr("Error loading credentials: %s", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	logger.Info("Authenticating with provided credentials...")
	acct, err := config.Connect(ctx)
	if err != nil {
		logger.Error("Error during API test: %s", err)
		return
	}

	interactive := len(args) == 0
	vehicles, ok := startSession(ctx, acct, interactive, commandTimeout)
	if !ok {
		return
	}
	for _, car := range vehicles {
		defer car.Disconnect()
	}

	choices := make([]shell.Vehicle, len(vehicles))
	for i, car := range vehicles {
		choices[i] = car
	}
	if interactive {
		status = runInteractiveShell(choices, commandTimeout)
		return
	}

	car, err := selectVehicle(choices, vin)
	if err != nil {
		writeErr("%s", err)
		return
	}
	status = runCommand(car, args, commandTimeout)
}
