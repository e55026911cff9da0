package shell_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/volvooncall-cn/vehicle-command/internal/shell"
	"github.com/volvooncall-cn/vehicle-command/mocks"
	"github.com/volvooncall-cn/vehicle-command/pkg/action"
	"github.com/volvooncall-cn/vehicle-command/pkg/protocol"
	"github.com/volvooncall-cn/vehicle-command/pkg/vehicle"
)

const (
	vin1 = "LVYZBAKD0PP000001"
	vin2 = "LVYZBAKD0PP000002"
)

var _ = Describe("Shell", func() {
	var (
		ctrl *gomock.Controller
		car  *mocks.ShellVehicle
	)

	newVehicle := func(name, vin string) *mocks.ShellVehicle {
		v := mocks.NewShellVehicle(ctrl)
		v.EXPECT().DisplayName().Return(name).AnyTimes()
		v.EXPECT().VIN().Return(vin).AnyTimes()
		return v
	}

	run := func(input string, vehicles ...shell.Vehicle) string {
		var out bytes.Buffer
		s := shell.New(strings.NewReader(input), &out, vehicles, time.Second)
		Expect(s.Run(context.Background())).To(Succeed())
		return out.String()
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		car = newVehicle("XC60", vin1)
		DeferCleanup(func() {
			ctrl.Finish()
		})
	})

	Context("vehicle selection", func() {
		It("preselects a single vehicle", func() {
			out := run("0\n", car)
			Expect(out).ToNot(ContainSubstring("Available vehicles:"))
			Expect(out).To(ContainSubstring("Available commands:"))
			Expect(out).To(ContainSubstring("13. Select different vehicle\n0. Exit\n"))
			Expect(out).To(ContainSubstring("Enter command: "))
		})

		It("lists vehicles when there are several", func() {
			other := newVehicle("Big one", vin2)
			out := run("0\n", car, other)
			Expect(out).To(ContainSubstring("1. XC60 (VIN: " + vin1 + ")\n2. Big one (VIN: " + vin2 + ")\n"))
			Expect(out).To(ContainSubstring("Select a vehicle (or 0 to quit): "))
			Expect(out).ToNot(ContainSubstring("Available commands:"))
		})

		It("re-prompts after invalid selections", func() {
			other := newVehicle("Big one", vin2)
			other.EXPECT().Lock(gomock.Any()).Return(nil)
			out := run("3\nabc\n\n2\n2\n\n0\n", car, other)
			Expect(strings.Count(out, "Invalid selection. Please try again.")).To(Equal(1))
			Expect(strings.Count(out, "Invalid input. Please enter a number.")).To(Equal(2))
			Expect(out).To(ContainSubstring("Locking vehicle...\nCommand sent successfully."))
		})

		It("returns to vehicle selection without pausing", func() {
			out := run("13\n1\n0\n", car)
			Expect(out).To(ContainSubstring("Available vehicles:\n1. XC60 (VIN: " + vin1 + ")"))
			Expect(out).ToNot(ContainSubstring("Press Enter to continue..."))
			Expect(strings.Count(out, "Available commands:")).To(Equal(2))
		})

		It("stops at the end of input", func() {
			other := newVehicle("Big one", vin2)
			out := run("", car, other)
			Expect(out).To(HaveSuffix("Select a vehicle (or 0 to quit): \n"))
		})
	})

	Context("commands", func() {
		DescribeTable("sends the command and pauses",
			func(input, progress string, expect func(v *mocks.ShellVehicle) *gomock.Call) {
				expect(car).Return(nil)
				out := run(input+"\n\n0\n", car)
				Expect(out).To(ContainSubstring(progress + "\nCommand sent successfully.\n"))
				Expect(out).To(ContainSubstring("Press Enter to continue..."))
			},
			Entry("lock", "2", "Locking vehicle...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().Lock(gomock.Any()) }),
			Entry("unlock", "3", "Unlocking vehicle...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().Unlock(gomock.Any()) }),
			Entry("honk", "4", "Honking horn...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().Honk(gomock.Any()) }),
			Entry("flash", "5", "Flashing lights...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().Flash(gomock.Any()) }),
			Entry("honk and flash", "6", "Honking and flashing...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().HonkAndFlash(gomock.Any()) }),
			Entry("engine start", "7", "Starting engine (10 min)...", func(v *mocks.ShellVehicle) *gomock.Call {
				return v.EXPECT().EngineStart(gomock.Any(), action.DefaultEngineRuntime)
			}),
			Entry("engine start with runtime", "7 5", "Starting engine (5 min)...", func(v *mocks.ShellVehicle) *gomock.Call {
				return v.EXPECT().EngineStart(gomock.Any(), 5)
			}),
			Entry("engine stop", "8", "Stopping engine...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().EngineStop(gomock.Any()) }),
			Entry("open tailgate", "9", "Opening tailgate...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().OpenTailgate(gomock.Any()) }),
			Entry("close tailgate", "10", "Closing tailgate...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().CloseTailgate(gomock.Any()) }),
			Entry("open sunroof", "11", "Opening sunroof...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().OpenSunroof(gomock.Any()) }),
			Entry("close sunroof", "12", "Closing sunroof...", func(v *mocks.ShellVehicle) *gomock.Call { return v.EXPECT().CloseSunroof(gomock.Any()) }),
		)

		It("lists every command", func() {
			out := run("0\n", car)
			for _, line := range []string{
				"1. Update vehicle status", "2. Lock vehicle", "3. Unlock vehicle", "4. Honk horn",
				"5. Flash lights", "6. Honk and flash", "7. Start engine (10 min)", "8. Stop engine",
				"9. Open tailgate", "10. Close tailgate", "11. Open sunroof", "12. Close sunroof",
			} {
				Expect(out).To(ContainSubstring(line + "\n"))
			}
		})

		It("updates and prints the vehicle status", func() {
			gomock.InOrder(
				car.EXPECT().Update(gomock.Any()).Return(nil),
				car.EXPECT().Attributes().Return([]vehicle.Attribute{
					{Name: "car_locked", Value: "True"},
					{Name: "odometer", Value: "12345"},
				}, nil),
			)
			out := run("1\n\n0\n", car)
			Expect(out).To(ContainSubstring("Updating vehicle status...\nStatus for vehicle: XC60\n  car_locked: True\n  odometer: 12345\n"))
			Expect(out).ToNot(ContainSubstring("Command sent successfully."))
		})

		It("rejects choices that are not listed", func() {
			out := run("14\n\n-1\n\n0\n", car)
			Expect(strings.Count(out, "Invalid command. Please try again.")).To(Equal(2))
			Expect(strings.Count(out, "Press Enter to continue...")).To(Equal(2))
		})

		It("rejects input that is not a number", func() {
			out := run("lock\n\n\n\n'\n\n0\n", car)
			Expect(strings.Count(out, "Invalid input. Please enter a number.")).To(Equal(3))
		})

		It("rejects a malformed engine runtime without sending a command", func() {
			out := run("7 ten\n\n0\n", car)
			Expect(out).To(ContainSubstring("Invalid input. Please enter a number."))
			Expect(out).ToNot(ContainSubstring("Starting engine"))
		})

		It("rejects an engine runtime out of range without sending a command", func() {
			out := run("7 30\n\n0\n", car)
			Expect(out).To(ContainSubstring("Invalid input. Please enter a number."))
			Expect(out).ToNot(ContainSubstring("Starting engine"))
		})

		It("reports command failures and continues", func() {
			car.EXPECT().Lock(gomock.Any()).Return(errors.New("vehicle is asleep"))
			car.EXPECT().Unlock(gomock.Any()).Return(nil)
			out := run("2\n\n3\n\n0\n", car)
			Expect(out).To(ContainSubstring("Locking vehicle...\nError executing command: vehicle is asleep\n"))
			Expect(out).To(ContainSubstring("Unlocking vehicle...\nCommand sent successfully.\n"))
		})

		It("warns when a failed command may have succeeded", func() {
			car.EXPECT().EngineStop(gomock.Any()).Return(protocol.NewError("timed out", true, true))
			out := run("8\n\n0\n", car)
			Expect(out).To(ContainSubstring("Error executing command: timed out\nThe command may still have reached the vehicle."))
		})

		It("reports status errors", func() {
			car.EXPECT().Update(gomock.Any()).Return(protocol.ErrVehicleOffline)
			out := run("1\n\n0\n", car)
			Expect(out).To(ContainSubstring("Error executing command: " + protocol.ErrVehicleOffline.Error()))
		})

		It("bounds each command with the timeout", func() {
			car.EXPECT().Lock(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
				_, ok := ctx.Deadline()
				Expect(ok).To(BeTrue())
				return nil
			})
			run("2\n\n0\n", car)
		})

		It("stops at the end of input while paused", func() {
			car.EXPECT().Honk(gomock.Any()).Return(nil)
			out := run("4\n", car)
			Expect(out).To(HaveSuffix("Press Enter to continue...\n"))
		})
	})

	Context("cancellation", func() {
		It("does not send commands once the context is done", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			var out bytes.Buffer
			s := shell.New(strings.NewReader("2\n\n2\n\n0\n"), &out, []shell.Vehicle{car}, time.Second)
			Expect(s.Run(ctx)).To(MatchError(context.Canceled))
			Expect(out.String()).ToNot(ContainSubstring("Error executing command"))
		})

		It("stops after the command that was running when the context was cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			car.EXPECT().Lock(gomock.Any()).DoAndReturn(func(context.Context) error {
				cancel()
				return nil
			})
			var out bytes.Buffer
			s := shell.New(strings.NewReader("2\n\n2\n\n0\n"), &out, []shell.Vehicle{car}, time.Second)
			Expect(s.Run(ctx)).To(MatchError(context.Canceled))
			Expect(strings.Count(out.String(), "Locking vehicle...")).To(Equal(1))
			Expect(out.String()).ToNot(ContainSubstring("Press Enter to continue..."))
		})
	})

	Describe("StatusLines", func() {
		It("renders a header and indented attributes", func() {
			car.EXPECT().Attributes().Return([]vehicle.Attribute{{Name: "doors", Value: "{\n  \"frontLeftDoorOpen\": false\n}"}}, nil)
			lines, err := shell.StatusLines(car)
			Expect(err).ToNot(HaveOccurred())
			Expect(lines).To(Equal([]string{
				"Status for vehicle: XC60",
				"  doors: {\n  \"frontLeftDoorOpen\": false\n}",
			}))
		})

		It("fails before the vehicle is updated", func() {
			car.EXPECT().Attributes().Return(nil, vehicle.ErrVehicleStateUnknown)
			_, err := shell.StatusLines(car)
			Expect(err).To(MatchError(vehicle.ErrVehicleStateUnknown))
		})
	})
})
