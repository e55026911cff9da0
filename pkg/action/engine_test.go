package action_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

var _ = Describe("Engine Actions", func() {
	Describe("EngineStart", func() {
		It("includes the runtime", func() {
			command, err := action.EngineStart(action.DefaultEngineRuntime)
			Expect(err).ToNot(HaveOccurred())
			Expect(command.Name).To(Equal("engine_start"))
			Expect(json.Marshal(command.Body)).To(MatchJSON(`{"runtimeMinutes":10}`))
		})

		It("accepts the maximum runtime", func() {
			command, err := action.EngineStart(action.MaxEngineRuntime)
			Expect(err).ToNot(HaveOccurred())
			Expect(json.Marshal(command.Body)).To(MatchJSON(`{"runtimeMinutes":15}`))
		})

		It("rejects runtimes out of range", func() {
			for _, minutes := range []int{-1, 0, 16, 60} {
				command, err := action.EngineStart(minutes)
				Expect(err).To(MatchError(action.ErrInvalidDuration))
				Expect(command).To(BeNil())
			}
		})
	})

	Describe("CheckEngineRuntime", func() {
		It("accepts 1 to 15 minutes", func() {
			Expect(action.CheckEngineRuntime(1)).To(Succeed())
			Expect(action.CheckEngineRuntime(action.MaxEngineRuntime)).To(Succeed())
		})

		It("rejects longer runtimes", func() {
			Expect(action.CheckEngineRuntime(30)).To(MatchError(action.ErrInvalidDuration))
		})
	})

	Describe("EngineStop", func() {
		It("returns engine stop command", func() {
			command := action.EngineStop()
			Expect(command.Name).To(Equal("engine_stop"))
			Expect(json.Marshal(command.Body)).To(MatchJSON(`{}`))
		})
	})
})
