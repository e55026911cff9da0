package action_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

var _ = Describe("RKE Actions", func() {
	Describe("Lock", func() {
		It("returns lock command with empty body", func() {
			command := action.Lock()
			Expect(command).ToNot(BeNil())
			Expect(command.Name).To(Equal("lock"))
			Expect(json.Marshal(command.Body)).To(MatchJSON(`{}`))
		})
	})

	Describe("Unlock", func() {
		It("returns unlock command with empty body", func() {
			command := action.Unlock()
			Expect(command).ToNot(BeNil())
			Expect(command.Name).To(Equal("unlock"))
			Expect(json.Marshal(command.Body)).To(MatchJSON(`{}`))
		})
	})

	DescribeTable("honk and flash",
		func(build func() *action.Command, mode string) {
			command := build()
			Expect(command).ToNot(BeNil())
			Expect(command.Name).To(Equal("honk_flash"))
			Expect(json.Marshal(command.Body)).To(MatchJSON(`{"mode":"` + mode + `"}`))
		},
		Entry("Honk", action.Honk, "HONK"),
		Entry("Flash", action.Flash, "FLASH"),
		Entry("HonkAndFlash", action.HonkAndFlash, "HONK_AND_FLASH"),
	)
})
