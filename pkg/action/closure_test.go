package action_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/volvooncall-cn/vehicle-command/pkg/action"
)

var _ = Describe("Closure Actions", func() {
	DescribeTable("builds closure commands",
		func(build func() *action.Command, name, operation string) {
			command := build()
			Expect(command).ToNot(BeNil())
			Expect(command.Name).To(Equal(name))
			Expect(json.Marshal(command.Body)).To(MatchJSON(`{"operation":"` + operation + `"}`))
		},
		Entry("OpenTailgate", action.OpenTailgate, "tailgate", "OPEN"),
		Entry("CloseTailgate", action.CloseTailgate, "tailgate", "CLOSE"),
		Entry("OpenSunroof", action.OpenSunroof, "sunroof", "OPEN"),
		Entry("CloseSunroof", action.CloseSunroof, "sunroof", "CLOSE"),
	)
})
