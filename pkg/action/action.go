// Package action builds the remote commands accepted by the cloud API. Each builder returns a
// [Command] that can be passed to vehicle.Vehicle.ExecuteAction.
package action

// Command is a remote command: the name of the command endpoint and the JSON request body.
type Command struct {
	Name string
	Body interface{}
}

type emptyBody struct{}

func buildCommand(name string, body interface{}) *Command {
	if body == nil {
		body = emptyBody{}
	}
	return &Command{Name: name, Body: body}
}
