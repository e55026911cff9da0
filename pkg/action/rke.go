package action

// HonkFlashMode selects which signals a honk/flash command produces.
type HonkFlashMode string

const (
	ModeHonk         HonkFlashMode = "HONK"
	ModeFlash        HonkFlashMode = "FLASH"
	ModeHonkAndFlash HonkFlashMode = "HONK_AND_FLASH"
)

type honkFlashBody struct {
	Mode HonkFlashMode `json:"mode"`
}

// Lock locks the vehicle.
func Lock() *Command {
	return buildCommand("lock", nil)
}

// Unlock unlocks the vehicle.
func Unlock() *Command {
	return buildCommand("unlock", nil)
}

// Honk sounds the horn.
func Honk() *Command {
	return buildHonkFlash(ModeHonk)
}

// Flash flashes the exterior lights.
func Flash() *Command {
	return buildHonkFlash(ModeFlash)
}

// HonkAndFlash sounds the horn and flashes the exterior lights.
func HonkAndFlash() *Command {
	return buildHonkFlash(ModeHonkAndFlash)
}

// buildHonkFlash builds a command for the shared horn/lights endpoint, which is what the keyfob's
// panic button uses.
func buildHonkFlash(mode HonkFlashMode) *Command {
	return buildCommand("honk_flash", &honkFlashBody{Mode: mode})
}
