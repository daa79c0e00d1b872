package planewar

import "github.com/faiface/pixel"

type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionChase
	ActionPause
	ActionQuit
	ActionFullscreen
	ActionFPS
	ActionConfirm
	actionCount
)

var actionNames = [...]string{
	"none", "left", "right", "up", "down", "fire", "chase",
	"pause", "quit", "fullscreen", "fps", "confirm",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

type EventType int

const (
	EventKeyDown EventType = iota
	EventMouseUp
)

// Event is a discrete key press or mouse release seen since the last frame.
type Event struct {
	Type   EventType
	Action Action
	// Key is the lower-case key name, used for the debug chord.
	Key string
	Pos pixel.Vec
}

// Input is one frame's snapshot: what is held now, and what happened since last frame.
type Input struct {
	Held   [actionCount]bool
	Events []Event
	Closed bool
}

func (in *Input) Hold(a Action) {
	if a > ActionNone && a < actionCount {
		in.Held[a] = true
	}
}

func (in Input) Pressed(a Action) bool {
	return a > ActionNone && a < actionCount && in.Held[a]
}

// Axis is the requested movement direction, each component in {-1, 0, 1}.
func (in Input) Axis() (x, y float64) {
	if in.Pressed(ActionLeft) {
		x--
	}
	if in.Pressed(ActionRight) {
		x++
	}
	if in.Pressed(ActionDown) {
		y--
	}
	if in.Pressed(ActionUp) {
		y++
	}
	return x, y
}
