package display

import (
	"strings"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/nathanKramer/planewar/planewar"
	"github.com/rs/zerolog"
)

const uiJoyThreshold = 0.5

// Window is the part of *pixelgl.Window input polling needs.
type Window interface {
	Closed() bool
	Bounds() pixel.Rect
	Pressed(pixelgl.Button) bool
	JustPressed(pixelgl.Button) bool
	JustReleased(pixelgl.Button) bool
	MousePosition() pixel.Vec
	JoystickPresent(pixelgl.Joystick) bool
	JoystickAxis(pixelgl.Joystick, pixelgl.GamepadAxis) float64
	JoystickPressed(pixelgl.Joystick, pixelgl.GamepadButton) bool
	JoystickJustPressed(pixelgl.Joystick, pixelgl.GamepadButton) bool
}

var movement = map[pixelgl.Button]planewar.Action{
	pixelgl.KeyLeft:  planewar.ActionLeft,
	pixelgl.KeyA:     planewar.ActionLeft,
	pixelgl.KeyRight: planewar.ActionRight,
	pixelgl.KeyD:     planewar.ActionRight,
	pixelgl.KeyUp:    planewar.ActionUp,
	pixelgl.KeyW:     planewar.ActionUp,
	pixelgl.KeyDown:  planewar.ActionDown,
	pixelgl.KeyS:     planewar.ActionDown,
}

var gamepad = map[pixelgl.GamepadButton]planewar.Action{
	pixelgl.ButtonA:     planewar.ActionFire,
	pixelgl.ButtonX:     planewar.ActionChase,
	pixelgl.ButtonStart: planewar.ActionPause,
	pixelgl.ButtonBack:  planewar.ActionQuit,
}

// keyNames maps lower-case button names to buttons.
var keyNames = func() map[string]pixelgl.Button {
	names := map[string]pixelgl.Button{}
	for b := pixelgl.MouseButton1; b <= pixelgl.KeyLast; b++ {
		if n := b.String(); n != "" && n != "Invalid" {
			names[strings.ToLower(n)] = b
		}
	}
	return names
}()

// Controls polls a window once per frame.
type Controls struct {
	win      Window
	screen   pixel.Rect
	bindings map[pixelgl.Button]planewar.Action
	buttons  []pixelgl.Button
	joystick pixelgl.Joystick
	log      zerolog.Logger
}

// NewControls binds the configured key names. Unknown names are logged and
// left unbound.
func NewControls(win Window, screen pixel.Rect, keys planewar.Keys, log zerolog.Logger) *Controls {
	c := &Controls{
		win:      win,
		screen:   screen,
		bindings: map[pixelgl.Button]planewar.Action{},
		joystick: pixelgl.Joystick1,
		log:      log.With().Str("component", "controls").Logger(),
	}
	for b, a := range movement {
		c.bindings[b] = a
	}
	c.bindings[pixelgl.KeyEnter] = planewar.ActionConfirm
	c.bindings[pixelgl.MouseButtonLeft] = planewar.ActionFire

	bind := func(name string, a planewar.Action) {
		b, ok := keyNames[strings.ToLower(name)]
		if !ok {
			c.log.Warn().Str("key", name).Stringer("action", a).Msg("unknown key name, left unbound")
			return
		}
		c.bindings[b] = a
	}
	bind(keys.Pause, planewar.ActionPause)
	bind(keys.Quit, planewar.ActionQuit)
	bind(keys.Fire, planewar.ActionFire)
	bind(keys.Fullscreen, planewar.ActionFullscreen)
	bind(keys.FPS, planewar.ActionFPS)
	bind(keys.Chase, planewar.ActionChase)

	for _, b := range keyNames {
		c.buttons = append(c.buttons, b)
	}
	for j := pixelgl.Joystick1; j <= pixelgl.JoystickLast; j++ {
		if win.JoystickPresent(j) {
			c.joystick = j
			c.log.Info().Int("joystick", int(j)).Msg("joystick connected")
			break
		}
	}
	return c
}

// Poll snapshots held actions and collects the presses and clicks since the last frame.
func (c *Controls) Poll() planewar.Input {
	in := planewar.Input{Closed: c.win.Closed()}

	for b, a := range c.bindings {
		if c.win.Pressed(b) {
			in.Hold(a)
		}
	}
	for _, b := range c.buttons {
		if !c.win.JustPressed(b) {
			continue
		}
		in.Events = append(in.Events, planewar.Event{
			Type:   planewar.EventKeyDown,
			Action: c.bindings[b],
			Key:    strings.ToLower(b.String()),
		})
	}
	if c.win.JustReleased(pixelgl.MouseButtonLeft) {
		in.Events = append(in.Events, planewar.Event{
			Type: planewar.EventMouseUp,
			Pos:  c.toScreen(c.win.MousePosition()),
		})
	}

	c.pollJoystick(&in)
	return in
}

func (c *Controls) pollJoystick(in *planewar.Input) {
	if !c.win.JoystickPresent(c.joystick) {
		return
	}
	x := c.win.JoystickAxis(c.joystick, pixelgl.AxisLeftX)
	y := -c.win.JoystickAxis(c.joystick, pixelgl.AxisLeftY)
	if x < -uiJoyThreshold {
		in.Hold(planewar.ActionLeft)
	} else if x > uiJoyThreshold {
		in.Hold(planewar.ActionRight)
	}
	if y < -uiJoyThreshold {
		in.Hold(planewar.ActionDown)
	} else if y > uiJoyThreshold {
		in.Hold(planewar.ActionUp)
	}

	for b, a := range gamepad {
		if c.win.JoystickPressed(c.joystick, b) {
			in.Hold(a)
		}
		if c.win.JoystickJustPressed(c.joystick, b) {
			in.Events = append(in.Events, planewar.Event{Type: planewar.EventKeyDown, Action: a})
		}
	}
}

// toScreen maps a window position onto the playfield drawn by Present.
func (c *Controls) toScreen(p pixel.Vec) pixel.Vec {
	return fit(c.screen, c.win.Bounds()).Unproject(p).Add(c.screen.Center())
}
