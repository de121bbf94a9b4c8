package main

import (
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

// Input holds the player's intent for the current frame.
type Input struct {
	MoveX float64
	MoveY float64
	// Fire is held while the left mouse button or right trigger is down.
	Fire      bool
	AimX      float64
	AimY      float64
	AimStick  bool
	Restart   bool
	NextBoss  bool
	Pause     bool
	ToggleHUD bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveY += 1
	}

	mx, my := ebiten.CursorPosition()
	i.AimX, i.AimY = float64(mx), float64(my)
	i.AimStick = false
	i.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX, moveY = lx, ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			i.AimX, i.AimY = rx, ry
			i.AimStick = true
			i.Fire = true
		}
		i.Fire = i.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	i.MoveX, i.MoveY = moveX, moveY
	i.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.NextBoss = inpututil.IsKeyJustPressed(ebiten.KeyN)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.ToggleHUD = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// AimAngle returns the firing angle from (fromX, fromY). Stick aim is a
// direction, mouse aim a screen point.
func (i *Input) AimAngle(fromX, fromY float64) float64 {
	if i.AimStick {
		return math.Atan2(i.AimY, i.AimX)
	}
	return math.Atan2(i.AimY-fromY, i.AimX-fromX)
}
