//go:build cgo

package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// CtrlPressedKey reports Ctrl+key. Plain letters go to the text input, so
// shortcuts need a modifier that does not produce a character.
func CtrlPressedKey(key int32) bool {
	if ctrlDown() && rl.IsKeyPressed(key) {
		return true
	}
	// Accept either key order: Ctrl then key, or key then Ctrl.
	return rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftControl) || rl.IsKeyPressed(rl.KeyRightControl))
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}
