//go:build cgo

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
	"github.com/appengine-ltd/immune-defense/internal/game"
)

// Clinical palette for the immune field view.
var (
	colorBG        = rl.NewColor(0x10, 0x16, 0x1E, 255) // #10161E
	colorPanel     = rl.NewColor(0x18, 0x21, 0x2B, 255) // #18212B
	colorRaised    = rl.NewColor(0x20, 0x2C, 0x38, 255) // #202C38
	colorBorder    = rl.NewColor(0x2E, 0x3C, 0x4A, 255) // #2E3C4A
	colorText      = rl.NewColor(0xE6, 0xEA, 0xEE, 255) // #E6EAEE
	colorMuted     = rl.NewColor(0x7D, 0x8A, 0x96, 255) // #7D8A96
	colorAccent    = rl.NewColor(0x4F, 0xB3, 0xD9, 255) // #4FB3D9
	colorCorrect   = rl.NewColor(0x3F, 0xA9, 0x6B, 255) // #3FA96B
	colorIncorrect = rl.NewColor(0xC8, 0x4B, 0x4B, 255) // #C84B4B
	colorWarning   = rl.NewColor(0xC1, 0x8B, 0x2F, 255) // #C18B2F
	colorDisabled  = rl.NewColor(0x4A, 0x52, 0x5A, 255)
)

func statusColor(st game.Status) rl.Color {
	switch st {
	case game.StatusCorrect:
		return colorCorrect
	case game.StatusIncorrect:
		return colorIncorrect
	case game.StatusDisabled:
		return colorDisabled
	default:
		return colorText
	}
}

func targetColor(t catalog.TargetType) rl.Color {
	switch t {
	case catalog.TargetVirus:
		return rl.NewColor(0xB0, 0x5C, 0xD6, 255)
	case catalog.TargetBacteria:
		return rl.NewColor(0x7C, 0xB3, 0x42, 255)
	case catalog.TargetFungus:
		return rl.NewColor(0xD9, 0xA4, 0x41, 255)
	default:
		return rl.NewColor(0xC8, 0x6B, 0x5A, 255)
	}
}

// cellColor gives each immune cell line a stable hue.
func cellColor(id catalog.ItemID) rl.Color {
	switch id {
	case "neutrophil":
		return rl.NewColor(0xF2, 0xE8, 0xCF, 255)
	case "macrophage":
		return rl.NewColor(0xE0, 0x9F, 0x3E, 255)
	case "dendritic":
		return rl.NewColor(0x9A, 0xD1, 0xD4, 255)
	case "nk":
		return rl.NewColor(0xE5, 0x6B, 0x6F, 255)
	case "bcell":
		return rl.NewColor(0x6C, 0x9B, 0xF5, 255)
	case "tcell_helper":
		return rl.NewColor(0x5F, 0xD0, 0x8A, 255)
	case "tcell_cytotoxic":
		return rl.NewColor(0xF0, 0x5D, 0x3C, 255)
	default:
		return colorAccent
	}
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rl.NewColor(mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A))
}
