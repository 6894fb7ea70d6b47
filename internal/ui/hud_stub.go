//go:build !ebiten

package ui

import "landgen/internal/terrain"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*terrain.Generator, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

// Width returns zero in the headless build.
func (h *HUD) Width() int { return 0 }
