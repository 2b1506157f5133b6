package main

import (
	"github.com/zeusync/modkit/internal/core/hooks"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
)

var _ hooks.Host = (*headlessHost)(nil)

// headlessHost stands in for the game. The right mouse button always reads
// as pressed and released, so every right-click the simulation issues goes
// through. Sounds and recipe refreshes are only logged.
type headlessHost struct {
	log log.Log
}

func (h *headlessHost) NativeDefaults(it *item.Item) {
	if it.Type == item.None {
		return
	}
	it.Stack, it.MaxStack = 1, 999
}

func (h *headlessHost) MouseRight() bool        { return true }
func (h *headlessHost) MouseRightRelease() bool { return true }
func (h *headlessHost) ReleaseMouseRight()      {}
func (h *headlessHost) SetStackSplit(int)       {}

func (h *headlessHost) PlaySound(kind int) {
	h.log.Debug("sound", log.Int("kind", kind))
}

func (h *headlessHost) FindRecipes() {
	h.log.Debug("recipes refreshed")
}
