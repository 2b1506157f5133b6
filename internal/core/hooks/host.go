package hooks

import "github.com/zeusync/modkit/internal/core/item"

// SoundGrab is the host sound played when a right-click opens an item.
const SoundGrab = 7

// StackSplitDelay is the input cooldown, in ticks, after a right-click use.
const StackSplitDelay = 30

// Host is the slice of the simulation the dispatcher calls back into.
type Host interface {
	// NativeDefaults fills in the built-in stats for it.Type. It is also
	// called for None.
	NativeDefaults(it *item.Item)

	MouseRight() bool
	MouseRightRelease() bool
	ReleaseMouseRight()
	SetStackSplit(ticks int)
	PlaySound(sound int)
	FindRecipes()
}

// NopHost is a headless host: no input, no audio, no native stats.
type NopHost struct{}

var _ Host = NopHost{}

func (NopHost) NativeDefaults(*item.Item) {}
func (NopHost) MouseRight() bool          { return false }
func (NopHost) MouseRightRelease() bool   { return false }
func (NopHost) ReleaseMouseRight()        {}
func (NopHost) SetStackSplit(int)         {}
func (NopHost) PlaySound(int)             {}
func (NopHost) FindRecipes()              {}
