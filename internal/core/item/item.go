package item

import (
	"github.com/google/uuid"
)

// ID identifies an item kind. Values below the host's native count are
// built-in kinds; everything at or above it was reserved by a module.
type ID int32

// None is the empty item kind. Decoding a reference to a module that is no
// longer loaded yields None.
const None ID = 0

type Vector2 struct {
	X, Y float32
}

type Rectangle struct {
	X, Y, Width, Height int
}

// Color is an RGBA color. The zero value means "no tint".
type Color struct {
	R, G, B, A uint8
}

func (c Color) IsZero() bool {
	return c == Color{}
}

// SpriteBatch is the host's draw surface. Draw hooks receive it untouched.
type SpriteBatch interface {
	Draw(texture ID, position Vector2, source Rectangle, tint Color, rotation float32, origin Vector2, scale float32)
}

// Animation describes a vertically stacked sprite strip.
type Animation struct {
	FrameCount    int
	TicksPerFrame int
}

// Source is the sub-rectangle of a texture holding frame.
func (a Animation) Source(textureWidth, textureHeight, frame int) Rectangle {
	count := a.FrameCount
	if count < 1 {
		count = 1
	}
	h := textureHeight / count
	return Rectangle{X: 0, Y: frame * h, Width: textureWidth, Height: h}
}

// Item is a concrete item instance living in the simulation. It exclusively
// owns its behavior object; the behavior only points back.
type Item struct {
	UID    uuid.UUID
	Type   ID
	WhoAmI int
	Name   string

	Stack    int
	MaxStack int

	UseTime      int
	UseAnimation int
	UseStyle     int
	HoldStyle    int

	Damage    int
	Knockback float32
	Melee     bool
	Ranged    bool
	Magic     bool
	Summon    bool

	NoUseGraphic bool
	Consumable   bool

	Width    int
	Height   int
	Position Vector2
	Color    Color

	HeadSlot int
	BodySlot int
	LegSlot  int
	WingSlot int

	Frame        int
	FrameCounter int

	behavior Behavior
}

// New returns an empty item with a fresh instance id.
func New() *Item {
	it := &Item{UID: uuid.New()}
	it.Reset()
	return it
}

// Behavior returns the bound behavior object, or nil for native kinds.
func (it *Item) Behavior() Behavior {
	return it.behavior
}

// IsAir reports whether the slot holding it is effectively empty.
func (it *Item) IsAir() bool {
	return it == nil || it.Type == None || it.Stack <= 0
}

// Reset clears the simulation state ahead of applying a kind's defaults.
// Identity (UID, WhoAmI) and world position survive.
func (it *Item) Reset() {
	if it.behavior != nil {
		*it.behavior.base() = Base{}
	}
	*it = Item{
		UID:      it.UID,
		WhoAmI:   it.WhoAmI,
		Position: it.Position,
		HeadSlot: -1,
		BodySlot: -1,
		LegSlot:  -1,
		WingSlot: -1,
	}
}

type NPC struct {
	WhoAmI   int
	Type     int
	Life     int
	LifeMax  int
	Defense  int
	Position Vector2
}

// ArmorSlots is the size of a player's armor array: three armor pieces,
// accessories, and the vanity copies starting at slot 10.
const ArmorSlots = 20

const (
	SlotHead       = 0
	SlotBody       = 1
	SlotLegs       = 2
	SlotFirstAcc   = 3
	SlotVanityHead = 10
	baseAccSlots   = 5
)

type Player struct {
	WhoAmI int
	Armor  [ArmorSlots]*Item

	ExtraAccessorySlots int

	StatLife    int
	StatLifeMax int
	Defense     int
	SetBonus    string

	ItemTime      int
	ItemAnimation int
	Pulley        bool

	AccRunSpeed     float32
	RunAcceleration float32
}

// HeadItem is the item whose sprite is drawn on the head: the vanity helmet
// when one is equipped, the armor helmet otherwise.
func (p *Player) HeadItem() *Item {
	if vanity := p.Armor[SlotVanityHead]; vanity != nil && vanity.HeadSlot >= 0 {
		return vanity
	}
	return p.Armor[SlotHead]
}

// Wing returns the last equipped accessory providing wings, or nil.
func (p *Player) Wing() *Item {
	var wing *Item
	last := SlotFirstAcc + baseAccSlots + p.ExtraAccessorySlots
	if last > ArmorSlots {
		last = ArmorSlots
	}
	for k := SlotFirstAcc; k < last; k++ {
		if it := p.Armor[k]; it != nil && it.WingSlot > 0 {
			wing = it
		}
	}
	return wing
}

// Clone is a memberwise copy with a fresh instance id and no behavior bound.
// Callers holding extension items must rebind the copy before handing it to
// the simulation.
func (it *Item) Clone() *Item {
	c := *it
	c.UID = uuid.New()
	c.behavior = nil
	return &c
}
