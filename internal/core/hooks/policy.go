package hooks

import "fmt"

// Hook names one call-out point the host invokes.
type Hook uint8

const (
	HookSetDefaults Hook = iota
	HookCanUseItem
	HookUseStyle
	HookHoldStyle
	HookHoldItem
	HookConsumeAmmo
	HookShoot
	HookUseItemHitbox
	HookMeleeEffects
	HookModifyHitNPC
	HookOnHitNPC
	HookModifyHitPvp
	HookOnHitPvp
	HookUseItem
	HookConsumeItem
	HookUseItemFrame
	HookHoldItemFrame
	HookUpdateInventory
	HookUpdateEquip
	HookUpdateAccessory
	HookUpdateArmorSet
	HookCanRightClick
	HookRightClick
	HookDrawHair
	HookDrawHead
	HookVerticalWingSpeeds
	HookHorizontalWingSpeeds
	HookUpdate
	HookGetAlpha
	HookPreDrawInWorld
	HookPostDrawInWorld

	hookCount
)

// Policy is how the answers of the participants of one hook combine.
type Policy uint8

const (
	// AllMustAllow is true only if every participant returns true.
	AllMustAllow Policy = iota
	// FirstTrueWins stops at the first participant returning true.
	FirstTrueWins
	// FirstNonNullWins returns the first participant's present value.
	FirstNonNullWins
	// MutationFold threads mutable parameters through every participant.
	MutationFold
	// Broadcast runs every participant for its side effects.
	Broadcast
)

func (p Policy) String() string {
	switch p {
	case AllMustAllow:
		return "all-must-allow"
	case FirstTrueWins:
		return "first-true-wins"
	case FirstNonNullWins:
		return "first-non-null-wins"
	case MutationFold:
		return "mutation-fold"
	case Broadcast:
		return "broadcast"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// Order is which participant goes first.
type Order uint8

const (
	EntityFirst Order = iota
	GlobalsFirst
)

// Spec declares a hook's combination rules.
type Spec struct {
	Name   string
	Policy Policy
	Order  Order
	// ShortCircuit lets AllMustAllow stop at the first refusal. Hooks whose
	// participants carry side effects keep it off.
	ShortCircuit bool
	// Mutates marks hooks that also thread mutable parameters.
	Mutates bool
}

// The order and short-circuit columns are load-bearing: combat and
// projectile hooks compute different numbers if participants are reordered.
var table = [hookCount]Spec{
	HookSetDefaults:          {Name: "SetDefaults", Policy: Broadcast, Order: EntityFirst},
	HookCanUseItem:           {Name: "CanUseItem", Policy: AllMustAllow, Order: EntityFirst, ShortCircuit: true},
	HookUseStyle:             {Name: "UseStyle", Policy: Broadcast, Order: EntityFirst},
	HookHoldStyle:            {Name: "HoldStyle", Policy: Broadcast, Order: EntityFirst},
	HookHoldItem:             {Name: "HoldItem", Policy: Broadcast, Order: EntityFirst},
	HookConsumeAmmo:          {Name: "ConsumeAmmo", Policy: AllMustAllow, Order: EntityFirst, ShortCircuit: true},
	HookShoot:                {Name: "Shoot", Policy: AllMustAllow, Order: GlobalsFirst, ShortCircuit: true, Mutates: true},
	HookUseItemHitbox:        {Name: "UseItemHitbox", Policy: MutationFold, Order: EntityFirst, Mutates: true},
	HookMeleeEffects:         {Name: "MeleeEffects", Policy: Broadcast, Order: EntityFirst},
	HookModifyHitNPC:         {Name: "ModifyHitNPC", Policy: MutationFold, Order: EntityFirst, Mutates: true},
	HookOnHitNPC:             {Name: "OnHitNPC", Policy: Broadcast, Order: EntityFirst},
	HookModifyHitPvp:         {Name: "ModifyHitPvp", Policy: MutationFold, Order: EntityFirst, Mutates: true},
	HookOnHitPvp:             {Name: "OnHitPvp", Policy: Broadcast, Order: EntityFirst},
	HookUseItem:              {Name: "UseItem", Policy: Broadcast, Order: EntityFirst},
	HookConsumeItem:          {Name: "ConsumeItem", Policy: AllMustAllow, Order: EntityFirst},
	HookUseItemFrame:         {Name: "UseItemFrame", Policy: FirstTrueWins, Order: EntityFirst},
	HookHoldItemFrame:        {Name: "HoldItemFrame", Policy: FirstTrueWins, Order: EntityFirst},
	HookUpdateInventory:      {Name: "UpdateInventory", Policy: Broadcast, Order: EntityFirst},
	HookUpdateEquip:          {Name: "UpdateEquip", Policy: Broadcast, Order: EntityFirst},
	HookUpdateAccessory:      {Name: "UpdateAccessory", Policy: Broadcast, Order: EntityFirst},
	HookUpdateArmorSet:       {Name: "UpdateArmorSet", Policy: Broadcast, Order: EntityFirst},
	HookCanRightClick:        {Name: "CanRightClick", Policy: FirstTrueWins, Order: EntityFirst},
	HookRightClick:           {Name: "RightClick", Policy: Broadcast, Order: EntityFirst},
	HookDrawHair:             {Name: "DrawHair", Policy: MutationFold, Order: EntityFirst, Mutates: true},
	HookDrawHead:             {Name: "DrawHead", Policy: AllMustAllow, Order: EntityFirst, ShortCircuit: true},
	HookVerticalWingSpeeds:   {Name: "VerticalWingSpeeds", Policy: MutationFold, Order: EntityFirst, Mutates: true},
	HookHorizontalWingSpeeds: {Name: "HorizontalWingSpeeds", Policy: MutationFold, Order: EntityFirst, Mutates: true},
	HookUpdate:               {Name: "Update", Policy: MutationFold, Order: EntityFirst, Mutates: true},
	HookGetAlpha:             {Name: "GetAlpha", Policy: FirstNonNullWins, Order: GlobalsFirst},
	HookPreDrawInWorld:       {Name: "PreDrawInWorld", Policy: AllMustAllow, Order: EntityFirst, Mutates: true},
	HookPostDrawInWorld:      {Name: "PostDrawInWorld", Policy: Broadcast, Order: EntityFirst},
}

// SpecOf returns the declared rules for h.
func SpecOf(h Hook) Spec {
	return table[h]
}

// Hooks lists every hook point in declaration order.
func Hooks() []Hook {
	out := make([]Hook, hookCount)
	for i := range out {
		out[i] = Hook(i)
	}
	return out
}

func (h Hook) String() string {
	if h < hookCount {
		return table[h].Name
	}
	return fmt.Sprintf("hook(%d)", uint8(h))
}
