package item

// Prefix eligibility for extension items. Native kinds answer through the
// host's own tables, so these all report false when no behavior is bound.

func MeleePrefix(it *Item) bool {
	if it.behavior == nil {
		return false
	}
	return it.Damage > 0 && it.Melee && !it.NoUseGraphic
}

func WeaponPrefix(it *Item) bool {
	if it.behavior == nil {
		return false
	}
	return it.Damage > 0 && it.Melee && it.NoUseGraphic
}

func RangedPrefix(it *Item) bool {
	if it.behavior == nil {
		return false
	}
	return it.Damage > 0 && it.Ranged
}

func MagicPrefix(it *Item) bool {
	if it.behavior == nil {
		return false
	}
	return it.Damage > 0 && (it.Magic || it.Summon)
}
