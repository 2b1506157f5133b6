package sample

import (
	"github.com/zeusync/modkit/internal/core/item"
)

const ironSetBonus = 4

type IronHelmet struct {
	item.Base
}

func (h *IronHelmet) SetDefaults() {
	h.Item().HeadSlot = 5
}

func (h *IronHelmet) UpdateEquip(p *item.Player) {
	p.Defense += 2
}

// IsArmorSet is answered by the helmet only, so the bonus applies once.
func (h *IronHelmet) IsArmorSet(head, body, legs *item.Item) bool {
	return is[*IronHelmet](head) && is[*IronMail](body) && is[*IronGreaves](legs)
}

func (h *IronHelmet) UpdateArmorSet(p *item.Player) {
	p.SetBonus = "+4 defense"
	p.Defense += ironSetBonus
}

// DrawHair hides all hair under the closed helmet.
func (h *IronHelmet) DrawHair(drawHair, drawAltHair *bool) {
	*drawHair, *drawAltHair = false, false
}

type IronMail struct {
	item.Base
}

func (m *IronMail) SetDefaults() {
	m.Item().BodySlot = 5
}

func (m *IronMail) UpdateEquip(p *item.Player) {
	p.Defense += 3
}

type IronGreaves struct {
	item.Base
}

func (g *IronGreaves) SetDefaults() {
	g.Item().LegSlot = 5
}

func (g *IronGreaves) UpdateEquip(p *item.Player) {
	p.Defense += 2
}

func is[T item.Behavior](it *item.Item) bool {
	if it == nil {
		return false
	}
	_, ok := it.Behavior().(T)
	return ok
}
