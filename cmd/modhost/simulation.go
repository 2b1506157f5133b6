package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/zeusync/modkit/internal/core/codec"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/injector"
	"github.com/zeusync/modkit/internal/mods/sample"
)

// inventorySize is the number of inventory slots persisted in a save.
const inventorySize = 10

const (
	gravity       = 0.1
	maxFallSpeed  = 7
	baseRunSpeed  = 3
	baseRunAccel  = 0.08
	bagCheckTicks = 20
)

// simulation is a minimal stand-in for the game loop: one player with an
// inventory and a training dummy to hit.
type simulation struct {
	rt        *injector.Runtime
	log       log.Log
	player    *item.Player
	inventory [inventorySize]*item.Item
	selected  int
	dummy     item.NPC
	ticks     int
}

func newSimulation(rt *injector.Runtime) *simulation {
	s := &simulation{
		rt:  rt,
		log: rt.Logger.Named("sim"),
		player: &item.Player{
			StatLife:    60,
			StatLifeMax: 100,
		},
		dummy: item.NPC{Life: 250, LifeMax: 250, Defense: 12},
	}
	for i := range s.inventory {
		s.inventory[i] = item.New()
	}
	return s
}

func (s *simulation) empty() bool {
	for _, it := range s.inventory {
		if !it.IsAir() {
			return false
		}
	}
	return true
}

// spawn creates an ExampleMod item, or nil if the mod is not loaded.
func (s *simulation) spawn(name string) *item.Item {
	id, ok := s.rt.Registry.LookupByName(sample.ExampleModName, name)
	if !ok {
		return nil
	}
	it := item.New()
	s.rt.Dispatcher.SetDefaults(it, id)
	return it
}

func (s *simulation) equipStarterKit() {
	d := s.rt.Dispatcher
	for i, name := range []string{"CopperBlade", "StarWand", "HealingFlask", "TreasureBag"} {
		if it := s.spawn(name); it != nil {
			s.inventory[i] = it
		}
	}
	if flask := s.inventory[2]; !flask.IsAir() {
		flask.Stack = 3
	}
	if bag := s.inventory[3]; !bag.IsAir() {
		bag.Stack = 2
	}
	d.SetDefaults(s.inventory[4], 1)

	for slot, name := range map[int]string{
		item.SlotHead:         "IronHelmet",
		item.SlotBody:         "IronMail",
		item.SlotLegs:         "IronGreaves",
		item.SlotFirstAcc + 1: "FeatherWings",
	} {
		s.player.Armor[slot] = s.spawn(name)
	}
}

func (s *simulation) tick() {
	s.ticks++
	s.updatePlayer()
	s.useHeldItem()
	s.openBags()
	s.draw()
}

func (s *simulation) updatePlayer() {
	d, p := s.rt.Dispatcher, s.player

	p.Defense, p.SetBonus = 0, ""
	p.AccRunSpeed, p.RunAcceleration = baseRunSpeed, baseRunAccel

	for _, it := range s.inventory {
		if !it.IsAir() {
			d.UpdateInventory(it, p)
		}
	}
	for slot, it := range p.Armor {
		if it.IsAir() {
			continue
		}
		if slot < item.SlotFirstAcc {
			d.UpdateEquip(it, p)
		} else {
			d.UpdateAccessory(it, p)
		}
	}
	d.UpdateArmorSet(p, p.Armor[item.SlotHead], p.Armor[item.SlotBody], p.Armor[item.SlotLegs])

	var wings item.WingSpeeds
	d.VerticalWingSpeeds(p, &wings)
	d.HorizontalWingSpeeds(p)

	if p.ItemTime > 0 {
		p.ItemTime--
	}
	if p.ItemAnimation > 0 {
		p.ItemAnimation--
	}
}

func (s *simulation) useHeldItem() {
	d, p := s.rt.Dispatcher, s.player

	held := s.inventory[s.selected]
	s.selected = (s.selected + 1) % inventorySize
	if held.IsAir() || p.ItemTime > 0 {
		return
	}

	d.HoldItem(held, p)
	d.HoldStyle(held, p)
	if !d.CanUseItem(held, p) {
		return
	}

	p.ItemAnimation = held.UseAnimation
	d.UseStyle(held, p)
	if !d.UseItemFrame(held, p) {
		// The host's default arm animation would run here.
		_ = d.HoldItemFrame(held, p)
	}
	d.UseItem(held, p)

	switch {
	case held.Melee:
		s.swing(held)
	case held.Damage > 0:
		shot := item.Shot{SpeedX: 8, Damage: held.Damage, Knockback: held.Knockback}
		if d.Shoot(held, p, &shot) {
			s.log.Debug("projectile", log.Int("type", shot.Projectile), log.Int("damage", shot.Damage))
		}
	case held.Consumable && d.ConsumeItem(held, p):
		held.Stack--
		if held.Stack <= 0 {
			s.log.Debug("item used up", log.String("uid", held.UID.String()), log.String("item", held.Name))
			d.SetDefaults(held, item.None)
		}
	}
}

func (s *simulation) swing(weapon *item.Item) {
	d, p := s.rt.Dispatcher, s.player

	hitbox := item.Rectangle{Width: weapon.Width, Height: weapon.Height}
	noHitbox := false
	d.UseItemHitbox(weapon, p, &hitbox, &noHitbox)
	if noHitbox {
		return
	}
	d.MeleeEffects(weapon, p, hitbox)

	damage, knockback, crit := weapon.Damage, weapon.Knockback, false
	d.ModifyHitNPC(weapon, p, &s.dummy, &damage, &knockback, &crit)
	damage = max(damage-s.dummy.Defense/2, 1)
	if crit {
		damage *= 2
	}
	s.dummy.Life -= damage
	if s.dummy.Life <= 0 {
		s.dummy.Life = s.dummy.LifeMax
	}
	d.OnHitNPC(weapon, p, &s.dummy, damage, knockback, crit)
}

func (s *simulation) openBags() {
	if s.ticks%bagCheckTicks != 0 {
		return
	}
	d := s.rt.Dispatcher
	for _, it := range s.inventory {
		if !it.IsAir() && d.CanRightClick(it) {
			d.RightClick(it, s.player)
		}
	}
}

func (s *simulation) draw() {
	d, p := s.rt.Dispatcher, s.player
	var batch nopBatch

	drawHair, drawAltHair := true, false
	d.DrawHair(p, &drawHair, &drawAltHair)
	_ = d.DrawHead(p)

	for _, it := range s.inventory {
		if it.IsAir() {
			continue
		}
		_, _ = d.AnimateItem(it)

		light := item.Color{R: 200, G: 200, B: 200, A: 255}
		alpha, ok := d.GetAlpha(it, light)
		if !ok {
			alpha = light
		}
		rotation, scale := float32(0), float32(1)
		if d.PreDrawInWorld(it, batch, light, alpha, &rotation, &scale) {
			batch.Draw(it.Type, it.Position, item.Rectangle{Width: it.Width, Height: it.Height}, alpha, rotation, item.Vector2{}, scale)
		}
		d.PostDrawInWorld(it, batch, light, alpha, rotation, scale)

		vy, maxFall := float32(gravity), float32(maxFallSpeed)
		d.Update(it, &vy, &maxFall)
	}
}

// save writes the inventory followed by the armor slots.
func (s *simulation) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	w := bufio.NewWriter(f)
	enc := codec.NewEncoder(w, s.rt.Registry)

	err = enc.WriteHeader()
	for _, it := range s.inventory {
		if err != nil {
			break
		}
		err = enc.WriteSlot(it)
	}
	for _, it := range s.player.Armor {
		if err != nil {
			break
		}
		err = enc.WriteSlot(it)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.log.Info("saved", log.String("file", path))
	return nil
}

// restore replaces the inventory and armor with the contents of a save. The
// simulation is left untouched unless every slot decodes.
func (s *simulation) restore(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	dec := codec.NewDecoder(bufio.NewReader(f), s.rt.Registry, s.rt.Logger)
	if _, err = dec.ReadHeader(); err != nil {
		return err
	}
	var (
		inventory [inventorySize]*item.Item
		armor     [item.ArmorSlots]*item.Item
	)
	for i := range inventory {
		if inventory[i], err = s.readSlot(dec); err != nil {
			return fmt.Errorf("inventory slot %d: %w", i, err)
		}
	}
	for i := range armor {
		if armor[i], err = s.readSlot(dec); err != nil {
			return fmt.Errorf("armor slot %d: %w", i, err)
		}
	}

	s.inventory = inventory
	for i, it := range armor {
		if !it.IsAir() {
			s.player.Armor[i] = it
		}
	}
	s.log.Info("restored", log.String("file", path), log.Int("degraded", dec.Degraded()))
	return nil
}

func (s *simulation) readSlot(dec *codec.Decoder) (*item.Item, error) {
	slot, err := dec.ReadSlot()
	if err != nil {
		return nil, err
	}
	it := item.New()
	s.rt.Dispatcher.SetDefaults(it, slot.ID)
	if slot.ID != item.None {
		it.Stack = slot.Stack
	}
	return it, nil
}

type nopBatch struct{}

func (nopBatch) Draw(item.ID, item.Vector2, item.Rectangle, item.Color, float32, item.Vector2, float32) {
}
