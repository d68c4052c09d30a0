package component

import (
	"testing"

	"go-yarn-defense/internal/defs"
	"go-yarn-defense/pkg/override"
)

func TestStatStackSetLevel(t *testing.T) {
	def := &defs.TowerDefinition{
		Base: defs.BaseStats{Range: 2, AttackSpeed: 1, Sprite: "base"},
		Tiers: []defs.OverridableStats{
			{Range: override.Some(3.0)},
			{Sprite: override.Some("gold")},
		},
	}
	s := NewStatStack(def)
	if s.Level() != -1 || s.Stats().Range != 2 {
		t.Fatalf("new stack = level %d, %+v", s.Level(), s.Stats())
	}

	stats, changed := s.SetLevel(1)
	if !changed || stats.Range != 3 || stats.Sprite != "gold" {
		t.Errorf("SetLevel(1) = %+v, %v", stats, changed)
	}
	if _, changed := s.SetLevel(1); changed {
		t.Errorf("SetLevel to the same level should be a no-op")
	}
	if _, changed := s.SetLevel(7); changed || s.Level() != 1 {
		t.Errorf("SetLevel above the last tier should clamp to it, level = %d", s.Level())
	}
	stats, changed = s.SetLevel(-3)
	if !changed || s.Level() != -1 || stats.Range != 2 || stats.Sprite != "base" {
		t.Errorf("SetLevel(-3) = %+v, %v, level %d", stats, changed, s.Level())
	}
}

func TestPlayerDamageClamps(t *testing.T) {
	p := &PlayerState{Health: 5, MaxHealth: 5}
	if got := p.Damage(3); got != 3 || p.Health != 2 {
		t.Errorf("Damage(3) = %d, health %d", got, p.Health)
	}
	if got := p.Damage(10); got != 2 || p.Health != 0 || !p.Defeated() {
		t.Errorf("Damage(10) = %d, health %d", got, p.Health)
	}
	if got := p.Damage(1); got != 0 {
		t.Errorf("Damage on a defeated player = %d", got)
	}
}
