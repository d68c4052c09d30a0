// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"slices"

	"go-yarn-defense/internal/component"
	"go-yarn-defense/internal/types"
	"go-yarn-defense/pkg/hexmap"
)

var errRunFinished = errors.New("the run is over")

// PlaceTower builds the selected tower on hex.
func (g *Game) PlaceTower(hex hexmap.Hex) (types.EntityID, error) {
	if g.Finished() {
		return 0, errRunFinished
	}
	if !g.HexMap.CanPlaceTower(hex) {
		return 0, fmt.Errorf("no tower can stand on %v", hex)
	}
	if !slices.Contains(g.Level.Towers, g.SelectedTower) {
		return 0, fmt.Errorf("tower %q is not available in level %s", g.SelectedTower, g.Level.Name)
	}
	def, ok := g.Library.Tower(g.SelectedTower)
	if !ok {
		return 0, fmt.Errorf("unknown tower %q", g.SelectedTower)
	}
	return g.TowerSystem.PlaceTower(def, hex)
}

// UpgradeTower raises the tower on hex by one level. It reports false when
// the tower was already at its last tier.
func (g *Game) UpgradeTower(hex hexmap.Hex) (bool, error) {
	if g.Finished() {
		return false, errRunFinished
	}
	id, ok := g.TowerSystem.TowerAt(hex)
	if !ok {
		return false, fmt.Errorf("no tower on %v", hex)
	}
	before := g.ECS.Towers[id].Stats.Level()
	if _, err := g.TowerSystem.Upgrade(id); err != nil {
		return false, err
	}
	return g.ECS.Towers[id].Stats.Level() != before, nil
}

// CycleSelectedTower picks the next tower type of the level.
func (g *Game) CycleSelectedTower() string {
	towers := g.Level.Towers
	if len(towers) == 0 {
		return ""
	}
	i := slices.Index(towers, g.SelectedTower)
	g.SelectedTower = towers[(i+1)%len(towers)]
	return g.SelectedTower
}

// GetAllTowerHexes returns the hexes holding a tower.
func (g *Game) GetAllTowerHexes() []hexmap.Hex {
	hexes := make([]hexmap.Hex, 0, len(g.ECS.Towers))
	for _, tower := range g.ECS.Towers {
		hexes = append(hexes, tower.Hex)
	}
	return hexes
}

// GetTowerAtHex returns the tower on hex, if any.
func (g *Game) GetTowerAtHex(hex hexmap.Hex) (types.EntityID, *component.Tower, bool) {
	id, ok := g.TowerSystem.TowerAt(hex)
	if !ok {
		return 0, nil, false
	}
	return id, g.ECS.Towers[id], true
}
