// pkg/hexmap/map.go
package hexmap

import "fmt"

type Tile struct {
	Passable      bool
	CanPlaceTower bool
}

// HexMap is a hexagonal board with an entry, an exit and optional checkpoints
// that every path has to visit in order.
type HexMap struct {
	Tiles       map[Hex]Tile
	Radius      int
	Entry       Hex
	Exit        Hex
	Checkpoints []Hex
}

// New builds a hexagonal board of the given radius around the origin. Entry and
// exit may lie outside the radius; they are added as passable tiles where no
// tower can be placed. Blocked hexes are kept on the board but are impassable.
func New(radius int, entry, exit Hex, checkpoints, blocked []Hex) *HexMap {
	tiles := make(map[Hex]Tile)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[Hex{q, r}] = Tile{Passable: true, CanPlaceTower: true}
		}
	}
	for _, h := range blocked {
		if _, ok := tiles[h]; ok {
			tiles[h] = Tile{Passable: false, CanPlaceTower: false}
		}
	}
	tiles[entry] = Tile{Passable: true, CanPlaceTower: false}
	tiles[exit] = Tile{Passable: true, CanPlaceTower: false}
	for _, cp := range checkpoints {
		tiles[cp] = Tile{Passable: true, CanPlaceTower: false}
	}

	return &HexMap{
		Tiles:       tiles,
		Radius:      radius,
		Entry:       entry,
		Exit:        exit,
		Checkpoints: append([]Hex(nil), checkpoints...),
	}
}

// Route returns the walking path from the entry through every checkpoint to the exit.
func (hm *HexMap) Route() ([]Hex, error) {
	waypoints := make([]Hex, 0, len(hm.Checkpoints)+2)
	waypoints = append(waypoints, hm.Entry)
	waypoints = append(waypoints, hm.Checkpoints...)
	waypoints = append(waypoints, hm.Exit)

	route := []Hex{hm.Entry}
	for i := 0; i < len(waypoints)-1; i++ {
		segment := AStar(waypoints[i], waypoints[i+1], hm)
		if segment == nil {
			return nil, fmt.Errorf("no path from %v to %v", waypoints[i], waypoints[i+1])
		}
		route = append(route, segment[1:]...)
	}
	return route, nil
}

func (hm *HexMap) IsCheckpoint(hex Hex) bool {
	for _, cp := range hm.Checkpoints {
		if cp == hex {
			return true
		}
	}
	return false
}

func (hm *HexMap) IsPassable(hex Hex) bool {
	if tile, exists := hm.Tiles[hex]; exists {
		return tile.Passable
	}
	return false
}

func (hm *HexMap) CanPlaceTower(hex Hex) bool {
	if tile, exists := hm.Tiles[hex]; exists {
		return tile.CanPlaceTower
	}
	return false
}

// SetTowerAllowed marks whether a tower may be built on hex.
func (hm *HexMap) SetTowerAllowed(hex Hex, allowed bool) {
	if tile, exists := hm.Tiles[hex]; exists {
		tile.CanPlaceTower = allowed
		hm.Tiles[hex] = tile
	}
}

func (hm *HexMap) GetHexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			hex := center.Add(Hex{Q: q, R: r})
			if hm.Contains(hex) {
				result = append(result, hex)
			}
		}
	}
	return result
}

func (hm *HexMap) Contains(hex Hex) bool {
	_, exists := hm.Tiles[hex]
	return exists
}
