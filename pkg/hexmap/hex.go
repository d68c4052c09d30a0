// pkg/hexmap/hex.go
package hexmap

// Hex is a hex cell in axial coordinates (Q, R).
type Hex struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// ToPixel converts a hex to the coordinates of its center (pointy top).
// The map origin is at (0, 0).
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// PixelToHex returns the hex containing the point (x, y), relative to the map origin.
func PixelToHex(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return axialRound(q, r)
}

// Neighbors returns the neighbors of h that exist on hm.
func (h Hex) Neighbors(hm *HexMap) []Hex {
	validNeighbors := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if hm.Contains(n) {
			validNeighbors = append(validNeighbors, n)
		}
	}
	return validNeighbors
}

// AllPossibleNeighbors returns the six neighbors of h.
func (h Hex) AllPossibleNeighbors() []Hex {
	out := make([]Hex, 0, 6)
	for _, d := range NeighborDirections {
		out = append(out, h.Add(d))
	}
	return out
}

func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Distance is the number of steps between two hexes.
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}
