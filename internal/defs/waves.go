// internal/defs/waves.go
package defs

import "go-yarn-defense/pkg/hexmap"

// SpawnEvent spawns Count yarns of one layer chain, one every DelayBetweenSpawns
// seconds, after waiting StartDelay seconds.
type SpawnEvent struct {
	StartDelay         float64 `yaml:"startDelay"`
	Yarn               string  `yaml:"yarn"` // name of the outermost layer
	Count              int     `yaml:"count"`
	DelayBetweenSpawns float64 `yaml:"delayBetweenSpawns"`
}

// WaveDefinition is a list of spawn events played in order.
type WaveDefinition struct {
	Events []SpawnEvent `yaml:"events"`
}

// Board describes the hex field a level is played on.
type Board struct {
	Radius      int          `yaml:"radius"`
	Entry       hexmap.Hex   `yaml:"entry"`
	Exit        hexmap.Hex   `yaml:"exit"`
	Checkpoints []hexmap.Hex `yaml:"checkpoints"`
	Blocked     []hexmap.Hex `yaml:"blocked"`
}

// LevelDefinition is a playable level.
type LevelDefinition struct {
	Name        string           `yaml:"name"`
	StartHealth int              `yaml:"startHealth"`
	Board       Board            `yaml:"board"`
	Towers      []string         `yaml:"towers"` // tower ids available in this level
	Waves       []WaveDefinition `yaml:"waves"`
}
