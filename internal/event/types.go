// internal/event/types.go
package event

import (
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/internal/types"
)

const (
	WaveStarted      EventType = "WaveStarted"      // WaveData
	WaveEnded        EventType = "WaveEnded"        // WaveData
	YarnSpawned      EventType = "YarnSpawned"      // YarnData
	LayerPopped      EventType = "LayerPopped"      // LayerPoppedData
	YarnKilled       EventType = "YarnKilled"       // YarnData
	YarnLeaked       EventType = "YarnLeaked"       // YarnLeakedData
	ProjectileFired  EventType = "ProjectileFired"  // ProjectileData
	ProjectileKilled EventType = "ProjectileKilled" // ProjectileData
	AreaEffectFired  EventType = "AreaEffectFired"  // AreaEffectData
	TowerPlaced      EventType = "TowerPlaced"      // TowerData
	TowerLeveled     EventType = "TowerLeveled"     // TowerLeveledData
	UpgradeRequested EventType = "UpgradeRequested" // TowerData
	EffectFinished   EventType = "EffectFinished"   // EffectFinishedData
	PlayerDamaged    EventType = "PlayerDamaged"    // PlayerDamagedData
	PlayerDefeated   EventType = "PlayerDefeated"   // nil
	DataReloaded     EventType = "DataReloaded"     // *defs.Library
)

type WaveData struct {
	Index int
}

type YarnData struct {
	ID types.EntityID
}

type LayerPoppedData struct {
	ID     types.EntityID
	Popped int // layers popped by this hit
}

type YarnLeakedData struct {
	ID     types.EntityID
	Damage int // stacked health of the layer it leaked with
}

type ProjectileData struct {
	ID types.EntityID
}

type AreaEffectData struct {
	X, Y float64
	Area defs.AreaOfEffect
}

type TowerData struct {
	ID types.EntityID
}

type TowerLeveledData struct {
	ID    types.EntityID
	Level int
	Stats defs.TowerStats
}

type EffectFinishedData struct {
	ID types.EntityID
}

type PlayerDamagedData struct {
	Amount int
	Health int
}
