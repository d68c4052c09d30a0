// internal/component/visual.go
package component

import (
	"go-yarn-defense/internal/defs"
	"go-yarn-defense/pkg/override"
)

// DamageFlash makes an entity blink after it was hit.
type DamageFlash struct {
	Timer    float64
	Duration float64
}

// Dying marks an entity whose kill sequence has started. The entity takes no
// further part in combat; it is removed once the effect has finished.
type Dying struct {
	Effect  override.Optional[defs.Effect]
	Elapsed float64
}

// AreaEffect is the visual left behind by an area of effect going off.
type AreaEffect struct {
	Prefab  string
	Radius  float64
	Effect  defs.Effect
	Elapsed float64
}
