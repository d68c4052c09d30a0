// internal/defs/loader.go
package defs

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"go-yarn-defense/pkg/override"

	"gopkg.in/yaml.v3"
)

// File names inside a data directory.
const (
	LayersFile      = "layers.yaml"
	ProjectilesFile = "projectiles.yaml"
	TowersFile      = "towers.yaml"
	LevelsFile      = "levels.yaml"
)

// Defaults for projectile fields missing from the data.
const (
	DefaultTravelSpeed    = 4.0
	DefaultColliderRadius = 0.25
)

// Library is one consistent, validated set of game data. It is never modified
// after Load returns; a reload builds a new Library.
type Library struct {
	Layers      *LayerSet
	Projectiles map[string]*Projectile
	Towers      map[string]*TowerDefinition
	TowerOrder  []string
	Levels      map[string]*LevelDefinition
	LevelOrder  []string
}

// Tower returns the tower with the given id.
func (lib *Library) Tower(id string) (*TowerDefinition, bool) {
	def, ok := lib.Towers[id]
	return def, ok
}

// Level returns the named level, or the first level when name is empty.
func (lib *Library) Level(name string) (*LevelDefinition, bool) {
	if name == "" {
		if len(lib.LevelOrder) == 0 {
			return nil, false
		}
		name = lib.LevelOrder[0]
	}
	def, ok := lib.Levels[name]
	return def, ok
}

type layerFile struct {
	Layers []layerSpec `yaml:"layers"`
}

type layerSpec struct {
	Name     string       `yaml:"name"`
	Base     *LayerValues `yaml:"base,omitempty"`
	Below    string       `yaml:"below,omitempty"`
	Override overrideSpec `yaml:"override,omitempty"`
}

type overrideSpec struct {
	Speed               override.Optional[float64]    `yaml:"speed,omitempty"`
	Health              override.Optional[int]        `yaml:"health,omitempty"`
	DamageAbsorptionCap override.Optional[int]        `yaml:"damageAbsorptionCap,omitempty"`
	Surface             override.Optional[Surface]    `yaml:"surface,omitempty"`
	Color               override.Optional[color.RGBA] `yaml:"color,omitempty"`
	Sprite              override.Optional[string]     `yaml:"sprite,omitempty"`
}

type projectileFile struct {
	Projectiles []*Projectile `yaml:"projectiles"`
}

type towerFile struct {
	Towers []*TowerDefinition `yaml:"towers"`
}

type levelFile struct {
	Levels []*LevelDefinition `yaml:"levels"`
}

// Load reads every data file in dir, links names into pointers and validates
// the result. Nothing is returned unless the whole set is valid.
func Load(dir string) (*Library, error) {
	var lf layerFile
	if err := readYAML(filepath.Join(dir, LayersFile), &lf); err != nil {
		return nil, err
	}
	layers, err := buildLayers(lf.Layers)
	if err != nil {
		return nil, err
	}

	var pf projectileFile
	if err := readYAML(filepath.Join(dir, ProjectilesFile), &pf); err != nil {
		return nil, err
	}
	projectiles, err := linkProjectiles(pf.Projectiles)
	if err != nil {
		return nil, err
	}

	var tf towerFile
	if err := readYAML(filepath.Join(dir, TowersFile), &tf); err != nil {
		return nil, err
	}
	towers, towerOrder, err := linkTowers(tf.Towers, projectiles)
	if err != nil {
		return nil, err
	}

	var vf levelFile
	if err := readYAML(filepath.Join(dir, LevelsFile), &vf); err != nil {
		return nil, err
	}
	levels := make(map[string]*LevelDefinition, len(vf.Levels))
	var levelOrder []string
	for _, lvl := range vf.Levels {
		if _, dup := levels[lvl.Name]; dup {
			return nil, fmt.Errorf("level %q defined twice: %w", lvl.Name, ErrConfigInvariant)
		}
		levels[lvl.Name] = lvl
		levelOrder = append(levelOrder, lvl.Name)
	}

	lib := &Library{
		Layers:      layers,
		Projectiles: projectiles,
		Towers:      towers,
		TowerOrder:  towerOrder,
		Levels:      levels,
		LevelOrder:  levelOrder,
	}
	if err := Validate(lib); err != nil {
		return nil, err
	}

	log.Printf("Loaded %d layers, %d projectiles, %d towers, %d levels from %s",
		layers.Len(), len(projectiles), len(towers), len(levels), dir)
	return lib, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(path), err)
	}
	return nil
}

// buildLayers turns layer entries into a LayerSet. Entries may reference layers
// declared later in the list.
func buildLayers(specs []layerSpec) (*LayerSet, error) {
	index := make(map[string]LayerID, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("layer #%d has no name: %w", i, ErrConfigInvariant)
		}
		if _, dup := index[spec.Name]; dup {
			return nil, fmt.Errorf("layer %q defined twice: %w", spec.Name, ErrConfigInvariant)
		}
		index[spec.Name] = LayerID(i)
	}

	set := NewLayerSet()
	for _, spec := range specs {
		switch {
		case spec.Base != nil && spec.Below != "":
			return nil, fmt.Errorf("layer %q has both base values and a below layer: %w", spec.Name, ErrConfigInvariant)
		case spec.Base != nil:
			values := *spec.Base
			if values.Surface == "" {
				values.Surface = SurfacePenetrable
			}
			set.Add(&BaseLayer{Name: spec.Name, Values: values})
		case spec.Below != "":
			below, ok := index[spec.Below]
			if !ok {
				return nil, fmt.Errorf("layer %q: unknown below layer %q: %w", spec.Name, spec.Below, ErrConfigInvariant)
			}
			o := spec.Override
			set.Add(&OverrideLayer{
				Name:                spec.Name,
				Below:               below,
				Speed:               o.Speed,
				Health:              o.Health,
				DamageAbsorptionCap: o.DamageAbsorptionCap,
				Surface:             o.Surface,
				Color:               o.Color,
				Sprite:              o.Sprite,
			})
		default:
			return nil, fmt.Errorf("layer %q needs either base values or a below layer: %w", spec.Name, ErrConfigInvariant)
		}
	}
	return set, nil
}

func linkProjectiles(list []*Projectile) (map[string]*Projectile, error) {
	byName := make(map[string]*Projectile, len(list))
	for i, p := range list {
		if p.Name == "" {
			return nil, fmt.Errorf("projectile #%d has no name: %w", i, ErrConfigInvariant)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("projectile %q defined twice: %w", p.Name, ErrConfigInvariant)
		}
		applyProjectileDefaults(p)
		byName[p.Name] = p
	}
	for _, p := range list {
		if p.BelowName == "" {
			continue
		}
		below, ok := byName[p.BelowName]
		if !ok {
			return nil, fmt.Errorf("projectile %q: unknown below projectile %q: %w", p.Name, p.BelowName, ErrConfigInvariant)
		}
		p.Below = below
	}
	return byName, nil
}

func applyProjectileDefaults(p *Projectile) {
	if p.ShellDurability == "" {
		p.ShellDurability = ShellRigid
	}
	if p.SurfaceImpact == "" {
		p.SurfaceImpact = ImpactSurfaceOnly
	}
	if p.BelowDamageStack == "" {
		p.BelowDamageStack = StackCanDamageWithBoth
	}
	if aoe, ok := p.ImpactAreaOfEffect.Get(); ok {
		if aoe.ImpactType == "" {
			aoe.ImpactType = ImpactSurfaceOnly
		}
		if aoe.TriggerType == "" {
			aoe.TriggerType = TriggerFirstImpact
		}
		p.ImpactAreaOfEffect = override.Some(aoe)
	}
}

func linkTowers(list []*TowerDefinition, projectiles map[string]*Projectile) (map[string]*TowerDefinition, []string, error) {
	byID := make(map[string]*TowerDefinition, len(list))
	order := make([]string, 0, len(list))
	for i, def := range list {
		if def.ID == "" {
			return nil, nil, fmt.Errorf("tower #%d has no id: %w", i, ErrConfigInvariant)
		}
		if _, dup := byID[def.ID]; dup {
			return nil, nil, fmt.Errorf("tower %q defined twice: %w", def.ID, ErrConfigInvariant)
		}
		p, ok := projectiles[def.Base.ProjectileName]
		if !ok {
			return nil, nil, fmt.Errorf("tower %q: unknown projectile %q: %w", def.ID, def.Base.ProjectileName, ErrConfigInvariant)
		}
		def.Base.Projectile = p
		for level := range def.Tiers {
			tier := &def.Tiers[level]
			name, ok := tier.ProjectileName.Get()
			if !ok {
				continue
			}
			p, found := projectiles[name]
			if !found {
				return nil, nil, fmt.Errorf("tower %q tier %d: unknown projectile %q: %w", def.ID, level, name, ErrConfigInvariant)
			}
			tier.Projectile = override.Some(p)
		}
		byID[def.ID] = def
		order = append(order, def.ID)
	}
	return byID, order, nil
}
