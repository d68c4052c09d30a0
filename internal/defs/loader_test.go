package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// copyTestData copies testdata into a fresh directory and replaces the files
// given in overrides.
func copyTestData(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{LayersFile, ProjectilesFile, TowersFile, LevelsFile} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatalf("read fixture: %v", err)
		}
		if content, ok := overrides[name]; ok {
			data = []byte(content)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	lib, err := Load(copyTestData(t, nil))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if lib.Layers.Len() != 3 {
		t.Errorf("layers = %d, want 3", lib.Layers.Len())
	}
	lead, ok := lib.Layers.Lookup("lead")
	if !ok {
		t.Fatalf("layer lead not found")
	}
	v, err := lib.Layers.Resolve(lead)
	if err != nil {
		t.Fatalf("Resolve(lead) error: %v", err)
	}
	if v.Speed != 1.4 || v.Health != 4 || v.Surface != SurfaceImpenetrable {
		t.Errorf("Resolve(lead) = %+v", v)
	}
	if !v.DeathEffect.Enabled || v.DeathEffect.Value.Duration != 0.3 {
		t.Errorf("death effect should come from the base layer, got %+v", v.DeathEffect)
	}

	shell := lib.Projectiles["shell"]
	if shell.Below != lib.Projectiles["dart"] {
		t.Errorf("shell.Below not linked to dart")
	}
	bomb := lib.Projectiles["bomb"]
	if bomb.TravelSpeed != DefaultTravelSpeed || bomb.ColliderRadius != DefaultColliderRadius {
		t.Errorf("bomb defaults not applied: speed %v radius %v", bomb.TravelSpeed, bomb.ColliderRadius)
	}
	if aoe := bomb.ImpactAreaOfEffect.Value; aoe.TriggerType != TriggerFirstImpact {
		t.Errorf("aoe trigger default = %q", aoe.TriggerType)
	}
	if lib.Projectiles["dart"].ShellDurability != ShellRigid {
		t.Errorf("shell durability default not applied")
	}

	tower, ok := lib.Tower("dart_tower")
	if !ok {
		t.Fatalf("tower dart_tower not found")
	}
	stats := tower.StatsAt(2)
	if stats.Range != 3.5 || stats.AttackSpeed != 2.5 || stats.Projectile != shell || stats.Sprite != "tower_dart_3" {
		t.Errorf("StatsAt(2) = %+v", stats)
	}

	level, ok := lib.Level("")
	if !ok || level.Name != "meadow" {
		t.Fatalf("default level = %v, %v", level, ok)
	}
	if got := level.Waves[0].Events[0]; got.Count != 5 || got.Yarn != "red" {
		t.Errorf("spawn event = %+v", got)
	}
}

func TestLoadRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{
			name: "cap not below health",
			file: LayersFile,
			content: `layers:
  - name: red
    base: {speed: 1, health: 2, damageAbsorptionCap: 2, sprite: r}
`,
			want: ErrConfigInvariant,
		},
		{
			name: "unknown below layer",
			file: LayersFile,
			content: `layers:
  - name: blue
    below: red
`,
			want: ErrConfigInvariant,
		},
		{
			name: "missing layer sprite",
			file: LayersFile,
			content: `layers:
  - name: red
    base: {speed: 1, health: 1}
`,
			want: ErrMissingAsset,
		},
		{
			name: "per collision cap on fragile shell",
			file: ProjectilesFile,
			content: `projectiles:
  - {name: dart, maxTotalDamage: 3, maxDamagePerCollision: 1, shellDurability: FRAGILE, sprite: d}
`,
			want: ErrConfigInvariant,
		},
		{
			name: "per collision cap not below total",
			file: ProjectilesFile,
			content: `projectiles:
  - {name: dart, maxTotalDamage: 2, maxDamagePerCollision: 2, sprite: d}
`,
			want: ErrConfigInvariant,
		},
		{
			name: "cyclic projectile chain",
			file: ProjectilesFile,
			content: `projectiles:
  - {name: dart, belowProjectile: shell, sprite: d}
  - {name: shell, belowProjectile: dart, sprite: s}
`,
			want: ErrConfigInvariant,
		},
		{
			name: "area effect without prefab",
			file: ProjectilesFile,
			content: `projectiles:
  - name: dart
    sprite: d
    impactAreaOfEffect: {radius: 1}
`,
			want: ErrMissingAsset,
		},
		{
			name: "unknown tower projectile",
			file: TowersFile,
			content: `towers:
  - id: t
    base: {range: 1, attackSpeed: 1, sprite: t, projectile: nope}
`,
			want: ErrConfigInvariant,
		},
		{
			name: "unknown spawn yarn",
			file: LevelsFile,
			content: `levels:
  - name: l
    startHealth: 10
    board: {radius: 2, entry: {q: -3, r: 1}, exit: {q: 3, r: -1}}
    waves:
      - events: [{yarn: purple, count: 1}]
`,
			want: ErrConfigInvariant,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := copyTestData(t, map[string]string{tt.file: tt.content})
			// the other fixtures reference dart; keep them loadable
			if tt.file == ProjectilesFile {
				writeMinimalTowers(t, dir)
			}
			_, err := Load(dir)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadKeepsExplicitZeroProjectileFields(t *testing.T) {
	dir := copyTestData(t, map[string]string{ProjectilesFile: `projectiles:
  - {name: dart, travelSpeed: 0, colliderRadius: 0, maxTotalDamage: 2, sprite: dart}
  - {name: bomb, maxTotalDamage: 1, sprite: bomb}
  - {name: shell, maxTotalDamage: 3, belowProjectile: dart, sprite: shell}
`})
	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	dart := lib.Projectiles["dart"]
	if dart.TravelSpeed != 0 || dart.ColliderRadius != 0 {
		t.Errorf("explicit zeros overwritten: speed %v radius %v", dart.TravelSpeed, dart.ColliderRadius)
	}
	bomb := lib.Projectiles["bomb"]
	if bomb.TravelSpeed != DefaultTravelSpeed || bomb.ColliderRadius != DefaultColliderRadius {
		t.Errorf("missing keys not defaulted: speed %v radius %v", bomb.TravelSpeed, bomb.ColliderRadius)
	}
}

func writeMinimalTowers(t *testing.T, dir string) {
	t.Helper()
	content := `towers:
  - id: t
    base: {range: 1, attackSpeed: 1, sprite: t, projectile: dart}
`
	if err := os.WriteFile(filepath.Join(dir, TowersFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	levels := `levels:
  - name: l
    startHealth: 10
    board: {radius: 2, entry: {q: -3, r: 1}, exit: {q: 3, r: -1}}
`
	if err := os.WriteFile(filepath.Join(dir, LevelsFile), []byte(levels), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := copyTestData(t, nil)
	if err := os.Remove(filepath.Join(dir, TowersFile)); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadShippedData(t *testing.T) {
	lib, err := Load(filepath.Join("..", "..", "assets", "data"))
	if err != nil {
		t.Fatalf("Load(assets/data) error: %v", err)
	}
	if len(lib.LevelOrder) == 0 || lib.LevelOrder[0] != "meadow" {
		t.Errorf("level order = %v", lib.LevelOrder)
	}
	ceramic, ok := lib.Layers.Lookup("ceramic")
	if !ok {
		t.Fatalf("ceramic layer missing")
	}
	// ceramic 10 + yellow, green, blue and red at 1 each
	if got, err := lib.Layers.StackedHealth(ceramic); err != nil || got != 14 {
		t.Errorf("StackedHealth(ceramic) = %d, %v; want 14", got, err)
	}
	shell := lib.Projectiles["shell"]
	if shell.Below == nil || shell.Below.Name != "sharp_dart" {
		t.Errorf("shell below = %+v", shell.Below)
	}
}
