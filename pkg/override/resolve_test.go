package override

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestResolveTiered(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		base      float64
		overrides []Optional[float64]
		want      float64
	}{
		{"no level returns base", -1, 5, []Optional[float64]{Some(9.0)}, 5},
		{"below -1 returns base", -4, 5, []Optional[float64]{Some(9.0)}, 5},
		{"empty overrides", 3, 5, nil, 5},
		{"exact tier enabled", 1, 5, []Optional[float64]{Some(6.0), Some(7.0)}, 7},
		{"falls back to lower tier", 2, 5, []Optional[float64]{None[float64](), Some(7.0), None[float64]()}, 7},
		{"nothing enabled", 2, 5, []Optional[float64]{None[float64](), None[float64](), None[float64]()}, 5},
		{"level past end scans from last", 10, 5, []Optional[float64]{Some(6.0), None[float64]()}, 6},
		{"level past end hits last", 10, 5, []Optional[float64]{Some(6.0), Some(8.0)}, 8},
		{"tier zero enabled", 0, 5, []Optional[float64]{Some(6.0)}, 6},
		{"tier zero disabled", 0, 5, []Optional[float64]{None[float64](), Some(8.0)}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTiered(tt.level, tt.base, tt.overrides); got != tt.want {
				t.Errorf("ResolveTiered(%d) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestResolveTieredDeterministic(t *testing.T) {
	overrides := []Optional[string]{None[string](), Some("b"), None[string]()}
	first := ResolveTiered(2, "a", overrides)
	for i := 0; i < 10; i++ {
		if got := ResolveTiered(2, "a", overrides); got != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, got, first)
		}
	}
	if overrides[0].Enabled || !overrides[1].Enabled || overrides[2].Enabled {
		t.Fatal("ResolveTiered mutated its input")
	}
}

func TestOptionalYAML(t *testing.T) {
	type doc struct {
		Cap   Optional[int]     `yaml:"cap,omitempty"`
		Speed Optional[float64] `yaml:"speed,omitempty"`
		Name  Optional[string]  `yaml:"name"`
	}

	var d doc
	if err := yaml.Unmarshal([]byte("cap: 3\nname: null\n"), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v, ok := d.Cap.Get(); !ok || v != 3 {
		t.Errorf("cap = (%d, %v), want (3, true)", v, ok)
	}
	if d.Speed.Enabled {
		t.Error("omitted speed should be disabled")
	}
	if d.Name.Enabled {
		t.Error("null name should be disabled")
	}

	out, err := yaml.Marshal(doc{Cap: Some(2)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back doc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal marshalled output: %v", err)
	}
	if back.Cap != Some(2) || back.Speed.Enabled || back.Name.Enabled {
		t.Errorf("unexpected value after marshal: %+v (yaml %q)", back, out)
	}
}

func TestOptionalOr(t *testing.T) {
	if got := None[int]().Or(4); got != 4 {
		t.Errorf("None.Or(4) = %d", got)
	}
	if got := Some(1).Or(4); got != 1 {
		t.Errorf("Some(1).Or(4) = %d", got)
	}
}
