// internal/progress/store.go
package progress

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "stats"
)

// Stats is what is kept between runs.
type Stats struct {
	Runs       int            `yaml:"runs"`
	Wins       int            `yaml:"wins"`
	TotalPops  int            `yaml:"totalPops"`
	TotalLeaks int            `yaml:"totalLeaks"`
	BestWave   map[string]int `yaml:"bestWave"` // waves cleared, per level
}

// RunResult is the outcome of one finished run.
type RunResult struct {
	Level        string
	WavesCleared int
	Pops         int
	Leaks        int
	Won          bool
}

// Store persists Stats through gdata. A nil manager keeps everything in
// memory only.
type Store struct {
	gdataManager *gdata.Manager
	stats        Stats
}

func NewStore(gdataManager *gdata.Manager) *Store {
	s := &Store{gdataManager: gdataManager, stats: Stats{BestWave: map[string]int{}}}
	if _, err := s.Load(); err != nil {
		log.Printf("Progress: failed to load saved stats: %v (starting fresh)", err)
	}
	return s
}

// Load reads the saved stats. Missing data is not an error.
func (s *Store) Load() (Stats, error) {
	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return s.Stats(), nil
	}
	data, err := s.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return s.Stats(), fmt.Errorf("load progress: %w", err)
	}
	var loaded Stats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return s.Stats(), fmt.Errorf("unmarshal progress: %w", err)
	}
	if loaded.BestWave == nil {
		loaded.BestWave = map[string]int{}
	}
	s.stats = loaded
	return s.Stats(), nil
}

// Record folds run into the stats and saves them.
func (s *Store) Record(run RunResult) error {
	s.stats.Runs++
	if run.Won {
		s.stats.Wins++
	}
	s.stats.TotalPops += run.Pops
	s.stats.TotalLeaks += run.Leaks
	if run.WavesCleared > s.stats.BestWave[run.Level] {
		s.stats.BestWave[run.Level] = run.WavesCleared
	}

	if s.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.stats)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	log.Printf("Progress: saved after %d runs", s.stats.Runs)
	return nil
}

// Stats returns a copy of the current stats.
func (s *Store) Stats() Stats {
	out := s.stats
	out.BestWave = make(map[string]int, len(s.stats.BestWave))
	for k, v := range s.stats.BestWave {
		out.BestWave[k] = v
	}
	return out
}
