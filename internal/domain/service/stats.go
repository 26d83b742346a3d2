package service

import (
	"sync"
	"time"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
)

// rollingWindowSize bounds the time and size sample buffers; the oldest
// sample is evicted first.
const rollingWindowSize = 1000

// StatsService accumulates process-wide generation counters. All mutation
// happens under a single-writer lock; snapshots compute averages on read so
// they never drift.
type StatsService struct {
	mu sync.Mutex

	totalGenerated int
	byFormat       map[string]int
	byTemplate     map[string]int
	timesMs        []float64
	sizes          []float64
	lastGenerated  time.Time
}

func NewStatsService() *StatsService {
	return &StatsService{
		byFormat:   make(map[string]int),
		byTemplate: make(map[string]int),
	}
}

// Record registers one successful generation.
func (s *StatsService) Record(format entity.Format, sizeBytes int, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalGenerated++
	s.byFormat[string(format)]++
	s.timesMs = appendBounded(s.timesMs, float64(elapsed.Microseconds())/1000)
	s.sizes = appendBounded(s.sizes, float64(sizeBytes))
	s.lastGenerated = time.Now()
}

// RecordTemplate bumps the usage counter for a named template.
func (s *StatsService) RecordTemplate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTemplate[name]++
}

// Snapshot returns current counters plus derived averages; averages are 0
// when a window is empty.
func (s *StatsService) Snapshot() entity.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := entity.Statistics{
		TotalGenerated:        s.totalGenerated,
		ByFormat:              make(map[string]int, len(s.byFormat)),
		ByTemplate:            make(map[string]int, len(s.byTemplate)),
		AverageGenerationMs:   mean(s.timesMs),
		AverageSizeBytes:      mean(s.sizes),
		LastGenerated:         s.lastGenerated,
		GenerationTimeSamples: len(s.timesMs),
		SizeSamples:           len(s.sizes),
	}
	for k, v := range s.byFormat {
		snap.ByFormat[k] = v
	}
	for k, v := range s.byTemplate {
		snap.ByTemplate[k] = v
	}
	return snap
}

// Reset clears all counters. Intended for tests.
func (s *StatsService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalGenerated = 0
	s.byFormat = make(map[string]int)
	s.byTemplate = make(map[string]int)
	s.timesMs = nil
	s.sizes = nil
	s.lastGenerated = time.Time{}
}

func appendBounded(window []float64, v float64) []float64 {
	window = append(window, v)
	if len(window) > rollingWindowSize {
		window = window[len(window)-rollingWindowSize:]
	}
	return window
}

func mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}
