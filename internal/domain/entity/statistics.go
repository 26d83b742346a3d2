package entity

import "time"

// Statistics is a read-only snapshot of the accumulator. Averages are computed
// on read from the rolling windows, never stored.
type Statistics struct {
	TotalGenerated        int            `json:"totalGenerated"`
	ByFormat              map[string]int `json:"byFormat"`
	ByTemplate            map[string]int `json:"byTemplate"`
	AverageGenerationMs   float64        `json:"averageGenerationMs"`
	AverageSizeBytes      float64        `json:"averageSizeBytes"`
	LastGenerated         time.Time      `json:"lastGenerated"`
	GenerationTimeSamples int            `json:"generationTimeSamples"`
	SizeSamples           int            `json:"sizeSamples"`
}
