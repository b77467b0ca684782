package ingest

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// Progress tracks a feed. It is safe for concurrent use.
type Progress struct {
	totalItems       int
	processedItems   int
	totalBatches     int
	processedBatches int
	startTime        time.Time
	lastUpdateTime   time.Time

	mu sync.RWMutex
}

// NewProgress creates a tracker. totalItems is 0 when the item count is not known up front.
func NewProgress(totalItems, totalBatches int) *Progress {
	now := time.Now()
	return &Progress{
		totalItems:     totalItems,
		totalBatches:   totalBatches,
		startTime:      now,
		lastUpdateTime: now,
	}
}

// AddBatch records one delivered batch of n items.
func (p *Progress) AddBatch(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems += n
	p.processedBatches++
	p.lastUpdateTime = time.Now()
}

// IsComplete reports whether every batch has been delivered.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.processedBatches >= p.totalBatches
}

// Snapshot returns a copy of the current progress.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		StartTime:        p.startTime,
		LastUpdateTime:   p.lastUpdateTime,
		PercentComplete:  p.percentCompleteLocked(),
		ElapsedTime:      time.Since(p.startTime),
	}
}

// percentCompleteLocked falls back to batch progress when the item total is unknown.
func (p *Progress) percentCompleteLocked() float64 {
	switch {
	case p.totalItems > 0:
		return float64(p.processedItems) / float64(p.totalItems) * percentMultiplier
	case p.totalBatches > 0:
		return float64(p.processedBatches) / float64(p.totalBatches) * percentMultiplier
	default:
		return 0
	}
}

// ProgressSnapshot is an immutable view of a Progress.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	StartTime        time.Time
	LastUpdateTime   time.Time
	PercentComplete  float64
	ElapsedTime      time.Duration
}
