// Package statistics aggregates platform counters for the public stats
// endpoint. Results are cached in memory and recomputed at most every
// few minutes, so the endpoint stays cheap under polling.
package statistics

import (
	"sync"
	"time"

	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/pkg/logger"
)

// StatisticsData holds the aggregate numbers for the platform overview.
type StatisticsData struct {
	TotalPredictions  int            `json:"totalPredictions"`
	PredictionsByType map[string]int `json:"predictionsByType"`
	AverageConfidence float64        `json:"averageConfidence"`
	TotalMaterials    int64          `json:"totalMaterials"`
	TotalPlans        int64          `json:"totalPlans"`
}

var (
	cached          StatisticsData
	lastCacheUpdate time.Time
	cacheMutex      sync.Mutex

	cacheUpdateInterval = 5 * time.Minute
)

// Get returns the cached statistics, recomputing them when stale.
func Get(repos *repository.Repositories) StatisticsData {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return cached
	}

	data, err := compute(repos)
	if err != nil {
		logger.Get().Warnw("failed to refresh statistics, serving stale data", "error", err)
		return cached
	}

	cached = data
	lastCacheUpdate = time.Now()
	return cached
}

// Reset clears the cache so tests observe fresh data.
func Reset() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cached = StatisticsData{}
	lastCacheUpdate = time.Time{}
}

func compute(repos *repository.Repositories) (StatisticsData, error) {
	predictions, err := repos.Prediction.List("")
	if err != nil {
		return StatisticsData{}, err
	}

	data := StatisticsData{
		TotalPredictions:  len(predictions),
		PredictionsByType: make(map[string]int),
	}

	var confidenceSum float64
	var confidenceCount int
	for _, p := range predictions {
		data.PredictionsByType[p.PredictionType]++
		if p.Confidence != nil {
			confidenceSum += *p.Confidence
			confidenceCount++
		}
	}
	if confidenceCount > 0 {
		data.AverageConfidence = confidenceSum / float64(confidenceCount)
	}

	if data.TotalMaterials, err = repos.Material.Count(); err != nil {
		return StatisticsData{}, err
	}
	if data.TotalPlans, err = repos.Plan.Count(); err != nil {
		return StatisticsData{}, err
	}

	return data, nil
}
