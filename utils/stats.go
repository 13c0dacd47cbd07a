package utils

import (
	"math"
	"time"
)

// statsWindow is the number of recent frames the FPS figures are computed over.
const statsWindow = 100

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	MeanFPS              float64
	MinFPS               float64
	MaxFPS               float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	frames []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame that took duration and ended with population live cells
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
		s.frames = append(s.frames, s.GenerationsPerSecond)
		if len(s.frames) > statsWindow {
			s.frames = s.frames[1:]
		}
		s.summarize()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

func (s *Stats) summarize() {
	var sum float64
	s.MinFPS, s.MaxFPS = math.Inf(1), math.Inf(-1)
	for _, fps := range s.frames {
		sum += fps
		s.MinFPS = min(s.MinFPS, fps)
		s.MaxFPS = max(s.MaxFPS, fps)
	}
	s.MeanFPS = sum / float64(len(s.frames))
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
