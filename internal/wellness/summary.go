package wellness

import (
	"math"

	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Goals are the patient's configured daily targets.
type Goals struct {
	StepsGoal      int     `json:"stepsGoal"`
	ActiveTimeGoal int     `json:"activeTimeGoal"`
	SleepGoal      float64 `json:"sleepGoal"`
	WaterGoal      float64 `json:"waterGoal"`
}

// Statistics are rolling averages over a trailing window of daily logs.
// AvgWater and AvgSleep carry one decimal place; the step and active-minute
// averages round to the nearest integer.
type Statistics struct {
	AvgSteps           int     `json:"avgSteps"`
	AvgWater           float64 `json:"avgWater"`
	AvgSleep           float64 `json:"avgSleep"`
	AvgActive          int     `json:"avgActive"`
	GoalsMetPercentage int     `json:"goalsMetPercentage"`
	TotalLogs          int     `json:"totalLogs"`
}

// Summarize computes window statistics from a slice of logs. It is a pure
// function of the slice: an empty window yields all zeroes, never a division
// error.
func Summarize(entries []models.DailyLog) Statistics {
	n := len(entries)
	if n == 0 {
		return Statistics{}
	}

	var (
		steps    int
		water    float64
		sleep    float64
		active   int
		goalsMet int
	)
	for _, entry := range entries {
		steps += entry.Steps
		water += entry.WaterLitres
		sleep += entry.SleepHours
		active += entry.ActiveMinutes
		if entry.GoalsMet {
			goalsMet++
		}
	}

	count := decimal.NewFromInt(int64(n))

	return Statistics{
		AvgSteps:           int(math.Round(float64(steps) / float64(n))),
		AvgWater:           decimal.NewFromFloat(water).Div(count).Round(1).InexactFloat64(),
		AvgSleep:           decimal.NewFromFloat(sleep).Div(count).Round(1).InexactFloat64(),
		AvgActive:          int(math.Round(float64(active) / float64(n))),
		GoalsMetPercentage: int(math.Round(100 * float64(goalsMet) / float64(n))),
		TotalLogs:          n,
	}
}
