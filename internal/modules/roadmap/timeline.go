package roadmap

import (
	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

// BuildTimeline derives the visual timeline embedded in a plan.
func BuildTimeline(weekly []types.WeekPlan) []types.TimelineEntry {
	out := make([]types.TimelineEntry, 0, len(weekly))
	for _, w := range weekly {
		out = append(out, types.TimelineEntry{
			Week:       w.Week,
			Theme:      w.Theme,
			Milestones: append([]string{}, w.Objectives...),
			Project:    w.Project.Title,
		})
	}
	return out
}

// ProgressTimelineEntry is one row of the progress-aware timeline view.
type ProgressTimelineEntry struct {
	Week      int    `json:"week"`
	Theme     string `json:"theme"`
	Completed bool   `json:"completed"`
	Project   string `json:"project"`
}

type ProgressTimeline struct {
	Timeline       []ProgressTimelineEntry `json:"timeline"`
	TotalWeeks     int                     `json:"total_weeks"`
	CompletedWeeks int                     `json:"completed_weeks"`
}

// BuildProgressTimeline marks each week of the plan as completed or not.
// CompletedWeeks counts every recorded week, including out-of-range ones.
func BuildProgressTimeline(plan types.Plan, progress types.ProgressRecord) ProgressTimeline {
	done := make(map[int]bool, len(progress.CompletedWeeks))
	for _, w := range progress.CompletedWeeks {
		done[w] = true
	}
	rows := make([]ProgressTimelineEntry, 0, len(plan.WeeklyPlan))
	for _, w := range plan.WeeklyPlan {
		rows = append(rows, ProgressTimelineEntry{
			Week:      w.Week,
			Theme:     w.Theme,
			Completed: done[w.Week],
			Project:   w.Project.Title,
		})
	}
	return ProgressTimeline{
		Timeline:       rows,
		TotalWeeks:     len(rows),
		CompletedWeeks: len(progress.CompletedWeeks),
	}
}
