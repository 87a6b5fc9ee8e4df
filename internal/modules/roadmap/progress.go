package roadmap

import (
	"math"
	"time"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

type ProgressUpdate struct {
	Week        int
	ProjectDone bool
	Note        string
}

type ProgressOptions struct {
	// DedupeProjects stops a week from being appended to completed_projects
	// more than once. Off by default: repeated project_done updates accumulate.
	DedupeProjects bool
}

// ApplyProgress records one update against rec. Weeks only ever move from
// "not recorded" to "completed"; there is no bounds check on Week.
func ApplyProgress(rec *types.ProgressRecord, u ProgressUpdate, opts ProgressOptions, now time.Time) {
	if !containsInt(rec.CompletedWeeks, u.Week) {
		rec.CompletedWeeks = append(rec.CompletedWeeks, u.Week)
	}
	if u.ProjectDone && !(opts.DedupeProjects && containsInt(rec.CompletedProjects, u.Week)) {
		rec.CompletedProjects = append(rec.CompletedProjects, u.Week)
	}
	if u.Note != "" {
		rec.Notes = append(rec.Notes, types.Note{Week: u.Week, Note: u.Note, Timestamp: now})
	}
}

// Percentage returns completed/total*100 rounded to one decimal, or 0 for an
// empty plan.
func Percentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

type ProgressStats struct {
	ProgressPercentage float64 `json:"progress_percentage"`
	CompletedWeeks     int     `json:"completed_weeks"`
	TotalWeeks         int     `json:"total_weeks"`
}

func Stats(plan types.Plan, rec types.ProgressRecord) ProgressStats {
	total := plan.TotalWeeks()
	return ProgressStats{
		ProgressPercentage: Percentage(len(rec.CompletedWeeks), total),
		CompletedWeeks:     len(rec.CompletedWeeks),
		TotalWeeks:         total,
	}
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
