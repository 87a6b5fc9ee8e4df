package roadmap

import (
	"testing"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

func TestFallbackPlan(t *testing.T) {
	req := types.LearningGoalRequest{Goal: "web apps", Proficiency: "beginner", TimeCommitment: "10 hrs/week", LearningStyle: []string{"visual"}}
	plan := FallbackPlan(req, types.TopicWeb, DefaultCatalog())

	if plan.Title != "Hands-On web apps Learning Roadmap" {
		t.Fatalf("title=%q", plan.Title)
	}
	if plan.Overview != "A practical 10 hrs/week journey to master web apps through real projects and working resources." {
		t.Fatalf("overview=%q", plan.Overview)
	}
	if plan.TotalWeeks() != 4 {
		t.Fatalf("weeks=%d", plan.TotalWeeks())
	}
	themes := []string{"Getting Started & Fundamentals", "Core Concepts & Practice", "Advanced Techniques", "Real-World Projects"}
	for i, w := range plan.WeeklyPlan {
		if w.Week != i+1 || w.Theme != themes[i] {
			t.Fatalf("week %d: %+v", i+1, w)
		}
	}
	if got := plan.WeeklyPlan[1].Resources; len(got) != 2 || got[0].Title != "MDN Web Docs" || got[1].Title != "Frontend Mentor Challenges" {
		t.Fatalf("week 2 resources=%+v", got)
	}
	if got := plan.WeeklyPlan[2].Resources; len(got) != 1 || got[0].Type != types.ResourceProject {
		t.Fatalf("week 3 resources=%+v", got)
	}
	if plan.WeeklyPlan[1].Project.Title != "Weather Dashboard" || plan.WeeklyPlan[3].Project.Title != "Portfolio Showcase" {
		t.Fatalf("unexpected projects")
	}
	if plan.VisualTimeline[0].Theme != "Fundamentals" || plan.VisualTimeline[0].Project != "" {
		t.Fatalf("fallback timeline should use its own table: %+v", plan.VisualTimeline[0])
	}
	if plan.SuccessTips[0] == assembledSuccessTips[0] {
		t.Fatalf("fallback tips should differ from the assembled ones")
	}
}

func TestFallbackPlanWithSparseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte("resources:\n  python:\n    - {type: Video, title: V, url: u}\nprojects:\n  python: []\n"))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	plan := FallbackPlan(types.LearningGoalRequest{Goal: "x"}, types.TopicGeneral, c)
	if len(plan.WeeklyPlan[0].Resources) != 1 || len(plan.WeeklyPlan[1].Resources) != 0 {
		t.Fatalf("unexpected resources")
	}
	if plan.WeeklyPlan[0].Project.Title != "Hello World Project" || plan.WeeklyPlan[1].Project.Title != "Practical Application" {
		t.Fatalf("placeholder projects expected")
	}
	if len(plan.MilestoneProjects) != 2 || plan.MilestoneProjects[1].Title != "Open Source Contribution" {
		t.Fatalf("placeholder milestones expected: %+v", plan.MilestoneProjects)
	}
}
