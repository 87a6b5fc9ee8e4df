package roadmap

import (
	"fmt"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

const (
	maxPlanWeeks        = 4
	maxResourcesPerWeek = 2
	milestoneProjects   = 3
)

// weekResourceTypes is indexed by 0-based week; weeks past the end reuse the
// last phase.
var weekResourceTypes = [][]types.ResourceType{
	{types.ResourceVideo, types.ResourceCourse},
	{types.ResourceArticle, types.ResourceCourse},
	{types.ResourceProject, types.ResourceVideo},
}

var (
	assembledPrerequisites = types.Prerequisites{
		Knowledge: []string{"Basic computer skills", "Internet access"},
		Tools:     []string{"Computer", "Code editor", "Git"},
	}
	assembledSuccessTips = []string{
		"Code every day, even for 30 minutes",
		"Build projects that interest you",
		"Join communities for support",
		"Document your learning journey",
		"Teach others what you learn",
	}
	assembledCommunity = []string{
		"Discord: Learn Together",
		"Reddit: r/learnprogramming",
		"GitHub: Open Source",
		"Dev.to Community",
	}
)

// Assemble merges a skeleton with the catalog entries for topic. It has no
// side effects; id, timestamp and source are stamped by the caller.
func Assemble(s types.Structure, topic types.Topic, catalog *Catalog) types.Plan {
	resources := catalog.Resources(topic)
	projects := catalog.Projects(topic)

	weeks := s.Weeks()
	if weeks > maxPlanWeeks {
		weeks = maxPlanWeeks
	}

	weekly := make([]types.WeekPlan, 0, weeks)
	for i := 0; i < weeks; i++ {
		weekly = append(weekly, types.WeekPlan{
			Week:         i + 1,
			Theme:        s.WeeklyThemes[i],
			Focus:        s.WeeklyFocus[i],
			Objectives:   append([]string{}, s.WeeklyObjectives[i]...),
			TimeEstimate: TimeEstimate(i),
			Resources:    selectResources(resources, resourceTypesForWeek(i), maxResourcesPerWeek),
			Project:      projectForWeek(projects, i),
		})
	}

	return types.Plan{
		Title:                    s.Title,
		Overview:                 s.Overview,
		Prerequisites:            copyPrerequisites(assembledPrerequisites),
		WeeklyPlan:               weekly,
		MilestoneProjects:        firstProjects(projects, milestoneProjects),
		SuccessTips:              append([]string{}, assembledSuccessTips...),
		CommunityRecommendations: append([]string{}, assembledCommunity...),
		VisualTimeline:           BuildTimeline(weekly),
		Topic:                    topic,
	}
}

// TimeEstimate returns the hour range for a 0-based week index.
func TimeEstimate(i int) string {
	return fmt.Sprintf("%d-%d hours", 10+5*i, 15+5*i)
}

func resourceTypesForWeek(i int) []types.ResourceType {
	if i >= len(weekResourceTypes) {
		return weekResourceTypes[len(weekResourceTypes)-1]
	}
	return weekResourceTypes[i]
}

// selectResources keeps catalog order and stops at limit matches.
func selectResources(all []types.Resource, allowed []types.ResourceType, limit int) []types.Resource {
	out := make([]types.Resource, 0, limit)
	for _, r := range all {
		if len(out) == limit {
			break
		}
		for _, t := range allowed {
			if r.Type == t {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func projectForWeek(projects []types.ProjectTemplate, i int) types.ProjectTemplate {
	if len(projects) == 0 {
		return types.ProjectTemplate{
			Title:          fmt.Sprintf("Week %d Project", i+1),
			Description:    "Hands-on project to apply what you learned",
			GithubTemplate: "https://github.com/",
			Skills:         []string{"Problem Solving", "Coding", "Debugging"},
		}
	}
	idx := i
	if idx > len(projects)-1 {
		idx = len(projects) - 1
	}
	return copyProject(projects[idx])
}

func firstProjects(projects []types.ProjectTemplate, n int) []types.ProjectTemplate {
	if len(projects) < n {
		n = len(projects)
	}
	out := make([]types.ProjectTemplate, 0, n)
	for _, p := range projects[:n] {
		out = append(out, copyProject(p))
	}
	return out
}

func copyProject(p types.ProjectTemplate) types.ProjectTemplate {
	p.Skills = append([]string{}, p.Skills...)
	return p
}

func copyPrerequisites(p types.Prerequisites) types.Prerequisites {
	return types.Prerequisites{
		Knowledge: append([]string{}, p.Knowledge...),
		Tools:     append([]string{}, p.Tools...),
	}
}
