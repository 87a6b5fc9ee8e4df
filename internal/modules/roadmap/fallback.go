package roadmap

import (
	"fmt"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

// FallbackPlan builds a complete plan from its own constant table. It does not
// go through DefaultStructure or Assemble and never fails.
func FallbackPlan(req types.LearningGoalRequest, topic types.Topic, catalog *Catalog) types.Plan {
	resources := catalog.Resources(topic)
	projects := catalog.Projects(topic)

	week1Project := types.ProjectTemplate{
		Title:          "Hello World Project",
		Description:    "Create your first working application",
		GithubTemplate: "https://github.com/",
		Skills:         []string{"Setup", "Basic Syntax", "Debugging"},
	}
	if len(projects) > 0 {
		week1Project = copyProject(projects[0])
	}
	week2Project := types.ProjectTemplate{
		Title:          "Practical Application",
		Description:    "Build a functional application solving a real problem",
		GithubTemplate: "https://github.com/",
		Skills:         []string{"Problem Solving", "Implementation", "Testing"},
	}
	if len(projects) > 1 {
		week2Project = copyProject(projects[1])
	}

	weekly := []types.WeekPlan{
		{
			Week:         1,
			Theme:        "Getting Started & Fundamentals",
			Focus:        "Learn the basics and set up your development environment",
			Objectives:   []string{"Install necessary tools", "Learn basic syntax", "Complete first project"},
			TimeEstimate: "10-15 hours",
			Resources:    sliceResources(resources, 0, 2),
			Project:      week1Project,
		},
		{
			Week:         2,
			Theme:        "Core Concepts & Practice",
			Focus:        "Master fundamental concepts through hands-on exercises",
			Objectives:   []string{"Practice key concepts", "Build small applications", "Learn debugging"},
			TimeEstimate: "15-20 hours",
			Resources:    sliceResources(resources, 2, 4),
			Project:      week2Project,
		},
		{
			Week:         3,
			Theme:        "Advanced Techniques",
			Focus:        "Learn advanced features and optimization techniques",
			Objectives:   []string{"Implement advanced features", "Optimize performance", "Learn testing"},
			TimeEstimate: "20-25 hours",
			Resources:    selectResources(resources, []types.ResourceType{types.ResourceProject}, 2),
			Project: types.ProjectTemplate{
				Title:          "Advanced Project",
				Description:    "Create an optimized application with advanced features",
				GithubTemplate: "https://github.com/",
				Skills:         []string{"Advanced Features", "Optimization", "Deployment"},
			},
		},
		{
			Week:         4,
			Theme:        "Real-World Projects",
			Focus:        "Build portfolio-worthy projects and deploy them",
			Objectives:   []string{"Complete major project", "Deploy application", "Document code"},
			TimeEstimate: "25-30 hours",
			Resources: []types.Resource{
				{Type: types.ResourceProject, Title: "Portfolio Projects", URL: "https://github.com/topics/portfolio", Platform: "GitHub"},
			},
			Project: types.ProjectTemplate{
				Title:          "Portfolio Showcase",
				Description:    "Build a complete application for your portfolio",
				GithubTemplate: "https://github.com/",
				Skills:         []string{"Full-stack Development", "Deployment", "Documentation"},
			},
		},
	}

	milestones := firstProjects(projects, milestoneProjects)
	if len(milestones) == 0 {
		milestones = []types.ProjectTemplate{
			{
				Title:       "Portfolio Project",
				Description: "Showcase your skills with a complete application",
				Skills:      []string{"Frontend", "Backend", "Deployment"},
			},
			{
				Title:       "Open Source Contribution",
				Description: "Contribute to a real open-source project",
				Skills:      []string{"Git", "Collaboration", "Code Review"},
			},
		}
	}

	return types.Plan{
		Title:    fmt.Sprintf("Hands-On %s Learning Roadmap", req.Goal),
		Overview: fmt.Sprintf("A practical %s journey to master %s through real projects and working resources.", req.TimeCommitment, req.Goal),
		Prerequisites: types.Prerequisites{
			Knowledge: []string{"Basic computer literacy", "Problem-solving mindset"},
			Tools:     []string{"Computer with internet", "Modern browser", "Code editor"},
		},
		WeeklyPlan:        weekly,
		MilestoneProjects: milestones,
		SuccessTips: []string{
			"Code consistently - small daily progress beats occasional marathons",
			"Build projects you're passionate about",
			"Join communities and ask for help",
			"Document your journey and share learnings",
			"Don't fear mistakes - they're learning opportunities",
		},
		CommunityRecommendations: []string{
			"Discord Programming Communities",
			"Reddit Learning Subreddits",
			"GitHub Open Source",
			"Stack Overflow for Questions",
		},
		VisualTimeline: []types.TimelineEntry{
			{Week: 1, Theme: "Fundamentals", Milestones: []string{"Setup", "Basics", "First Project"}},
			{Week: 2, Theme: "Core Skills", Milestones: []string{"Practice", "Small Apps", "Debugging"}},
			{Week: 3, Theme: "Advanced", Milestones: []string{"Advanced Features", "Optimization", "Testing"}},
			{Week: 4, Theme: "Real World", Milestones: []string{"Portfolio Project", "Deployment", "Documentation"}},
		},
		Topic: topic,
	}
}

// sliceResources mirrors list[lo:hi] with bounds clamped to the list.
func sliceResources(all []types.Resource, lo, hi int) []types.Resource {
	if hi > len(all) {
		hi = len(all)
	}
	if lo > hi {
		lo = hi
	}
	return append([]types.Resource{}, all[lo:hi]...)
}
