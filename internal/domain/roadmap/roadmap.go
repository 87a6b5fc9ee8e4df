package roadmap

import "time"

type Topic string

const (
	TopicPython  Topic = "python"
	TopicWeb     Topic = "web"
	TopicData    Topic = "data"
	TopicGeneral Topic = "general"
)

type ResourceType string

const (
	ResourceVideo   ResourceType = "Video"
	ResourceCourse  ResourceType = "Course"
	ResourceArticle ResourceType = "Article"
	ResourceProject ResourceType = "Project"
)

// Source records which path produced a plan.
type Source string

const (
	SourceAI       Source = "ai"       // generation service drafted the structure
	SourceDefault  Source = "default"  // deterministic default structure
	SourceFallback Source = "fallback" // independent fallback plan
)

// LearningGoalRequest is the learner input for a generation request.
type LearningGoalRequest struct {
	Goal              string   `json:"goal" binding:"required"`
	Proficiency       string   `json:"proficiency" binding:"required"`
	TimeCommitment    string   `json:"time_commitment" binding:"required"`
	LearningStyle     []string `json:"learning_style" binding:"required,min=1"`
	SpecificInterests string   `json:"specific_interests,omitempty"`
	Challenges        string   `json:"challenges,omitempty"`
}

type Resource struct {
	Type     ResourceType `json:"type" yaml:"type"`
	Title    string       `json:"title" yaml:"title"`
	URL      string       `json:"url" yaml:"url"`
	Platform string       `json:"platform,omitempty" yaml:"platform,omitempty"`
	Channel  string       `json:"channel,omitempty" yaml:"channel,omitempty"`
	Source   string       `json:"source,omitempty" yaml:"source,omitempty"`
	Free     bool         `json:"free,omitempty" yaml:"free,omitempty"`
}

type ProjectTemplate struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description" yaml:"description"`
	GithubTemplate string   `json:"github_template" yaml:"github_template"`
	Skills         []string `json:"skills" yaml:"skills"`
	DemoURL        string   `json:"demo_url,omitempty" yaml:"demo_url,omitempty"`
}

// Structure is the skeletal plan before catalog enrichment. All three lists
// describe the same weeks, index by index.
type Structure struct {
	Title            string     `json:"title"`
	Overview         string     `json:"overview"`
	WeeklyThemes     []string   `json:"weekly_themes"`
	WeeklyFocus      []string   `json:"weekly_focus"`
	WeeklyObjectives [][]string `json:"weekly_objectives"`
}

// Weeks is the number of weeks all three lists can describe.
func (s Structure) Weeks() int {
	n := len(s.WeeklyThemes)
	if len(s.WeeklyFocus) < n {
		n = len(s.WeeklyFocus)
	}
	if len(s.WeeklyObjectives) < n {
		n = len(s.WeeklyObjectives)
	}
	return n
}

type WeekPlan struct {
	Week         int             `json:"week"`
	Theme        string          `json:"theme"`
	Focus        string          `json:"focus"`
	Objectives   []string        `json:"objectives"`
	TimeEstimate string          `json:"time_estimate"`
	Resources    []Resource      `json:"resources"`
	Project      ProjectTemplate `json:"project"`
}

type Prerequisites struct {
	Knowledge []string `json:"knowledge"`
	Tools     []string `json:"tools"`
}

type TimelineEntry struct {
	Week       int      `json:"week"`
	Theme      string   `json:"theme"`
	Milestones []string `json:"milestones"`
	Project    string   `json:"project,omitempty"`
}

type Plan struct {
	RoadmapID                string            `json:"roadmap_id"`
	Title                    string            `json:"title"`
	Overview                 string            `json:"overview"`
	Prerequisites            Prerequisites     `json:"prerequisites"`
	WeeklyPlan               []WeekPlan        `json:"weekly_plan"`
	MilestoneProjects        []ProjectTemplate `json:"milestone_projects"`
	SuccessTips              []string          `json:"success_tips"`
	CommunityRecommendations []string          `json:"community_recommendations"`
	VisualTimeline           []TimelineEntry   `json:"visual_timeline"`
	Topic                    Topic             `json:"topic"`
	Source                   Source            `json:"source"`
	GeneratedAt              time.Time         `json:"generated_at"`
}

func (p *Plan) TotalWeeks() int {
	if p == nil {
		return 0
	}
	return len(p.WeeklyPlan)
}

type Note struct {
	Week      int       `json:"week"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

type ProgressRecord struct {
	CompletedWeeks    []int  `json:"completed_weeks"`
	CompletedProjects []int  `json:"completed_projects"`
	Notes             []Note `json:"notes"`
}

// Entry is the unit stored in the registry under a roadmap id.
type Entry struct {
	Roadmap   Plan           `json:"roadmap"`
	Progress  ProgressRecord `json:"progress"`
	CreatedAt time.Time      `json:"created_at"`
}

// Clone returns a deep copy so callers outside the registry never share
// slices with stored state.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	out := *e
	out.Roadmap = e.Roadmap.clone()
	out.Progress = ProgressRecord{
		CompletedWeeks:    append([]int{}, e.Progress.CompletedWeeks...),
		CompletedProjects: append([]int{}, e.Progress.CompletedProjects...),
		Notes:             append([]Note{}, e.Progress.Notes...),
	}
	return &out
}

func (p Plan) clone() Plan {
	out := p
	out.Prerequisites = Prerequisites{
		Knowledge: append([]string{}, p.Prerequisites.Knowledge...),
		Tools:     append([]string{}, p.Prerequisites.Tools...),
	}
	out.WeeklyPlan = make([]WeekPlan, len(p.WeeklyPlan))
	for i, w := range p.WeeklyPlan {
		w.Objectives = append([]string{}, w.Objectives...)
		w.Resources = append([]Resource{}, w.Resources...)
		w.Project = w.Project.clone()
		out.WeeklyPlan[i] = w
	}
	out.MilestoneProjects = make([]ProjectTemplate, len(p.MilestoneProjects))
	for i, mp := range p.MilestoneProjects {
		out.MilestoneProjects[i] = mp.clone()
	}
	out.SuccessTips = append([]string{}, p.SuccessTips...)
	out.CommunityRecommendations = append([]string{}, p.CommunityRecommendations...)
	out.VisualTimeline = make([]TimelineEntry, len(p.VisualTimeline))
	for i, te := range p.VisualTimeline {
		te.Milestones = append([]string{}, te.Milestones...)
		out.VisualTimeline[i] = te
	}
	return out
}

func (pt ProjectTemplate) clone() ProjectTemplate {
	pt.Skills = append([]string{}, pt.Skills...)
	return pt
}
