package roadmap

import (
	"fmt"
	"strings"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

const structureSystemPrompt = `Return ONLY JSON. Structure:
{
    "title": "Title",
    "overview": "Overview",
    "weekly_themes": ["Theme 1", "Theme 2", "Theme 3", "Theme 4"],
    "weekly_focus": ["Focus 1", "Focus 2", "Focus 3", "Focus 4"],
    "weekly_objectives": [["Obj1", "Obj2"], ["Obj3", "Obj4"], ["Obj5", "Obj6"], ["Obj7", "Obj8"]]
}`

// structureUserPrompt asks for one week per learning-style tag.
func structureUserPrompt(req types.LearningGoalRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-week learning roadmap for:\n", len(req.LearningStyle))
	fmt.Fprintf(&b, "Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "Level: %s\n", req.Proficiency)
	fmt.Fprintf(&b, "Time: %s\n", req.TimeCommitment)
	fmt.Fprintf(&b, "Styles: %s\n", strings.Join(req.LearningStyle, ", "))
	if s := strings.TrimSpace(req.SpecificInterests); s != "" {
		fmt.Fprintf(&b, "Interests: %s\n", s)
	}
	if s := strings.TrimSpace(req.Challenges); s != "" {
		fmt.Fprintf(&b, "Challenges: %s\n", s)
	}
	b.WriteString("\nReturn only the JSON structure above.")
	return b.String()
}
