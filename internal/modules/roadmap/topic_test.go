package roadmap

import (
	"testing"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

func TestClassifyTopic(t *testing.T) {
	cases := []struct {
		goal string
		want types.Topic
	}{
		{goal: "Learn Python basics", want: types.TopicPython},
		{goal: "get better at CODING interviews", want: types.TopicPython},
		{goal: "Python for data analysis", want: types.TopicPython},
		{goal: "Build pages with HTML", want: types.TopicWeb},
		{goal: "fullstack javascript", want: types.TopicWeb},
		{goal: "web data dashboards", want: types.TopicWeb},
		{goal: "Statistical analysis", want: types.TopicData},
		{goal: "Machine Learning fundamentals", want: types.TopicData},
		{goal: "Learn to paint", want: types.TopicData}, // "paint" contains "ai"
		{goal: "Learn guitar", want: types.TopicGeneral},
		{goal: "", want: types.TopicGeneral},
	}
	for _, tc := range cases {
		t.Run(tc.goal, func(t *testing.T) {
			if got := ClassifyTopic(tc.goal); got != tc.want {
				t.Fatalf("ClassifyTopic(%q)=%q, want %q", tc.goal, got, tc.want)
			}
		})
	}
}
