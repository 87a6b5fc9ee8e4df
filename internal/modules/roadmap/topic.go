package roadmap

import (
	"strings"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

type topicRule struct {
	topic    types.Topic
	keywords []string
}

// Checked in order; the first rule with a matching keyword wins.
var topicRules = []topicRule{
	{topic: types.TopicPython, keywords: []string{"python", "programming", "coding", "software"}},
	{topic: types.TopicWeb, keywords: []string{"web", "frontend", "backend", "fullstack", "html", "css", "javascript"}},
	{topic: types.TopicData, keywords: []string{"data", "machine learning", "ai", "analysis", "visualization"}},
}

// ClassifyTopic maps a free-text goal to a topic tag by substring match.
// Note "ai" matches inside other words ("maintain"), as it always has.
func ClassifyTopic(goal string) types.Topic {
	g := strings.ToLower(goal)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(g, kw) {
				return rule.topic
			}
		}
	}
	return types.TopicGeneral
}
