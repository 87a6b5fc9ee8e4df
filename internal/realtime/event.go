package realtime

import "time"

const (
	EventRoadmapGenerated = "roadmap.generated"
	EventProgressUpdated  = "roadmap.progress"
)

// Event is published whenever a roadmap is created or its progress changes.
type Event struct {
	Type      string         `json:"type"`
	RoadmapID string         `json:"roadmap_id"`
	Data      map[string]any `json:"data,omitempty"`
	At        time.Time      `json:"at"`
}
