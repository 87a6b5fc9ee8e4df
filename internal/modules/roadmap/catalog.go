package roadmap

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// fallbackTopic is used for any topic the catalog does not list.
const fallbackTopic = types.TopicPython

// Catalog holds the static resource and project tables. It is read-only once
// loaded and safe for concurrent use.
type Catalog struct {
	resources map[types.Topic][]types.Resource
	projects  map[types.Topic][]types.ProjectTemplate
}

type yamlCatalog struct {
	Resources map[string][]types.Resource        `yaml:"resources"`
	Projects  map[string][]types.ProjectTemplate `yaml:"projects"`
}

// DefaultCatalog decodes the embedded catalog. The embedded file is part of the
// build, so a decode failure is a programming error.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{
		resources: make(map[types.Topic][]types.Resource, len(raw.Resources)),
		projects:  make(map[types.Topic][]types.ProjectTemplate, len(raw.Projects)),
	}
	for topic, list := range raw.Resources {
		for i, r := range list {
			if err := validateResource(r); err != nil {
				return nil, fmt.Errorf("resources.%s[%d]: %w", topic, i, err)
			}
		}
		c.resources[types.Topic(topic)] = list
	}
	for topic, list := range raw.Projects {
		for i, p := range list {
			if strings.TrimSpace(p.Title) == "" {
				return nil, fmt.Errorf("projects.%s[%d]: title required", topic, i)
			}
		}
		c.projects[types.Topic(topic)] = list
	}
	if _, ok := c.resources[fallbackTopic]; !ok {
		return nil, fmt.Errorf("catalog must list resources for %q", fallbackTopic)
	}
	if _, ok := c.projects[fallbackTopic]; !ok {
		return nil, fmt.Errorf("catalog must list projects for %q", fallbackTopic)
	}
	return c, nil
}

func validateResource(r types.Resource) error {
	switch r.Type {
	case types.ResourceVideo, types.ResourceCourse, types.ResourceArticle, types.ResourceProject:
	default:
		return fmt.Errorf("unknown resource type %q", r.Type)
	}
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.URL) == "" {
		return fmt.Errorf("title and url required")
	}
	return nil
}

// Resources returns the topic's resources, falling back to the python list
// for topics the catalog does not carry.
func (c *Catalog) Resources(topic types.Topic) []types.Resource {
	if list, ok := c.resources[topic]; ok {
		return list
	}
	return c.resources[fallbackTopic]
}

// Projects returns the topic's project templates with the same fallback as Resources.
func (c *Catalog) Projects(topic types.Topic) []types.ProjectTemplate {
	if list, ok := c.projects[topic]; ok {
		return list
	}
	return c.projects[fallbackTopic]
}

// Topics lists the topics carried by the catalog, sorted.
func (c *Catalog) Topics() []types.Topic {
	seen := map[types.Topic]bool{}
	out := []types.Topic{}
	for t := range c.resources {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for t := range c.projects {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
