// Package catalog provides the static topic catalog for the digest.
// The catalog is embedded at build time and read-only at runtime.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/umputun/aidigest/pkg/domain"
)

//go:embed topics.yml
var topicsYML []byte

// Catalog holds the full set of topics and lookup indexes
type Catalog struct {
	topics []domain.Topic
	byID   map[string]domain.Topic
}

// CategoryGroup is a category with its topics, in catalog order
type CategoryGroup struct {
	Category string
	Topics   []domain.Topic
}

// topicYAML is the on-disk representation of a catalog entry
type topicYAML struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	TopPick  bool   `yaml:"top_pick"`
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	var raw struct {
		Topics []topicYAML `yaml:"topics"`
	}
	if err := yaml.Unmarshal(topicsYML, &raw); err != nil {
		return nil, fmt.Errorf("parse topic catalog: %w", err)
	}
	if len(raw.Topics) == 0 {
		return nil, fmt.Errorf("topic catalog is empty")
	}

	c := &Catalog{byID: make(map[string]domain.Topic, len(raw.Topics))}
	for _, t := range raw.Topics {
		if t.ID == "" || t.Name == "" || t.Category == "" {
			return nil, fmt.Errorf("invalid catalog entry %q: id, name and category are required", t.ID)
		}
		if _, ok := c.byID[t.ID]; ok {
			return nil, fmt.Errorf("duplicate topic id %q in catalog", t.ID)
		}
		topic := domain.Topic{ID: t.ID, Name: t.Name, Category: t.Category, TopPick: t.TopPick}
		c.topics = append(c.topics, topic)
		c.byID[t.ID] = topic
	}
	return c, nil
}

// All returns all topics in catalog order
func (c *Catalog) All() []domain.Topic {
	res := make([]domain.Topic, len(c.topics))
	copy(res, c.topics)
	return res
}

// Get returns the topic with the given id
func (c *Catalog) Get(id string) (domain.Topic, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// ByCategory groups topics by category, categories ordered by first appearance
func (c *Catalog) ByCategory() []CategoryGroup {
	var groups []CategoryGroup
	idx := make(map[string]int)
	for _, t := range c.topics {
		i, ok := idx[t.Category]
		if !ok {
			i = len(groups)
			idx[t.Category] = i
			groups = append(groups, CategoryGroup{Category: t.Category})
		}
		groups[i].Topics = append(groups[i].Topics, t)
	}
	return groups
}

// TopPicks returns the curated shortlist in catalog order
func (c *Catalog) TopPicks() []domain.Topic {
	var picks []domain.Topic
	for _, t := range c.topics {
		if t.TopPick {
			picks = append(picks, t)
		}
	}
	return picks
}
