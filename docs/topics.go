// Package docs holds the user documentation, shown by `dca topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic listing all the others.
const index = "readme"

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see `dca topic` for the list: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns several topics concatenated. "*" stands for every topic.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		expanded := []string{topic}
		if topic == "*" {
			expanded = AllTopics()
		}
		for _, t := range expanded {
			content, err := GetTopic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// AllTopics returns the sorted topic names, the index excluded.
func AllTopics() []string {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		// the pattern is constant
		panic(err)
	}
	var topics []string
	for _, e := range entries {
		if name := strings.TrimSuffix(e, ".md"); name != index {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics
}
