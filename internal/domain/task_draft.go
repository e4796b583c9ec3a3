package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft is a task to be created in a period.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string   `yaml:"title"`
	Priority    Priority `yaml:"priority"`
	Description string   `yaml:"description,omitempty"`
	DueDate     string   `yaml:"due_date,omitempty"` // Weekly tasks only
	Tags        []string `yaml:"tags,omitempty"`
}

// Normalize trims the draft, applies the default priority and validates it.
func (d TaskDraft) Normalize() (TaskDraft, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return TaskDraft{}, ErrEmptyTitle
	}
	if d.Priority == "" {
		d.Priority = PriorityUrgentImportant
	} else {
		p, err := ParsePriority(string(d.Priority))
		if err != nil {
			return TaskDraft{}, fmt.Errorf("priority %q: %w", d.Priority, err)
		}
		d.Priority = p
	}
	d.Description = strings.TrimSpace(d.Description)
	d.Tags = ParseTags(strings.Join(d.Tags, ","))
	return d, nil
}

// ParseTags splits a comma-separated tag list, dropping blanks.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseTaskDrafts parses a YAML stream of task drafts.
// Documents are separated by "---"; each is one draft or a list of drafts.
//
// Format:
//
//	title: Write weekly summary
//	priority: 不紧急重要
//	tags: [writing]
//	---
//	- title: Review PR
//	  priority: ui
//	- title: Book flights
func ParseTaskDrafts(content []byte) ([]TaskDraft, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}

	var drafts []TaskDraft
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for doc := 1; ; doc++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		batch, err := decodeDraftNode(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		drafts = append(drafts, batch...)
	}
	if len(drafts) == 0 {
		return nil, ErrNoTasksInFile
	}

	for i := range drafts {
		d, err := drafts[i].Normalize()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts[i] = d
	}
	return drafts, nil
}

func decodeDraftNode(node *yaml.Node) ([]TaskDraft, error) {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var batch []TaskDraft
		if err := node.Decode(&batch); err != nil {
			return nil, err
		}
		return batch, nil
	case yaml.MappingNode:
		var d TaskDraft
		if err := node.Decode(&d); err != nil {
			return nil, err
		}
		return []TaskDraft{d}, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	case yaml.DocumentNode, yaml.AliasNode:
	}
	return nil, fmt.Errorf("line %d: expected a task or a list of tasks", node.Line)
}
