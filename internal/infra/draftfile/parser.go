// Package draftfile parses bulk task files for `tasklist add --from`.
//
// A file is a YAML sequence. Each item is either a plain string or a mapping:
//
//	- Buy milk
//	- text: Call the bank
//	  completed: true
//
// A top-level mapping with a "tasks" key holding the sequence is also accepted.
package draftfile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/tasklist/internal/domain"
)

// Ensure Parser implements domain.DraftParser.
var _ domain.DraftParser = (*Parser)(nil)

// ErrInvalidItem is returned when an item is neither a string nor a task mapping.
var ErrInvalidItem = errors.New("invalid task item")

// Parser parses YAML task files.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

type item struct {
	Completed *bool  `yaml:"completed"`
	Text      string `yaml:"text"`
}

// Parse returns the drafts in file order.
func (p *Parser) Parse(content string) ([]domain.TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyFile
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, domain.ErrEmptyFile
	}

	seq, err := findSequence(root.Content[0])
	if err != nil {
		return nil, err
	}

	drafts := make([]domain.TaskDraft, 0, len(seq.Content))
	for i, node := range seq.Content {
		draft, err := decodeItem(node)
		if err != nil {
			return nil, fmt.Errorf("task %d (line %d): %w", i+1, node.Line, err)
		}
		if err := draft.Validate(); err != nil {
			return nil, fmt.Errorf("task %d (line %d): %w", i+1, node.Line, err)
		}
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return nil, domain.ErrNoTasksInFile
	}
	return drafts, nil
}

func findSequence(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(doc.Content); i += 2 {
			if doc.Content[i].Value == "tasks" && doc.Content[i+1].Kind == yaml.SequenceNode {
				return doc.Content[i+1], nil
			}
		}
	}
	return nil, domain.ErrNoTasksInFile
}

func decodeItem(node *yaml.Node) (domain.TaskDraft, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return domain.TaskDraft{Text: strings.TrimSpace(node.Value)}, nil
	case yaml.MappingNode:
		var it item
		if err := node.Decode(&it); err != nil {
			return domain.TaskDraft{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
		}
		draft := domain.TaskDraft{Text: strings.TrimSpace(it.Text)}
		if it.Completed != nil {
			draft.Completed = *it.Completed
		}
		return draft, nil
	}
	return domain.TaskDraft{}, ErrInvalidItem
}
