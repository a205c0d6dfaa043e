package faq

import (
	"fmt"
	"strings"
	"time"
)

// FAQ is a published help article. The answer is stored as markdown and
// rendered to sanitized HTML at the interface layer.
type FAQ struct {
	id        uint
	question  string
	answer    string
	category  string
	position  int
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewFAQ(question, answer, category string, position int) (*FAQ, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	now := time.Now()
	return &FAQ{
		question:  question,
		answer:    answer,
		category:  strings.TrimSpace(category),
		position:  position,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFAQ(
	id uint,
	question string,
	answer string,
	category string,
	position int,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*FAQ, error) {
	if id == 0 {
		return nil, fmt.Errorf("FAQ ID cannot be zero")
	}
	if question == "" {
		return nil, fmt.Errorf("question is required")
	}

	return &FAQ{
		id:        id,
		question:  question,
		answer:    answer,
		category:  category,
		position:  position,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *FAQ) ID() uint {
	return f.id
}

func (f *FAQ) Question() string {
	return f.question
}

func (f *FAQ) Answer() string {
	return f.answer
}

func (f *FAQ) Category() string {
	return f.category
}

func (f *FAQ) Position() int {
	return f.position
}

func (f *FAQ) IsActive() bool {
	return f.active
}

func (f *FAQ) CreatedAt() time.Time {
	return f.createdAt
}

func (f *FAQ) UpdatedAt() time.Time {
	return f.updatedAt
}

func (f *FAQ) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("FAQ ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("FAQ ID cannot be zero")
	}
	f.id = id
	return nil
}
