package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProblemNotFound     = errors.New("problem not found")
	ErrProblemTitleEmpty   = errors.New("problem title cannot be empty")
	ErrProblemTitleTooLong = errors.New("problem title is too long (max 200 chars)")
	ErrInvalidDifficulty   = errors.New("invalid difficulty (must be Easy, Medium, or Hard)")
	ErrInvalidStatus       = errors.New("invalid status (must be unsolved, solved, or bookmark)")
	ErrProblemInvalidUser  = errors.New("invalid user id")
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	StatusUnsolved = "unsolved"
	StatusSolved   = "solved"
	StatusBookmark = "bookmark"

	MaxProblemTitleLen = 200
)

type Problem struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	Link       string    `json:"link" db:"link"`
	Topic      string    `json:"topic" db:"topic"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func validDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case StatusUnsolved, StatusSolved, StatusBookmark:
		return true
	}
	return false
}

func NewProblem(userID, title, link, topic, difficulty, status string) (*Problem, error) {
	if userID == "" {
		return nil, ErrProblemInvalidUser
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrProblemTitleEmpty
	}
	if len(title) > MaxProblemTitleLen {
		return nil, ErrProblemTitleTooLong
	}

	if !validDifficulty(difficulty) {
		return nil, ErrInvalidDifficulty
	}

	if status == "" {
		status = StatusUnsolved
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	now := time.Now().UTC()

	return &Problem{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Link:       strings.TrimSpace(link),
		Topic:      strings.ToLower(strings.TrimSpace(topic)),
		Difficulty: difficulty,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (p *Problem) ChangeStatus(status string) error {
	if !validStatus(status) {
		return ErrInvalidStatus
	}

	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	return nil
}
