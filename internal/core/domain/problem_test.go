package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

func TestNewProblem(t *testing.T) {
	t.Run("Success: Creates a problem with defaults", func(t *testing.T) {
		p, err := domain.NewProblem("user-1", "Two Sum", "https://leetcode.com/problems/two-sum/", "Arrays", domain.DifficultyEasy, "")

		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Two Sum", p.Title)
		assert.Equal(t, "arrays", p.Topic)
		assert.Equal(t, domain.StatusUnsolved, p.Status)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("Success: Trims title and topic", func(t *testing.T) {
		p, err := domain.NewProblem("user-1", "  Clone Graph  ", "", "  Graphs ", domain.DifficultyMedium, domain.StatusBookmark)

		assert.NoError(t, err)
		assert.Equal(t, "Clone Graph", p.Title)
		assert.Equal(t, "graphs", p.Topic)
		assert.Equal(t, domain.StatusBookmark, p.Status)
	})

	t.Run("Fail: Empty title", func(t *testing.T) {
		_, err := domain.NewProblem("user-1", "   ", "", "dp", domain.DifficultyEasy, "")

		assert.ErrorIs(t, err, domain.ErrProblemTitleEmpty)
	})

	t.Run("Fail: Title too long", func(t *testing.T) {
		_, err := domain.NewProblem("user-1", strings.Repeat("x", domain.MaxProblemTitleLen+1), "", "dp", domain.DifficultyEasy, "")

		assert.ErrorIs(t, err, domain.ErrProblemTitleTooLong)
	})

	t.Run("Fail: Unknown difficulty", func(t *testing.T) {
		_, err := domain.NewProblem("user-1", "Two Sum", "", "arrays", "Impossible", "")

		assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
	})

	t.Run("Fail: Unknown status", func(t *testing.T) {
		_, err := domain.NewProblem("user-1", "Two Sum", "", "arrays", domain.DifficultyEasy, "archived")

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("Fail: Missing user id", func(t *testing.T) {
		_, err := domain.NewProblem("", "Two Sum", "", "arrays", domain.DifficultyEasy, "")

		assert.ErrorIs(t, err, domain.ErrProblemInvalidUser)
	})
}

func TestProblem_ChangeStatus(t *testing.T) {
	t.Run("Success: Moves unsolved to solved and bumps UpdatedAt", func(t *testing.T) {
		p, _ := domain.NewProblem("user-1", "Two Sum", "", "arrays", domain.DifficultyEasy, "")
		before := p.UpdatedAt

		err := p.ChangeStatus(domain.StatusSolved)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusSolved, p.Status)
		assert.False(t, p.UpdatedAt.Before(before))
	})

	t.Run("Fail: Rejects unknown status and keeps the old one", func(t *testing.T) {
		p, _ := domain.NewProblem("user-1", "Two Sum", "", "arrays", domain.DifficultyEasy, "")

		err := p.ChangeStatus("wishlist")

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.Equal(t, domain.StatusUnsolved, p.Status)
	})
}
