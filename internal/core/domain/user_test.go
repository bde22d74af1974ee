package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

func TestNewUser(t *testing.T) {
	t.Run("Success: Creates a user with normalized email", func(t *testing.T) {
		u, err := domain.NewUser("user-1", "alice", "Alice@Example.COM")

		assert.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, domain.DefaultDailyGoal, u.DailyGoal)
	})

	t.Run("Fail: Empty username", func(t *testing.T) {
		_, err := domain.NewUser("user-1", "   ", "alice@example.com")

		assert.ErrorIs(t, err, domain.ErrUsernameEmpty)
	})

	t.Run("Fail: Malformed email", func(t *testing.T) {
		_, err := domain.NewUser("user-1", "alice", "not-an-email")

		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})
}

func TestUser_Password(t *testing.T) {
	t.Run("Success: Hashes and verifies a password", func(t *testing.T) {
		u, _ := domain.NewUser("user-1", "alice", "alice@example.com")

		err := u.SetPassword("correct horse battery")

		assert.NoError(t, err)
		assert.NotEmpty(t, u.PasswordHash)
		assert.NotEqual(t, "correct horse battery", u.PasswordHash)
		assert.NoError(t, u.CheckPassword("correct horse battery"))
		assert.Error(t, u.CheckPassword("wrong password"))
	})

	t.Run("Fail: Password shorter than 8 runes", func(t *testing.T) {
		u, _ := domain.NewUser("user-1", "alice", "alice@example.com")

		err := u.SetPassword("short")

		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.Empty(t, u.PasswordHash)
	})
}

func TestUser_SetHandles(t *testing.T) {
	u, _ := domain.NewUser("user-1", "alice", "alice@example.com")

	u.SetHandles(" tourist ", "tourist")

	assert.Equal(t, "tourist", u.LeetCodeHandle)
	assert.Equal(t, "tourist", u.CodeforcesHandle)
}

func TestCountSolved(t *testing.T) {
	t.Run("Success: Distinct accepted problems only", func(t *testing.T) {
		subs := []domain.Submission{
			{ContestID: 510, Index: "C", Verdict: "OK"},
			{ContestID: 510, Index: "C", Verdict: "OK"},
			{ContestID: 510, Index: "A", Verdict: "WRONG_ANSWER"},
			{ContestID: 1, Index: "A", Verdict: "OK"},
		}

		assert.Equal(t, 2, domain.CountSolved(subs))
	})

	t.Run("Edge Case: No submissions", func(t *testing.T) {
		assert.Equal(t, 0, domain.CountSolved(nil))
	})
}
