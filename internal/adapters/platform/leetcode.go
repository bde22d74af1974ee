package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

const leetCodeGraphQLURL = "https://leetcode.com/graphql"

const leetCodeStatsQuery = `
	query userProfile($username: String!) {
		matchedUser(username: $username) {
			submitStats {
				acSubmissionNum {
					difficulty
					count
				}
			}
		}
	}`

type LeetCodeAPI struct {
	baseURL string
	client  *http.Client
}

// NewLeetCodeAPI builds a client for LeetCode's public GraphQL endpoint.
// baseURL is overridable for tests; empty means the real endpoint.
func NewLeetCodeAPI(baseURL string) *LeetCodeAPI {
	if baseURL == "" {
		baseURL = leetCodeGraphQLURL
	}
	return &LeetCodeAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type leetCodeResponse struct {
	Data struct {
		MatchedUser *struct {
			SubmitStats struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
		} `json:"matchedUser"`
	} `json:"data"`
}

func (a *LeetCodeAPI) FetchStats(ctx context.Context, username string) (*domain.LeetCodeStats, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     leetCodeStatsQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", fmt.Sprintf("https://leetcode.com/%s/", username))

	res, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leetcode request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leetcode returned status %d", res.StatusCode)
	}

	var body leetCodeResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("leetcode response decode failed: %w", err)
	}

	if body.Data.MatchedUser == nil {
		return nil, domain.ErrHandleNotFound
	}

	stats := &domain.LeetCodeStats{}
	for _, bucket := range body.Data.MatchedUser.SubmitStats.ACSubmissionNum {
		switch bucket.Difficulty {
		case "Easy":
			stats.Easy = bucket.Count
		case "Medium":
			stats.Medium = bucket.Count
		case "Hard":
			stats.Hard = bucket.Count
		}
	}
	stats.Total = stats.Easy + stats.Medium + stats.Hard

	return stats, nil
}
