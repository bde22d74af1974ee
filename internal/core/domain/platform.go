package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrHandleNotFound = errors.New("platform handle not found")

// Snapshots of third-party platform stats. The upstream wire formats are
// owned by LeetCode and Codeforces; these are the fields the dashboard
// actually consumes.

type LeetCodeStats struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
	Total  int `json:"total"`
}

type CodeforcesStats struct {
	Rating      int    `json:"rating"`
	MaxRating   int    `json:"max_rating"`
	Rank        string `json:"rank"`
	SolvedCount int    `json:"solved_count"`
}

type PlatformHandles struct {
	LeetCode   *LeetCodeStats   `json:"leetcode,omitempty"`
	Codeforces *CodeforcesStats `json:"codeforces,omitempty"`
	LastSynced *time.Time       `json:"last_synced,omitempty"`
}

type Submission struct {
	ContestID int    `json:"contest_id"`
	Index     string `json:"index"`
	Verdict   string `json:"verdict"`
}

// CountSolved returns the number of distinct accepted problems, keyed by
// contest id plus problem index. Resubmissions of the same problem count once.
func CountSolved(subs []Submission) int {
	seen := make(map[string]struct{}, len(subs))
	for _, s := range subs {
		if s.Verdict != "OK" {
			continue
		}
		seen[fmt.Sprintf("%d-%s", s.ContestID, s.Index)] = struct{}{}
	}
	return len(seen)
}
