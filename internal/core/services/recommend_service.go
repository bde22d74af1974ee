package services

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

// Canned references served by the prompt-based recommender.
var (
	graphPromptRefs = []string{
		"Codeforces 510C – Fox And Names",
		"LeetCode 133 – Clone Graph",
	}
	dpPromptRefs = []string{
		"LeetCode 1143 – Longest Common Subsequence",
		"AtCoder Educational DP Contest – Frog Jump",
	}
	treePromptRefs = []string{
		"LeetCode 105 – Construct Binary Tree",
	}
	defaultPromptRef = "LeetCode 1 – Two Sum"
)

type RecommendService struct {
	problemRepo domain.ProblemRepository
	userRepo    domain.UserRepository
	rng         *rand.Rand
}

// NewRecommendService builds the rule-based recommender. The random source
// feeds the unsolved pick; tests pass a fixed seed for stable assertions.
func NewRecommendService(problemRepo domain.ProblemRepository, userRepo domain.UserRepository, rng *rand.Rand) *RecommendService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RecommendService{
		problemRepo: problemRepo,
		userRepo:    userRepo,
		rng:         rng,
	}
}

func (s *RecommendService) Recommend(ctx context.Context, userID string) ([]*domain.Problem, error) {
	problems, err := s.problemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.selectProblems(problems), nil
}

// selectProblems applies the fixed-priority rules: one random unsolved
// problem, one from the least-practiced topic, the first bookmark, and the
// first unsolved Hard problem, de-duplicated by id in that order.
func (s *RecommendService) selectProblems(problems []*domain.Problem) []*domain.Problem {
	picks := make([]*domain.Problem, 0, 4)

	var unsolved []*domain.Problem
	for _, p := range problems {
		if p.Status == domain.StatusUnsolved {
			unsolved = append(unsolved, p)
		}
	}
	if len(unsolved) > 0 {
		picks = append(picks, unsolved[s.rng.Intn(len(unsolved))])
	}

	if topic, ok := leastPracticedTopic(problems); ok {
		for _, p := range problems {
			if p.Topic == topic && p.Status != domain.StatusSolved {
				picks = append(picks, p)
				break
			}
		}
	}

	for _, p := range problems {
		if p.Status == domain.StatusBookmark {
			picks = append(picks, p)
			break
		}
	}

	for _, p := range problems {
		if p.Difficulty == domain.DifficultyHard && p.Status != domain.StatusSolved {
			picks = append(picks, p)
			break
		}
	}

	seen := make(map[string]struct{}, len(picks))
	unique := picks[:0]
	for _, p := range picks {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		unique = append(unique, p)
	}

	return unique
}

// leastPracticedTopic counts solved problems per topic and returns the topic
// with the lowest count. Ties go to the topic encountered first in input order.
func leastPracticedTopic(problems []*domain.Problem) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, p := range problems {
		if p.Status != domain.StatusSolved {
			continue
		}
		if _, ok := counts[p.Topic]; !ok {
			order = append(order, p.Topic)
		}
		counts[p.Topic]++
	}

	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, topic := range order[1:] {
		if counts[topic] < counts[best] {
			best = topic
		}
	}
	return best, true
}

// RecommendFromPrompt maps free-text prompts to canned problem references.
// Every matching rule fires; the default applies only when none did.
func (s *RecommendService) RecommendFromPrompt(prompt string) []string {
	prompt = strings.ToLower(prompt)

	var refs []string
	if strings.Contains(prompt, "graph") {
		refs = append(refs, graphPromptRefs...)
	}
	if strings.Contains(prompt, "dp") {
		refs = append(refs, dpPromptRefs...)
	}
	if strings.Contains(prompt, "tree") {
		refs = append(refs, treePromptRefs...)
	}

	if len(refs) == 0 {
		refs = append(refs, defaultPromptRef)
	}

	return refs
}

type CoachProblemRef struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Link       string `json:"link"`
}

type CoachPlan struct {
	NextTopic           string            `json:"next_topic"`
	WeakAreas           []string          `json:"weak_areas"`
	DailyGoal           int               `json:"daily_goal"`
	RecommendedProblems []CoachProblemRef `json:"recommended_problems"`
}

// CoachPlan derives the user's weak areas from per-topic solved counts over
// their problem set and pairs them with a starter problem list.
func (s *RecommendService) CoachPlan(ctx context.Context, userID string) (*CoachPlan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	problems, err := s.problemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	weak := weakAreas(problems, 3)

	nextTopic := "dynamic programming"
	if len(weak) > 0 {
		nextTopic = weak[0]
	}

	goal := user.DailyGoal
	if goal <= 0 {
		goal = domain.DefaultDailyGoal
	}

	return &CoachPlan{
		NextTopic: nextTopic,
		WeakAreas: weak,
		DailyGoal: goal,
		RecommendedProblems: []CoachProblemRef{
			{
				Title:      "Longest Increasing Subsequence",
				Difficulty: domain.DifficultyMedium,
				Link:       "https://leetcode.com/problems/longest-increasing-subsequence/",
			},
			{
				Title:      "Knapsack Problem",
				Difficulty: domain.DifficultyMedium,
				Link:       "https://www.geeksforgeeks.org/0-1-knapsack-problem-dp-10/",
			},
		},
	}, nil
}

// weakAreas ranks the topics present in the problem set by how few of their
// problems are solved, lowest first.
func weakAreas(problems []*domain.Problem, limit int) []string {
	solved := make(map[string]int)
	var order []string
	seen := make(map[string]struct{})

	for _, p := range problems {
		if p.Topic == "" {
			continue
		}
		if _, ok := seen[p.Topic]; !ok {
			seen[p.Topic] = struct{}{}
			order = append(order, p.Topic)
		}
		if p.Status == domain.StatusSolved {
			solved[p.Topic]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return solved[order[i]] < solved[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
