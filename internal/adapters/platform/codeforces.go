package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

const codeforcesAPIURL = "https://codeforces.com/api"

// submissionPageSize matches the window the dashboard has always pulled;
// Codeforces caps user.status pages anyway.
const submissionPageSize = 10000

type CodeforcesAPI struct {
	baseURL string
	client  *http.Client
}

func NewCodeforcesAPI(baseURL string) *CodeforcesAPI {
	if baseURL == "" {
		baseURL = codeforcesAPIURL
	}
	return &CodeforcesAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type cfUserInfoResponse struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  []struct {
		Rating    int    `json:"rating"`
		MaxRating int    `json:"maxRating"`
		Rank      string `json:"rank"`
	} `json:"result"`
}

type cfUserStatusResponse struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  []struct {
		Verdict string `json:"verdict"`
		Problem *struct {
			ContestID int    `json:"contestId"`
			Index     string `json:"index"`
		} `json:"problem"`
	} `json:"result"`
}

func (a *CodeforcesAPI) FetchStats(ctx context.Context, handle string) (*domain.CodeforcesStats, error) {
	info, err := a.fetchInfo(ctx, handle)
	if err != nil {
		return nil, err
	}

	subs, err := a.fetchSubmissions(ctx, handle)
	if err != nil {
		return nil, err
	}

	stats := &domain.CodeforcesStats{
		Rank:        "unrated",
		SolvedCount: domain.CountSolved(subs),
	}

	if len(info.Result) > 0 {
		u := info.Result[0]
		stats.Rating = u.Rating
		stats.MaxRating = u.MaxRating
		if u.Rank != "" {
			stats.Rank = u.Rank
		}
	}

	return stats, nil
}

func (a *CodeforcesAPI) fetchInfo(ctx context.Context, handle string) (*cfUserInfoResponse, error) {
	endpoint := fmt.Sprintf("%s/user.info?handles=%s", a.baseURL, url.QueryEscape(handle))

	var body cfUserInfoResponse
	if err := a.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	if body.Status != "OK" {
		if body.Comment != "" {
			return nil, fmt.Errorf("codeforces user.info: %s", body.Comment)
		}
		return nil, domain.ErrHandleNotFound
	}

	return &body, nil
}

func (a *CodeforcesAPI) fetchSubmissions(ctx context.Context, handle string) ([]domain.Submission, error) {
	endpoint := fmt.Sprintf("%s/user.status?handle=%s&from=1&count=%d",
		a.baseURL, url.QueryEscape(handle), submissionPageSize)

	var body cfUserStatusResponse
	if err := a.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	if body.Status != "OK" {
		// A fresh handle with no submissions still answers OK; a non-OK
		// status here means the handle itself is bad.
		return nil, domain.ErrHandleNotFound
	}

	subs := make([]domain.Submission, 0, len(body.Result))
	for _, r := range body.Result {
		if r.Problem == nil {
			continue
		}
		subs = append(subs, domain.Submission{
			ContestID: r.Problem.ContestID,
			Index:     r.Problem.Index,
			Verdict:   r.Verdict,
		})
	}

	return subs, nil
}

func (a *CodeforcesAPI) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	res, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("codeforces request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("codeforces returned status %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("codeforces response decode failed: %w", err)
	}

	return nil
}
