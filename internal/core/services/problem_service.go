package services

import (
	"context"

	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
)

type ProblemService struct {
	repo domain.ProblemRepository
}

func NewProblemService(repo domain.ProblemRepository) *ProblemService {
	return &ProblemService{
		repo: repo,
	}
}

type CreateProblemInput struct {
	UserID     string
	Title      string
	Link       string
	Topic      string
	Difficulty string
	Status     string
}

func (s *ProblemService) Create(ctx context.Context, input CreateProblemInput) (*domain.Problem, error) {
	problem, err := domain.NewProblem(input.UserID, input.Title, input.Link, input.Topic, input.Difficulty, input.Status)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, problem); err != nil {
		return nil, err
	}

	return problem, nil
}

func (s *ProblemService) ListByUserID(ctx context.Context, userID string) ([]*domain.Problem, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *ProblemService) ChangeStatus(ctx context.Context, id, userID, status string) (*domain.Problem, error) {
	problem, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if problem.UserID != userID {
		return nil, domain.ErrProblemNotFound
	}

	if err := problem.ChangeStatus(status); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, problem); err != nil {
		return nil, err
	}

	return problem, nil
}
