package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/client"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
)

// WorkoutService reads the exercise catalog and records completed
// exercises for the signed-in user.
type WorkoutService struct {
	auth   *AuthService
	client client.Client
}

func NewWorkoutService(auth *AuthService, c client.Client) *WorkoutService {
	return &WorkoutService{auth: auth, client: c}
}

func (s *WorkoutService) Groups(ctx context.Context) ([]string, error) {
	var groups []string
	err := s.auth.WithSession(ctx, func(ctx context.Context) (err error) {
		groups, err = s.client.ListGroups(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (s *WorkoutService) ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := s.auth.WithSession(ctx, func(ctx context.Context) (err error) {
		exercises, err = s.client.ListExercisesByGroup(ctx, group)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list exercises of %q: %w", group, err)
	}
	return exercises, nil
}

func (s *WorkoutService) Exercise(ctx context.Context, id models.ID) (*models.Exercise, error) {
	var e *models.Exercise
	err := s.auth.WithSession(ctx, func(ctx context.Context) (err error) {
		e, err = s.client.GetExercise(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get exercise %s: %w", id, err)
	}
	return e, nil
}

// MarkCompleted records the exercise in the user's history.
func (s *WorkoutService) MarkCompleted(ctx context.Context, id models.ID) error {
	err := s.auth.WithSession(ctx, func(ctx context.Context) error {
		return s.client.RecordHistory(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("mark exercise %s completed: %w", id, err)
	}
	return nil
}

func (s *WorkoutService) History(ctx context.Context) ([]models.HistoryByDay, error) {
	var days []models.HistoryByDay
	err := s.auth.WithSession(ctx, func(ctx context.Context) (err error) {
		days, err = s.client.ListHistory(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return days, nil
}

// ThumbURL and DemoURL locate the exercise images on the backend.
func (s *WorkoutService) ThumbURL(e models.Exercise) string {
	return s.client.AssetURL(client.AssetExerciseThumb, e.Thumb)
}

func (s *WorkoutService) DemoURL(e models.Exercise) string {
	return s.client.AssetURL(client.AssetExerciseDemo, e.Demo)
}
