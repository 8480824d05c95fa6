package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/models"
)

func (a *App) Groups(ctx context.Context) error {
	groups, err := a.workouts.Groups(ctx)
	if err != nil {
		a.notify(ctx, "groups", err, msgGroupsFailed)
		return err
	}

	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No muscle groups.")
		return nil
	}
	for _, g := range groups {
		fmt.Fprintf(a.out, "  %s\n", g)
	}
	return nil
}

func (a *App) Exercises(ctx context.Context, group string) error {
	list, err := a.workouts.ExercisesByGroup(ctx, group)
	if err != nil {
		a.notify(ctx, "exercises", err, msgListFailed)
		return err
	}

	fmt.Fprintf(a.out, "Exercises (%d)\n", len(list))
	for _, e := range list {
		fmt.Fprintf(a.out, "  %-6s %-30s %s x %s\n", e.ID, e.Name, e.Series, e.Repetitions)
	}
	return nil
}

func (a *App) Exercise(ctx context.Context, id string) error {
	e, err := a.workouts.Exercise(ctx, models.ID(id))
	if err != nil {
		a.notify(ctx, "exercise", err, msgExerciseFailed)
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", e.Name, e.Group)
	fmt.Fprintf(a.out, "  Series:      %s\n", e.Series)
	fmt.Fprintf(a.out, "  Repetitions: %s\n", e.Repetitions)
	if e.Demo != "" {
		fmt.Fprintf(a.out, "  Demo:        %s\n", a.workouts.DemoURL(*e))
	}
	if e.Thumb != "" {
		fmt.Fprintf(a.out, "  Thumb:       %s\n", a.workouts.ThumbURL(*e))
	}
	return nil
}

// Done records the exercise in the history.
func (a *App) Done(ctx context.Context, id string) error {
	if err := a.workouts.MarkCompleted(ctx, models.ID(id)); err != nil {
		a.notify(ctx, "done", err, msgDoneFailed)
		return err
	}
	fmt.Fprintln(a.out, "Congratulations! Exercise recorded.")
	return nil
}

func (a *App) History(ctx context.Context) error {
	days, err := a.workouts.History(ctx)
	if err != nil {
		a.notify(ctx, "history", err, msgHistoryFailed)
		return err
	}

	if len(days) == 0 {
		fmt.Fprintln(a.out, "No exercises recorded yet. Let's train today?")
		return nil
	}
	for _, d := range days {
		fmt.Fprintln(a.out, d.Title)
		for _, r := range d.Data {
			fmt.Fprintf(a.out, "  %s  %s (%s)\n", r.Hour, r.Name, r.Group)
		}
	}
	return nil
}
