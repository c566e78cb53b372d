package workflow

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/packet-intake/internal/types"
)

// BatchLocators identify the three controls of one batch kind: the control
// that opens a new item form, the item's input surface, and the save control.
type BatchLocators struct {
	AddButton  string
	Field      string
	SaveButton string
}

// GoalLocators returns the controls for adding care-plan goals.
func GoalLocators() BatchLocators {
	return BatchLocators{AddButton: locFirstGoal, Field: locItemField, SaveButton: locItemSave}
}

// TaskLocators returns the controls for adding care-plan tasks.
func TaskLocators() BatchLocators {
	return BatchLocators{AddButton: locFirstTask, Field: locItemField, SaveButton: locItemSave}
}

// AddTasksAndGoals applies the record's goal and task batches to the open
// care plan. Goals are always processed before tasks: the add-goal affordance
// only exists before any task has been added in the target UI.
func (a *Automation) AddTasksAndGoals(ctx context.Context, rec *types.Record) *types.BatchOutcome {
	outcome := &types.BatchOutcome{}

	if len(rec.Goals) > 0 && a.drv.IsVisible(ctx, locFirstGoal) {
		added, errs := a.ApplyBatch(ctx, "goal", rec.Goals, GoalLocators())
		outcome.GoalsAdded = added
		outcome.Errors = append(outcome.Errors, errs...)
	}

	if len(rec.Tasks) > 0 && a.drv.IsVisible(ctx, locFirstTask) {
		added, errs := a.ApplyBatch(ctx, "task", rec.Tasks, TaskLocators())
		outcome.TasksAdded = added
		outcome.Errors = append(outcome.Errors, errs...)
	}

	return outcome
}

// ApplyBatch applies a homogeneous list of sub-items against the UI. Each
// item runs its full add/fill/save cycle independently: a failure is recorded
// against the item's description and the loop continues with the next item.
func (a *Automation) ApplyBatch(ctx context.Context, kind string, items []types.CareItem, locs BatchLocators) (int, []string) {
	added := 0
	var errs []string

	for _, item := range items {
		if err := a.applyItem(ctx, item.Description, locs); err != nil {
			log.Printf("[workflow] failed to add %s %q: %v", kind, item.Description, err)
			errs = append(errs, fmt.Sprintf("Error adding %s '%s': %v", kind, item.Description, err))
			continue
		}
		added++
	}

	return added, errs
}

// applyItem runs one add/fill/save cycle.
func (a *Automation) applyItem(ctx context.Context, description string, locs BatchLocators) error {
	if err := a.drv.Click(ctx, locs.AddButton); err != nil {
		return err
	}
	if err := a.drv.WaitIdle(ctx); err != nil {
		return err
	}

	if a.drv.IsVisible(ctx, locs.Field) {
		if err := a.drv.Fill(ctx, locs.Field, description); err != nil {
			return err
		}
	}

	if !a.drv.IsVisible(ctx, locs.SaveButton) {
		return fmt.Errorf("save control not visible")
	}
	if err := a.drv.Click(ctx, locs.SaveButton); err != nil {
		return err
	}
	return a.drv.WaitIdle(ctx)
}
