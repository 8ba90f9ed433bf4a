package usecase

import (
	"context"

	"taskdeck/internal/reminder"
	"taskdeck/internal/settings"
	"taskdeck/internal/settings/repository"
	"taskdeck/pkg/log"
)

const reminderLeadKey = "reminder_lead_minutes"

// implUseCase is the private implementation of settings.UseCase.
type implUseCase struct {
	repo  repository.Repository
	sched settings.Scheduler
	tasks settings.TaskSource
	l     log.Logger
}

// New creates the settings use case.
func New(repo repository.Repository, sched settings.Scheduler, tasks settings.TaskSource, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, sched: sched, tasks: tasks, l: l}
}

// GetReminderLead returns the effective lead time in minutes, falling back
// to the default when unset, unreadable or non-positive.
func (uc *implUseCase) GetReminderLead(ctx context.Context) (int, error) {
	minutes, ok, err := uc.repo.GetInt(ctx, reminderLeadKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetReminderLead GetInt: %v", err)
		return reminder.DefaultLeadMinutes, nil
	}
	if !ok || minutes <= 0 {
		return reminder.DefaultLeadMinutes, nil
	}
	return minutes, nil
}

// SetReminderLead persists the lead time and reschedules every pending
// reminder against it. Non-positive input normalizes to the default.
func (uc *implUseCase) SetReminderLead(ctx context.Context, minutes int) (int, error) {
	if minutes <= 0 {
		minutes = reminder.DefaultLeadMinutes
	}

	if err := uc.repo.SetInt(ctx, reminderLeadKey, minutes); err != nil {
		// The new lead still applies in memory; durability is best effort.
		uc.l.Errorf(ctx, "uc.SetReminderLead SetInt: %v", err)
	}

	uc.sched.SetLeadMinutes(minutes)

	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetReminderLead List: %v", err)
		return minutes, nil
	}
	uc.sched.Reconcile(tasks)

	return minutes, nil
}
