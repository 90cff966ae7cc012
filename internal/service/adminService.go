package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	repository "github.com/vodninamlyn/wedding-rsvp/internal/database/postgres"
	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
	"github.com/vodninamlyn/wedding-rsvp/internal/validation"
)

type adminService struct {
	repo  repository.RsvpRepository
	cache StatsCache
}

func NewAdminService(repo repository.RsvpRepository, cache StatsCache) AdminService {
	return &adminService{repo: repo, cache: cache}
}

func (s *adminService) List(ctx context.Context) ([]entity.RsvpSubmission, error) {
	submissions, err := s.repo.GetAllSubmissions(ctx)
	if err != nil {
		logrus.Errorf("Failed to list rsvp submissions: %v", err)
		return nil, fmt.Errorf("failed to list rsvp submissions: %w", err)
	}
	return submissions, nil
}

// UpdateAttendee validates with the admin-edit rule subset, normalizes the
// custom drink and applies a partial update to the base table. The row list
// is not patched in place; the dashboard re-fetches after every mutation.
func (s *adminService) UpdateAttendee(ctx context.Context, attendeeID string, req *UpdateAttendeeRequest) error {
	form := validation.Normalize(validation.Form{
		Attending:           req.Attending,
		Accommodation:       req.Accommodation,
		DrinkChoice:         req.DrinkChoice,
		CustomDrink:         req.CustomDrink,
		DietaryRestrictions: req.DietaryRestrictions,
		ChildrenCount:       req.ChildrenCount,
		PetsCount:           req.PetsCount,
	})

	if err := validation.Check(form, validation.ModeAdminEdit); err != nil {
		return err
	}

	params := &entity.UpdateAttendeeParams{
		Attending:           form.Attending,
		Accommodation:       optional(form.Accommodation),
		DrinkChoice:         optional(form.DrinkChoice),
		CustomDrink:         optional(form.CustomDrink),
		DietaryRestrictions: optional(form.DietaryRestrictions),
		ChildrenCount:       form.ChildrenCount,
		PetsCount:           form.PetsCount,
	}

	if err := s.repo.UpdateAttendee(ctx, attendeeID, params); err != nil {
		if err == entity.ErrRsvpNotFound {
			return err
		}
		logrus.Errorf("Failed to update attendee %s: %v", attendeeID, err)
		return fmt.Errorf("failed to update attendee: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	logrus.WithField("attendee_id", attendeeID).Info("RSVP updated")
	return nil
}

// DeleteGroup refuses to touch the database until the caller has confirmed
// the destructive action. The cascade to sibling rows is the database's
// responsibility.
func (s *adminService) DeleteGroup(ctx context.Context, primaryID string, confirmed bool) error {
	if !confirmed {
		return entity.ErrConfirmationNeeded
	}

	if err := s.repo.DeleteGroup(ctx, primaryID); err != nil {
		if err == entity.ErrRsvpNotFound || err == entity.ErrNotPrimary {
			return err
		}
		logrus.Errorf("Failed to delete rsvp group %s: %v", primaryID, err)
		return fmt.Errorf("failed to delete rsvp group: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	logrus.WithField("primary_id", primaryID).Info("RSVP group deleted")
	return nil
}

// Stats returns the cached aggregates when fresh, otherwise recomputes from
// the attendee list.
func (s *adminService) Stats(ctx context.Context) (*entity.RsvpStats, error) {
	if s.cache != nil {
		if stats, ok := s.cache.Get(ctx); ok {
			return stats, nil
		}
	}
	return s.RefreshStats(ctx)
}

func (s *adminService) RefreshStats(ctx context.Context) (*entity.RsvpStats, error) {
	submissions, err := s.repo.GetAllSubmissions(ctx)
	if err != nil {
		logrus.Errorf("Failed to compute rsvp stats: %v", err)
		return nil, fmt.Errorf("failed to compute rsvp stats: %w", err)
	}

	stats := entity.ComputeStats(submissions)
	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}
	return stats, nil
}
