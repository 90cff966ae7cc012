package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vodninamlyn/wedding-rsvp/config"
	repository "github.com/vodninamlyn/wedding-rsvp/internal/database/postgres"
	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
	"github.com/vodninamlyn/wedding-rsvp/internal/pkg/countdown"
	"github.com/vodninamlyn/wedding-rsvp/internal/pkg/names"
	"github.com/vodninamlyn/wedding-rsvp/internal/validation"
	"github.com/vodninamlyn/wedding-rsvp/pkg/telegram"
)

// successIllustrations is the fixed set the thank-you screen picks from.
var successIllustrations = []string{"heart", "rings", "flowers", "doves"}

const thankYouMessage = "Děkujeme za potvrzení!"

type rsvpService struct {
	repo        repository.RsvpRepository
	cache       StatsCache
	telegramBot *telegram.Bot
	cfg         *config.Config
	weddingDate time.Time
}

func NewRsvpService(
	repo repository.RsvpRepository,
	cache StatsCache,
	telegramBot *telegram.Bot,
	cfg *config.Config,
) (RsvpService, error) {
	weddingDate, err := time.Parse("2006-01-02T15:04", cfg.Wedding.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid wedding date %q: %w", cfg.Wedding.Date, err)
	}

	return &rsvpService{
		repo:        repo,
		cache:       cache,
		telegramBot: telegramBot,
		cfg:         cfg,
		weddingDate: weddingDate,
	}, nil
}

// Submit sanitizes the submitted names, validates the whole form, inserts
// the group through the submit_rsvp function and reports the success-screen
// payload. Validation failures come back as *validation.Error and are never
// logged as failures; anything else is logged and propagated.
func (s *rsvpService) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	list := names.NewList(s.cfg.Rsvp.MaxNames, s.cfg.Rsvp.MaxNameLength)
	for _, raw := range req.Names {
		// Duplicates, empties and over-limit entries are skipped the same
		// way the paste path of the chip input skips them.
		_, _ = list.Commit(raw)
	}

	form := validation.Normalize(validation.Form{
		Names:               list.Names(),
		Attending:           req.Attending,
		Accommodation:       req.Accommodation,
		DrinkChoice:         req.DrinkChoice,
		CustomDrink:         req.CustomDrink,
		DietaryRestrictions: req.DietaryRestrictions,
		ChildrenCount:       validation.ClampCount(req.ChildrenCount),
		PetsCount:           validation.ClampCount(req.PetsCount),
		Message:             req.Message,
	})

	if err := validation.Check(form, validation.ModePublic); err != nil {
		return nil, err
	}

	params := &entity.SubmitRsvpParams{
		Names:               form.Names,
		Attending:           form.Attending,
		Accommodation:       optional(form.Accommodation),
		DrinkChoice:         optional(form.DrinkChoice),
		CustomDrink:         optional(form.CustomDrink),
		DietaryRestrictions: optional(form.DietaryRestrictions),
		ChildrenCount:       form.ChildrenCount,
		PetsCount:           form.PetsCount,
		Message:             optional(form.Message),
	}

	primaryID, err := s.repo.Submit(ctx, params)
	if err != nil {
		logrus.Errorf("Failed to submit rsvp: %v", err)
		return nil, fmt.Errorf("failed to submit rsvp: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	logrus.WithFields(logrus.Fields{
		"primary_id": primaryID,
		"attending":  form.Attending,
		"guests":     len(form.Names),
	}).Info("RSVP submitted")

	s.notifyCouple(ctx, form.Names, form.Attending)

	return &SubmitResult{
		PrimaryID:    primaryID,
		Names:        form.Names,
		Illustration: successIllustrations[rand.Intn(len(successIllustrations))],
		ThankYou:     thankYouMessage,
	}, nil
}

// notifyCouple is best effort: a failed Telegram call is logged, never
// surfaced to the guest.
func (s *rsvpService) notifyCouple(ctx context.Context, guestNames []string, attending string) {
	if s.telegramBot == nil || !s.cfg.Telegram.Enabled {
		return
	}

	msg := telegram.NewRsvpMessage(guestNames, attending)
	if err := s.telegramBot.SendMessage(ctx, s.cfg.Telegram.ChatID, msg); err != nil {
		logrus.Warnf("Failed to send Telegram notification: %v", err)
	}
}

func (s *rsvpService) WeddingInfo() *entity.WeddingInfo {
	w := s.cfg.Wedding
	return &entity.WeddingInfo{
		Couple: entity.Couple{
			Bride:   w.Bride,
			Groom:   w.Groom,
			Heading: w.Heading,
		},
		Date:        entity.CustomTime{Time: s.weddingDate},
		DateDisplay: w.DateDisplay,
		Venue: entity.Venue{
			Name: w.VenueName,
			City: w.VenueCity,
			Zip:  w.VenueZip,
			Web:  w.VenueWeb,
		},
		RsvpDeadline: w.RsvpDeadline,
		Contact:      entity.Contact{Email: w.ContactEmail},
	}
}

func (s *rsvpService) Countdown(now time.Time) *CountdownResult {
	remaining, isPast := countdown.Remaining(s.weddingDate, now)
	return &CountdownResult{
		Target:    entity.CustomTime{Time: s.weddingDate},
		Remaining: remaining,
		IsPast:    isPast,
	}
}

// optional maps an empty form value to NULL for storage.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
