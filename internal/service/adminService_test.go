package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
	"github.com/vodninamlyn/wedding-rsvp/internal/validation"
)

func strPtrSvc(s string) *string { return &s }

func attendingSubmission(drink string) entity.RsvpSubmission {
	return entity.RsvpSubmission{
		AttendeeID:   "a1",
		AttendeeName: "Jana",
		Attending:    "yes",
		DrinkChoice:  strPtrSvc(drink),
	}
}

func validUpdate() *UpdateAttendeeRequest {
	return &UpdateAttendeeRequest{
		Attending:     "yes",
		Accommodation: "roof",
		DrinkChoice:   "vino",
	}
}

func TestUpdateAttendeeValid(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{stats: &entity.RsvpStats{}}
	svc := NewAdminService(repo, cache)

	err := svc.UpdateAttendee(context.Background(), "a1", validUpdate())
	require.NoError(t, err)

	assert.Equal(t, "a1", repo.updatedID)
	require.NotNil(t, repo.updatedParams)
	assert.Equal(t, "yes", repo.updatedParams.Attending)
	require.NotNil(t, repo.updatedParams.DrinkChoice)
	assert.Equal(t, "vino", *repo.updatedParams.DrinkChoice)
	assert.Equal(t, 1, cache.invalidates)
}

func TestUpdateAttendeeInvalidSkipsRepo(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAdminService(repo, nil)

	req := validUpdate()
	req.ChildrenCount = 21

	err := svc.UpdateAttendee(context.Background(), "a1", req)

	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "childrenCount")
	assert.Empty(t, repo.updatedID)
}

func TestUpdateAttendeeClearsCustomDrink(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewAdminService(repo, nil)

	req := validUpdate()
	req.CustomDrink = "Cider"

	err := svc.UpdateAttendee(context.Background(), "a1", req)
	require.NoError(t, err)
	assert.Nil(t, repo.updatedParams.CustomDrink)
}

func TestUpdateAttendeeNotFound(t *testing.T) {
	repo := &fakeRepo{updateErr: entity.ErrRsvpNotFound}
	svc := NewAdminService(repo, nil)

	err := svc.UpdateAttendee(context.Background(), "missing", validUpdate())
	assert.ErrorIs(t, err, entity.ErrRsvpNotFound)
}

func TestDeleteGroupRequiresConfirmation(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{}
	svc := NewAdminService(repo, cache)

	err := svc.DeleteGroup(context.Background(), "p1", false)
	assert.ErrorIs(t, err, entity.ErrConfirmationNeeded)
	assert.Empty(t, repo.deletedID)
	assert.Zero(t, cache.invalidates)
}

func TestDeleteGroupConfirmed(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{stats: &entity.RsvpStats{}}
	svc := NewAdminService(repo, cache)

	err := svc.DeleteGroup(context.Background(), "p1", true)
	require.NoError(t, err)
	assert.Equal(t, "p1", repo.deletedID)
	assert.Equal(t, 1, cache.invalidates)
}

func TestDeleteGroupNotPrimary(t *testing.T) {
	repo := &fakeRepo{deleteErr: entity.ErrNotPrimary}
	svc := NewAdminService(repo, nil)

	err := svc.DeleteGroup(context.Background(), "a2", true)
	assert.ErrorIs(t, err, entity.ErrNotPrimary)
}

func TestStatsCacheHitSkipsRepo(t *testing.T) {
	cached := &entity.RsvpStats{TotalAttending: 7}
	repo := &fakeRepo{}
	svc := NewAdminService(repo, &fakeCache{stats: cached})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalAttending)
	assert.Zero(t, repo.listCalls)
}

func TestStatsCacheMissComputesAndStores(t *testing.T) {
	repo := &fakeRepo{submissions: []entity.RsvpSubmission{
		attendingSubmission("pivo"),
		attendingSubmission("pivo"),
	}}
	cache := &fakeCache{}
	svc := NewAdminService(repo, cache)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAttending)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 1, cache.sets)
}

func TestStatsWithoutCache(t *testing.T) {
	repo := &fakeRepo{submissions: []entity.RsvpSubmission{attendingSubmission("vino")}}
	svc := NewAdminService(repo, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAttending)
}

func TestListError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("timeout")}
	svc := NewAdminService(repo, nil)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
