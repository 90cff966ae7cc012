package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vodninamlyn/wedding-rsvp/config"
	"github.com/vodninamlyn/wedding-rsvp/internal/entity"
	"github.com/vodninamlyn/wedding-rsvp/internal/validation"
)

type fakeRepo struct {
	submitParams *entity.SubmitRsvpParams
	submitErr    error

	submissions []entity.RsvpSubmission
	listErr     error
	listCalls   int

	updatedID     string
	updatedParams *entity.UpdateAttendeeParams
	updateErr     error

	deletedID string
	deleteErr error
}

func (f *fakeRepo) Submit(ctx context.Context, params *entity.SubmitRsvpParams) (string, error) {
	f.submitParams = params
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return "6c1f6f3a-0000-0000-0000-000000000001", nil
}

func (f *fakeRepo) GetAllSubmissions(ctx context.Context) ([]entity.RsvpSubmission, error) {
	f.listCalls++
	return f.submissions, f.listErr
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*entity.Rsvp, error) {
	return nil, entity.ErrRsvpNotFound
}

func (f *fakeRepo) UpdateAttendee(ctx context.Context, attendeeID string, params *entity.UpdateAttendeeParams) error {
	f.updatedID = attendeeID
	f.updatedParams = params
	return f.updateErr
}

func (f *fakeRepo) DeleteGroup(ctx context.Context, primaryID string) error {
	f.deletedID = primaryID
	return f.deleteErr
}

type fakeCache struct {
	stats       *entity.RsvpStats
	sets        int
	invalidates int
}

func (f *fakeCache) Get(ctx context.Context) (*entity.RsvpStats, bool) {
	return f.stats, f.stats != nil
}

func (f *fakeCache) Set(ctx context.Context, stats *entity.RsvpStats) {
	f.stats = stats
	f.sets++
}

func (f *fakeCache) Invalidate(ctx context.Context) {
	f.stats = nil
	f.invalidates++
}

func testConfig() *config.Config {
	return &config.Config{
		Rsvp: config.RsvpConfig{
			MaxNames:      10,
			MaxNameLength: 50,
			StatsCacheTTL: time.Minute,
		},
		Wedding: config.WeddingConfig{
			Bride:       "Jana",
			Groom:       "Tom",
			Date:        "2026-04-18T13:00",
			DateDisplay: "18. dubna 2026",
		},
	}
}

func newTestRsvpService(t *testing.T, repo *fakeRepo, cache StatsCache) RsvpService {
	t.Helper()
	svc, err := NewRsvpService(repo, cache, nil, testConfig())
	require.NoError(t, err)
	return svc
}

func validSubmit() *SubmitRequest {
	return &SubmitRequest{
		Names:         []string{"Jana", "Petr"},
		Attending:     "yes",
		Accommodation: "roof",
		DrinkChoice:   "pivo",
	}
}

func TestSubmitValidForm(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{stats: &entity.RsvpStats{}}
	svc := newTestRsvpService(t, repo, cache)

	result, err := svc.Submit(context.Background(), validSubmit())
	require.NoError(t, err)

	assert.NotEmpty(t, result.PrimaryID)
	assert.Equal(t, []string{"Jana", "Petr"}, result.Names)
	assert.Contains(t, []string{"heart", "rings", "flowers", "doves"}, result.Illustration)
	assert.Equal(t, "Děkujeme za potvrzení!", result.ThankYou)

	require.NotNil(t, repo.submitParams)
	assert.Equal(t, []string{"Jana", "Petr"}, repo.submitParams.Names)
	assert.Equal(t, "yes", repo.submitParams.Attending)
	require.NotNil(t, repo.submitParams.Accommodation)
	assert.Equal(t, "roof", *repo.submitParams.Accommodation)

	// every mutation invalidates the stats cache
	assert.Equal(t, 1, cache.invalidates)
}

func TestSubmitValidationErrorSkipsRepo(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestRsvpService(t, repo, nil)

	req := validSubmit()
	req.Attending = ""

	_, err := svc.Submit(context.Background(), req)

	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "attending")
	assert.Nil(t, repo.submitParams)
}

func TestSubmitSanitizesAndDeduplicatesNames(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestRsvpService(t, repo, nil)

	req := validSubmit()
	req.Names = []string{"  Jana  Nováková ", "jana nováková", "Petr", "X"}

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jana Nováková", "Petr"}, repo.submitParams.Names)
}

func TestSubmitClearsCustomDrinkWhenNotOther(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestRsvpService(t, repo, nil)

	req := validSubmit()
	req.DrinkChoice = "pivo"
	req.CustomDrink = "Cider"

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, repo.submitParams.CustomDrink)
}

func TestSubmitMapsEmptyFieldsToNull(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestRsvpService(t, repo, nil)

	req := &SubmitRequest{
		Names:     []string{"Jana"},
		Attending: "no",
	}

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, repo.submitParams.Accommodation)
	assert.Nil(t, repo.submitParams.DrinkChoice)
	assert.Nil(t, repo.submitParams.Message)
}

func TestSubmitClampsCounts(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestRsvpService(t, repo, nil)

	req := validSubmit()
	req.ChildrenCount = 99
	req.PetsCount = -3

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.submitParams.ChildrenCount)
	assert.Equal(t, 0, repo.submitParams.PetsCount)
}

func TestSubmitRepoErrorPropagates(t *testing.T) {
	repo := &fakeRepo{submitErr: errors.New("connection refused")}
	svc := newTestRsvpService(t, repo, nil)

	_, err := svc.Submit(context.Background(), validSubmit())
	require.Error(t, err)

	var validationErr *validation.Error
	assert.False(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWeddingInfo(t *testing.T) {
	svc := newTestRsvpService(t, &fakeRepo{}, nil)

	info := svc.WeddingInfo()
	assert.Equal(t, "Jana", info.Couple.Bride)
	assert.Equal(t, "Tom", info.Couple.Groom)
	assert.Equal(t, "18. dubna 2026", info.DateDisplay)
}

func TestCountdown(t *testing.T) {
	svc := newTestRsvpService(t, &fakeRepo{}, nil)

	before := svc.Countdown(time.Date(2026, 4, 17, 13, 0, 0, 0, time.UTC))
	assert.False(t, before.IsPast)
	assert.Equal(t, 1, before.Remaining.Days)

	after := svc.Countdown(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, after.IsPast)
	assert.Zero(t, after.Remaining.Days)
}
