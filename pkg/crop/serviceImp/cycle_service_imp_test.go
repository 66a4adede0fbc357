package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/crop/schedule"
	"krishisakhi/pkg/crop/service"
)

type fakeRepo struct {
	cycles  map[string]*entities.CropCycle
	failAll bool
}

var errStore = errors.New("store unavailable")

func newFakeRepo() *fakeRepo { return &fakeRepo{cycles: map[string]*entities.CropCycle{}} }

func (r *fakeRepo) Create(c *entities.CropCycle) error {
	if r.failAll {
		return errStore
	}
	cp := *c
	r.cycles[c.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(id, phone string) (*entities.CropCycle, error) {
	if r.failAll {
		return nil, errStore
	}
	c, ok := r.cycles[id]
	if !ok || c.UserPhone != phone {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) ListByUser(phone string) ([]entities.CropCycle, error) {
	if r.failAll {
		return nil, errStore
	}
	var out []entities.CropCycle
	for _, c := range r.cycles {
		if c.UserPhone == phone {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(c *entities.CropCycle) error {
	if r.failAll {
		return errStore
	}
	cp := *c
	r.cycles[c.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(id, phone string) error {
	if r.failAll {
		return errStore
	}
	c, ok := r.cycles[id]
	if !ok || c.UserPhone != phone {
		return gorm.ErrRecordNotFound
	}
	delete(r.cycles, id)
	return nil
}

var fixedNow = time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func wheatRec() entities.CropRecommendation {
	return entities.CropRecommendation{
		CropName:         "Wheat",
		SuitabilityScore: 88,
		Reason:           "Cool season and loam soil favour wheat now.",
		DurationDays:     6,
		Timeline: []entities.TimelineEvent{
			{Day: 1, Stage: "Sowing", Activity: "Sow seeds", Time: "08:00 AM"},
			{Day: 3, EndDay: 5, Activity: "Water", Time: "07:00 AM"},
		},
	}
}

func TestStartAssignsIdentityAndClock(t *testing.T) {
	svc := NewCycleService(newFakeRepo(), fixedClock)
	c, err := svc.Start("9000000001", wheatRec())
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, fixedNow, c.StartDate)
	assert.Empty(t, c.Progress)
}

func TestStartRejectsDuplicateCrop(t *testing.T) {
	svc := NewCycleService(newFakeRepo(), fixedClock)
	_, err := svc.Start("9000000001", wheatRec())
	require.NoError(t, err)

	_, err = svc.Start("9000000001", wheatRec())
	assert.ErrorIs(t, err, service.ErrCycleExists)

	// A different user may run the same crop.
	_, err = svc.Start("9000000002", wheatRec())
	assert.NoError(t, err)
}

func TestStartValidatesTemplate(t *testing.T) {
	svc := NewCycleService(newFakeRepo(), fixedClock)

	bad := wheatRec()
	bad.CropName = "  "
	_, err := svc.Start("9000000001", bad)
	assert.Error(t, err)

	bad = wheatRec()
	bad.Timeline[1].EndDay = 2 // before its own start day
	_, err = svc.Start("9000000001", bad)
	assert.Error(t, err)

	bad = wheatRec()
	bad.Timeline[0].Day = 0
	_, err = svc.Start("9000000001", bad)
	assert.Error(t, err)
}

func TestToggleTaskPersistsProgress(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCycleService(repo, fixedClock)
	c, err := svc.Start("9000000001", wheatRec())
	require.NoError(t, err)

	c, err = svc.ToggleTask("9000000001", c.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, c.Progress, 1)
	assert.Equal(t, fixedNow, c.Progress[0].CompletedAt)

	stored, err := svc.Get("9000000001", c.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Progress, 1)
}

func TestToggleTaskOutOfOrder(t *testing.T) {
	svc := NewCycleService(newFakeRepo(), fixedClock)
	c, err := svc.Start("9000000001", wheatRec())
	require.NoError(t, err)

	_, err = svc.ToggleTask("9000000001", c.ID, 3, 0)
	assert.ErrorIs(t, err, schedule.ErrPreviousIncomplete)

	stored, err := svc.Get("9000000001", c.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Progress, "rejected toggle must not persist anything")
}

func TestDeleteCycle(t *testing.T) {
	svc := NewCycleService(newFakeRepo(), fixedClock)
	c, err := svc.Start("9000000001", wheatRec())
	require.NoError(t, err)

	require.NoError(t, svc.Delete("9000000001", c.ID))
	assert.ErrorIs(t, svc.Delete("9000000001", c.ID), service.ErrCycleNotFound)
	_, err = svc.Get("9000000001", c.ID)
	assert.ErrorIs(t, err, service.ErrCycleNotFound)
}

func TestStoreFailurePropagates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCycleService(repo, fixedClock)
	c, err := svc.Start("9000000001", wheatRec())
	require.NoError(t, err)

	repo.failAll = true
	_, err = svc.ToggleTask("9000000001", c.ID, 1, 0)
	assert.ErrorIs(t, err, errStore)
}

func TestCalendar(t *testing.T) {
	svc := NewCycleService(newFakeRepo(), fixedClock)
	c, err := svc.Start("9000000001", wheatRec())
	require.NoError(t, err)

	days, err := svc.Calendar("9000000001", c.ID)
	require.NoError(t, err)
	assert.Len(t, days, 6)
}
