package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dhnguyen/podcast-tracker/models"
	"github.com/dhnguyen/podcast-tracker/services"
)

func TestGuestCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGuestService(db)

	created, err := svc.Create(services.CreateGuestInput{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Twitter: "@janesmith",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane Smith", got.Name)
	require.Equal(t, "jane@example.com", got.Email)
	require.Empty(t, got.Appearances)

	_, err = svc.Get(uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestGuestListSearchAndPagination(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGuestService(db)

	for _, name := range []string{"Jane Smith", "Bob Johnson", "Janet Leigh"} {
		_, err := svc.Create(services.CreateGuestInput{Name: name})
		require.NoError(t, err)
	}

	// Case-insensitive substring match on the name.
	page, err := svc.List("jan", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	for _, g := range page.Data {
		require.Contains(t, []string{"Jane Smith", "Janet Leigh"}, g.Name)
	}

	// Pagination invariant: len(data) <= limit, totalPages = ceil(total/limit).
	page, err = svc.List("jan", 1, 1)
	require.NoError(t, err)
	require.LessOrEqual(t, len(page.Data), 1)
	require.EqualValues(t, 2, page.Total)
	require.Equal(t, 2, page.TotalPages)

	page, err = svc.List("", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 3, page.Total)
	require.Equal(t, 1, page.TotalPages)
}

func TestGuestListAppearanceCounts(t *testing.T) {
	db := newTestDB(t)
	guestSvc := services.NewGuestService(db)
	episodeSvc := services.NewEpisodeService(db)

	guest, err := guestSvc.Create(services.CreateGuestInput{Name: "Alice Chen"})
	require.NoError(t, err)

	for _, title := range []string{"Ep1", "Ep2"} {
		ep, err := episodeSvc.Create(services.CreateEpisodeInput{Title: title})
		require.NoError(t, err)
		_, err = episodeSvc.AssignGuest(ep.ID, services.AssignGuestInput{GuestID: guest.ID})
		require.NoError(t, err)
	}

	page, err := guestSvc.List("", 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.EqualValues(t, 2, page.Data[0].AppearanceCount)
}

func TestGuestUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewGuestService(db)

	created, err := svc.Create(services.CreateGuestInput{
		Name:  "Bob Johnson",
		Email: "bob@example.com",
	})
	require.NoError(t, err)

	newBio := "Bestselling author."
	updated, err := svc.Update(created.ID, services.UpdateGuestInput{Bio: &newBio})
	require.NoError(t, err)
	require.Equal(t, newBio, updated.Bio)
	// Untouched fields survive a partial update.
	require.Equal(t, "Bob Johnson", updated.Name)
	require.Equal(t, "bob@example.com", updated.Email)

	// A pointer to the empty string clears the field.
	empty := ""
	updated, err = svc.Update(created.ID, services.UpdateGuestInput{Email: &empty})
	require.NoError(t, err)
	require.Equal(t, "", updated.Email)

	_, err = svc.Update(uuid.New(), services.UpdateGuestInput{Bio: &newBio})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestGuestDeleteCascadesAssignments(t *testing.T) {
	db := newTestDB(t)
	guestSvc := services.NewGuestService(db)
	episodeSvc := services.NewEpisodeService(db)

	guest, err := guestSvc.Create(services.CreateGuestInput{Name: "Jane Smith"})
	require.NoError(t, err)
	episode, err := episodeSvc.Create(services.CreateEpisodeInput{Title: "Ep1"})
	require.NoError(t, err)
	_, err = episodeSvc.AssignGuest(episode.ID, services.AssignGuestInput{GuestID: guest.ID})
	require.NoError(t, err)

	require.NoError(t, guestSvc.Delete(guest.ID))

	var count int64
	require.NoError(t, db.Model(&models.EpisodeGuest{}).Where("guest_id = ?", guest.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)

	// The episode itself survives.
	got, err := episodeSvc.Get(episode.ID)
	require.NoError(t, err)
	require.Empty(t, got.Guests)

	require.ErrorIs(t, guestSvc.Delete(guest.ID), services.ErrNotFound)
}
