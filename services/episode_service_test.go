package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dhnguyen/podcast-tracker/models"
	"github.com/dhnguyen/podcast-tracker/services"
)

func TestEpisodeCreateDefaultsToIdea(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEpisodeService(db)

	episode, err := svc.Create(services.CreateEpisodeInput{Title: "Ep1"})
	require.NoError(t, err)
	require.Equal(t, models.StatusIdea, episode.Status)
	require.Nil(t, episode.PublishedAt)

	num := 7
	episode, err = svc.Create(services.CreateEpisodeInput{
		Title:      "Ep7",
		Status:     models.StatusRecording,
		EpisodeNum: &num,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusRecording, episode.Status)
	require.Equal(t, 7, *episode.EpisodeNum)
}

func TestEpisodePublishStampedOnce(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEpisodeService(db)

	episode, err := svc.Create(services.CreateEpisodeInput{Title: "Ep1"})
	require.NoError(t, err)

	published := models.StatusPublished
	updated, err := svc.Update(episode.ID, services.UpdateEpisodeInput{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	first := *updated.PublishedAt

	// Publishing again leaves the timestamp untouched.
	updated, err = svc.Update(episode.ID, services.UpdateEpisodeInput{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	require.True(t, updated.PublishedAt.Equal(first))

	// Leaving PUBLISHED and re-entering keeps the original timestamp too.
	editing := models.StatusEditing
	_, err = svc.Update(episode.ID, services.UpdateEpisodeInput{Status: &editing})
	require.NoError(t, err)
	updated, err = svc.Update(episode.ID, services.UpdateEpisodeInput{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	require.True(t, updated.PublishedAt.Equal(first))
}

func TestEpisodeUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEpisodeService(db)

	episode, err := svc.Create(services.CreateEpisodeInput{Title: "Ep1", Notes: "draft outline"})
	require.NoError(t, err)

	title := "Ep1 (final cut)"
	updated, err := svc.Update(episode.ID, services.UpdateEpisodeInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, "draft outline", updated.Notes)
	require.Equal(t, models.StatusIdea, updated.Status)

	_, err = svc.Update(uuid.New(), services.UpdateEpisodeInput{Title: &title})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestAssignGuestLifecycle(t *testing.T) {
	db := newTestDB(t)
	guestSvc := services.NewGuestService(db)
	episodeSvc := services.NewEpisodeService(db)

	guest, err := guestSvc.Create(services.CreateGuestInput{Name: "Jane Smith"})
	require.NoError(t, err)
	episode, err := episodeSvc.Create(services.CreateEpisodeInput{Title: "Ep1"})
	require.NoError(t, err)

	assignment, err := episodeSvc.AssignGuest(episode.ID, services.AssignGuestInput{GuestID: guest.ID})
	require.NoError(t, err)
	require.Equal(t, "guest", assignment.Role)
	require.NotNil(t, assignment.Guest)
	require.Equal(t, "Jane Smith", assignment.Guest.Name)

	// Same pair again is a conflict, not an update — role is irrelevant.
	_, err = episodeSvc.AssignGuest(episode.ID, services.AssignGuestInput{GuestID: guest.ID, Role: "co-host"})
	require.ErrorIs(t, err, services.ErrConflict)

	require.NoError(t, episodeSvc.RemoveGuest(episode.ID, guest.ID))

	got, err := episodeSvc.Get(episode.ID)
	require.NoError(t, err)
	require.Empty(t, got.Guests)

	// After removal the pair can be assigned again.
	_, err = episodeSvc.AssignGuest(episode.ID, services.AssignGuestInput{GuestID: guest.ID, Role: "co-host"})
	require.NoError(t, err)

	require.NoError(t, episodeSvc.RemoveGuest(episode.ID, guest.ID))
	require.ErrorIs(t, episodeSvc.RemoveGuest(episode.ID, guest.ID), services.ErrNotFound)
}

func TestAssignGuestUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	guestSvc := services.NewGuestService(db)
	episodeSvc := services.NewEpisodeService(db)

	guest, err := guestSvc.Create(services.CreateGuestInput{Name: "Jane Smith"})
	require.NoError(t, err)
	episode, err := episodeSvc.Create(services.CreateEpisodeInput{Title: "Ep1"})
	require.NoError(t, err)

	_, err = episodeSvc.AssignGuest(uuid.New(), services.AssignGuestInput{GuestID: guest.ID})
	require.ErrorIs(t, err, services.ErrNotFound)

	_, err = episodeSvc.AssignGuest(episode.ID, services.AssignGuestInput{GuestID: uuid.New()})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestEpisodeDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	guestSvc := services.NewGuestService(db)
	episodeSvc := services.NewEpisodeService(db)
	assetSvc := services.NewAssetService(db, t.TempDir())

	guest, err := guestSvc.Create(services.CreateGuestInput{Name: "Jane Smith"})
	require.NoError(t, err)
	episode, err := episodeSvc.Create(services.CreateEpisodeInput{Title: "Ep1"})
	require.NoError(t, err)
	_, err = episodeSvc.AssignGuest(episode.ID, services.AssignGuestInput{GuestID: guest.ID})
	require.NoError(t, err)

	asset, err := assetSvc.Create(services.CreateAssetInput{
		Filename:   "cover.png",
		StoredName: "cover-1.png",
		MimeType:   "image/png",
		Size:       10,
		Category:   models.CategoryCoverArt,
		EpisodeID:  &episode.ID,
	})
	require.NoError(t, err)

	require.NoError(t, episodeSvc.Delete(episode.ID))

	var count int64
	require.NoError(t, db.Model(&models.EpisodeGuest{}).Where("episode_id = ?", episode.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)

	// The asset record survives, its episode reference is cleared.
	got, err := assetSvc.Get(asset.ID)
	require.NoError(t, err)
	require.Nil(t, got.EpisodeID)

	require.ErrorIs(t, episodeSvc.Delete(episode.ID), services.ErrNotFound)
}

func TestEpisodeListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEpisodeService(db)
	assetSvc := services.NewAssetService(db, t.TempDir())

	idea, err := svc.Create(services.CreateEpisodeInput{Title: "Morning routines"})
	require.NoError(t, err)
	_, err = svc.Create(services.CreateEpisodeInput{Title: "Evening routines", Status: models.StatusEditing})
	require.NoError(t, err)
	_, err = svc.Create(services.CreateEpisodeInput{Title: "Interview special", Status: models.StatusEditing})
	require.NoError(t, err)

	_, err = assetSvc.Create(services.CreateAssetInput{
		Filename:   "take1.mp3",
		StoredName: "take1-1.mp3",
		MimeType:   "audio/mpeg",
		Size:       100,
		Category:   models.CategoryAudio,
		EpisodeID:  &idea.ID,
	})
	require.NoError(t, err)

	page, err := svc.List("routines", "", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)

	page, err = svc.List("routines", models.StatusEditing, 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, "Evening routines", page.Data[0].Title)

	page, err = svc.List("", "", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 3, page.Total)
	for _, e := range page.Data {
		if e.ID == idea.ID {
			require.EqualValues(t, 1, e.AssetCount)
		} else {
			require.EqualValues(t, 0, e.AssetCount)
		}
	}
}

func TestPipelineGroups(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEpisodeService(db)

	older, err := svc.Create(services.CreateEpisodeInput{Title: "Idea one"})
	require.NoError(t, err)
	_, err = svc.Create(services.CreateEpisodeInput{Title: "Idea two"})
	require.NoError(t, err)
	_, err = svc.Create(services.CreateEpisodeInput{Title: "Done", Status: models.StatusPublished})
	require.NoError(t, err)

	// Touch the older idea so it floats to the top of its group.
	time.Sleep(10 * time.Millisecond)
	notes := "revisited"
	_, err = svc.Update(older.ID, services.UpdateEpisodeInput{Notes: &notes})
	require.NoError(t, err)

	groups, err := svc.Pipeline()
	require.NoError(t, err)
	require.Len(t, groups, len(models.PipelineStatuses))

	total := 0
	for i, group := range groups {
		require.Equal(t, models.PipelineStatuses[i], group.Status)
		require.NotNil(t, group.Episodes)
		require.Equal(t, len(group.Episodes), group.Count)
		total += group.Count
	}
	require.Equal(t, 3, total)

	idea := groups[0]
	require.Equal(t, 2, idea.Count)
	require.Equal(t, "Idea one", idea.Episodes[0].Title)

	published := groups[4]
	require.Equal(t, 1, published.Count)
	require.Equal(t, "Done", published.Episodes[0].Title)
}
