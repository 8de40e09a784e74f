package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatgrids/internal/dto"
	"goatgrids/internal/model"
	"goatgrids/internal/repository"
)

func newTravelService(t *testing.T) (TravelService, repository.TravelPostRepository, repository.MemberRepository) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, repository.EnsureDataFiles(dir))
	posts := repository.NewTravelPostRepository(dir)
	members := repository.NewMemberRepository(dir)
	return NewTravelService(posts, members), posts, members
}

func seedMember(t *testing.T, members repository.MemberRepository, id, name string) {
	t.Helper()
	require.NoError(t, members.Create(&model.Member{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: name,
	}))
}

func TestTravelService_createValidation(t *testing.T) {
	svc, _, _ := newTravelService(t)

	tests := []struct {
		name        string
		description string
		photos      []string
		location    model.Location
	}{
		{"no_photos", "a trip", nil, model.Location{Lat: 1, Lng: 1}},
		{"no_description", "", []string{"uploads/travels/a.jpg"}, model.Location{Lat: 1, Lng: 1}},
		{"no_location", "a trip", []string{"uploads/travels/a.jpg"}, model.Location{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := svc.Create("m1", testCase.description, testCase.photos, testCase.location)
			var validation *ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestTravelService_updateByNonOwnerIsForbidden(t *testing.T) {
	svc, posts, members := newTravelService(t)
	seedMember(t, members, "owner", "Owner")
	seedMember(t, members, "intruder", "Intruder")

	created, err := svc.Create("owner", "sunset at the point", []string{"uploads/travels/a.jpg"},
		model.Location{Lat: -33.9, Lng: 18.4, PlaceName: "Cape Point"})
	require.NoError(t, err)

	_, err = svc.Update("intruder", created.ID, &dto.UpdateTravelPostRequest{Description: "hijacked"})
	assert.ErrorIs(t, err, ErrNotOwner)

	// post unchanged
	stored, err := posts.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "sunset at the point", stored.Description)

	_, err = svc.Delete("intruder", created.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestTravelService_ownerCanUpdate(t *testing.T) {
	svc, _, members := newTravelService(t)
	seedMember(t, members, "owner", "Owner")

	created, err := svc.Create("owner", "original", []string{"uploads/travels/a.jpg"},
		model.Location{Lat: -33.9, Lng: 18.4})
	require.NoError(t, err)

	lat, lng := -29.85, 31.02
	updated, err := svc.Update("owner", created.ID, &dto.UpdateTravelPostRequest{
		Description: "moved to durban",
		Lat:         &lat,
		Lng:         &lng,
		PlaceName:   "Durban",
	})
	require.NoError(t, err)
	assert.Equal(t, "moved to durban", updated.Description)
	assert.Equal(t, lat, updated.Location.Lat)
	assert.Equal(t, "Durban", updated.Location.PlaceName)
}

func TestTravelService_feedNewestFirstWithAuthors(t *testing.T) {
	svc, _, members := newTravelService(t)
	seedMember(t, members, "m1", "Thandi")

	older, err := svc.Create("m1", "first trip", []string{"uploads/travels/a.jpg"},
		model.Location{Lat: 1, Lng: 1})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	newer, err := svc.Create("m1", "second trip", []string{"uploads/travels/b.jpg"},
		model.Location{Lat: 2, Lng: 2})
	require.NoError(t, err)

	feed, err := svc.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, newer.ID, feed[0].ID)
	assert.Equal(t, older.ID, feed[1].ID)

	require.NotNil(t, feed[0].Member)
	assert.Equal(t, "Thandi", feed[0].Member.DisplayName)
}

func TestTravelService_feedToleratesMissingAuthor(t *testing.T) {
	svc, posts, _ := newTravelService(t)

	require.NoError(t, posts.Create(&model.TravelPost{
		ID:          "orphan",
		MemberID:    "gone",
		Description: "author deleted",
		Photos:      []string{"uploads/travels/x.jpg"},
		Location:    model.Location{Lat: 1, Lng: 1},
		CreatedAt:   time.Now().UTC(),
	}))

	feed, err := svc.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Nil(t, feed[0].Member)
}

func TestTravelService_mapPinsSkipUnlocated(t *testing.T) {
	svc, posts, members := newTravelService(t)
	seedMember(t, members, "m1", "Thandi")

	require.NoError(t, posts.Create(&model.TravelPost{
		ID: "located", MemberID: "m1",
		Photos:   []string{"uploads/travels/a.jpg"},
		Location: model.Location{Lat: -33.9, Lng: 18.4},
	}))
	require.NoError(t, posts.Create(&model.TravelPost{
		ID: "unlocated", MemberID: "m1",
		Photos: []string{"uploads/travels/b.jpg"},
	}))

	pins, err := svc.MapPins()
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, "located", pins[0].ID)
	assert.Equal(t, "uploads/travels/a.jpg", pins[0].Thumbnail)
	assert.Equal(t, "Thandi", pins[0].MemberName)
}
