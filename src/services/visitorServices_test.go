package services

import (
	"testing"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitorService(t *testing.T) *VisitorService {
	t.Helper()
	return NewVisitorService(setupTestDB(t))
}

func TestTrackMintsSessionID(t *testing.T) {
	service := newVisitorService(t)

	visitor, err := service.Track(models.TrackVisitorRequest{}, "203.0.113.7")
	require.NoError(t, err)
	assert.NotEmpty(t, visitor.SessionID)
	assert.Equal(t, "203.0.113.7", visitor.IPAddress)

	other, err := service.Track(models.TrackVisitorRequest{}, "203.0.113.7")
	require.NoError(t, err)
	assert.NotEqual(t, visitor.SessionID, other.SessionID)

	count, err := service.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTrackReturningSessionCountsOnce(t *testing.T) {
	service := newVisitorService(t)

	x, y := 46.68, 24.71
	first, err := service.Track(models.TrackVisitorRequest{SessionID: "abc-123"}, "203.0.113.7")
	require.NoError(t, err)

	second, err := service.Track(models.TrackVisitorRequest{
		SessionID: "abc-123",
		X:         &x,
		Y:         &y,
	}, "198.51.100.9")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "198.51.100.9", second.IPAddress)
	require.NotNil(t, second.X)
	assert.Equal(t, 46.68, *second.X)
	assert.False(t, second.VisitAt.Before(first.VisitAt))

	count, err := service.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTrackPrefersClientReportedIP(t *testing.T) {
	service := newVisitorService(t)

	visitor, err := service.Track(models.TrackVisitorRequest{IPAddress: "10.0.0.5"}, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", visitor.IPAddress)
}

func TestByCountry(t *testing.T) {
	service := newVisitorService(t)

	saudi := models.CountryModel{CountryCode: "SA", CountryName: "Saudi Arabia"}
	require.NoError(t, service.db.Create(&saudi).Error)
	egypt := models.CountryModel{CountryCode: "EG", CountryName: "Egypt"}
	require.NoError(t, service.db.Create(&egypt).Error)

	for i := 0; i < 3; i++ {
		_, err := service.Track(models.TrackVisitorRequest{CountryID: &saudi.ID}, "203.0.113.7")
		require.NoError(t, err)
	}
	_, err := service.Track(models.TrackVisitorRequest{CountryID: &egypt.ID}, "203.0.113.8")
	require.NoError(t, err)
	_, err = service.Track(models.TrackVisitorRequest{}, "203.0.113.9")
	require.NoError(t, err)

	rows, err := service.ByCountry()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Saudi Arabia", rows[0].CountryName)
	assert.Equal(t, int64(3), rows[0].Count)

	// Visitors without a resolved country still show up as one bucket.
	var unknown *CountryStat
	for i := range rows {
		if rows[i].CountryID == nil {
			unknown = &rows[i]
		}
	}
	require.NotNil(t, unknown)
	assert.Equal(t, int64(1), unknown.Count)
}
