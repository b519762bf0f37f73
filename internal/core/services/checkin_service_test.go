package services

import (
	"context"
	"testing"

	"leadtrack/internal/adapters/persistence/models"
	"leadtrack/internal/adapters/persistence/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCheckInService_CheckInAndOut(t *testing.T) {
	db := newTestDB(t)
	service := NewCheckInService(repositories.NewCheckInRepository(db))
	ctx := context.Background()

	employee := seedEmployee(t, db, "E100", "secret123", true)

	t.Run("no active check-in yet", func(t *testing.T) {
		active, err := service.ActiveCheckIn(ctx, employee.ID)
		require.NoError(t, err)
		require.Nil(t, active)
	})

	lat := decimal.NewFromFloat(18.5204)
	lng := decimal.NewFromFloat(73.8567)
	checkIn, err := service.CheckIn(ctx, employee.ID, &CheckInInput{
		Location:  "Branch office",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	require.False(t, checkIn.CheckInTime.IsZero(), "check-in time is stamped server-side")
	require.Nil(t, checkIn.CheckOutTime)

	t.Run("active check-in is visible", func(t *testing.T) {
		active, err := service.ActiveCheckIn(ctx, employee.ID)
		require.NoError(t, err)
		require.NotNil(t, active)
		require.Equal(t, checkIn.ID, active.ID)
	})

	t.Run("check-out closes it", func(t *testing.T) {
		closed, err := service.CheckOut(ctx, checkIn.ID)
		require.NoError(t, err)
		require.NotNil(t, closed.CheckOutTime)

		active, err := service.ActiveCheckIn(ctx, employee.ID)
		require.NoError(t, err)
		require.Nil(t, active)
	})

	t.Run("check-out on unknown id", func(t *testing.T) {
		_, err := service.CheckOut(ctx, "does-not-exist")
		require.ErrorIs(t, err, ErrCheckInNotFound)
	})
}

func TestCheckInService_SecondCheckInIsNotBlocked(t *testing.T) {
	db := newTestDB(t)
	service := NewCheckInService(repositories.NewCheckInRepository(db))
	ctx := context.Background()

	employee := seedEmployee(t, db, "E100", "secret123", true)

	_, err := service.CheckIn(ctx, employee.ID, &CheckInInput{Location: "Branch office"})
	require.NoError(t, err)

	// A second check-in while the first is still open goes through;
	// callers are expected to look up the active check-in first
	_, err = service.CheckIn(ctx, employee.ID, &CheckInInput{Location: "Client site"})
	require.NoError(t, err)

	var open int64
	require.NoError(t, db.Model(&models.CheckIn{}).
		Where("check_out_time IS NULL").Count(&open).Error)
	require.Equal(t, int64(2), open)
}
