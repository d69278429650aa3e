package database

import (
	"context"
	"testing"
	"time"

	"fms-app/events"
	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/notify"
	"fms-app/repositories"
	"fms-app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoBookings(t *testing.T) {
	svc := services.NewBookingService(repositories.NewMemoryBookingRepository(), cargo.DefaultCalculator, events.NopPublisher{}, notify.NopMailer{})
	svc.Now = func() time.Time { return time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	require.NoError(t, SeedDemoBookings(ctx, svc))
	all, err := svc.Search(ctx, services.ListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	statuses := map[booking.Status]int{}
	for _, b := range all {
		statuses[b.Status]++
	}
	assert.Equal(t, 1, statuses[booking.StatusConfirmed])
	assert.Equal(t, 1, statuses[booking.StatusRequested])
	assert.Equal(t, 2, statuses[booking.StatusDraft])

	require.NoError(t, SeedDemoBookings(ctx, svc))
	all, err = svc.Search(ctx, services.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
