package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "tm30/infras/otel/mocks"
	roomkeyMocks "tm30/internal/domains/roomkey/repository/mocks"
	"tm30/internal/domains/schedule/model"
	scheduleMocks "tm30/internal/domains/schedule/repository/mocks"
	"tm30/internal/domains/schedule/service"
	cacheMocks "tm30/shared/cache/mocks"
)

type scheduleFixture struct {
	repo     *scheduleMocks.MockScheduleRepository
	roomRepo *roomkeyMocks.MockRoomKeyRepository
	cache    *cacheMocks.MockRedisCache
	svc      service.ScheduleService
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &scheduleFixture{
		repo:     scheduleMocks.NewMockScheduleRepository(ctrl),
		roomRepo: roomkeyMocks.NewMockRoomKeyRepository(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.roomRepo, f.cache, otelMocks.NewOtel())

	return f
}

func dueSchedule(hotelID, roomNumber string) model.Schedule {
	return model.Schedule{
		HotelID:      hotelID,
		RoomNumber:   roomNumber,
		ReEnableDate: time.Now().Add(-time.Hour),
		CreatedAt:    time.Now().Add(-48 * time.Hour),
	}
}

func TestScheduleService_ProcessDue(t *testing.T) {
	t.Run("re-enables every due room", func(t *testing.T) {
		f := newScheduleFixture(t)

		invalidated := make(chan struct{})

		f.repo.EXPECT().
			GetDueUnprocessed(gomock.Any()).
			Return([]model.Schedule{dueSchedule("K123", "101"), dueSchedule("K123", "205")}, nil)
		f.roomRepo.EXPECT().Enable(gomock.Any(), "K123", "101").Return(nil)
		f.roomRepo.EXPECT().Enable(gomock.Any(), "K123", "205").Return(nil)
		f.repo.EXPECT().MarkProcessed(gomock.Any(), "K123", "101").Return(nil)
		f.repo.EXPECT().MarkProcessed(gomock.Any(), "K123", "205").Return(nil)
		f.cache.EXPECT().
			Clear(gomock.Any(), "hotel:*").
			DoAndReturn(func(context.Context, string) error {
				close(invalidated)

				return nil
			})

		result, err := f.svc.ProcessDue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, result.RoomsProcessed)
		assert.Equal(t, "Processed 2 rooms for re-enabling", result.Message)

		select {
		case <-invalidated:
		case <-time.After(2 * time.Second):
			t.Fatal("hotel cache was never invalidated")
		}
	})

	t.Run("a failing room is skipped, the rest still run", func(t *testing.T) {
		f := newScheduleFixture(t)

		invalidated := make(chan struct{})

		f.repo.EXPECT().
			GetDueUnprocessed(gomock.Any()).
			Return([]model.Schedule{dueSchedule("K123", "101"), dueSchedule("K456", "301")}, nil)
		f.roomRepo.EXPECT().Enable(gomock.Any(), "K123", "101").Return(errors.New("row locked"))
		f.roomRepo.EXPECT().Enable(gomock.Any(), "K456", "301").Return(nil)
		f.repo.EXPECT().MarkProcessed(gomock.Any(), "K456", "301").Return(nil)
		f.cache.EXPECT().
			Clear(gomock.Any(), "hotel:*").
			DoAndReturn(func(context.Context, string) error {
				close(invalidated)

				return nil
			})

		result, err := f.svc.ProcessDue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.RoomsProcessed)

		select {
		case <-invalidated:
		case <-time.After(2 * time.Second):
			t.Fatal("hotel cache was never invalidated")
		}
	})

	t.Run("nothing due leaves the cache alone", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.repo.EXPECT().
			GetDueUnprocessed(gomock.Any()).
			Return([]model.Schedule{}, nil)

		result, err := f.svc.ProcessDue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, result.RoomsProcessed)
		assert.Equal(t, "Processed 0 rooms for re-enabling", result.Message)
	})
}

func TestScheduleService_CleanupProcessed(t *testing.T) {
	t.Run("deletes processed rows", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.repo.EXPECT().
			DeleteProcessed(gomock.Any()).
			Return(int64(3), nil)

		result, err := f.svc.CleanupProcessed(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.DeletedCount)
		assert.Equal(t, "Deleted 3 processed schedule(s)", result.Message)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		f := newScheduleFixture(t)

		f.repo.EXPECT().
			DeleteProcessed(gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		_, err := f.svc.CleanupProcessed(context.Background())

		require.Error(t, err)
	})
}
