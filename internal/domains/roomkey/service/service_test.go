package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tm30/config"
	otelMocks "tm30/infras/otel/mocks"
	"tm30/internal/domains/roomkey/model"
	"tm30/internal/domains/roomkey/model/dto"
	roomkeyMocks "tm30/internal/domains/roomkey/repository/mocks"
	"tm30/internal/domains/roomkey/service"
	"tm30/shared/cache"
	cacheMocks "tm30/shared/cache/mocks"
)

type roomkeyFixture struct {
	repo  *roomkeyMocks.MockRoomKeyRepository
	cache *cacheMocks.MockRedisCache
	svc   service.RoomKeyService
}

func newRoomkeyFixture(t *testing.T) *roomkeyFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := &roomkeyFixture{
		repo:  roomkeyMocks.NewMockRoomKeyRepository(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func TestRoomKeyService_ListHotels(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newRoomkeyFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "hotel:list", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out interface{}) error {
				list, ok := out.(*dto.HotelList)
				require.True(t, ok)

				*list = dto.HotelList{
					Hotels: []dto.Hotel{{ID: "P256", Name: "Phunaya Old Town", Enabled: true, Rooms: map[string]string{"101": "K-101"}}},
					Count:  1,
				}

				return nil
			})

		result, err := f.svc.ListHotels(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, "P256", result.Hotels[0].ID)
	})

	t.Run("cache miss groups rooms by hotel and backfills the cache", func(t *testing.T) {
		f := newRoomkeyFixture(t)

		saved := make(chan struct{})

		f.cache.EXPECT().
			Get(gomock.Any(), "hotel:list", gomock.Any()).
			Return(cache.Nil)
		f.repo.EXPECT().
			GetAllEnabled(gomock.Any()).
			Return([]model.RoomKey{
				{HotelID: "P256", HotelName: "Phunaya Old Town", RoomNumber: "101", RoomKeyNumber: "K-101", Enabled: true},
				{HotelID: "P256", HotelName: "Phunaya Old Town", RoomNumber: "102", RoomKeyNumber: "K-102", Enabled: true},
				{HotelID: "K123", HotelName: "The KPI Plus Residence", RoomNumber: "301", RoomKeyNumber: "K-301", Enabled: true},
			}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), "hotel:list", gomock.Any(), 3600).
			DoAndReturn(func(context.Context, string, interface{}, int) error {
				close(saved)

				return nil
			})

		result, err := f.svc.ListHotels(context.Background())

		require.NoError(t, err)
		require.Equal(t, 2, result.Count)
		assert.Equal(t, "P256", result.Hotels[0].ID)
		assert.Equal(t, map[string]string{"101": "K-101", "102": "K-102"}, result.Hotels[0].Rooms)
		assert.Equal(t, "The KPI Plus Residence", result.Hotels[1].Name)
		assert.True(t, result.Hotels[1].Enabled)

		select {
		case <-saved:
		case <-time.After(2 * time.Second):
			t.Fatal("hotel list was never cached")
		}
	})
}
