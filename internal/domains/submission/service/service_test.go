package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tm30/config"
	s3Mocks "tm30/infras/s3/mocks"
	roomkeyModel "tm30/internal/domains/roomkey/model"
	roomkeyMocks "tm30/internal/domains/roomkey/repository/mocks"
	scheduleModel "tm30/internal/domains/schedule/model"
	scheduleMocks "tm30/internal/domains/schedule/repository/mocks"
	"tm30/internal/domains/submission/model"
	"tm30/internal/domains/submission/model/dto"
	submissionMocks "tm30/internal/domains/submission/repository/mocks"
	"tm30/internal/domains/submission/service"
	notificationMocks "tm30/internal/notification/mocks"
	"tm30/shared/cache"
	cacheMocks "tm30/shared/cache/mocks"
	"tm30/shared/failure"

	otelMocks "tm30/infras/otel/mocks"
)

type submissionFixture struct {
	repo       *submissionMocks.MockSubmissionRepository
	roomRepo   *roomkeyMocks.MockRoomKeyRepository
	schedRepo  *scheduleMocks.MockScheduleRepository
	storage    *s3Mocks.MockS3
	dispatcher *notificationMocks.MockDispatcher
	cache      *cacheMocks.MockRedisCache
	svc        service.SubmissionService
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &submissionFixture{
		repo:       submissionMocks.NewMockSubmissionRepository(ctrl),
		roomRepo:   roomkeyMocks.NewMockRoomKeyRepository(ctrl),
		schedRepo:  scheduleMocks.NewMockScheduleRepository(ctrl),
		storage:    s3Mocks.NewMockS3(ctrl),
		dispatcher: notificationMocks.NewMockDispatcher(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Retention.Days = 7
	cfg.External.S3.BucketName = "photos"
	cfg.External.S3.PhotoDirectory = "passport-photos"

	f.svc = service.New(f.repo, f.roomRepo, f.schedRepo, f.storage, f.dispatcher, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func bookingRequest(guests int) dto.CreateSubmissionRequest {
	guestRows := []dto.Guest{
		{
			FirstName:      "Anna",
			LastName:       "Larsson",
			Gender:         "Female",
			PassportNumber: "X1234567",
			Nationality:    "Sweden",
			BirthDate:      "15/03/1990",
			CheckinDate:    "01/09/2026",
			CheckoutDate:   "03/09/2026",
		},
		{
			FirstName:      "Erik",
			LastName:       "Larsson",
			Gender:         "Male",
			PassportNumber: "X7654321",
			Nationality:    "Sweden",
			BirthDate:      "20/07/1988",
			CheckinDate:    "01/09/2026",
			CheckoutDate:   "03/09/2026",
		},
	}

	return dto.CreateSubmissionRequest{
		NumberOfGuests: guests,
		NumberOfNights: 2,
		Email:          "anna@example.com",
		HotelName:      "Phunaya Old Town",
		RoomNumber:     "101",
		Consent:        true,
		Language:       "en",
		Guests:         guestRows[:guests],
	}
}

func TestSubmissionService_Create_TwoGuests(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(2)

	f.roomRepo.EXPECT().
		GetEnabledKey(gomock.Any(), "P256", "101").
		Return(roomkeyModel.RoomKey{HotelID: "P256", RoomNumber: "101", RoomKeyNumber: "K-101", Enabled: true}, nil)
	f.roomRepo.EXPECT().
		DisableIfEnabled(gomock.Any(), "P256", "101").
		Return(true, nil)
	f.schedRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, schedule scheduleModel.Schedule) error {
			assert.Equal(t, "P256", schedule.HotelID)
			assert.Equal(t, "101", schedule.RoomNumber)
			assert.False(t, schedule.Processed)

			return nil
		})
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Times(2).
		Return(nil)

	invalidated := make(chan struct{})

	f.dispatcher.EXPECT().
		BookingRegistered(gomock.Any(), gomock.Any()).
		Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "hotel:*").Return(nil)
	f.cache.EXPECT().
		Clear(gomock.Any(), "submission:*").
		DoAndReturn(func(context.Context, string) error {
			close(invalidated)

			return nil
		})

	result, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, result.SubmissionIDs, 2)
	assert.Equal(t, result.SubmissionIDs[0], result.SubmissionID)
	assert.Equal(t, 2, result.NumberOfGuests)
	assert.Equal(t, "K-101", result.RoomKeyNumber)
	assert.Equal(t, "queued", result.EmailStatus)
	assert.Contains(t, result.Message, "submitted successfully")

	select {
	case <-invalidated:
	case <-time.After(2 * time.Second):
		t.Fatal("cache invalidation never ran")
	}
}

func TestSubmissionService_Create_NormalizesLegacyDates(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(1)

	// Validation also admits ISO dates; storage must still be dd/mm/yyyy.
	req.Guests[0].BirthDate = "1990-03-15"
	req.Guests[0].CheckinDate = "2026-09-01"
	req.Guests[0].CheckoutDate = "2026-09-03T10:30:00Z"

	f.roomRepo.EXPECT().
		GetEnabledKey(gomock.Any(), "P256", "101").
		Return(roomkeyModel.RoomKey{RoomKeyNumber: "K-101"}, nil)
	f.roomRepo.EXPECT().
		DisableIfEnabled(gomock.Any(), "P256", "101").
		Return(true, nil)
	f.schedRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row model.Submission) error {
			assert.Equal(t, "15/03/1990", row.BirthDate)
			assert.Equal(t, "01/09/2026", row.CheckinDate)
			assert.Equal(t, "03/09/2026", row.CheckoutDate)

			return nil
		})

	invalidated := make(chan struct{})

	f.dispatcher.EXPECT().BookingRegistered(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "hotel:*").Return(nil)
	f.cache.EXPECT().
		Clear(gomock.Any(), "submission:*").
		DoAndReturn(func(context.Context, string) error {
			close(invalidated)

			return nil
		})

	_, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)

	select {
	case <-invalidated:
	case <-time.After(2 * time.Second):
		t.Fatal("cache invalidation never ran")
	}
}

// passportPhotoHeader builds a parsed multipart file header whose Open
// succeeds, the way the booking form delivers one.
func passportPhotoHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("passportPhoto", "passport.jpg")
	require.NoError(t, err)

	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())

	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File["passportPhoto"]
	require.Len(t, headers, 1)

	return headers[0]
}

func TestSubmissionService_Create_PhotoUploadFailureDoesNotBlockBooking(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(1)
	req.Guests[0].Photo = passportPhotoHeader(t)

	f.storage.EXPECT().
		UploadFile(gomock.Any(), "photos", "passport-photos/P256", gomock.Any(), req.Guests[0].Photo, gomock.Any()).
		Return("", errors.New("bucket unreachable"))
	f.roomRepo.EXPECT().
		GetEnabledKey(gomock.Any(), "P256", "101").
		Return(roomkeyModel.RoomKey{RoomKeyNumber: "K-101"}, nil)
	f.roomRepo.EXPECT().
		DisableIfEnabled(gomock.Any(), "P256", "101").
		Return(true, nil)
	f.schedRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row model.Submission) error {
			assert.Nil(t, row.PassportPhotoURL)

			return nil
		})

	invalidated := make(chan struct{})

	f.dispatcher.EXPECT().BookingRegistered(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "hotel:*").Return(nil)
	f.cache.EXPECT().
		Clear(gomock.Any(), "submission:*").
		DoAndReturn(func(context.Context, string) error {
			close(invalidated)

			return nil
		})

	result, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, result.SubmissionIDs, 1)
	assert.Equal(t, "K-101", result.RoomKeyNumber)

	select {
	case <-invalidated:
	case <-time.After(2 * time.Second):
		t.Fatal("cache invalidation never ran")
	}
}

func TestSubmissionService_Create_RoomAlreadyClaimed(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(1)

	f.roomRepo.EXPECT().
		GetEnabledKey(gomock.Any(), "P256", "101").
		Return(roomkeyModel.RoomKey{HotelID: "P256", RoomNumber: "101", RoomKeyNumber: "K-101", Enabled: true}, nil)
	f.roomRepo.EXPECT().
		DisableIfEnabled(gomock.Any(), "P256", "101").
		Return(false, nil)

	_, err := f.svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestSubmissionService_Create_UnknownRoom(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(1)

	f.roomRepo.EXPECT().
		GetEnabledKey(gomock.Any(), "P256", "101").
		Return(roomkeyModel.RoomKey{}, nil)

	_, err := f.svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestSubmissionService_Create_UnknownHotel(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(1)
	req.HotelName = "No Such Hotel"

	f.roomRepo.EXPECT().
		ResolveHotelID(gomock.Any(), "No Such Hotel").
		Return("", nil)

	_, err := f.svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestSubmissionService_Create_ScheduleFailureKeepsRoomDisabled(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(1)

	f.roomRepo.EXPECT().
		GetEnabledKey(gomock.Any(), "P256", "101").
		Return(roomkeyModel.RoomKey{RoomKeyNumber: "K-101"}, nil)
	f.roomRepo.EXPECT().
		DisableIfEnabled(gomock.Any(), "P256", "101").
		Return(true, nil)
	f.schedRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	_, err := f.svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}

func TestSubmissionService_Create_PartialInsertFailure(t *testing.T) {
	f := newSubmissionFixture(t)
	req := bookingRequest(2)

	f.roomRepo.EXPECT().
		GetEnabledKey(gomock.Any(), "P256", "101").
		Return(roomkeyModel.RoomKey{RoomKeyNumber: "K-101"}, nil)
	f.roomRepo.EXPECT().
		DisableIfEnabled(gomock.Any(), "P256", "101").
		Return(true, nil)
	f.schedRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	first := f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).After(first).Return(errors.New("insert failed"))

	invalidated := make(chan struct{})

	f.dispatcher.EXPECT().BookingRegistered(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "hotel:*").Return(nil)
	f.cache.EXPECT().
		Clear(gomock.Any(), "submission:*").
		DoAndReturn(func(context.Context, string) error {
			close(invalidated)

			return nil
		})

	result, err := f.svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, result.SubmissionIDs, 1)
	assert.Equal(t, 1, result.NumberOfGuests)
	assert.Contains(t, result.Message, "partially stored")

	select {
	case <-invalidated:
	case <-time.After(2 * time.Second):
		t.Fatal("cache invalidation never ran")
	}
}

func TestSubmissionService_List(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "submission:list:Phunaya Old Town::", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				cached, ok := value.(*dto.ListSubmissionsResponse)
				require.True(t, ok)
				cached.Count = 3

				return nil
			})

		result, err := f.svc.List(context.Background(), "Phunaya Old Town", "", "")

		require.NoError(t, err)
		assert.Equal(t, 3, result.Count)
	})

	t.Run("cache miss queries and saves", func(t *testing.T) {
		f := newSubmissionFixture(t)

		rows := []model.Submission{
			{ID: "s-1", FirstName: "Anna", LastName: "Larsson", CheckinDate: "01/09/2026", Status: "PENDING"},
		}

		saved := make(chan struct{})

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		f.repo.EXPECT().
			GetAllFiltered(gomock.Any(), "Phunaya Old Town", "anna", "").
			Return(rows, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		result, err := f.svc.List(context.Background(), "Phunaya Old Town", "anna", "")

		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, "s-1", result.Submissions[0].ID)
		assert.Equal(t, "01/09/2026", result.Submissions[0].CheckinDate)

		select {
		case <-saved:
		case <-time.After(2 * time.Second):
			t.Fatal("cache save never ran")
		}
	})
}

func TestSubmissionService_UpdateStatus(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.repo.EXPECT().
			UpdateStatus(gomock.Any(), "missing", "REPORTED", gomock.Any()).
			Return(int64(0), nil)

		_, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{ID: "missing", Status: "REPORTED"})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful transition", func(t *testing.T) {
		f := newSubmissionFixture(t)

		invalidated := make(chan struct{})

		f.repo.EXPECT().
			UpdateStatus(gomock.Any(), "s-1", "REPORTED", gomock.Any()).
			Return(int64(1), nil)
		f.repo.EXPECT().
			GetByID(gomock.Any(), "s-1").
			Return(model.Submission{ID: "s-1", FirstName: "Anna", LastName: "Larsson", Status: "REPORTED"}, nil)
		f.cache.EXPECT().
			Clear(gomock.Any(), "submission:*").
			DoAndReturn(func(context.Context, string) error {
				close(invalidated)

				return nil
			})

		result, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{ID: "s-1", Status: "REPORTED"})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Submission status updated to REPORTED", result.Message)
		assert.Equal(t, "REPORTED", result.Data.Status)

		select {
		case <-invalidated:
		case <-time.After(2 * time.Second):
			t.Fatal("cache invalidation never ran")
		}
	})
}
