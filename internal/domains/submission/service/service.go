package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tm30/config"
	"tm30/infras/otel"
	"tm30/infras/s3"
	roomkeyModel "tm30/internal/domains/roomkey/model"
	roomkeyRepository "tm30/internal/domains/roomkey/repository"
	scheduleModel "tm30/internal/domains/schedule/model"
	scheduleRepository "tm30/internal/domains/schedule/repository"
	"tm30/internal/domains/submission/model"
	"tm30/internal/domains/submission/model/dto"
	"tm30/internal/domains/submission/repository"
	"tm30/internal/notification"
	"tm30/shared"
	"tm30/shared/cache"
	"tm30/shared/constant"
	"tm30/shared/dateform"
	"tm30/shared/failure"
	"tm30/shared/logger"
	"tm30/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheSubmissionList   = "submission:list"
	cacheSubmissionPrefix = "submission:"
	cacheHotelPrefix      = "hotel:"

	photoURLExpiry = 15 * time.Minute
)

type SubmissionService interface {
	Create(ctx context.Context, req dto.CreateSubmissionRequest) (dto.CreateSubmissionResponse, error)
	List(ctx context.Context, hotelName, search, checkinDate string) (dto.ListSubmissionsResponse, error)
	Export(ctx context.Context, hotelCode, hotelName, search, checkinDate string) (dto.ExportFile, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) (dto.UpdateStatusResponse, error)
	Purge(ctx context.Context, hotelName string) (dto.PurgeResponse, error)
	Preview(ctx context.Context, hotelName string) (dto.PurgePreviewResponse, error)
	GlobalPurge(ctx context.Context) (dto.GlobalPurgeResponse, error)
	GlobalPreview(ctx context.Context) (dto.GlobalPreviewResponse, error)
	SignedPhotoURL(ctx context.Context, hotelCode, photoURL string) (dto.SignedPhotoURLResponse, error)
}

type serviceImpl struct {
	repo         repository.SubmissionRepository
	roomRepo     roomkeyRepository.RoomKeyRepository
	scheduleRepo scheduleRepository.ScheduleRepository
	storage      s3.S3
	dispatcher   notification.Dispatcher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.SubmissionRepository,
	roomRepo roomkeyRepository.RoomKeyRepository,
	scheduleRepo scheduleRepository.ScheduleRepository,
	storage s3.S3,
	dispatcher notification.Dispatcher,
	cfg *config.Config,
	redisCache cache.RedisCache,
	ot otel.Otel,
) SubmissionService {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		scheduleRepo: scheduleRepo,
		storage:      storage,
		dispatcher:   dispatcher,
		cfg:          cfg,
		cache:        redisCache,
		otel:         ot,
	}
}

// Create runs the booking pipeline: resolve the hotel, upload photos
// best-effort, look up the room key, atomically claim the room, schedule
// its re-enable, insert one row per guest and queue the notifications.
// The conditional room disable is the only admission gate; it must happen
// before any guest row is written.
func (service *serviceImpl) Create(ctx context.Context, req dto.CreateSubmissionRequest) (dto.CreateSubmissionResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.Create", constant.OtelServiceScopeName))
	defer scope.End()

	hotelID, err := service.resolveHotelID(ctx, req.HotelName)
	if err != nil {
		scope.TraceError(err)

		return dto.CreateSubmissionResponse{}, err
	}

	photoURLs := service.uploadPhotos(ctx, hotelID, req.Guests)

	roomKey, err := service.roomRepo.GetEnabledKey(ctx, hotelID, req.RoomNumber)
	if err != nil {
		scope.TraceError(err)

		return dto.CreateSubmissionResponse{}, fmt.Errorf("failed to look up room key: %w", err)
	}

	if roomKey.RoomKeyNumber == constant.Empty {
		return dto.CreateSubmissionResponse{}, failure.NotFound("room") //nolint:wrapcheck
	}

	claimed, err := service.roomRepo.DisableIfEnabled(ctx, hotelID, req.RoomNumber)
	if err != nil {
		scope.TraceError(err)

		return dto.CreateSubmissionResponse{}, fmt.Errorf("failed to claim room: %w", err)
	}

	if !claimed {
		return dto.CreateSubmissionResponse{}, failure.Conflict("room unavailable") //nolint:wrapcheck
	}

	now := timezone.Now()

	schedule := scheduleModel.Schedule{
		HotelID:      hotelID,
		RoomNumber:   req.RoomNumber,
		ReEnableDate: now.AddDate(0, 0, req.NumberOfNights),
		Processed:    false,
		CreatedAt:    now,
	}

	if err := service.scheduleRepo.Upsert(ctx, schedule); err != nil {
		// The room stays disabled; reconciliation is an operational
		// concern, not something to silently undo here.
		log.Error().Err(err).
			Str("hotel_id", hotelID).
			Str("room_number", req.RoomNumber).
			Msg("room claimed but schedule upsert failed")
		scope.TraceError(err)

		return dto.CreateSubmissionResponse{}, fmt.Errorf("failed to schedule room re-enable: %w", err)
	}

	submissionIDs := []string{}
	failures := 0

	for i, guest := range req.Guests {
		row := model.Submission{
			ID:               uuid.NewString(),
			FirstName:        guest.FirstName,
			MiddleName:       optional(guest.MiddleName),
			LastName:         guest.LastName,
			Gender:           guest.Gender,
			PassportNumber:   guest.PassportNumber,
			Nationality:      guest.Nationality,
			// Validation also admits legacy ISO dates; storage is always
			// the dd/mm/yyyy text.
			BirthDate:        dateform.Reformat(guest.BirthDate),
			CheckinDate:      dateform.Reformat(guest.CheckinDate),
			CheckoutDate:     dateform.Reformat(guest.CheckoutDate),
			PhoneNumber:      optional(guest.PhoneNumber),
			PassportPhotoURL: photoURLs[i],
			HotelName:        req.HotelName,
			Email:            req.Email,
			RoomNumber:       req.RoomNumber,
			Notes:            fmt.Sprintf("Multi-guest form submission (Guest %d of %d) - %d nights", i+1, len(req.Guests), req.NumberOfNights),
			Status:           constant.StatusPending,
			SubmittedAt:      now,
			UpdatedAt:        now,
		}

		if err := service.repo.Insert(ctx, row); err != nil {
			log.Error().Err(err).
				Int("guest", i+1).
				Str("hotel_id", hotelID).
				Str("room_number", req.RoomNumber).
				Msg("failed to insert guest row after room claim")
			scope.TraceError(err)
			failures++

			continue
		}

		submissionIDs = append(submissionIDs, row.ID)
	}

	if len(submissionIDs) == 0 {
		return dto.CreateSubmissionResponse{}, failure.InternalError(errors.New("failed to store guest registrations")) //nolint:wrapcheck
	}

	event := service.buildEvent(req, submissionIDs, hotelID, roomKey, now)

	go func(ctx context.Context) {
		if err := service.dispatcher.BookingRegistered(ctx, event); err != nil {
			logger.ErrorWithStack(err)
		}

		shared.InvalidateCaches(ctx, service.cache, cacheHotelPrefix)
		shared.InvalidateCaches(ctx, service.cache, cacheSubmissionPrefix)
	}(context.WithoutCancel(ctx))

	message := fmt.Sprintf("TM30 registration submitted successfully for %d guest(s) staying %d night(s)", len(submissionIDs), req.NumberOfNights)
	if failures > 0 {
		message = fmt.Sprintf("TM30 registration partially stored: %d of %d guest record(s) created", len(submissionIDs), len(req.Guests))
	}

	scope.AddEvent("booking created")

	return dto.CreateSubmissionResponse{
		Message:        message,
		SubmissionID:   submissionIDs[0],
		SubmissionIDs:  submissionIDs,
		NumberOfGuests: len(submissionIDs),
		NumberOfNights: req.NumberOfNights,
		RoomKeyNumber:  roomKey.RoomKeyNumber,
		EmailStatus:    "queued",
		Language:       req.Language,
	}, nil
}

// resolveHotelID maps the display name through the static table and falls
// back to the room inventory when the name is not one of the known three.
func (service *serviceImpl) resolveHotelID(ctx context.Context, hotelName string) (string, error) {
	if id, ok := roomkeyModel.WellKnownHotelIDs[hotelName]; ok {
		return id, nil
	}

	id, err := service.roomRepo.ResolveHotelID(ctx, hotelName)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to resolve hotel: %w", err)
	}

	if id == constant.Empty {
		return constant.Empty, failure.NotFound("hotel") //nolint:wrapcheck
	}

	return id, nil
}

// uploadPhotos stores each attached passport photo under a key namespaced
// by hotel and a generated name. A failed upload degrades to a nil photo
// reference and never fails the booking.
func (service *serviceImpl) uploadPhotos(ctx context.Context, hotelID string, guests []dto.Guest) []*string {
	urls := make([]*string, len(guests))
	directory := service.cfg.External.S3.PhotoDirectory + "/" + hotelID

	for i, guest := range guests {
		if guest.Photo == nil {
			continue
		}

		file, err := guest.Photo.Open()
		if err != nil {
			log.Error().Err(err).Int("guest", i+1).Msg("failed to open passport photo, continuing without it")

			continue
		}

		fileName := uuid.NewString() + strings.ToLower(filepath.Ext(guest.Photo.Filename))

		url, err := service.storage.UploadFile(ctx, service.cfg.External.S3.BucketName, directory, file, guest.Photo, fileName)
		file.Close()

		if err != nil {
			log.Error().Err(err).Int("guest", i+1).Msg("failed to upload passport photo, continuing without it")

			continue
		}

		urls[i] = &url
	}

	return urls
}

func (service *serviceImpl) buildEvent(req dto.CreateSubmissionRequest, submissionIDs []string, hotelID string, roomKey roomkeyModel.RoomKey, now time.Time) notification.BookingRegistered {
	guests := make([]notification.GuestInfo, len(req.Guests))
	for i, guest := range req.Guests {
		guests[i] = notification.GuestInfo{
			FirstName:      guest.FirstName,
			MiddleName:     guest.MiddleName,
			LastName:       guest.LastName,
			PassportNumber: guest.PassportNumber,
			Nationality:    guest.Nationality,
			BirthDate:      guest.BirthDate,
			CheckinDate:    guest.CheckinDate,
			CheckoutDate:   guest.CheckoutDate,
			PhoneNumber:    guest.PhoneNumber,
		}
	}

	return notification.BookingRegistered{
		SubmissionID:   submissionIDs[0],
		SubmissionIDs:  submissionIDs,
		HotelID:        hotelID,
		HotelName:      req.HotelName,
		RoomNumber:     req.RoomNumber,
		RoomKeyNumber:  roomKey.RoomKeyNumber,
		Email:          req.Email,
		Language:       req.Language,
		NumberOfGuests: len(submissionIDs),
		NumberOfNights: req.NumberOfNights,
		RegisteredAt:   now.Format(time.RFC3339),
		Guests:         guests,
	}
}

// List returns a hotel's submissions newest first, with the stay dates
// rendered back to dd/mm/yyyy.
func (service *serviceImpl) List(ctx context.Context, hotelName, search, checkinDate string) (dto.ListSubmissionsResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.List", constant.OtelServiceScopeName))
	defer scope.End()

	cacheKey := shared.BuildCacheKey(cacheSubmissionList, hotelName, search, checkinDate)

	var cached dto.ListSubmissionsResponse

	err := service.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, cache.Nil) {
		logger.ErrorWithStack(err)
	}

	rows, err := service.repo.GetAllFiltered(ctx, hotelName, search, checkinDate)
	if err != nil {
		scope.TraceError(err)

		return dto.ListSubmissionsResponse{}, fmt.Errorf("failed to list submissions: %w", err)
	}

	items := make([]dto.SubmissionItem, len(rows))
	for i, row := range rows {
		items[i] = dto.NewSubmissionItem(row)
	}

	response := dto.ListSubmissionsResponse{
		Submissions: items,
		Count:       len(items),
	}

	go func(ctx context.Context) {
		if err := service.cache.Save(ctx, cacheKey, response, service.cfg.Cache.TTL); err != nil {
			logger.ErrorWithStack(err)
		}
	}(context.WithoutCancel(ctx))

	return response, nil
}

// UpdateStatus transitions a submission between PENDING, REPORTED and
// CANCELED.
func (service *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) (dto.UpdateStatusResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.UpdateStatus", constant.OtelServiceScopeName))
	defer scope.End()

	affected, err := service.repo.UpdateStatus(ctx, req.ID, req.Status, timezone.Now())
	if err != nil {
		scope.TraceError(err)

		return dto.UpdateStatusResponse{}, fmt.Errorf("failed to update submission status: %w", err)
	}

	if affected == 0 {
		return dto.UpdateStatusResponse{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	row, err := service.repo.GetByID(ctx, req.ID)
	if err != nil {
		scope.TraceError(err)

		return dto.UpdateStatusResponse{}, fmt.Errorf("failed to load updated submission: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), service.cache, cacheSubmissionPrefix)

	return dto.UpdateStatusResponse{
		Success: true,
		Message: fmt.Sprintf("Submission status updated to %s", req.Status),
		Data: dto.UpdatedSubmission{
			ID:        row.ID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Status:    row.Status,
		},
	}, nil
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}
