package service

import (
	"context"
	"fmt"
	"strings"

	"tm30/internal/domains/submission/model/dto"
	"tm30/shared"
	"tm30/shared/constant"
	"tm30/shared/failure"
	"tm30/shared/timezone"
)

const globalPreviewLimit = 50

// Purge deletes a hotel's submissions older than the retention window and
// reports the deleted rows for audit logging. Safe to re-run; a second
// invocation finds nothing.
func (service *serviceImpl) Purge(ctx context.Context, hotelName string) (dto.PurgeResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.Purge", constant.OtelServiceScopeName))
	defer scope.End()

	days := service.cfg.Retention.Days
	cutoff := timezone.Now().AddDate(0, 0, -days)

	count, err := service.repo.CountOlderThan(ctx, cutoff, hotelName)
	if err != nil {
		scope.TraceError(err)

		return dto.PurgeResponse{}, fmt.Errorf("failed to count stale submissions: %w", err)
	}

	if count == 0 {
		return dto.PurgeResponse{
			Message:        fmt.Sprintf("No records older than %d days found for cleanup", days),
			RecordsDeleted: 0,
			Success:        true,
		}, nil
	}

	deleted, err := service.repo.DeleteOlderThan(ctx, cutoff, hotelName)
	if err != nil {
		scope.TraceError(err)

		return dto.PurgeResponse{}, fmt.Errorf("failed to delete stale submissions: %w", err)
	}

	records := make([]dto.DeletedRecord, len(deleted))
	for i, row := range deleted {
		records[i] = dto.DeletedRecord{
			ID:          row.ID,
			GuestName:   row.GuestName(),
			SubmittedAt: row.SubmittedAt,
		}
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), service.cache, cacheSubmissionPrefix)

	scope.SetAttribute("records_deleted", len(deleted))

	return dto.PurgeResponse{
		Message:        fmt.Sprintf("Successfully deleted %d records older than %d days", len(deleted), days),
		RecordsDeleted: len(deleted),
		DeletedRecords: records,
		Success:        true,
	}, nil
}

// Preview lists what Purge would delete without touching anything.
func (service *serviceImpl) Preview(ctx context.Context, hotelName string) (dto.PurgePreviewResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.Preview", constant.OtelServiceScopeName))
	defer scope.End()

	now := timezone.Now()
	days := service.cfg.Retention.Days
	cutoff := now.AddDate(0, 0, -days)

	rows, err := service.repo.GetOlderThan(ctx, cutoff, hotelName, 0, false)
	if err != nil {
		scope.TraceError(err)

		return dto.PurgePreviewResponse{}, fmt.Errorf("failed to preview stale submissions: %w", err)
	}

	records := make([]dto.PreviewRecord, len(rows))
	for i, row := range rows {
		records[i] = dto.PreviewRecord{
			ID:          row.ID,
			GuestName:   row.GuestName(),
			SubmittedAt: row.SubmittedAt,
			DaysOld:     int(now.Sub(row.SubmittedAt).Hours() / 24),
		}
	}

	return dto.PurgePreviewResponse{
		Message:         fmt.Sprintf("%d records older than %d days would be deleted", len(rows), days),
		RecordCount:     len(rows),
		CutoffDate:      cutoff,
		RecordsToDelete: records,
		Success:         true,
	}, nil
}

// GlobalPurge is the cron entry point: it deletes stale submissions
// across every hotel.
func (service *serviceImpl) GlobalPurge(ctx context.Context) (dto.GlobalPurgeResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.GlobalPurge", constant.OtelServiceScopeName))
	defer scope.End()

	days := service.cfg.Retention.Days
	cutoff := timezone.Now().AddDate(0, 0, -days)

	count, err := service.repo.CountOlderThan(ctx, cutoff, constant.Empty)
	if err != nil {
		scope.TraceError(err)

		return dto.GlobalPurgeResponse{}, fmt.Errorf("failed to count stale submissions: %w", err)
	}

	if count == 0 {
		return dto.GlobalPurgeResponse{
			Success:      true,
			Message:      fmt.Sprintf("No records older than %d days found", days),
			DeletedCount: 0,
			CutoffDate:   cutoff,
		}, nil
	}

	deleted, err := service.repo.DeleteOlderThan(ctx, cutoff, constant.Empty)
	if err != nil {
		scope.TraceError(err)

		return dto.GlobalPurgeResponse{}, fmt.Errorf("failed to delete stale submissions: %w", err)
	}

	records := make([]dto.GlobalDeletedRecord, len(deleted))
	for i, row := range deleted {
		records[i] = dto.GlobalDeletedRecord{
			ID:          row.ID,
			Name:        row.GuestName(),
			SubmittedAt: row.SubmittedAt,
		}
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), service.cache, cacheSubmissionPrefix)

	return dto.GlobalPurgeResponse{
		Success:        true,
		Message:        fmt.Sprintf("Successfully deleted %d records older than %d days", len(deleted), days),
		DeletedCount:   len(deleted),
		CutoffDate:     cutoff,
		DeletedRecords: records,
	}, nil
}

// GlobalPreview is the dry-run variant, capped at the oldest rows so the
// response stays small.
func (service *serviceImpl) GlobalPreview(ctx context.Context) (dto.GlobalPreviewResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.GlobalPreview", constant.OtelServiceScopeName))
	defer scope.End()

	now := timezone.Now()
	days := service.cfg.Retention.Days
	cutoff := now.AddDate(0, 0, -days)

	count, err := service.repo.CountOlderThan(ctx, cutoff, constant.Empty)
	if err != nil {
		scope.TraceError(err)

		return dto.GlobalPreviewResponse{}, fmt.Errorf("failed to count stale submissions: %w", err)
	}

	rows, err := service.repo.GetOlderThan(ctx, cutoff, constant.Empty, globalPreviewLimit, true)
	if err != nil {
		scope.TraceError(err)

		return dto.GlobalPreviewResponse{}, fmt.Errorf("failed to preview stale submissions: %w", err)
	}

	records := make([]dto.GlobalPreviewRecord, len(rows))
	for i, row := range rows {
		records[i] = dto.GlobalPreviewRecord{
			ID:          row.ID,
			Name:        row.GuestName(),
			SubmittedAt: row.SubmittedAt,
			DaysOld:     int(now.Sub(row.SubmittedAt).Hours() / 24),
		}
	}

	message := fmt.Sprintf("No records older than %d days found", days)
	if count > 0 {
		message = fmt.Sprintf("%d records are ready for deletion (older than %d days)", count, days)
	}

	return dto.GlobalPreviewResponse{
		Success:              true,
		DryRun:               true,
		CutoffDate:           cutoff,
		TotalRecordsToDelete: count,
		PreviewRecords:       records,
		Message:              message,
	}, nil
}

// SignedPhotoURL exchanges a stored photo reference for a short-lived
// signed URL. The object key must sit under the caller's hotel directory.
func (service *serviceImpl) SignedPhotoURL(ctx context.Context, hotelCode, photoURL string) (dto.SignedPhotoURLResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.SignedPhotoURL", constant.OtelServiceScopeName))
	defer scope.End()

	if photoURL == constant.Empty {
		return dto.SignedPhotoURLResponse{}, failure.BadRequestFromString("photoUrl is required") //nolint:wrapcheck
	}

	bucket := service.cfg.External.S3.BucketName
	objectKey := service.storage.GetObjectNameFromURL(bucket, photoURL)

	allowedPrefix := service.cfg.External.S3.PhotoDirectory + "/" + hotelCode + "/"
	if !strings.HasPrefix(objectKey, allowedPrefix) {
		return dto.SignedPhotoURLResponse{}, failure.Forbidden("photo does not belong to your hotel") //nolint:wrapcheck
	}

	signedURL, err := service.storage.PresignGetURL(ctx, bucket, objectKey, photoURLExpiry)
	if err != nil {
		scope.TraceError(err)

		return dto.SignedPhotoURLResponse{}, fmt.Errorf("failed to sign photo URL: %w", err)
	}

	return dto.SignedPhotoURLResponse{
		Success:   true,
		SignedURL: signedURL,
		ExpiresAt: timezone.Now().Add(photoURLExpiry),
	}, nil
}
