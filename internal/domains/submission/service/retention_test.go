package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tm30/internal/domains/submission/model"
	"tm30/shared/failure"
	"tm30/shared/timezone"
)

func TestSubmissionService_Purge(t *testing.T) {
	t.Run("nothing to delete", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.repo.EXPECT().
			CountOlderThan(gomock.Any(), gomock.Any(), "Phunaya Old Town").
			Return(0, nil)

		result, err := f.svc.Purge(context.Background(), "Phunaya Old Town")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Zero(t, result.RecordsDeleted)
		assert.Equal(t, "No records older than 7 days found for cleanup", result.Message)
	})

	t.Run("deletes and reports stale rows", func(t *testing.T) {
		f := newSubmissionFixture(t)

		stale := []model.Submission{
			{ID: "s-1", FirstName: "Anna", LastName: "Larsson", SubmittedAt: timezone.Now().AddDate(0, 0, -10)},
			{ID: "s-2", FirstName: "Erik", LastName: "Larsson", SubmittedAt: timezone.Now().AddDate(0, 0, -9)},
		}

		invalidated := make(chan struct{})

		f.repo.EXPECT().
			CountOlderThan(gomock.Any(), gomock.Any(), "Phunaya Old Town").
			Return(2, nil)
		f.repo.EXPECT().
			DeleteOlderThan(gomock.Any(), gomock.Any(), "Phunaya Old Town").
			Return(stale, nil)
		f.cache.EXPECT().
			Clear(gomock.Any(), "submission:*").
			DoAndReturn(func(context.Context, string) error {
				close(invalidated)

				return nil
			})

		result, err := f.svc.Purge(context.Background(), "Phunaya Old Town")

		require.NoError(t, err)
		assert.Equal(t, 2, result.RecordsDeleted)
		assert.Equal(t, "Successfully deleted 2 records older than 7 days", result.Message)
		assert.Equal(t, "Anna Larsson", result.DeletedRecords[0].GuestName)

		select {
		case <-invalidated:
		case <-time.After(2 * time.Second):
			t.Fatal("cache invalidation never ran")
		}
	})
}

func TestSubmissionService_Preview(t *testing.T) {
	f := newSubmissionFixture(t)

	rows := []model.Submission{
		{ID: "s-1", FirstName: "Anna", LastName: "Larsson", SubmittedAt: timezone.Now().AddDate(0, 0, -10)},
	}

	f.repo.EXPECT().
		GetOlderThan(gomock.Any(), gomock.Any(), "Phunaya Old Town", 0, false).
		Return(rows, nil)

	result, err := f.svc.Preview(context.Background(), "Phunaya Old Town")

	require.NoError(t, err)
	assert.Equal(t, 1, result.RecordCount)
	assert.Equal(t, "1 records older than 7 days would be deleted", result.Message)
	assert.Equal(t, 10, result.RecordsToDelete[0].DaysOld)
}

func TestSubmissionService_GlobalPreview(t *testing.T) {
	t.Run("empty database", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.repo.EXPECT().
			CountOlderThan(gomock.Any(), gomock.Any(), "").
			Return(0, nil)
		f.repo.EXPECT().
			GetOlderThan(gomock.Any(), gomock.Any(), "", 50, true).
			Return(nil, nil)

		result, err := f.svc.GlobalPreview(context.Background())

		require.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Zero(t, result.TotalRecordsToDelete)
		assert.Equal(t, "No records older than 7 days found", result.Message)
	})

	t.Run("reports pending deletions", func(t *testing.T) {
		f := newSubmissionFixture(t)

		rows := []model.Submission{
			{ID: "s-1", FirstName: "Anna", LastName: "Larsson", SubmittedAt: timezone.Now().AddDate(0, 0, -12)},
		}

		f.repo.EXPECT().
			CountOlderThan(gomock.Any(), gomock.Any(), "").
			Return(60, nil)
		f.repo.EXPECT().
			GetOlderThan(gomock.Any(), gomock.Any(), "", 50, true).
			Return(rows, nil)

		result, err := f.svc.GlobalPreview(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 60, result.TotalRecordsToDelete)
		assert.Equal(t, "60 records are ready for deletion (older than 7 days)", result.Message)
		assert.Len(t, result.PreviewRecords, 1)
	})
}

func TestSubmissionService_GlobalPurge_Idempotent(t *testing.T) {
	f := newSubmissionFixture(t)

	f.repo.EXPECT().
		CountOlderThan(gomock.Any(), gomock.Any(), "").
		Return(0, nil).
		Times(2)

	first, err := f.svc.GlobalPurge(context.Background())
	require.NoError(t, err)

	second, err := f.svc.GlobalPurge(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Message, second.Message)
	assert.Zero(t, second.DeletedCount)
}

func TestSubmissionService_SignedPhotoURL(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		f := newSubmissionFixture(t)

		_, err := f.svc.SignedPhotoURL(context.Background(), "P256", "")

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("photo from another hotel", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.storage.EXPECT().
			GetObjectNameFromURL("photos", gomock.Any()).
			Return("passport-photos/K123/abc.jpg")

		_, err := f.svc.SignedPhotoURL(context.Background(), "P256", "https://cdn.example.com/passport-photos/K123/abc.jpg")

		require.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("signs own photo", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.storage.EXPECT().
			GetObjectNameFromURL("photos", gomock.Any()).
			Return("passport-photos/P256/abc.jpg")
		f.storage.EXPECT().
			PresignGetURL(gomock.Any(), "photos", "passport-photos/P256/abc.jpg", 15*time.Minute).
			Return("https://signed.example.com/abc.jpg", nil)

		result, err := f.svc.SignedPhotoURL(context.Background(), "P256", "https://cdn.example.com/passport-photos/P256/abc.jpg")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "https://signed.example.com/abc.jpg", result.SignedURL)
		assert.WithinDuration(t, timezone.Now().Add(15*time.Minute), result.ExpiresAt, 5*time.Second)
	})
}
