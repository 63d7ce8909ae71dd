package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tm30/config"
	"tm30/infras/jwt"
	jwtMocks "tm30/infras/jwt/mocks"
	otelMocks "tm30/infras/otel/mocks"
	"tm30/internal/domains/admin/model"
	"tm30/internal/domains/admin/model/dto"
	adminMocks "tm30/internal/domains/admin/repository/mocks"
	"tm30/internal/domains/admin/service"
	roomkeyMocks "tm30/internal/domains/roomkey/repository/mocks"
	"tm30/shared/failure"
	sharedModel "tm30/shared/model"
	"tm30/shared/password"
)

type adminFixture struct {
	repo       *adminMocks.MockAdminRepository
	superRepo  *adminMocks.MockSuperAdminRepository
	roomRepo   *roomkeyMocks.MockRoomKeyRepository
	token      *jwtMocks.MockJWT
	svc        service.AdminService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &adminFixture{
		repo:      adminMocks.NewMockAdminRepository(ctrl),
		superRepo: adminMocks.NewMockSuperAdminRepository(ctrl),
		roomRepo:  roomkeyMocks.NewMockRoomKeyRepository(ctrl),
		token:     jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.repo, f.superRepo, f.roomRepo, f.token, &config.Config{}, otelMocks.NewOtel())

	return f
}

func activeAdmin(t *testing.T, hotelCode, plainPassword string) model.HotelAdmin {
	t.Helper()

	hash, err := password.Hash(plainPassword)
	require.NoError(t, err)

	return model.HotelAdmin{
		ID:           "admin-1",
		HotelCode:    hotelCode,
		HotelName:    "Phunaya Old Town",
		PasswordHash: hash,
		IsActive:     true,
		Metadata: sharedModel.Metadata{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func TestAdminService_Login(t *testing.T) {
	t.Run("successful login uppercases the code", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := activeAdmin(t, "P256", "opensesame")

		bumped := make(chan struct{})

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "P256").
			Return(admin, nil)
		f.token.EXPECT().
			Generate("admin-1", "P256", "Phunaya Old Town", "admin").
			Return(&jwt.Token{AccessToken: "token-123", TokenType: "Bearer"}, nil)
		f.repo.EXPECT().
			BumpLastLogin(gomock.Any(), "admin-1", gomock.Any()).
			DoAndReturn(func(context.Context, string, time.Time) error {
				close(bumped)

				return nil
			})

		result, err := f.svc.Login(context.Background(), dto.LoginRequest{HotelCode: "p256", Password: "opensesame"})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Login successful", result.Message)
		assert.Equal(t, "token-123", result.Token)
		assert.Equal(t, "P256", result.Admin.HotelCode)

		select {
		case <-bumped:
		case <-time.After(2 * time.Second):
			t.Fatal("last_login bump never ran")
		}
	})

	t.Run("wrong password and unknown code share a message", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := activeAdmin(t, "P256", "opensesame")

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "P256").
			Return(admin, nil)
		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "ZZZZ").
			Return(model.HotelAdmin{}, nil)

		_, wrongPassword := f.svc.Login(context.Background(), dto.LoginRequest{HotelCode: "P256", Password: "nope"})
		_, unknownCode := f.svc.Login(context.Background(), dto.LoginRequest{HotelCode: "ZZZZ", Password: "opensesame"})

		require.Error(t, wrongPassword)
		require.Error(t, unknownCode)
		assert.Equal(t, wrongPassword.Error(), unknownCode.Error())
		assert.Equal(t, 401, failure.GetCode(wrongPassword))
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := activeAdmin(t, "P256", "opensesame")
		admin.IsActive = false

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "P256").
			Return(admin, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{HotelCode: "P256", Password: "opensesame"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAdminService_SuperAdminLogin(t *testing.T) {
	f := newAdminFixture(t)

	hash, err := password.Hash("rootpass1")
	require.NoError(t, err)

	super := model.SuperAdmin{
		ID:           "super-1",
		Username:     "operator",
		FullName:     "Platform Operator",
		PasswordHash: hash,
		IsActive:     true,
	}

	bumped := make(chan struct{})

	f.superRepo.EXPECT().
		GetByUsername(gomock.Any(), "operator").
		Return(super, nil)
	f.token.EXPECT().
		Generate("super-1", "SUPERADMIN", "Platform Operator", "superadmin").
		Return(&jwt.Token{AccessToken: "token-super"}, nil)
	f.superRepo.EXPECT().
		BumpLastLogin(gomock.Any(), "super-1", gomock.Any()).
		DoAndReturn(func(context.Context, string, time.Time) error {
			close(bumped)

			return nil
		})

	result, err := f.svc.SuperAdminLogin(context.Background(), dto.SuperAdminLoginRequest{Username: "operator", Password: "rootpass1"})

	require.NoError(t, err)
	assert.Equal(t, "SUPERADMIN", result.Admin.HotelCode)
	assert.Equal(t, "token-super", result.Token)

	select {
	case <-bumped:
	case <-time.After(2 * time.Second):
		t.Fatal("last_login bump never ran")
	}
}

func TestAdminService_CreateAccount(t *testing.T) {
	t.Run("unknown hotel", func(t *testing.T) {
		f := newAdminFixture(t)

		f.roomRepo.EXPECT().
			HotelExists(gomock.Any(), "X999").
			Return(false, nil)

		_, err := f.svc.CreateAccount(context.Background(), dto.CreateAccountRequest{
			HotelCode: "x999",
			HotelName: "Ghost Hotel",
			Password:  "longenough",
		})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "Hotel code 'X999' does not exist in the system")
	})

	t.Run("duplicate account", func(t *testing.T) {
		f := newAdminFixture(t)

		f.roomRepo.EXPECT().
			HotelExists(gomock.Any(), "P256").
			Return(true, nil)
		f.repo.EXPECT().
			ExistsByHotelCode(gomock.Any(), "P256").
			Return(true, nil)

		_, err := f.svc.CreateAccount(context.Background(), dto.CreateAccountRequest{
			HotelCode: "P256",
			HotelName: "Phunaya Old Town",
			Password:  "longenough",
		})

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("successful creation stores a bcrypt hash", func(t *testing.T) {
		f := newAdminFixture(t)

		f.roomRepo.EXPECT().
			HotelExists(gomock.Any(), "P256").
			Return(true, nil)
		f.repo.EXPECT().
			ExistsByHotelCode(gomock.Any(), "P256").
			Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin model.HotelAdmin) error {
				assert.NotEmpty(t, admin.ID)
				assert.Equal(t, "P256", admin.HotelCode)
				assert.True(t, admin.IsActive)
				assert.NoError(t, password.Verify("longenough", admin.PasswordHash))

				return nil
			})

		result, err := f.svc.CreateAccount(context.Background(), dto.CreateAccountRequest{
			HotelCode: "p256",
			HotelName: "Phunaya Old Town",
			Password:  "longenough",
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "P256", result.Admin.HotelCode)
	})
}

func TestAdminService_UpdatePassword(t *testing.T) {
	t.Run("unknown account", func(t *testing.T) {
		f := newAdminFixture(t)

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "P256").
			Return(model.HotelAdmin{}, nil)

		_, err := f.svc.UpdatePassword(context.Background(), dto.UpdatePasswordRequest{
			HotelCode:   "P256",
			NewPassword: "longenough",
		})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := activeAdmin(t, "P256", "oldsecret1")

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "P256").
			Return(admin, nil)

		_, err := f.svc.UpdatePassword(context.Background(), dto.UpdatePasswordRequest{
			HotelCode:       "P256",
			NewPassword:     "newsecret1",
			CurrentPassword: "not-the-old-one",
		})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
		assert.Contains(t, err.Error(), "Current password is incorrect")
	})

	t.Run("successful rotation", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := activeAdmin(t, "P256", "oldsecret1")

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "P256").
			Return(admin, nil)
		f.repo.EXPECT().
			UpdatePassword(gomock.Any(), "P256", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string, _ time.Time) error {
				assert.NoError(t, password.Verify("newsecret1", hash))

				return nil
			})

		result, err := f.svc.UpdatePassword(context.Background(), dto.UpdatePasswordRequest{
			HotelCode:       "P256",
			NewPassword:     "newsecret1",
			CurrentPassword: "oldsecret1",
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Password updated successfully", result.Message)
	})
}

func TestAdminService_DeleteAccount(t *testing.T) {
	t.Run("the superadmin row is undeletable", func(t *testing.T) {
		f := newAdminFixture(t)

		_, err := f.svc.DeleteAccount(context.Background(), "superadmin")

		require.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newAdminFixture(t)

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "X999").
			Return(model.HotelAdmin{}, nil)

		_, err := f.svc.DeleteAccount(context.Background(), "X999")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful deletion", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := activeAdmin(t, "P256", "opensesame")

		f.repo.EXPECT().
			GetByHotelCode(gomock.Any(), "P256").
			Return(admin, nil)
		f.repo.EXPECT().
			DeleteByHotelCode(gomock.Any(), "P256").
			Return(nil)

		result, err := f.svc.DeleteAccount(context.Background(), "p256")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Admin account deleted successfully", result.Message)
		assert.Equal(t, "P256", result.DeletedAdmin.HotelCode)
	})
}
