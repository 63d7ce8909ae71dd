package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"tm30/config"
	"tm30/infras/jwt"
	"tm30/infras/otel"
	"tm30/internal/domains/admin/model"
	"tm30/internal/domains/admin/model/dto"
	"tm30/internal/domains/admin/repository"
	roomkeyRepository "tm30/internal/domains/roomkey/repository"
	"tm30/shared/constant"
	"tm30/shared/failure"
	"tm30/shared/logger"
	sharedModel "tm30/shared/model"
	"tm30/shared/password"
	"tm30/shared/timezone"

	"github.com/google/uuid"
)

const invalidCredentialsMessage = "Invalid hotel code or password"

type AdminService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	SuperAdminLogin(ctx context.Context, req dto.SuperAdminLoginRequest) (dto.LoginResponse, error)
	ListAccounts(ctx context.Context) (dto.AccountListResponse, error)
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (dto.CreateAccountResponse, error)
	UpdatePassword(ctx context.Context, req dto.UpdatePasswordRequest) (dto.UpdatePasswordResponse, error)
	DeleteAccount(ctx context.Context, hotelCode string) (dto.DeleteAccountResponse, error)
}

type serviceImpl struct {
	repo           repository.AdminRepository
	superAdminRepo repository.SuperAdminRepository
	roomRepo       roomkeyRepository.RoomKeyRepository
	token          jwt.JWT
	cfg            *config.Config
	otel           otel.Otel
}

func New(
	repo repository.AdminRepository,
	superAdminRepo repository.SuperAdminRepository,
	roomRepo roomkeyRepository.RoomKeyRepository,
	token jwt.JWT,
	cfg *config.Config,
	ot otel.Otel,
) AdminService {
	return &serviceImpl{
		repo:           repo,
		superAdminRepo: superAdminRepo,
		roomRepo:       roomRepo,
		token:          token,
		cfg:            cfg,
		otel:           ot,
	}
}

// Login exchanges hotel credentials for a bearer token. The error message
// never distinguishes an unknown code from a wrong password.
func (service *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.admin.Login", constant.OtelServiceScopeName))
	defer scope.End()

	hotelCode := strings.ToUpper(req.HotelCode)

	admin, err := service.repo.GetByHotelCode(ctx, hotelCode)
	if err != nil {
		scope.TraceError(err)

		return dto.LoginResponse{}, fmt.Errorf("failed to load admin account: %w", err)
	}

	if admin.ID == constant.Empty || !admin.IsActive {
		return dto.LoginResponse{}, failure.Unauthorized(invalidCredentialsMessage) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, admin.PasswordHash); err != nil {
		return dto.LoginResponse{}, failure.Unauthorized(invalidCredentialsMessage) //nolint:wrapcheck
	}

	role := constant.RoleHotelAdmin
	if hotelCode == constant.SuperAdminHotelCode {
		role = constant.RoleSuperAdmin
	}

	token, err := service.token.Generate(admin.ID, admin.HotelCode, admin.HotelName, role)
	if err != nil {
		scope.TraceError(err)

		return dto.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	go func(ctx context.Context) {
		if err := service.repo.BumpLastLogin(ctx, admin.ID, timezone.Now()); err != nil {
			logger.ErrorWithStack(err)
		}
	}(context.WithoutCancel(ctx))

	scope.AddEvent("admin logged in")

	return dto.LoginResponse{
		Message: "Login successful",
		Success: true,
		Admin: dto.AdminInfo{
			ID:        admin.ID,
			HotelCode: admin.HotelCode,
			HotelName: admin.HotelName,
		},
		Token: token.AccessToken,
	}, nil
}

// SuperAdminLogin authenticates a cross-hotel operator. The issued token
// uses the same claim shape with the sentinel hotel code so every
// downstream scope check works unchanged.
func (service *serviceImpl) SuperAdminLogin(ctx context.Context, req dto.SuperAdminLoginRequest) (dto.LoginResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.admin.SuperAdminLogin", constant.OtelServiceScopeName))
	defer scope.End()

	admin, err := service.superAdminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		scope.TraceError(err)

		return dto.LoginResponse{}, fmt.Errorf("failed to load super admin account: %w", err)
	}

	if admin.ID == constant.Empty || !admin.IsActive {
		return dto.LoginResponse{}, failure.Unauthorized("Invalid username or password") //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, admin.PasswordHash); err != nil {
		return dto.LoginResponse{}, failure.Unauthorized("Invalid username or password") //nolint:wrapcheck
	}

	token, err := service.token.Generate(admin.ID, constant.SuperAdminHotelCode, admin.FullName, constant.RoleSuperAdmin)
	if err != nil {
		scope.TraceError(err)

		return dto.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	go func(ctx context.Context) {
		if err := service.superAdminRepo.BumpLastLogin(ctx, admin.ID, timezone.Now()); err != nil {
			logger.ErrorWithStack(err)
		}
	}(context.WithoutCancel(ctx))

	scope.AddEvent("super admin logged in")

	return dto.LoginResponse{
		Message: "Login successful",
		Success: true,
		Admin: dto.AdminInfo{
			ID:        admin.ID,
			HotelCode: constant.SuperAdminHotelCode,
			HotelName: admin.FullName,
		},
		Token: token.AccessToken,
	}, nil
}

func (service *serviceImpl) ListAccounts(ctx context.Context) (dto.AccountListResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.admin.ListAccounts", constant.OtelServiceScopeName))
	defer scope.End()

	admins, err := service.repo.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		return dto.AccountListResponse{}, fmt.Errorf("failed to list admin accounts: %w", err)
	}

	items := make([]dto.AccountItem, len(admins))
	for i, admin := range admins {
		items[i] = dto.NewAccountItem(admin)
	}

	return dto.AccountListResponse{
		Admins:  items,
		Success: true,
	}, nil
}

// CreateAccount provisions a hotel admin. The hotel must already be
// registered in the room inventory and each hotel gets one account.
func (service *serviceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (dto.CreateAccountResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.admin.CreateAccount", constant.OtelServiceScopeName))
	defer scope.End()

	hotelCode := strings.ToUpper(req.HotelCode)

	hotelExists, err := service.roomRepo.HotelExists(ctx, hotelCode)
	if err != nil {
		scope.TraceError(err)

		return dto.CreateAccountResponse{}, fmt.Errorf("failed to check hotel: %w", err)
	}

	if !hotelExists {
		return dto.CreateAccountResponse{}, failure.BadRequestFromString(fmt.Sprintf("Hotel code '%s' does not exist in the system", hotelCode)) //nolint:wrapcheck
	}

	accountExists, err := service.repo.ExistsByHotelCode(ctx, hotelCode)
	if err != nil {
		scope.TraceError(err)

		return dto.CreateAccountResponse{}, fmt.Errorf("failed to check admin account: %w", err)
	}

	if accountExists {
		return dto.CreateAccountResponse{}, failure.Conflict(fmt.Sprintf("Admin account for hotel code '%s' already exists", hotelCode)) //nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		scope.TraceError(err)

		return dto.CreateAccountResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := timezone.Now()

	admin := model.HotelAdmin{
		ID:           uuid.NewString(),
		HotelCode:    hotelCode,
		HotelName:    req.HotelName,
		PasswordHash: hash,
		IsActive:     true,
		Metadata: sharedModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := service.repo.Insert(ctx, admin); err != nil {
		scope.TraceError(err)

		return dto.CreateAccountResponse{}, fmt.Errorf("failed to create admin account: %w", err)
	}

	scope.AddEvent("admin account created")

	return dto.CreateAccountResponse{
		Message: "Admin account created successfully",
		Admin:   dto.NewAccountItem(admin),
		Success: true,
	}, nil
}

// UpdatePassword rotates an account's password, verifying the current one
// when the caller supplies it.
func (service *serviceImpl) UpdatePassword(ctx context.Context, req dto.UpdatePasswordRequest) (dto.UpdatePasswordResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.admin.UpdatePassword", constant.OtelServiceScopeName))
	defer scope.End()

	hotelCode := strings.ToUpper(req.HotelCode)

	admin, err := service.repo.GetByHotelCode(ctx, hotelCode)
	if err != nil {
		scope.TraceError(err)

		return dto.UpdatePasswordResponse{}, fmt.Errorf("failed to load admin account: %w", err)
	}

	if admin.ID == constant.Empty {
		return dto.UpdatePasswordResponse{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if req.CurrentPassword != constant.Empty {
		if err := password.Verify(req.CurrentPassword, admin.PasswordHash); err != nil {
			return dto.UpdatePasswordResponse{}, failure.Unauthorized("Current password is incorrect") //nolint:wrapcheck
		}
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		scope.TraceError(err)

		return dto.UpdatePasswordResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := service.repo.UpdatePassword(ctx, hotelCode, hash, timezone.Now()); err != nil {
		scope.TraceError(err)

		return dto.UpdatePasswordResponse{}, fmt.Errorf("failed to update password: %w", err)
	}

	scope.AddEvent("admin password updated")

	return dto.UpdatePasswordResponse{
		Message: "Password updated successfully",
		Admin:   dto.NewAccountItem(admin),
		Success: true,
	}, nil
}

// DeleteAccount removes a hotel admin account. The sentinel SUPERADMIN
// account cannot be deleted.
func (service *serviceImpl) DeleteAccount(ctx context.Context, hotelCode string) (dto.DeleteAccountResponse, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.admin.DeleteAccount", constant.OtelServiceScopeName))
	defer scope.End()

	hotelCode = strings.ToUpper(hotelCode)

	if hotelCode == constant.SuperAdminHotelCode {
		return dto.DeleteAccountResponse{}, failure.Forbidden("The SUPERADMIN account cannot be deleted") //nolint:wrapcheck
	}

	admin, err := service.repo.GetByHotelCode(ctx, hotelCode)
	if err != nil {
		scope.TraceError(err)

		return dto.DeleteAccountResponse{}, fmt.Errorf("failed to load admin account: %w", err)
	}

	if admin.ID == constant.Empty {
		return dto.DeleteAccountResponse{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if err := service.repo.DeleteByHotelCode(ctx, hotelCode); err != nil {
		scope.TraceError(err)

		return dto.DeleteAccountResponse{}, fmt.Errorf("failed to delete admin account: %w", err)
	}

	scope.AddEvent("admin account deleted")

	return dto.DeleteAccountResponse{
		Message: "Admin account deleted successfully",
		DeletedAdmin: dto.DeletedAdmin{
			HotelCode: admin.HotelCode,
			HotelName: admin.HotelName,
		},
		Success: true,
	}, nil
}
