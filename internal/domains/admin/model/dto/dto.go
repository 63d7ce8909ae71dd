package dto

import (
	"time"

	"tm30/internal/domains/admin/model"
)

type LoginRequest struct {
	HotelCode string `json:"hotelCode" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type SuperAdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminInfo struct {
	ID        string `json:"id"`
	HotelCode string `json:"hotelCode"`
	HotelName string `json:"hotelName"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Success bool      `json:"success"`
	Admin   AdminInfo `json:"admin"`
	Token   string    `json:"token"`
}

// AccountItem is the account row shape the management dashboard consumes.
type AccountItem struct {
	ID        string     `json:"id"`
	HotelCode string     `json:"hotel_code"`
	HotelName string     `json:"hotel_name"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `json:"is_active"`
}

func NewAccountItem(admin model.HotelAdmin) AccountItem {
	return AccountItem{
		ID:        admin.ID,
		HotelCode: admin.HotelCode,
		HotelName: admin.HotelName,
		CreatedAt: admin.CreatedAt,
		LastLogin: admin.LastLogin,
		IsActive:  admin.IsActive,
	}
}

type AccountListResponse struct {
	Admins  []AccountItem `json:"admins"`
	Success bool          `json:"success"`
}

type CreateAccountRequest struct {
	HotelCode string `json:"hotel_code" validate:"required"`
	HotelName string `json:"hotel_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

type CreateAccountResponse struct {
	Message string      `json:"message"`
	Admin   AccountItem `json:"admin"`
	Success bool        `json:"success"`
}

type UpdatePasswordRequest struct {
	HotelCode       string `json:"hotel_code" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	CurrentPassword string `json:"current_password"`
}

type UpdatePasswordResponse struct {
	Message string      `json:"message"`
	Admin   AccountItem `json:"admin"`
	Success bool        `json:"success"`
}

type DeletedAdmin struct {
	HotelCode string `json:"hotel_code"`
	HotelName string `json:"hotel_name"`
}

type DeleteAccountResponse struct {
	Message      string       `json:"message"`
	DeletedAdmin DeletedAdmin `json:"deleted_admin"`
	Success      bool         `json:"success"`
}
