package model

import (
	"time"

	sharedModel "tm30/shared/model"
)

const (
	TableName  = "hotel_admins"
	EntityName = "hotel_admin"

	FieldID           = "id"
	FieldHotelCode    = "hotel_code"
	FieldHotelName    = "hotel_name"
	FieldPasswordHash = "password_hash"
	FieldLastLogin    = "last_login"
	FieldIsActive     = "is_active"
)

const (
	SuperAdminTableName  = "super_admins"
	SuperAdminEntityName = "super_admin"

	FieldUsername = "username"
	FieldFullName = "full_name"
)

// HotelAdmin is a dashboard account scoped to exactly one hotel. The
// sentinel SUPERADMIN code grants elevated access and cannot be deleted.
type HotelAdmin struct {
	ID           string     `db:"id"`
	HotelCode    string     `db:"hotel_code"`
	HotelName    string     `db:"hotel_name"`
	PasswordHash string     `db:"password_hash"`
	LastLogin    *time.Time `db:"last_login"`
	IsActive     bool       `db:"is_active"`
	sharedModel.Metadata
}

// SuperAdmin is a cross-hotel operator account.
type SuperAdmin struct {
	ID           string     `db:"id"`
	Username     string     `db:"username"`
	FullName     string     `db:"full_name"`
	PasswordHash string     `db:"password_hash"`
	LastLogin    *time.Time `db:"last_login"`
	IsActive     bool       `db:"is_active"`
	sharedModel.Metadata
}
