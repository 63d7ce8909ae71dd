package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyAdminID   contextKey = "admin_id"
	ContextKeyHotelCode contextKey = "hotel_code"
	ContextKeyHotelName contextKey = "hotel_name"
	ContextKeyRole      contextKey = "role"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleHotelAdmin = "admin"

	// SuperAdminHotelCode is the sentinel hotel code granting elevated access.
	SuperAdminHotelCode = "SUPERADMIN"
)

const (
	StatusPending  = "PENDING"
	StatusReported = "REPORTED"
	StatusCanceled = "CANCELED"
)

const (
	RequestParamID          = "id"
	RequestParamSearch      = "search"
	RequestParamCheckinDate = "checkinDate"
	RequestParamHotelCode   = "hotel_code"
	RequestParamPhotoURL    = "photoUrl"
	RequestParamPage        = "page"
	RequestParamLimit       = "limit"
	RequestParamSortBy      = "sort_by"
	RequestParamSortDir     = "sort_dir"

	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 50
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	// WireDateFormat is the dd/mm/yyyy text layout the public form and the
	// stored submission rows use for birth/check-in/check-out dates.
	WireDateFormat = "02/01/2006"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderContentLength      = "Content-Length"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
