package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"
	HeaderRetryAfter    = "Retry-After"

	// Rate limit headers
	HeaderRateLimitLimitMinute     = "X-RateLimit-Limit-Minute"
	HeaderRateLimitLimitHour       = "X-RateLimit-Limit-Hour"
	HeaderRateLimitRemainingMinute = "X-RateLimit-Remaining-Minute"
	HeaderRateLimitRemainingHour   = "X-RateLimit-Remaining-Hour"
	HeaderRateLimitResetMinute     = "X-RateLimit-Reset-Minute"
	HeaderRateLimitResetHour       = "X-RateLimit-Reset-Hour"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// User status
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusPending  = "pending"

	// Database table names
	TableUsers          = "users"
	TableCars           = "cars"
	TableBuildLists     = "build_lists"
	TableBuildListItems = "build_list_items"
	TableParts          = "parts"
	TableVotes          = "votes"
	TableReports        = "reports"
	TablePlans          = "plans"
	TableSubscriptions  = "subscriptions"

	// Default values
	DefaultUserStatus = UserStatusPending

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
	ErrMsgTooManyRequests     = "Too many requests"
)
