package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The storefront and admin frontends map these codes to display messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidStatus = "VALIDATION_INVALID_STATUS"
	ValidationEmptyIDList   = "VALIDATION_EMPTY_ID_LIST"
	ValidationRequired      = "VALIDATION_REQUIRED"
	ValidationAddressFields = "VALIDATION_ADDRESS_FIELDS"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Catalog (PRODUCT_ / CATEGORY_ / BRAND_) ====================
	ProductNotFound     = "PRODUCT_NOT_FOUND"
	ProductOutOfStock   = "PRODUCT_OUT_OF_STOCK"
	ProductInactive     = "PRODUCT_INACTIVE"
	ProductSlugExists   = "PRODUCT_SLUG_EXISTS"
	ProductInvalidBulk  = "PRODUCT_INVALID_BULK_ACTION"
	CategoryNotFound    = "CATEGORY_NOT_FOUND"
	BrandNotFound       = "BRAND_NOT_FOUND"
	CollectionNotFound  = "COLLECTION_NOT_FOUND"
	BannerNotFound      = "BANNER_NOT_FOUND"
	PageBannerNotFound  = "PAGE_BANNER_NOT_FOUND"
	PageBannerPageTaken = "PAGE_BANNER_PAGE_TAKEN"

	// ==================== Cart (CART_) ====================
	CartItemNotFound  = "CART_ITEM_NOT_FOUND"
	CartEmptyCheckout = "CART_EMPTY_CHECKOUT"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound       = "ORDER_NOT_FOUND"
	OrderNotCancellable = "ORDER_NOT_CANCELLABLE"
	OrderPhoneMismatch  = "ORDER_PHONE_MISMATCH"
	OrderEmptyItems     = "ORDER_EMPTY_ITEMS"
	OrderStockShortage  = "ORDER_INSUFFICIENT_STOCK"

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING"
	ReviewAlreadyExists = "REVIEW_ALREADY_EXISTS"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
