package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed database error: a stable code plus a message safe to
// return to clients. The raw error text stays in the logs.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps database errors to client-safe codes and messages. The
// context string ("product", "order", ...) selects the not-found wording.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong"}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	// Postgres unique violation (23505)
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// Foreign key violation (23503)
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{Code: ResourceConflict, Message: "The record is referenced by other data"}
	}

	// Not-null violation (23502)
	if strings.Contains(errStr, "violates not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "A backing service is unavailable. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Something went wrong. Please try again later",
	}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	switch {
	case strings.Contains(errStr, "idx_reviews_product_user"):
		return ErrorInfo{Code: ReviewAlreadyExists, Message: "You have already reviewed this product"}
	case strings.Contains(errStr, "idx_products_slug"), strings.Contains(errStr, "products") && strings.Contains(errStr, "slug"):
		return ErrorInfo{Code: ProductSlugExists, Message: "A product with this slug already exists"}
	case strings.Contains(errStr, "idx_users_email"), strings.Contains(errStr, "email"):
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "This email is already registered"}
	case strings.Contains(errStr, "idx_page_banners_page"):
		return ErrorInfo{Code: PageBannerPageTaken, Message: "This page already has a banner"}
	case strings.Contains(errStr, "slug"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This slug is already in use"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "The record already exists"}
}

func notFoundMessage(context string) string {
	switch strings.ToLower(context) {
	case "product":
		return "Product not found"
	case "order":
		return "Order not found"
	case "review":
		return "Review not found"
	case "category":
		return "Category not found"
	case "brand":
		return "Brand not found"
	case "user":
		return "User not found"
	}
	return "The requested record was not found"
}
