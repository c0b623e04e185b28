package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user exists for the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrWrongPassword is returned when the password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")
	// ErrTokenMissing is returned when no bearer token accompanies the request.
	ErrTokenMissing = errors.New("missing token")
	// ErrTokenInvalid is returned when the token is malformed, expired or badly signed.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrInsufficientRole is returned when the caller's role does not permit the operation.
	ErrInsufficientRole = errors.New("insufficient role")
	// ErrNotCommentAuthor is returned when editing a comment owned by someone else.
	ErrNotCommentAuthor = errors.New("not the comment author")
	// ErrPlaceNotFound is returned when the referenced place does not exist.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrCommentNotFound is returned when the referenced comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// collapses to a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrWrongPassword:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "WRONG_PASSWORD")
	case ErrTokenMissing:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_MISSING")
	case ErrTokenInvalid:
		return NewHTTPError(http.StatusForbidden, err.Error(), "TOKEN_INVALID")
	case ErrInsufficientRole:
		return NewHTTPError(http.StatusForbidden, err.Error(), "INSUFFICIENT_ROLE")
	case ErrNotCommentAuthor:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_COMMENT_AUTHOR")
	case ErrPlaceNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLACE_NOT_FOUND")
	case ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
