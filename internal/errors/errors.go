package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering or updating to an email
	// that already belongs to another user.
	ErrEmailTaken = errors.New("Email já cadastrado")
	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password share this error so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Credenciais inválidas")
	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("Usuário não encontrado")
	// ErrWorkshopNotFound is returned when a workshop id does not exist.
	ErrWorkshopNotFound = errors.New("Oficina não encontrada")
	// ErrEnrollmentNotFound is returned when an enrollment id does not exist.
	ErrEnrollmentNotFound = errors.New("Inscrição não encontrada")
	// ErrVolunteerNotFound is returned when a volunteer id does not exist.
	ErrVolunteerNotFound = errors.New("Voluntário não encontrado")
	// ErrDuplicateEnrollment is returned when the user already holds an
	// enrollment for the same workshop.
	ErrDuplicateEnrollment = errors.New("Você já está inscrito nesta oficina")
	// ErrDuplicateVolunteer is returned when the user already has a
	// volunteer record.
	ErrDuplicateVolunteer = errors.New("Este usuário já está cadastrado como voluntário")
	// ErrInvalidToken is returned when a refresh token is invalid or expired.
	ErrInvalidToken = errors.New("Token inválido ou expirado")
)

// ErrorResponse is the JSON body of every failure. The erro field is the
// human-readable message the client shows verbatim.
type ErrorResponse struct {
	Erro string `json:"erro"`
	Code string `json:"code,omitempty"`
}

// HTTPError pairs a domain error with its transport status.
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
		Erro: e.Message,
		Code: e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors
// (store failures included) collapse to a generic 500 so internal detail
// never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrWorkshopNotFound):
		return NewHTTPError(http.StatusNotFound, ErrWorkshopNotFound.Error(), "WORKSHOP_NOT_FOUND")
	case errors.Is(err, ErrEnrollmentNotFound):
		return NewHTTPError(http.StatusNotFound, ErrEnrollmentNotFound.Error(), "ENROLLMENT_NOT_FOUND")
	case errors.Is(err, ErrVolunteerNotFound):
		return NewHTTPError(http.StatusNotFound, ErrVolunteerNotFound.Error(), "VOLUNTEER_NOT_FOUND")
	case errors.Is(err, ErrDuplicateEnrollment):
		return NewHTTPError(http.StatusBadRequest, ErrDuplicateEnrollment.Error(), "DUPLICATE_ENROLLMENT")
	case errors.Is(err, ErrDuplicateVolunteer):
		return NewHTTPError(http.StatusConflict, ErrDuplicateVolunteer.Error(), "DUPLICATE_VOLUNTEER")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Erro interno do servidor", "INTERNAL_ERROR")
	}
}
