package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeCSRF               = "CSRF_INVALID"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a user-facing message.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsCode reports whether err is a domain error with the given code.
func IsCode(err error, code string) bool {
	de, ok := AsDomainError(err)
	return ok && de.Code == code
}

// Common domain errors
var (
	ErrInvalidCredentials     = NewDomainError(ErrCodeInvalidCredentials, "Email ou mot de passe incorrect")
	ErrInvalidEmail           = NewValidationError("Email invalide")
	ErrCSRFInvalid            = NewDomainError(ErrCodeCSRF, "Token de sécurité invalide. Veuillez rafraîchir la page.")
	ErrTooManyAttempts        = NewDomainError(ErrCodeRateLimited, "Trop de tentatives de connexion. Réessayez dans 15 minutes.")
	ErrUnauthorised           = NewDomainError(ErrCodeUnauthorised, "Authentification requise")
	ErrAdminNotFound          = NewDomainError(ErrCodeNotFound, "Compte administrateur introuvable")
	ErrRestaurantNotFound     = NewDomainError(ErrCodeNotFound, "Profil du restaurant introuvable")
	ErrMenuItemNotFound       = NewDomainError(ErrCodeNotFound, "Plat introuvable")
	ErrGalleryImageNotFound   = NewDomainError(ErrCodeNotFound, "Image introuvable")
	ErrInstagramNotFound      = NewDomainError(ErrCodeNotFound, "Publication Instagram introuvable")
	ErrTitleRequired          = NewValidationError("Le titre est requis")
	ErrRestaurantNameRequired = NewValidationError("Le nom du restaurant est requis")
	ErrInvalidPrice           = NewValidationError("Prix invalide (doit être entre 0 et 9999.99)")
	ErrImageURLRequired       = NewValidationError("L'URL de l'image est requise")
	ErrPostURLRequired        = NewValidationError("L'URL de la publication est requise")
	ErrInvalidPostType        = NewValidationError("Type de publication invalide (post, reel ou video)")
	ErrEmptyReorder           = NewValidationError("La liste d'ordre est vide")
	ErrPasswordFieldsEmpty    = NewValidationError("Tous les champs sont requis")
	ErrPasswordTooShort       = NewValidationError("Le nouveau mot de passe doit faire au moins 8 caractères")
	ErrPasswordMismatch       = NewValidationError("Les mots de passe ne correspondent pas")
	ErrCurrentPasswordWrong   = NewValidationError("Mot de passe actuel incorrect")
)
