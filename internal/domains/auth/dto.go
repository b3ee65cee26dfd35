package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// TokenRequest is the body of POST /jwt. The client sends its user object;
// only the email matters for the token, extra fields are ignored.
type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}

// TokenResponse acknowledges that the cookie was set.
type TokenResponse struct {
	Success bool `json:"success"`
}
