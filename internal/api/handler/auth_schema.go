package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse carries the field-level error list for malformed input.
// Only validation failures get this detail; authentication failures are always
// a single generic message.
type validationErrorResponse struct {
	Errors []fieldErrorItem `json:"errors"`
}

type fieldErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

// sessionResponse is returned by login, register, and validate-token. The
// token itself travels only in the auth_token cookie, never in the body.
type sessionResponse struct {
	UserID string `json:"userId"`
}
