package sdk

// LoginCredentials are the credentials submitted with a login request.
// They are transient; nothing retains them after the request resolves.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupCredentials are the credentials submitted with a signup request.
// They are transient; nothing retains them after the request resolves.
type SignupCredentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorDetail is one entry of the structured error block optionally
// carried by an unsuccessful auth response.
type ErrorDetail struct {
	Message string `json:"message"`
}

// AuthError is the structured error block optionally carried by an
// unsuccessful auth response.
type AuthError struct {
	Details []ErrorDetail `json:"details"`
}

// AuthResponse is the auth service's response to a signup or login
// request. Success is signaled in the body, not by HTTP status.
type AuthResponse struct {
	Success  bool       `json:"success"`
	Message  string     `json:"message"`
	JWTToken string     `json:"jwtToken"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Error    *AuthError `json:"error,omitempty"`
}
