package models

// Credentials is the username/password pair submitted at login.
// Transient: built per login request, never persisted or logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserProfile is the normalized directory profile of an authenticated user.
type UserProfile struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// LoginResult is the response body of POST /auth/login.
type LoginResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *UserProfile `json:"user,omitempty"`
}
