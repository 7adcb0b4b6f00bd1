package model

// Scope carries the authenticated caller identity through usecases.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
