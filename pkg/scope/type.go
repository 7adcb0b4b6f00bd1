package scope

// Payload is the verified token payload carried through requests.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`

	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Id        string `json:"jti,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
}

// Manager verifies tokens into payloads.
type Manager interface {
	Verify(token string) (Payload, error)
}
