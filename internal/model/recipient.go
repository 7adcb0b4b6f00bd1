package model

// Recipient roles.
const (
	RoleAdmin = "admin"
	RoleMiner = "miner"
)

// Recipient is one roster entry from the recipient directory. The directory is
// owned elsewhere; this service only reads it. Contact is plaintext here,
// the repository decrypts it on read.
type Recipient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"phone"`
	Role     string `json:"role"`
	Location string `json:"location"`
}
