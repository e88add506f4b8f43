package entities

// Role is the approval role carried by an authenticated user.
type Role string

const (
	RoleClassificacao Role = "classificacao"
	RoleEngenharia    Role = "engenharia"
	RoleDiretoria     Role = "diretoria"
	RoleAdmin         Role = "admin"
	RoleUser          Role = "user"
)

// Actor is the user performing an operation, as read from the request token.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
