package entity

import "time"

// Roles válidos para User.
const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAgency     = "agency"
	RoleAdmin      = "admin"
)

// IsProviderRole indica si el rol corresponde a un proveedor de servicios
// (quien publica servicios y recibe cotizaciones).
func IsProviderRole(role string) bool {
	return role == RoleFreelancer || role == RoleAgency
}

// User representa un usuario del sistema. El core de autorización solo
// consume ID y Role; el resto es perfil.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // client, freelancer, agency, admin
	Country      string
	Company      string // opcional, solo agencias suelen llenarlo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
