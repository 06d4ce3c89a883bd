package entity

// Roles con acceso al panel de administración.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Identity es el usuario resuelto por el proveedor de identidad (Supabase Auth).
// No se persiste localmente; Role se completa con la asignación de user_roles.
type Identity struct {
	ID       string
	Email    string
	Audience string
	Role     string
}
