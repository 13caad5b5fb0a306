package entity

import "time"

// Papéis de usuário do sistema.
const (
	RoleAdministrador = "Administrador"
	RoleGerente       = "Gerente"
	RoleFuncionario   = "Funcionário"
	RoleFinanceiro    = "Financeiro"
	RoleMarketing     = "Marketing"
	RoleCaixa         = "Caixa"
)

// User representa um usuário do sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
