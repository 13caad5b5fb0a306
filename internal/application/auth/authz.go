package auth

import "github.com/autopecaspro/gestor-api/internal/domain/entity"

// Ações protegidas por capacidade. O Administrador pode tudo; os demais
// papéis recebem conjuntos explícitos.
const (
	ActionManageParts    = "manage_parts"
	ActionManageSales    = "manage_sales"
	ActionManageOrders   = "manage_service_orders"
	ActionManageFinance  = "manage_finance"
	ActionManageRegistry = "manage_registry"
	ActionManageUsers    = "manage_users"
	ActionViewDashboard  = "view_dashboard"
)

var roleCapabilities = map[string]map[string]bool{
	entity.RoleGerente: {
		ActionManageParts:    true,
		ActionManageSales:    true,
		ActionManageOrders:   true,
		ActionManageFinance:  true,
		ActionManageRegistry: true,
		ActionViewDashboard:  true,
	},
	entity.RoleFuncionario: {
		ActionManageParts:    true,
		ActionManageSales:    true,
		ActionManageOrders:   true,
		ActionManageRegistry: true,
		ActionViewDashboard:  true,
	},
	entity.RoleFinanceiro: {
		ActionManageFinance: true,
		ActionViewDashboard: true,
	},
	entity.RoleMarketing: {
		ActionViewDashboard: true,
	},
	entity.RoleCaixa: {
		ActionManageSales:   true,
		ActionViewDashboard: true,
	},
}

// Can responde se o papel pode executar a ação.
func Can(role, action string) bool {
	if role == entity.RoleAdministrador {
		return true
	}
	caps, ok := roleCapabilities[role]
	return ok && caps[action]
}

// ValidRole responde se o papel é um dos conhecidos.
func ValidRole(role string) bool {
	if role == entity.RoleAdministrador {
		return true
	}
	_, ok := roleCapabilities[role]
	return ok
}
