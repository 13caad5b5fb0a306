package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autopecaspro/gestor-api/internal/application/auth"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role   string
		action string
		want   bool
	}{
		{entity.RoleAdministrador, auth.ActionManageUsers, true},
		{entity.RoleAdministrador, auth.ActionManageFinance, true},
		{entity.RoleGerente, auth.ActionManageParts, true},
		{entity.RoleGerente, auth.ActionManageFinance, true},
		{entity.RoleGerente, auth.ActionManageUsers, false},
		{entity.RoleFuncionario, auth.ActionManageSales, true},
		{entity.RoleFuncionario, auth.ActionManageFinance, false},
		{entity.RoleFuncionario, auth.ActionManageUsers, false},
		{entity.RoleFinanceiro, auth.ActionManageFinance, true},
		{entity.RoleFinanceiro, auth.ActionManageParts, false},
		{entity.RoleMarketing, auth.ActionViewDashboard, true},
		{entity.RoleMarketing, auth.ActionManageSales, false},
		{entity.RoleCaixa, auth.ActionManageSales, true},
		{entity.RoleCaixa, auth.ActionManageOrders, false},
		{"Estagiário", auth.ActionViewDashboard, false},
		{"", auth.ActionViewDashboard, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, auth.Can(tt.role, tt.action), "role=%s action=%s", tt.role, tt.action)
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{
		entity.RoleAdministrador,
		entity.RoleGerente,
		entity.RoleFuncionario,
		entity.RoleFinanceiro,
		entity.RoleMarketing,
		entity.RoleCaixa,
	} {
		assert.True(t, auth.ValidRole(role), role)
	}
	assert.False(t, auth.ValidRole("Estagiário"))
	assert.False(t, auth.ValidRole(""))
}
