package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/auth"
	"github.com/autopecaspro/gestor-api/internal/application/dto"
)

// AuthHandler trata login e gestão de usuários.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar e obter token JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Cadastrar usuário
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Dados do usuário"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if !parseBody(c, &in) {
		return nil
	}
	user, err := h.uc.CreateUser(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

// GetUser godoc
// @Summary      Obter usuário por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	user, err := h.uc.GetUser(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

// ListUsers godoc
// @Summary      Listar usuários
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	list, err := h.uc.ListUsers(limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewUserResponses(list))
}

// UpdateUser godoc
// @Summary      Atualizar usuário (senha vazia mantém a atual)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do usuário"
// @Param        body  body  dto.UpdateUserRequest  true  "Dados do usuário"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateUserRequest
	if !parseBody(c, &in) {
		return nil
	}
	user, err := h.uc.UpdateUser(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

// DeleteUser godoc
// @Summary      Remover usuário
// @Tags         users
// @Security     Bearer
// @Param        id  path  int  true  "ID do usuário"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteUser(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
