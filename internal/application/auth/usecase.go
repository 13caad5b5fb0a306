package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
	"github.com/autopecaspro/gestor-api/pkg/config"
	"github.com/autopecaspro/gestor-api/pkg/jwt"
)

// UseCase autenticação (login com bcrypt + JWT) e gestão de usuários.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
}

// NewUseCase constrói o caso de uso.
func NewUseCase(users repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica as credenciais e emite o token. Usuário inexistente,
// inativo ou senha errada devolvem o mesmo ErrUnauthorized.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// CreateUser cadastra um usuário com a senha em hash bcrypt.
func (uc *UseCase) CreateUser(req dto.CreateUserRequest) (*entity.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < 6 || !ValidRole(req.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser obtém um usuário por ID.
func (uc *UseCase) GetUser(id int64) (*entity.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// UpdateUser regrava o usuário; senha vazia mantém o hash atual.
func (uc *UseCase) UpdateUser(id int64, req dto.UpdateUserRequest) (*entity.User, error) {
	current, err := uc.GetUser(id)
	if err != nil {
		return nil, err
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || !ValidRole(req.Role) {
		return nil, domain.ErrInvalidInput
	}
	if username != current.Username {
		existing, err := uc.users.GetByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	current.Username = username
	current.Role = req.Role
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = string(hash)
	}
	if err := uc.users.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

// DeleteUser remove o usuário.
func (uc *UseCase) DeleteUser(id int64) error {
	return uc.users.Delete(id)
}

// ListUsers lista usuários paginados.
func (uc *UseCase) ListUsers(limit, offset int) ([]*entity.User, error) {
	return uc.users.List(limit, offset)
}
