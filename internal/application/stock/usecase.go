package stock

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/uow"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
	"github.com/autopecaspro/gestor-api/pkg/textutil"
)

// UseCase concentra o cadastro de peças e os ajustes manuais de estoque.
// Toda mutação de estoque passa pelo ledger (RemoveInTx/AddInTx) dentro de
// uma transação.
type UseCase struct {
	txRunner  uow.TxRunner
	parts     repository.PartRepository
	movements repository.StockMovementRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner uow.TxRunner, parts repository.PartRepository, movements repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, parts: parts, movements: movements}
}

func partFromRequest(req dto.PartRequest) *entity.Part {
	return &entity.Part{
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		PartNumber:    textutil.NormalizeCode(req.PartNumber),
		Manufacturer:  strings.TrimSpace(req.Manufacturer),
		Price:         req.Price,
		Cost:          req.Cost,
		Stock:         req.Stock,
		MinStock:      req.MinStock,
		Location:      strings.TrimSpace(req.Location),
		SupplierID:    req.SupplierID,
		Category:      strings.TrimSpace(req.Category),
		OriginalCode:  textutil.NormalizeCode(req.OriginalCode),
		SimilarCode01: textutil.NormalizeCode(req.SimilarCode01),
		SimilarCode02: textutil.NormalizeCode(req.SimilarCode02),
		Barcode:       strings.TrimSpace(req.Barcode),
	}
}

// CreatePart cadastra a peça. Estoque inicial positivo gera o movimento
// manual de ENTRADA correspondente, na mesma transação.
func (uc *UseCase) CreatePart(ctx context.Context, req dto.PartRequest, userID *int64) (*entity.Part, error) {
	part := partFromRequest(req)
	if part.Name == "" || part.PartNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if part.Price.IsNegative() || part.Cost.IsNegative() || part.Stock < 0 || part.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.parts.GetByPartNumber(part.PartNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	initialStock := part.Stock
	part.Stock = 0
	batchID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if err := r.Parts.Create(part); err != nil {
			return err
		}
		if initialStock > 0 {
			return AddInTx(r, part.ID, initialStock, entity.MovementRefManual, nil, userID, batchID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	part.Stock = initialStock
	return part, nil
}

// GetPart obtém uma peça por ID.
func (uc *UseCase) GetPart(id int64) (*entity.Part, error) {
	part, err := uc.parts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return part, nil
}

// UpdatePart atualiza os dados cadastrais. O estoque não muda por aqui; ver
// AddStock/RemoveStock.
func (uc *UseCase) UpdatePart(id int64, req dto.PartRequest) (*entity.Part, error) {
	current, err := uc.GetPart(id)
	if err != nil {
		return nil, err
	}
	part := partFromRequest(req)
	if part.Name == "" || part.PartNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if part.Price.IsNegative() || part.Cost.IsNegative() || part.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if part.PartNumber != current.PartNumber {
		existing, err := uc.parts.GetByPartNumber(part.PartNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	part.ID = id
	part.Stock = current.Stock
	part.CreatedAt = current.CreatedAt
	if err := uc.parts.Update(part); err != nil {
		return nil, err
	}
	return part, nil
}

// DeletePart remove a peça. Peças referenciadas por vendas ou OS devolvem
// ErrConflict (FK).
func (uc *UseCase) DeletePart(id int64) error {
	return uc.parts.Delete(id)
}

// ListParts lista peças paginadas.
func (uc *UseCase) ListParts(limit, offset int) ([]*entity.Part, error) {
	return uc.parts.List(limit, offset)
}

// SearchParts busca por nome, códigos (normalizados), fabricante ou ID.
func (uc *UseCase) SearchParts(query string, limit, offset int) ([]*entity.Part, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.parts.List(limit, offset)
	}
	return uc.parts.Search(textutil.FoldAccents(query), limit, offset)
}

// LowStockParts devolve as peças em ou abaixo do mínimo.
func (uc *UseCase) LowStockParts() ([]*entity.Part, error) {
	return uc.parts.BelowMinStock()
}

// AddStock registra uma entrada manual de estoque.
func (uc *UseCase) AddStock(ctx context.Context, partID int64, qty int, userID *int64) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	batchID := uuid.New().String()
	return uc.txRunner.Run(ctx, func(r uow.Repos) error {
		return AddInTx(r, partID, qty, entity.MovementRefManual, nil, userID, batchID)
	})
}

// RemoveStock registra uma saída manual de estoque. Nunca deixa a contagem
// negativa (ErrInsufficientStock).
func (uc *UseCase) RemoveStock(ctx context.Context, partID int64, qty int, userID *int64) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	batchID := uuid.New().String()
	return uc.txRunner.Run(ctx, func(r uow.Repos) error {
		return RemoveInTx(r, partID, qty, entity.MovementRefManual, nil, userID, batchID)
	})
}

// Movements devolve o histórico de movimentos da peça.
func (uc *UseCase) Movements(partID int64, limit, offset int) ([]*entity.StockMovement, error) {
	part, err := uc.parts.GetByID(partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movements.ListByPart(partID, limit, offset)
}
