package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/stock"
	"github.com/autopecaspro/gestor-api/internal/application/uow"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// UseCase concentra o workflow de vendas e orçamentos. Orçamentos nunca tocam
// estoque; vendas baixam estoque na criação e devolvem na exclusão, sempre na
// mesma transação do cabeçalho e dos itens.
type UseCase struct {
	txRunner  uow.TxRunner
	sales     repository.SaleRepository
	customers repository.CustomerRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner uow.TxRunner, sales repository.SaleRepository, customers repository.CustomerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, sales: sales, customers: customers}
}

// buildItems recalcula cada subtotal (quantidade × preço unitário) e devolve
// as linhas prontas com o total bruto.
func buildItems(reqItems []dto.SaleItemRequest) ([]*entity.SaleItem, decimal.Decimal, error) {
	if len(reqItems) == 0 {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}
	items := make([]*entity.SaleItem, 0, len(reqItems))
	gross := decimal.Zero
	for _, ri := range reqItems {
		if ri.PartID <= 0 || ri.Quantity <= 0 || ri.UnitPrice.IsNegative() {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		subtotal := ri.UnitPrice.Mul(decimal.NewFromInt(int64(ri.Quantity)))
		items = append(items, &entity.SaleItem{
			PartID:    ri.PartID,
			Quantity:  ri.Quantity,
			UnitPrice: ri.UnitPrice,
			Subtotal:  subtotal,
		})
		gross = gross.Add(subtotal)
	}
	return items, gross, nil
}

// AddSale registra uma venda ou orçamento. Vendas baixam o estoque de todas as
// linhas atomicamente: qualquer peça sem saldo aborta a operação inteira.
func (uc *UseCase) AddSale(ctx context.Context, req dto.SaleRequest, userID int64) (*entity.Sale, error) {
	customer, err := uc.customers.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	items, gross, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	if req.Discount.IsNegative() || req.Discount.GreaterThan(gross) {
		return nil, domain.ErrInvalidInput
	}

	sale := &entity.Sale{
		SaleDate:      time.Now(),
		CustomerID:    req.CustomerID,
		TotalAmount:   gross.Sub(req.Discount),
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		UserID:        userID,
		Status:        entity.SaleStatusPendente,
		IsQuote:       req.IsQuote,
	}
	if req.IsQuote {
		sale.Status = entity.SaleStatusOrcamento
	}
	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}

	batchID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if err := r.Sales.Create(sale); err != nil {
			return err
		}
		for _, it := range items {
			it.SaleID = sale.ID
			if err := r.Sales.CreateItem(it); err != nil {
				return err
			}
		}
		if sale.IsQuote {
			return nil
		}
		for _, it := range items {
			if err := stock.RemoveInTx(r, it.PartID, it.Quantity, entity.MovementRefSale, &sale.ID, &userID, batchID); err != nil {
				return err
			}
		}
		return notifyNewSale(r, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale devolve a venda com as linhas.
func (uc *UseCase) GetSale(id int64) (*entity.Sale, []*entity.SaleItem, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.sales.ItemsBySale(id)
	if err != nil {
		return nil, nil, err
	}
	return sale, items, nil
}

// ListSales lista vendas com filtros.
func (uc *UseCase) ListSales(filter repository.SaleFilter) ([]*entity.Sale, error) {
	return uc.sales.List(filter)
}

// UpdateSale regrava a venda inteira com a disciplina devolve-e-reaplica:
// primeiro devolve o estoque das linhas antigas, depois baixa o das novas.
// Vendas pagas não podem ser editadas.
func (uc *UseCase) UpdateSale(ctx context.Context, id int64, req dto.SaleRequest, userID int64) (*entity.Sale, error) {
	current, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if current.Status == entity.SaleStatusPaga {
		return nil, domain.ErrConflict
	}
	customer, err := uc.customers.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	items, gross, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	if req.Discount.IsNegative() || req.Discount.GreaterThan(gross) {
		return nil, domain.ErrInvalidInput
	}

	updated := &entity.Sale{
		ID:            id,
		SaleDate:      current.SaleDate,
		CustomerID:    req.CustomerID,
		TotalAmount:   gross.Sub(req.Discount),
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		UserID:        current.UserID,
		Status:        entity.SaleStatusPendente,
		IsQuote:       req.IsQuote,
	}
	if req.IsQuote {
		updated.Status = entity.SaleStatusOrcamento
	}
	if req.SaleDate != nil {
		updated.SaleDate = *req.SaleDate
	}

	batchID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if !current.IsQuote {
			oldItems, err := r.Sales.ItemsBySale(id)
			if err != nil {
				return err
			}
			for _, it := range oldItems {
				if err := stock.AddInTx(r, it.PartID, it.Quantity, entity.MovementRefSale, &id, &userID, batchID); err != nil {
					return err
				}
			}
		}
		if err := r.Sales.DeleteItems(id); err != nil {
			return err
		}
		if err := r.Sales.Update(updated); err != nil {
			return err
		}
		for _, it := range items {
			it.SaleID = id
			if err := r.Sales.CreateItem(it); err != nil {
				return err
			}
		}
		if updated.IsQuote {
			return nil
		}
		for _, it := range items {
			if err := stock.RemoveInTx(r, it.PartID, it.Quantity, entity.MovementRefSale, &id, &userID, batchID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSale exclui a venda devolvendo o estoque das linhas. Orçamentos são
// excluídos sem tocar estoque. Vendas pagas não podem ser excluídas.
func (uc *UseCase) DeleteSale(ctx context.Context, id int64, userID int64) error {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sale.Status == entity.SaleStatusPaga {
		return domain.ErrConflict
	}
	batchID := uuid.New().String()
	return uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if !sale.IsQuote {
			items, err := r.Sales.ItemsBySale(id)
			if err != nil {
				return err
			}
			for _, it := range items {
				if err := stock.AddInTx(r, it.PartID, it.Quantity, entity.MovementRefSale, &id, &userID, batchID); err != nil {
					return err
				}
			}
		}
		return r.Sales.Delete(id)
	})
}

// ConvertQuoteToSale transforma o orçamento em venda: baixa o estoque das
// linhas, limpa a flag e muda o status para PENDENTE PAGAMENTO.
func (uc *UseCase) ConvertQuoteToSale(ctx context.Context, id int64, userID int64) (*entity.Sale, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !sale.IsQuote {
		return nil, domain.ErrConflict
	}
	sale.IsQuote = false
	sale.Status = entity.SaleStatusPendente

	batchID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		items, err := r.Sales.ItemsBySale(id)
		if err != nil {
			return err
		}
		for _, it := range items {
			if err := stock.RemoveInTx(r, it.PartID, it.Quantity, entity.MovementRefSale, &id, &userID, batchID); err != nil {
				return err
			}
		}
		if err := r.Sales.Update(sale); err != nil {
			return err
		}
		return notifyNewSale(r, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// MarkSalePaid marca a venda como PAGA e lança a receita correspondente no
// financeiro, na mesma transação. Chamada repetida devolve ErrConflict: cada
// venda gera exatamente um lançamento.
func (uc *UseCase) MarkSalePaid(ctx context.Context, id int64, req dto.MarkSalePaidRequest, userID int64) (*entity.Sale, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.IsQuote || sale.Status == entity.SaleStatusPaga {
		return nil, domain.ErrConflict
	}
	sale.Status = entity.SaleStatusPaga
	sale.ClosedByUserID = &userID
	if req.PaymentMethod != "" {
		sale.PaymentMethod = req.PaymentMethod
	}

	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if err := r.Sales.Update(sale); err != nil {
			return err
		}
		saleID := sale.ID
		tx := &entity.FinancialTransaction{
			TransactionDate:   time.Now(),
			Amount:            sale.TotalAmount,
			Type:              entity.TransactionReceita,
			Category:          "Venda",
			Description:       fmt.Sprintf("Recebimento da venda #%d", sale.ID),
			RelatedEntityID:   &saleID,
			RelatedEntityType: entity.RelatedSale,
		}
		return r.Finance.Create(tx)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func notifyNewSale(r uow.Repos, sale *entity.Sale) error {
	saleID := sale.ID
	n := &entity.Notification{
		Type:       entity.NotifNovaVenda,
		Message:    fmt.Sprintf("Nova venda #%d registrada (total R$ %s)", sale.ID, sale.TotalAmount.StringFixed(2)),
		EntityID:   &saleID,
		EntityType: entity.NotifEntitySale,
	}
	return r.Notifications.Create(n)
}
