package serviceorders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/application/stock"
	"github.com/autopecaspro/gestor-api/internal/application/uow"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
	"github.com/autopecaspro/gestor-api/pkg/textutil"
)

// UseCase concentra o workflow de ordens de serviço. Linhas de peça baixam
// estoque; linhas de serviço puro não. Status são etiquetas livres: mudar para
// Cancelada não devolve estoque, apenas a exclusão da OS devolve.
type UseCase struct {
	txRunner  uow.TxRunner
	orders    repository.ServiceOrderRepository
	customers repository.CustomerRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner uow.TxRunner, orders repository.ServiceOrderRepository, customers repository.CustomerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, orders: orders, customers: customers}
}

// buildItems valida as linhas (peça OU serviço, nunca ambos), recalcula
// subtotais e devolve o custo de peças e o bruto dos itens.
func buildItems(reqItems []dto.ServiceOrderItemRequest) ([]*entity.ServiceOrderItem, decimal.Decimal, decimal.Decimal, error) {
	items := make([]*entity.ServiceOrderItem, 0, len(reqItems))
	partsCost := decimal.Zero
	gross := decimal.Zero
	for _, ri := range reqItems {
		if ri.Quantity <= 0 || ri.UnitPrice.IsNegative() {
			return nil, decimal.Zero, decimal.Zero, domain.ErrInvalidInput
		}
		isPart := ri.PartID != nil && *ri.PartID > 0
		if isPart == ri.IsService {
			return nil, decimal.Zero, decimal.Zero, domain.ErrInvalidInput
		}
		if ri.IsService && strings.TrimSpace(ri.Description) == "" {
			return nil, decimal.Zero, decimal.Zero, domain.ErrInvalidInput
		}
		subtotal := ri.UnitPrice.Mul(decimal.NewFromInt(int64(ri.Quantity)))
		items = append(items, &entity.ServiceOrderItem{
			PartID:      ri.PartID,
			Quantity:    ri.Quantity,
			UnitPrice:   ri.UnitPrice,
			Subtotal:    subtotal,
			IsService:   ri.IsService,
			Description: strings.TrimSpace(ri.Description),
		})
		gross = gross.Add(subtotal)
		if isPart {
			partsCost = partsCost.Add(subtotal)
		}
	}
	return items, partsCost, gross, nil
}

func orderFromRequest(req dto.ServiceOrderRequest, partsCost, gross decimal.Decimal) *entity.ServiceOrder {
	order := &entity.ServiceOrder{
		OrderDate:      time.Now(),
		CustomerID:     req.CustomerID,
		VehicleMake:    strings.TrimSpace(req.VehicleMake),
		VehicleModel:   strings.TrimSpace(req.VehicleModel),
		VehicleYear:    strings.TrimSpace(req.VehicleYear),
		VehiclePlate:   textutil.NormalizeCode(req.VehiclePlate),
		Description:    strings.TrimSpace(req.Description),
		Status:         entity.OSStatusPendente,
		TotalAmount:    req.LaborCost.Add(gross),
		LaborCost:      req.LaborCost,
		PartsCost:      partsCost,
		AssignedUserID: req.AssignedUserID,
		StartDate:      req.StartDate,
		PaymentStatus:  entity.OSPaymentPendente,
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	return order
}

// AddOrder registra a OS baixando o estoque das linhas de peça atomicamente.
func (uc *UseCase) AddOrder(ctx context.Context, req dto.ServiceOrderRequest, userID int64) (*entity.ServiceOrder, error) {
	customer, err := uc.customers.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if req.LaborCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	items, partsCost, gross, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	order := orderFromRequest(req, partsCost, gross)

	batchID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if err := r.ServiceOrders.Create(order); err != nil {
			return err
		}
		for _, it := range items {
			it.ServiceOrderID = order.ID
			if err := r.ServiceOrders.CreateItem(it); err != nil {
				return err
			}
		}
		for _, it := range items {
			if it.IsService {
				continue
			}
			if err := stock.RemoveInTx(r, *it.PartID, it.Quantity, entity.MovementRefServiceOrder, &order.ID, &userID, batchID); err != nil {
				return err
			}
		}
		orderID := order.ID
		n := &entity.Notification{
			Type:       entity.NotifNovaOS,
			Message:    fmt.Sprintf("Nova ordem de serviço #%d aberta", order.ID),
			EntityID:   &orderID,
			EntityType: entity.NotifEntityServiceOrder,
		}
		return r.Notifications.Create(n)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder devolve a OS com as linhas.
func (uc *UseCase) GetOrder(id int64) (*entity.ServiceOrder, []*entity.ServiceOrderItem, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	items, err := uc.orders.ItemsByOrder(id)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// ListOrders lista OS com filtros.
func (uc *UseCase) ListOrders(filter repository.ServiceOrderFilter) ([]*entity.ServiceOrder, error) {
	return uc.orders.List(filter)
}

// UpdateOrder regrava a OS com a disciplina devolve-e-reaplica nas linhas de
// peça. Status e status de pagamento atuais são preservados.
func (uc *UseCase) UpdateOrder(ctx context.Context, id int64, req dto.ServiceOrderRequest, userID int64) (*entity.ServiceOrder, error) {
	current, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if req.LaborCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	items, partsCost, gross, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	updated := orderFromRequest(req, partsCost, gross)
	updated.ID = id
	updated.Status = current.Status
	updated.PaymentStatus = current.PaymentStatus
	updated.EndDate = current.EndDate

	batchID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		oldItems, err := r.ServiceOrders.ItemsByOrder(id)
		if err != nil {
			return err
		}
		for _, it := range oldItems {
			if it.IsService {
				continue
			}
			if err := stock.AddInTx(r, *it.PartID, it.Quantity, entity.MovementRefServiceOrder, &id, &userID, batchID); err != nil {
				return err
			}
		}
		if err := r.ServiceOrders.DeleteItems(id); err != nil {
			return err
		}
		if err := r.ServiceOrders.Update(updated); err != nil {
			return err
		}
		for _, it := range items {
			it.ServiceOrderID = id
			if err := r.ServiceOrders.CreateItem(it); err != nil {
				return err
			}
		}
		for _, it := range items {
			if it.IsService {
				continue
			}
			if err := stock.RemoveInTx(r, *it.PartID, it.Quantity, entity.MovementRefServiceOrder, &id, &userID, batchID); err != nil {
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

// UpdateStatus muda o status da OS. Concluída carimba end_date. Qualquer
// transição é permitida; Cancelada não mexe em estoque.
func (uc *UseCase) UpdateStatus(ctx context.Context, id int64, status string) (*entity.ServiceOrder, error) {
	switch status {
	case entity.OSStatusPendente, entity.OSStatusEmAndamento, entity.OSStatusConcluida, entity.OSStatusCancelada:
	default:
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	var endDate *time.Time
	if status == entity.OSStatusConcluida {
		now := time.Now()
		endDate = &now
	}
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if err := r.ServiceOrders.UpdateStatus(id, status, endDate); err != nil {
			return err
		}
		orderID := id
		n := &entity.Notification{
			Type:       entity.NotifOSAtualizada,
			Message:    fmt.Sprintf("Ordem de serviço #%d: %s", id, status),
			EntityID:   &orderID,
			EntityType: entity.NotifEntityServiceOrder,
		}
		return r.Notifications.Create(n)
	})
	if err != nil {
		return nil, err
	}
	order.Status = status
	if endDate != nil {
		order.EndDate = endDate
	}
	return order, nil
}

// UpdatePaymentStatus muda o status de pagamento. A primeira transição para
// Pago lança a receita correspondente no financeiro, na mesma transação.
func (uc *UseCase) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) (*entity.ServiceOrder, error) {
	switch paymentStatus {
	case entity.OSPaymentPendente, entity.OSPaymentPago, entity.OSPaymentParcial:
	default:
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	becamePaid := paymentStatus == entity.OSPaymentPago && order.PaymentStatus != entity.OSPaymentPago
	err = uc.txRunner.Run(ctx, func(r uow.Repos) error {
		if err := r.ServiceOrders.UpdatePaymentStatus(id, paymentStatus); err != nil {
			return err
		}
		if !becamePaid {
			return nil
		}
		orderID := id
		tx := &entity.FinancialTransaction{
			TransactionDate:   time.Now(),
			Amount:            order.TotalAmount,
			Type:              entity.TransactionReceita,
			Category:          "Ordem de Serviço",
			Description:       fmt.Sprintf("Recebimento da OS #%d", id),
			RelatedEntityID:   &orderID,
			RelatedEntityType: entity.RelatedServiceOrder,
		}
		return r.Finance.Create(tx)
	})
	if err != nil {
		return nil, err
	}
	order.PaymentStatus = paymentStatus
	return order, nil
}

// DeleteOrder exclui a OS devolvendo o estoque das linhas de peça.
func (uc *UseCase) DeleteOrder(ctx context.Context, id int64, userID int64) error {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	batchID := uuid.New().String()
	return uc.txRunner.Run(ctx, func(r uow.Repos) error {
		items, err := r.ServiceOrders.ItemsByOrder(id)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it.IsService {
				continue
			}
			if err := stock.AddInTx(r, *it.PartID, it.Quantity, entity.MovementRefServiceOrder, &id, &userID, batchID); err != nil {
				return err
			}
		}
		return r.ServiceOrders.Delete(id)
	})
}
