package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

const serviceOrderColumns = `id, order_date, customer_id, COALESCE(vehicle_make, ''), COALESCE(vehicle_model, ''),
	COALESCE(vehicle_year, ''), COALESCE(vehicle_plate, ''), COALESCE(description, ''), status,
	total_amount, labor_cost, parts_cost, assigned_user_id, start_date, end_date,
	payment_status, created_at, updated_at`

// ServiceOrderRepo implementação de ServiceOrderRepository (usável com pool ou tx).
type ServiceOrderRepo struct {
	q Querier
}

// NewServiceOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewServiceOrderRepository(q Querier) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q}
}

func scanServiceOrder(row pgx.Row) (*entity.ServiceOrder, error) {
	var o entity.ServiceOrder
	err := row.Scan(
		&o.ID, &o.OrderDate, &o.CustomerID, &o.VehicleMake, &o.VehicleModel,
		&o.VehicleYear, &o.VehiclePlate, &o.Description, &o.Status,
		&o.TotalAmount, &o.LaborCost, &o.PartsCost, &o.AssignedUserID, &o.StartDate, &o.EndDate,
		&o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste a OS e preenche o ID gerado.
func (r *ServiceOrderRepo) Create(order *entity.ServiceOrder) error {
	query := `
		INSERT INTO service_orders (order_date, customer_id, vehicle_make, vehicle_model,
			vehicle_year, vehicle_plate, description, status, total_amount, labor_cost,
			parts_cost, assigned_user_id, start_date, end_date, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		order.OrderDate, order.CustomerID,
		nullIfEmpty(order.VehicleMake), nullIfEmpty(order.VehicleModel),
		nullIfEmpty(order.VehicleYear), nullIfEmpty(order.VehiclePlate),
		nullIfEmpty(order.Description), order.Status, order.TotalAmount, order.LaborCost,
		order.PartsCost, order.AssignedUserID, order.StartDate, order.EndDate, order.PaymentStatus,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert service order: %w", err)
	}
	return nil
}

// GetByID obtém uma OS por ID.
func (r *ServiceOrderRepo) GetByID(id int64) (*entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE id = $1`
	o, err := scanServiceOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service order: %w", err)
	}
	return o, nil
}

// Update grava o cabeçalho completo da OS.
func (r *ServiceOrderRepo) Update(order *entity.ServiceOrder) error {
	query := `
		UPDATE service_orders
		SET order_date = $2, customer_id = $3, vehicle_make = $4, vehicle_model = $5,
		    vehicle_year = $6, vehicle_plate = $7, description = $8, status = $9,
		    total_amount = $10, labor_cost = $11, parts_cost = $12, assigned_user_id = $13,
		    start_date = $14, end_date = $15, payment_status = $16, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.CustomerID,
		nullIfEmpty(order.VehicleMake), nullIfEmpty(order.VehicleModel),
		nullIfEmpty(order.VehicleYear), nullIfEmpty(order.VehiclePlate),
		nullIfEmpty(order.Description), order.Status, order.TotalAmount, order.LaborCost,
		order.PartsCost, order.AssignedUserID, order.StartDate, order.EndDate, order.PaymentStatus,
	)
	if err != nil {
		return fmt.Errorf("update service order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus altera apenas o status; end_date é carimbada quando não nula.
func (r *ServiceOrderRepo) UpdateStatus(id int64, status string, endDate *time.Time) error {
	var tag pgconn.CommandTag
	var err error
	if endDate != nil {
		tag, err = r.q.Exec(context.Background(),
			`UPDATE service_orders SET status = $2, end_date = $3, updated_at = now() WHERE id = $1`,
			id, status, *endDate)
	} else {
		tag, err = r.q.Exec(context.Background(),
			`UPDATE service_orders SET status = $2, updated_at = now() WHERE id = $1`,
			id, status)
	}
	if err != nil {
		return fmt.Errorf("update service order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePaymentStatus altera apenas o status de pagamento.
func (r *ServiceOrderRepo) UpdatePaymentStatus(id int64, paymentStatus string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE service_orders SET payment_status = $2, updated_at = now() WHERE id = $1`,
		id, paymentStatus)
	if err != nil {
		return fmt.Errorf("update service order payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove a OS; os itens caem em cascata (FK ON DELETE CASCADE).
func (r *ServiceOrderRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista OS com filtros opcionais, mais recentes primeiro.
func (r *ServiceOrderRepo) List(filter repository.ServiceOrderFilter) ([]*entity.ServiceOrder, error) {
	sql := `SELECT ` + serviceOrderColumns + ` FROM service_orders`
	var where []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Query != "" {
		term := arg(likeTerm(filter.Query))
		where = append(where, `(vehicle_plate ILIKE `+term+` OR vehicle_model ILIKE `+term+
			` OR vehicle_make ILIKE `+term+` OR description ILIKE `+term+
			` OR customer_id IN (SELECT id FROM customers WHERE name ILIKE `+term+`))`)
	}
	if filter.Status != "" {
		where = append(where, `status = `+arg(filter.Status))
	}
	if filter.StartDate != nil {
		where = append(where, `order_date >= `+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		where = append(where, `order_date <= `+arg(*filter.EndDate))
	}
	if filter.AssignedUserID != nil {
		where = append(where, `assigned_user_id = `+arg(*filter.AssignedUserID))
	}
	for i, w := range where {
		if i == 0 {
			sql += " WHERE " + w
		} else {
			sql += " AND " + w
		}
	}
	sql += ` ORDER BY order_date DESC, id DESC LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)

	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceOrder
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// CreateItem persiste uma linha da OS (peça ou serviço).
func (r *ServiceOrderRepo) CreateItem(item *entity.ServiceOrderItem) error {
	query := `
		INSERT INTO service_order_items (service_order_id, part_id, quantity, unit_price, subtotal, is_service, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.ServiceOrderID, item.PartID, item.Quantity, item.UnitPrice,
		item.Subtotal, item.IsService, nullIfEmpty(item.Description),
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert service order item: %w", err)
	}
	return nil
}

// ItemsByOrder devolve as linhas da OS na ordem de inserção.
func (r *ServiceOrderRepo) ItemsByOrder(orderID int64) ([]*entity.ServiceOrderItem, error) {
	query := `
		SELECT id, service_order_id, part_id, quantity, unit_price, subtotal, is_service, COALESCE(description, '')
		FROM service_order_items WHERE service_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list service order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceOrderItem
	for rows.Next() {
		var it entity.ServiceOrderItem
		if err := rows.Scan(&it.ID, &it.ServiceOrderID, &it.PartID, &it.Quantity,
			&it.UnitPrice, &it.Subtotal, &it.IsService, &it.Description); err != nil {
			return nil, fmt.Errorf("scan service order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItems remove todas as linhas da OS.
func (r *ServiceOrderRepo) DeleteItems(orderID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM service_order_items WHERE service_order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete service order items: %w", err)
	}
	return nil
}
