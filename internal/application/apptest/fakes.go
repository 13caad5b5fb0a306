// Package apptest fornece repositórios em memória e um TxRunner falso para os
// testes dos casos de uso. O runner aplica o callback sobre uma cópia do
// estado e só a promove em caso de sucesso, reproduzindo a semântica de
// commit/rollback do banco.
package apptest

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/application/uow"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// Store estado em memória compartilhado pelos repositórios falsos.
type Store struct {
	lastID int64

	Parts         map[int64]*entity.Part
	Movements     []*entity.StockMovement
	Sales         map[int64]*entity.Sale
	SaleItems     map[int64]*entity.SaleItem
	Orders        map[int64]*entity.ServiceOrder
	OrderItems    map[int64]*entity.ServiceOrderItem
	Transactions  map[int64]*entity.FinancialTransaction
	Notifications map[int64]*entity.Notification
	Customers     map[int64]*entity.Customer
	Suppliers     map[int64]*entity.Supplier
	Users         map[int64]*entity.User
}

// NewStore cria o estado vazio.
func NewStore() *Store {
	return &Store{
		Parts:         map[int64]*entity.Part{},
		Sales:         map[int64]*entity.Sale{},
		SaleItems:     map[int64]*entity.SaleItem{},
		Orders:        map[int64]*entity.ServiceOrder{},
		OrderItems:    map[int64]*entity.ServiceOrderItem{},
		Transactions:  map[int64]*entity.FinancialTransaction{},
		Notifications: map[int64]*entity.Notification{},
		Customers:     map[int64]*entity.Customer{},
		Suppliers:     map[int64]*entity.Supplier{},
		Users:         map[int64]*entity.User{},
	}
}

func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

// Clone devolve uma cópia profunda do estado.
func (s *Store) Clone() *Store {
	c := NewStore()
	c.lastID = s.lastID
	for id, p := range s.Parts {
		cp := *p
		c.Parts[id] = &cp
	}
	for _, m := range s.Movements {
		cm := *m
		c.Movements = append(c.Movements, &cm)
	}
	for id, v := range s.Sales {
		cv := *v
		c.Sales[id] = &cv
	}
	for id, v := range s.SaleItems {
		cv := *v
		c.SaleItems[id] = &cv
	}
	for id, v := range s.Orders {
		cv := *v
		c.Orders[id] = &cv
	}
	for id, v := range s.OrderItems {
		cv := *v
		c.OrderItems[id] = &cv
	}
	for id, v := range s.Transactions {
		cv := *v
		c.Transactions[id] = &cv
	}
	for id, v := range s.Notifications {
		cv := *v
		c.Notifications[id] = &cv
	}
	for id, v := range s.Customers {
		cv := *v
		c.Customers[id] = &cv
	}
	for id, v := range s.Suppliers {
		cv := *v
		c.Suppliers[id] = &cv
	}
	for id, v := range s.Users {
		cv := *v
		c.Users[id] = &cv
	}
	return c
}

// Repos monta o conjunto de repositórios sobre este estado.
func (s *Store) Repos() uow.Repos {
	return uow.Repos{
		Parts:         &PartRepo{s: s},
		Movements:     &MovementRepo{s: s},
		Sales:         &SaleRepo{s: s},
		ServiceOrders: &OrderRepo{s: s},
		Finance:       &FinanceRepo{s: s},
		Notifications: &NotificationRepo{s: s},
	}
}

// TxRunner aplica fn sobre uma cópia do estado; só promove a cópia se fn
// devolver nil, imitando commit/rollback.
type TxRunner struct {
	S *Store
}

// Run executa o callback com a semântica tudo-ou-nada.
func (t *TxRunner) Run(_ context.Context, fn func(r uow.Repos) error) error {
	clone := t.S.Clone()
	if err := fn(clone.Repos()); err != nil {
		return err
	}
	*t.S = *clone
	return nil
}

var _ uow.TxRunner = (*TxRunner)(nil)

// PartRepo repositório de peças em memória.
type PartRepo struct {
	s *Store
}

var _ repository.PartRepository = (*PartRepo)(nil)

func (r *PartRepo) Create(part *entity.Part) error {
	part.ID = r.s.nextID()
	part.CreatedAt = time.Now()
	part.UpdatedAt = part.CreatedAt
	cp := *part
	r.s.Parts[part.ID] = &cp
	return nil
}

func (r *PartRepo) GetByID(id int64) (*entity.Part, error) {
	p, ok := r.s.Parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PartRepo) GetForUpdate(id int64) (*entity.Part, error) {
	return r.GetByID(id)
}

func (r *PartRepo) GetByPartNumber(partNumber string) (*entity.Part, error) {
	for _, p := range r.s.Parts {
		if p.PartNumber == partNumber {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *PartRepo) Update(part *entity.Part) error {
	current, ok := r.s.Parts[part.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *part
	cp.Stock = current.Stock
	cp.UpdatedAt = time.Now()
	r.s.Parts[part.ID] = &cp
	return nil
}

func (r *PartRepo) UpdateStock(id int64, stock int) error {
	p, ok := r.s.Parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

func (r *PartRepo) List(limit, offset int) ([]*entity.Part, error) {
	ids := make([]int64, 0, len(r.s.Parts))
	for id := range r.s.Parts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Part
	for _, id := range ids {
		cp := *r.s.Parts[id]
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

func (r *PartRepo) Search(query string, limit, offset int) ([]*entity.Part, error) {
	return r.List(limit, offset)
}

func (r *PartRepo) BelowMinStock() ([]*entity.Part, error) {
	all, _ := r.List(0, 0)
	var out []*entity.Part
	for _, p := range all {
		if p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PartRepo) Delete(id int64) error {
	if _, ok := r.s.Parts[id]; !ok {
		return domain.ErrNotFound
	}
	for _, it := range r.s.SaleItems {
		if it.PartID == id {
			return domain.ErrConflict
		}
	}
	for _, it := range r.s.OrderItems {
		if it.PartID != nil && *it.PartID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.Parts, id)
	return nil
}

// MovementRepo repositório de movimentos em memória.
type MovementRepo struct {
	s *Store
}

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

func (r *MovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.s.nextID()
	m.CreatedAt = time.Now()
	cm := *m
	r.s.Movements = append(r.s.Movements, &cm)
	return nil
}

func (r *MovementRepo) ListByPart(partID int64, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.Movements {
		if m.PartID == partID {
			cm := *m
			out = append(out, &cm)
		}
	}
	return page(out, limit, offset), nil
}

func (r *MovementRepo) ListByReference(referenceType string, referenceID int64) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.Movements {
		if m.ReferenceType == referenceType && m.ReferenceID != nil && *m.ReferenceID == referenceID {
			cm := *m
			out = append(out, &cm)
		}
	}
	return out, nil
}

// SaleRepo repositório de vendas em memória.
type SaleRepo struct {
	s *Store
}

var _ repository.SaleRepository = (*SaleRepo)(nil)

func (r *SaleRepo) Create(sale *entity.Sale) error {
	sale.ID = r.s.nextID()
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = sale.CreatedAt
	cp := *sale
	r.s.Sales[sale.ID] = &cp
	return nil
}

func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	v, ok := r.s.Sales[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *SaleRepo) Update(sale *entity.Sale) error {
	if _, ok := r.s.Sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sale
	cp.UpdatedAt = time.Now()
	r.s.Sales[sale.ID] = &cp
	return nil
}

func (r *SaleRepo) Delete(id int64) error {
	if _, ok := r.s.Sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Sales, id)
	for itemID, it := range r.s.SaleItems {
		if it.SaleID == id {
			delete(r.s.SaleItems, itemID)
		}
	}
	return nil
}

func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	ids := make([]int64, 0, len(r.s.Sales))
	for id := range r.s.Sales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	var out []*entity.Sale
	for _, id := range ids {
		v := r.s.Sales[id]
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if filter.IsQuote != nil && v.IsQuote != *filter.IsQuote {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return page(out, filter.Limit, filter.Offset), nil
}

func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	item.ID = r.s.nextID()
	cp := *item
	r.s.SaleItems[item.ID] = &cp
	return nil
}

func (r *SaleRepo) ItemsBySale(saleID int64) ([]*entity.SaleItem, error) {
	ids := make([]int64, 0)
	for id, it := range r.s.SaleItems {
		if it.SaleID == saleID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.SaleItem
	for _, id := range ids {
		cp := *r.s.SaleItems[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *SaleRepo) DeleteItems(saleID int64) error {
	for id, it := range r.s.SaleItems {
		if it.SaleID == saleID {
			delete(r.s.SaleItems, id)
		}
	}
	return nil
}

// OrderRepo repositório de ordens de serviço em memória.
type OrderRepo struct {
	s *Store
}

var _ repository.ServiceOrderRepository = (*OrderRepo)(nil)

func (r *OrderRepo) Create(order *entity.ServiceOrder) error {
	order.ID = r.s.nextID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	cp := *order
	r.s.Orders[order.ID] = &cp
	return nil
}

func (r *OrderRepo) GetByID(id int64) (*entity.ServiceOrder, error) {
	v, ok := r.s.Orders[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *OrderRepo) Update(order *entity.ServiceOrder) error {
	if _, ok := r.s.Orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *order
	cp.UpdatedAt = time.Now()
	r.s.Orders[order.ID] = &cp
	return nil
}

func (r *OrderRepo) UpdateStatus(id int64, status string, endDate *time.Time) error {
	v, ok := r.s.Orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Status = status
	if endDate != nil {
		v.EndDate = endDate
	}
	v.UpdatedAt = time.Now()
	return nil
}

func (r *OrderRepo) UpdatePaymentStatus(id int64, paymentStatus string) error {
	v, ok := r.s.Orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.PaymentStatus = paymentStatus
	v.UpdatedAt = time.Now()
	return nil
}

func (r *OrderRepo) Delete(id int64) error {
	if _, ok := r.s.Orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Orders, id)
	for itemID, it := range r.s.OrderItems {
		if it.ServiceOrderID == id {
			delete(r.s.OrderItems, itemID)
		}
	}
	return nil
}

func (r *OrderRepo) List(filter repository.ServiceOrderFilter) ([]*entity.ServiceOrder, error) {
	ids := make([]int64, 0, len(r.s.Orders))
	for id := range r.s.Orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	var out []*entity.ServiceOrder
	for _, id := range ids {
		v := r.s.Orders[id]
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return page(out, filter.Limit, filter.Offset), nil
}

func (r *OrderRepo) CreateItem(item *entity.ServiceOrderItem) error {
	item.ID = r.s.nextID()
	cp := *item
	r.s.OrderItems[item.ID] = &cp
	return nil
}

func (r *OrderRepo) ItemsByOrder(orderID int64) ([]*entity.ServiceOrderItem, error) {
	ids := make([]int64, 0)
	for id, it := range r.s.OrderItems {
		if it.ServiceOrderID == orderID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.ServiceOrderItem
	for _, id := range ids {
		cp := *r.s.OrderItems[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *OrderRepo) DeleteItems(orderID int64) error {
	for id, it := range r.s.OrderItems {
		if it.ServiceOrderID == orderID {
			delete(r.s.OrderItems, id)
		}
	}
	return nil
}

// FinanceRepo repositório financeiro em memória.
type FinanceRepo struct {
	s *Store
}

var _ repository.FinancialTransactionRepository = (*FinanceRepo)(nil)

func (r *FinanceRepo) Create(tx *entity.FinancialTransaction) error {
	tx.ID = r.s.nextID()
	tx.CreatedAt = time.Now()
	tx.UpdatedAt = tx.CreatedAt
	cp := *tx
	r.s.Transactions[tx.ID] = &cp
	return nil
}

func (r *FinanceRepo) GetByID(id int64) (*entity.FinancialTransaction, error) {
	v, ok := r.s.Transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *FinanceRepo) Update(tx *entity.FinancialTransaction) error {
	if _, ok := r.s.Transactions[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *tx
	cp.UpdatedAt = time.Now()
	r.s.Transactions[tx.ID] = &cp
	return nil
}

func (r *FinanceRepo) Delete(id int64) error {
	if _, ok := r.s.Transactions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Transactions, id)
	return nil
}

func (r *FinanceRepo) List(filter repository.FinancialFilter) ([]*entity.FinancialTransaction, error) {
	ids := make([]int64, 0, len(r.s.Transactions))
	for id := range r.s.Transactions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	var out []*entity.FinancialTransaction
	for _, id := range ids {
		v := r.s.Transactions[id]
		if filter.Type != "" && v.Type != filter.Type {
			continue
		}
		if filter.StartDate != nil && v.TransactionDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && v.TransactionDate.After(*filter.EndDate) {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return page(out, filter.Limit, filter.Offset), nil
}

func (r *FinanceRepo) Balance(start, end *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	revenue := decimal.Zero
	expense := decimal.Zero
	for _, v := range r.s.Transactions {
		if start != nil && v.TransactionDate.Before(*start) {
			continue
		}
		if end != nil && v.TransactionDate.After(*end) {
			continue
		}
		switch v.Type {
		case entity.TransactionReceita:
			revenue = revenue.Add(v.Amount)
		case entity.TransactionDespesa:
			expense = expense.Add(v.Amount)
		}
	}
	return revenue, expense, nil
}

// NotificationRepo repositório de notificações em memória.
type NotificationRepo struct {
	s *Store
}

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

func (r *NotificationRepo) Create(n *entity.Notification) error {
	n.ID = r.s.nextID()
	n.Timestamp = time.Now()
	cp := *n
	r.s.Notifications[n.ID] = &cp
	return nil
}

func (r *NotificationRepo) GetByID(id int64) (*entity.Notification, error) {
	v, ok := r.s.Notifications[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *NotificationRepo) List(unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	ids := make([]int64, 0, len(r.s.Notifications))
	for id := range r.s.Notifications {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	var out []*entity.Notification
	for _, id := range ids {
		v := r.s.Notifications[id]
		if unreadOnly && v.IsRead {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

func (r *NotificationRepo) MarkRead(id int64) error {
	v, ok := r.s.Notifications[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.IsRead = true
	return nil
}

func (r *NotificationRepo) MarkAllRead() error {
	for _, v := range r.s.Notifications {
		v.IsRead = true
	}
	return nil
}

func (r *NotificationRepo) Delete(id int64) error {
	if _, ok := r.s.Notifications[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.Notifications, id)
	return nil
}

func (r *NotificationRepo) UnreadCount() (int, error) {
	count := 0
	for _, v := range r.s.Notifications {
		if !v.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepo) ExistsUnread(notifType, entityType string, entityID int64) (bool, error) {
	for _, v := range r.s.Notifications {
		if !v.IsRead && v.Type == notifType && v.EntityType == entityType &&
			v.EntityID != nil && *v.EntityID == entityID {
			return true, nil
		}
	}
	return false, nil
}

// CustomerRepo repositório de clientes em memória.
type CustomerRepo struct {
	S *Store
}

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

func (r *CustomerRepo) Create(c *entity.Customer) error {
	c.ID = r.S.nextID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.S.Customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	v, ok := r.S.Customers[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *CustomerRepo) GetByCpfCnpj(cpfCnpj string) (*entity.Customer, error) {
	for _, c := range r.S.Customers {
		if c.CpfCnpj == cpfCnpj {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.S.Customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	cp.UpdatedAt = time.Now()
	r.S.Customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepo) Delete(id int64) error {
	if _, ok := r.S.Customers[id]; !ok {
		return domain.ErrNotFound
	}
	for _, s := range r.S.Sales {
		if s.CustomerID == id {
			return domain.ErrConflict
		}
	}
	for _, o := range r.S.Orders {
		if o.CustomerID == id {
			return domain.ErrConflict
		}
	}
	delete(r.S.Customers, id)
	return nil
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	ids := make([]int64, 0, len(r.S.Customers))
	for id := range r.S.Customers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Customer
	for _, id := range ids {
		cp := *r.S.Customers[id]
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

func (r *CustomerRepo) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	return r.List(limit, offset)
}

// SupplierRepo repositório de fornecedores em memória.
type SupplierRepo struct {
	S *Store
}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	s.ID = r.S.nextID()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	r.S.Suppliers[s.ID] = &cp
	return nil
}

func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	v, ok := r.S.Suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for _, s := range r.S.Suppliers {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) GetByCnpj(cnpj string) (*entity.Supplier, error) {
	for _, s := range r.S.Suppliers {
		if s.Cnpj == cnpj {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.S.Suppliers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	cp.UpdatedAt = time.Now()
	r.S.Suppliers[s.ID] = &cp
	return nil
}

func (r *SupplierRepo) Delete(id int64) error {
	if _, ok := r.S.Suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.S.Parts {
		if p.SupplierID != nil && *p.SupplierID == id {
			return domain.ErrConflict
		}
	}
	delete(r.S.Suppliers, id)
	return nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	ids := make([]int64, 0, len(r.S.Suppliers))
	for id := range r.S.Suppliers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Supplier
	for _, id := range ids {
		cp := *r.S.Suppliers[id]
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

func (r *SupplierRepo) Search(query string, limit, offset int) ([]*entity.Supplier, error) {
	return r.List(limit, offset)
}

// UserRepo repositório de usuários em memória.
type UserRepo struct {
	S *Store
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(u *entity.User) error {
	u.ID = r.S.nextID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.S.Users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	v, ok := r.S.Users[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.S.Users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(u *entity.User) error {
	if _, ok := r.S.Users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	cp.UpdatedAt = time.Now()
	r.S.Users[u.ID] = &cp
	return nil
}

func (r *UserRepo) Delete(id int64) error {
	if _, ok := r.S.Users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Users, id)
	return nil
}

func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	ids := make([]int64, 0, len(r.S.Users))
	for id := range r.S.Users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.User
	for _, id := range ids {
		cp := *r.S.Users[id]
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

// page aplica limit/offset; limit <= 0 devolve tudo.
func page[T any](list []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return nil
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
