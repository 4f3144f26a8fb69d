package services

import (
	"log"
	"time"

	"temp_dashboard/internal/models"
	"temp_dashboard/internal/ordercode"
	"temp_dashboard/internal/redis"
	"temp_dashboard/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ProductName string `json:"product_name" binding:"required"`
	OrderQty    int    `json:"order_qty" binding:"required,gt=0"`
	FileURL     string `json:"file_url"`
}

type OrderInput struct {
	OrderReferenceNumber string    `json:"order_reference_number" binding:"required"`
	IssuesDate           time.Time `json:"issues_date" binding:"required"`
	DueDate              time.Time `json:"due_date" binding:"required"`
	Name                 string    `json:"name" binding:"required,max=255"`
	Address              string    `json:"address" binding:"required,max=255"`
	ReceiverName         string    `json:"receiver_name" binding:"required,max=255"`
	Address2             string    `json:"address_2"`
	Suburb               string    `json:"suburb"`
	State                string    `json:"state"`
	PostCode             string    `json:"post_code"`
	PhoneNumber          string    `json:"phone_number"`

	OrderItems []OrderItemInput `json:"order_items"`
}

type OrderService interface {
	CreateOrder(input *OrderInput, userID uuid.UUID) (*models.Order, error)
	GetOrders(userID uuid.UUID, skip, limit int) ([]models.Order, error)
	GetOrderByID(id, userID uuid.UUID) (*models.Order, error)
	UpdateOrder(id uuid.UUID, input *OrderInput, userID uuid.UUID) (*models.Order, error)
	DeleteOrder(id, userID uuid.UUID) (bool, error)
}

type orderService struct {
	db            *gorm.DB
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
	sequenceRepo  repository.SequenceRepository
	cache         *redis.Client
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	sequenceRepo repository.SequenceRepository,
	cache *redis.Client,
) OrderService {
	return &orderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		sequenceRepo:  sequenceRepo,
		cache:         cache,
	}
}

// CreateOrder runs the whole aggregate build in one transaction: customer
// reconciliation, sequence allocation, order insert, item inserts. Any
// failure rolls all of it back, including the counter increment and any
// customer row touched by reconciliation.
func (s *orderService) CreateOrder(input *OrderInput, userID uuid.UUID) (*models.Order, error) {
	var order *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.reconcileCustomer(tx, userID, input); err != nil {
			return err
		}

		today := time.Now()
		seq, err := s.sequenceRepo.Next(tx, today)
		if err != nil {
			return err
		}

		order = &models.Order{
			OrderNumber:          ordercode.Format(today, seq),
			UserID:               userID,
			OrderReferenceNumber: input.OrderReferenceNumber,
			IssuesDate:           input.IssuesDate,
			DueDate:              input.DueDate,
			Name:                 input.Name,
			Address:              input.Address,
			Address2:             input.Address2,
			Suburb:               input.Suburb,
			State:                input.State,
			ReceiverName:         input.ReceiverName,
			PostCode:             input.PostCode,
			PhoneNumber:          input.PhoneNumber,
		}
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}

		return s.insertItems(tx, order.ID, userID, input.OrderItems)
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(order.ID, userID)
}

func (s *orderService) GetOrders(userID uuid.UUID, skip, limit int) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID, skip, limit)
}

func (s *orderService) GetOrderByID(id, userID uuid.UUID) (*models.Order, error) {
	if s.cache != nil {
		order, err := s.cache.GetOrder(id)
		if err != nil {
			log.Printf("Error reading order cache: %v", err)
		} else if order != nil && order.UserID == userID {
			return order, nil
		}
	}

	order, err := s.orderRepo.GetByID(id, userID)
	if err != nil || order == nil {
		return order, err
	}

	if s.cache != nil {
		if err := s.cache.SetOrder(order); err != nil {
			log.Printf("Error caching order: %v", err)
		}
	}
	return order, nil
}

// UpdateOrder reconciles the customer from the update payload and replaces
// the order's item list wholesale. The order number, its sequence value, and
// the issue/due dates are not re-derived.
func (s *orderService) UpdateOrder(id uuid.UUID, input *OrderInput, userID uuid.UUID) (*models.Order, error) {
	var order *models.Order

	// The existence check runs inside the transaction: an order deleted by a
	// concurrent request cannot have items re-inserted for it here.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.orderRepo.WithTx(tx).GetByID(id, userID)
		if err != nil || order == nil {
			return err
		}

		if _, err := s.reconcileCustomer(tx, userID, input); err != nil {
			return err
		}

		if err := s.orderItemRepo.WithTx(tx).DeleteByOrderID(order.ID); err != nil {
			return err
		}
		return s.insertItems(tx, order.ID, userID, input.OrderItems)
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.DeleteOrder(order.ID); err != nil {
			log.Printf("Error invalidating order cache: %v", err)
		}
	}
	return s.orderRepo.GetByID(id, userID)
}

func (s *orderService) DeleteOrder(id, userID uuid.UUID) (bool, error) {
	order, err := s.orderRepo.GetByID(id, userID)
	if err != nil {
		return false, err
	}
	if order == nil {
		return false, nil
	}

	if err := s.orderRepo.Delete(order); err != nil {
		return false, err
	}

	if s.cache != nil {
		s.cache.DeleteOrder(order.ID)
	}
	return true, nil
}

// reconcileCustomer finds the caller's customer by case-insensitive name and
// merges the payload into it, or creates it when absent. Only fields that
// actually differ are rewritten, so unrelated concurrent edits to other
// fields are not clobbered. Name is a best-effort key: two transactions
// racing on first creation may both insert, and that duplicate is accepted.
func (s *orderService) reconcileCustomer(tx *gorm.DB, userID uuid.UUID, input *OrderInput) (*models.Customer, error) {
	customers := s.customerRepo.WithTx(tx)

	customer, err := customers.FindByName(userID, input.Name)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		customer = &models.Customer{
			UserID:       userID,
			Name:         input.Name,
			Address:      input.Address,
			Address2:     input.Address2,
			Suburb:       input.Suburb,
			State:        input.State,
			ReceiverName: input.ReceiverName,
			PostCode:     input.PostCode,
			PhoneNumber:  input.PhoneNumber,
		}
		if err := customers.Create(customer); err != nil {
			return nil, err
		}
		return customer, nil
	}

	changed := false
	if customer.Address != input.Address {
		customer.Address = input.Address
		changed = true
	}
	if customer.ReceiverName != input.ReceiverName {
		customer.ReceiverName = input.ReceiverName
		changed = true
	}
	if customer.Address2 != input.Address2 {
		customer.Address2 = input.Address2
		changed = true
	}
	if customer.Suburb != input.Suburb {
		customer.Suburb = input.Suburb
		changed = true
	}
	if customer.State != input.State {
		customer.State = input.State
		changed = true
	}
	if customer.PhoneNumber != input.PhoneNumber {
		customer.PhoneNumber = input.PhoneNumber
		changed = true
	}
	if customer.PostCode != input.PostCode {
		customer.PostCode = input.PostCode
		changed = true
	}

	if changed {
		if err := customers.Update(customer); err != nil {
			return nil, err
		}
	}
	return customer, nil
}

// insertItems validates and inserts the submitted item list. Item product
// names are free text; a missing catalog entry gets a stub Product so the
// catalog eventually reflects everything that has been ordered.
func (s *orderService) insertItems(tx *gorm.DB, orderID, userID uuid.UUID, inputs []OrderItemInput) error {
	items := s.orderItemRepo.WithTx(tx)
	products := s.productRepo.WithTx(tx)

	for _, in := range inputs {
		if in.OrderQty <= 0 {
			return ErrInvalidQuantity
		}

		product, err := products.FindByName(userID, in.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			stub := &models.Product{UserID: userID, Name: in.ProductName}
			if err := products.Create(stub); err != nil {
				return err
			}
		}

		item := &models.OrderItem{
			OrderID:     orderID,
			ProductName: in.ProductName,
			OrderQty:    in.OrderQty,
			FileURL:     in.FileURL,
		}
		if err := items.Create(item); err != nil {
			return err
		}
	}
	return nil
}
