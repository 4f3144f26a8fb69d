package services

import (
	"temp_dashboard/internal/models"
	"temp_dashboard/internal/repository"

	"github.com/google/uuid"
)

type CustomerInput struct {
	Name         string `json:"name" binding:"required,max=255"`
	Address      string `json:"address" binding:"required,max=255"`
	ReceiverName string `json:"receiver_name" binding:"required,max=255"`
	Address2     string `json:"address_2"`
	Suburb       string `json:"suburb"`
	State        string `json:"state"`
	PostCode     string `json:"post_code"`
	PhoneNumber  string `json:"phone_number"`
}

type CustomerUpdateInput struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	ReceiverName *string `json:"receiver_name"`
	Address2     *string `json:"address_2"`
	Suburb       *string `json:"suburb"`
	State        *string `json:"state"`
	PostCode     *string `json:"post_code"`
	PhoneNumber  *string `json:"phone_number"`
}

type CustomerService interface {
	CreateCustomer(input *CustomerInput, userID uuid.UUID) (*models.Customer, error)
	GetCustomers(userID uuid.UUID, skip, limit int) ([]models.Customer, error)
	GetCustomerByID(id, userID uuid.UUID) (*models.Customer, error)
	UpdateCustomer(id uuid.UUID, input *CustomerUpdateInput, userID uuid.UUID) (*models.Customer, error)
	DeleteCustomer(id, userID uuid.UUID) (bool, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(input *CustomerInput, userID uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{
		UserID:       userID,
		Name:         input.Name,
		Address:      input.Address,
		ReceiverName: input.ReceiverName,
		Address2:     input.Address2,
		Suburb:       input.Suburb,
		State:        input.State,
		PostCode:     input.PostCode,
		PhoneNumber:  input.PhoneNumber,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomers(userID uuid.UUID, skip, limit int) ([]models.Customer, error) {
	return s.customerRepo.GetByUser(userID, skip, limit)
}

func (s *customerService) GetCustomerByID(id, userID uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(id, userID)
}

func (s *customerService) UpdateCustomer(id uuid.UUID, input *CustomerUpdateInput, userID uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id, userID)
	if err != nil || customer == nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.ReceiverName != nil {
		customer.ReceiverName = *input.ReceiverName
	}
	if input.Address2 != nil {
		customer.Address2 = *input.Address2
	}
	if input.Suburb != nil {
		customer.Suburb = *input.Suburb
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.PostCode != nil {
		customer.PostCode = *input.PostCode
	}
	if input.PhoneNumber != nil {
		customer.PhoneNumber = *input.PhoneNumber
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id, userID uuid.UUID) (bool, error) {
	customer, err := s.customerRepo.GetByID(id, userID)
	if err != nil {
		return false, err
	}
	if customer == nil {
		return false, nil
	}

	if err := s.customerRepo.Delete(customer); err != nil {
		return false, err
	}
	return true, nil
}
