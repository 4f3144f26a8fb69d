package repository

import (
	"errors"
	"temp_dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	WithTx(tx *gorm.DB) CustomerRepository
	Create(customer *models.Customer) error
	GetByID(id, userID uuid.UUID) (*models.Customer, error)
	GetByUser(userID uuid.UUID, skip, limit int) ([]models.Customer, error)
	FindByName(userID uuid.UUID, name string) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(customer *models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) WithTx(tx *gorm.DB) CustomerRepository {
	return &customerRepository{db: tx}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(id, userID uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByUser(userID uuid.UUID, skip, limit int) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("user_id = ?", userID).Offset(skip).Limit(limit).Find(&customers).Error
	return customers, err
}

// FindByName matches on case-insensitive name equality. Name is a best-effort
// natural key: it is not unique at the storage level, so the first match wins.
func (r *customerRepository) FindByName(userID uuid.UUID, name string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Delete(customer *models.Customer) error {
	return r.db.Delete(customer).Error
}
