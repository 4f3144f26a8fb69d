package repository

import (
	"errors"
	"temp_dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Create(product *models.Product) error
	GetByID(id, userID uuid.UUID) (*models.Product, error)
	GetByUser(userID uuid.UUID, skip, limit int) ([]models.Product, error)
	FindByName(userID uuid.UUID, name string) (*models.Product, error)
	Update(product *models.Product) error
	Delete(product *models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepository{db: tx}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id, userID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByUser(userID uuid.UUID, skip, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("user_id = ?", userID).Offset(skip).Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) FindByName(userID uuid.UUID, name string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(product *models.Product) error {
	return r.db.Delete(product).Error
}
