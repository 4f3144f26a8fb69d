package services

import (
	"temp_dashboard/internal/models"
	"temp_dashboard/internal/repository"

	"github.com/google/uuid"
)

type ProductInput struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type ProductUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ProductService interface {
	CreateProduct(input *ProductInput, userID uuid.UUID) (*models.Product, error)
	GetProducts(userID uuid.UUID, skip, limit int) ([]models.Product, error)
	GetProductByID(id, userID uuid.UUID) (*models.Product, error)
	UpdateProduct(id uuid.UUID, input *ProductUpdateInput, userID uuid.UUID) (*models.Product, error)
	DeleteProduct(id, userID uuid.UUID) (bool, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(input *ProductInput, userID uuid.UUID) (*models.Product, error) {
	product := &models.Product{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProducts(userID uuid.UUID, skip, limit int) ([]models.Product, error) {
	return s.productRepo.GetByUser(userID, skip, limit)
}

func (s *productService) GetProductByID(id, userID uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(id, userID)
}

func (s *productService) UpdateProduct(id uuid.UUID, input *ProductUpdateInput, userID uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id, userID)
	if err != nil || product == nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id, userID uuid.UUID) (bool, error) {
	product, err := s.productRepo.GetByID(id, userID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	if err := s.productRepo.Delete(product); err != nil {
		return false, err
	}
	return true, nil
}
