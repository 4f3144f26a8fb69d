package handlers

import (
	"log"
	"net/http"

	"temp_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	skip, limit := pagination(c)

	products, err := h.productService.GetProducts(user.UserID, skip, limit)
	if err != nil {
		log.Printf("Error get products: %v", err)
		fail(c, http.StatusInternalServerError, "Error getting products")
		return
	}

	success(c, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(id, user.UserID)
	if err != nil {
		log.Printf("Error get product: %v", err)
		fail(c, http.StatusInternalServerError, "Error getting product")
		return
	}
	if product == nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	success(c, "Product retrieved successfully", product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := h.productService.CreateProduct(&input, user.UserID)
	if err != nil {
		log.Printf("Error create product: %v", err)
		fail(c, http.StatusInternalServerError, "Error creating product")
		return
	}

	success(c, "Product created successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input services.ProductUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := h.productService.UpdateProduct(id, &input, user.UserID)
	if err != nil {
		log.Printf("Error update product: %v", err)
		fail(c, http.StatusInternalServerError, "Error updating product")
		return
	}
	if product == nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	success(c, "Product updated successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.productService.DeleteProduct(id, user.UserID)
	if err != nil {
		log.Printf("Error delete product: %v", err)
		fail(c, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	success(c, "Product deleted successfully", gin.H{"deleted": true})
}
