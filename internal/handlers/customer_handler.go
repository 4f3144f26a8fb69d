package handlers

import (
	"log"
	"net/http"

	"temp_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	skip, limit := pagination(c)

	customers, err := h.customerService.GetCustomers(user.UserID, skip, limit)
	if err != nil {
		log.Printf("Error get customers: %v", err)
		fail(c, http.StatusInternalServerError, "Error getting customers")
		return
	}

	success(c, "Customers retrieved successfully", customers)
}

func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(id, user.UserID)
	if err != nil {
		log.Printf("Error get customer: %v", err)
		fail(c, http.StatusInternalServerError, "Error getting customer")
		return
	}
	if customer == nil {
		fail(c, http.StatusNotFound, "Customer not found")
		return
	}

	success(c, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customer, err := h.customerService.CreateCustomer(&input, user.UserID)
	if err != nil {
		log.Printf("Error create customer: %v", err)
		fail(c, http.StatusInternalServerError, "Error creating customer")
		return
	}

	success(c, "Customer created successfully", customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input services.CustomerUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customer, err := h.customerService.UpdateCustomer(id, &input, user.UserID)
	if err != nil {
		log.Printf("Error update customer: %v", err)
		fail(c, http.StatusInternalServerError, "Error updating customer")
		return
	}
	if customer == nil {
		fail(c, http.StatusNotFound, "Customer not found")
		return
	}

	success(c, "Customer updated successfully", customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.customerService.DeleteCustomer(id, user.UserID)
	if err != nil {
		log.Printf("Error delete customer: %v", err)
		fail(c, http.StatusInternalServerError, "Error deleting customer")
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, "Customer not found")
		return
	}

	success(c, "Customer deleted successfully", gin.H{"deleted": true})
}
