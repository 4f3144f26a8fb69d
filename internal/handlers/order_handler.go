package handlers

import (
	"errors"
	"log"
	"net/http"

	"temp_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	skip, limit := pagination(c)

	orders, err := h.orderService.GetOrders(user.UserID, skip, limit)
	if err != nil {
		log.Printf("Error get orders: %v", err)
		fail(c, http.StatusInternalServerError, "Error getting orders")
		return
	}

	success(c, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(id, user.UserID)
	if err != nil {
		log.Printf("Error get order: %v", err)
		fail(c, http.StatusInternalServerError, "Error getting order")
		return
	}
	if order == nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	success(c, "Order retrieved successfully", order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := h.orderService.CreateOrder(&input, user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			fail(c, http.StatusBadRequest, "Order quantity must be a positive integer")
			return
		}
		log.Printf("Error create order: %v", err)
		fail(c, http.StatusInternalServerError, "Error creating order")
		return
	}

	success(c, "Order created successfully", order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input services.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := h.orderService.UpdateOrder(id, &input, user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			fail(c, http.StatusBadRequest, "Order quantity must be a positive integer")
			return
		}
		log.Printf("Error update order: %v", err)
		fail(c, http.StatusInternalServerError, "Error updating order")
		return
	}
	if order == nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	success(c, "Order updated successfully", order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.orderService.DeleteOrder(id, user.UserID)
	if err != nil {
		log.Printf("Error delete order: %v", err)
		fail(c, http.StatusInternalServerError, "Error deleting order")
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	success(c, "Order deleted successfully", gin.H{"deleted": true})
}
