package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/checkout"
	"storefront/internal/domain"
)

func (h *handlers) createOrder(c *gin.Context) {
	var req struct {
		AddressID      string `json:"addressId"`
		CouponCode     string `json:"couponCode"`
		ContactSupport bool   `json:"contactSupport"`
	}
	_ = c.ShouldBindJSON(&req)
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	cart := h.state.carts[userID]
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
		return
	}

	userType := ""
	if u, ok := h.state.userByID(userID); ok {
		userType = u.UserType
	}
	breakdown := checkout.Total(checkout.Input{
		Items:          cart,
		UserType:       userType,
		Commissions:    h.state.commission,
		ContactSupport: req.ContactSupport,
	})

	order := domain.Order{
		ID:     uuid.NewString(),
		Date:   time.Now().UTC(),
		Items:  append([]domain.CartItem(nil), cart...),
		Total:  breakdown.Total,
		Status: domain.OrderStatusProcessing,
	}
	h.state.orders[userID] = append([]domain.Order{order}, h.state.orders[userID]...)
	h.state.carts[userID] = nil

	c.JSON(http.StatusCreated, order)
}

func (h *handlers) listOrders(c *gin.Context) {
	userID := currentUserID(c)
	h.state.mu.Lock()
	orders := append([]domain.Order(nil), h.state.orders[userID]...)
	h.state.mu.Unlock()
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	for _, o := range h.state.orders[userID] {
		if o.ID == id {
			c.JSON(http.StatusOK, o)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status domain.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	orders := h.state.orders[userID]
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = req.Status
			h.state.orders[userID] = orders
			c.JSON(http.StatusOK, gin.H{"status": orders[i].Status})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
}
