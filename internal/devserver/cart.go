package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/domain"
)

func (h *handlers) getCart(c *gin.Context) {
	userID := currentUserID(c)
	h.state.mu.Lock()
	items := append([]domain.CartItem(nil), h.state.carts[userID]...)
	h.state.mu.Unlock()
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addToCart(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId is required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	var product *domain.Product
	for i := range h.state.products {
		if h.state.products[i].ID == req.ProductID {
			product = &h.state.products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	// Re-adding a product replaces the line's quantity, the contract the
	// client reducer mirrors.
	cart := h.state.carts[userID]
	for i := range cart {
		if cart[i].ProductID == req.ProductID {
			cart[i].Quantity = req.Quantity
			cart[i].TotalPrice = product.Price.Amount * float64(req.Quantity)
			h.state.carts[userID] = cart
			c.JSON(http.StatusOK, cart[i])
			return
		}
	}

	image := ""
	if len(product.Pictures) > 0 {
		image = product.Pictures[0]
	}
	item := domain.CartItem{
		ID:         uuid.NewString(),
		ProductID:  product.ID,
		Title:      product.Title,
		Image:      image,
		Quantity:   req.Quantity,
		UnitPrice:  product.Price.Amount,
		TotalPrice: product.Price.Amount * float64(req.Quantity),
	}
	h.state.carts[userID] = append(cart, item)
	c.JSON(http.StatusOK, item)
}

func (h *handlers) updateCartQuantity(c *gin.Context) {
	var req struct {
		ItemID   string `json:"itemId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "itemId is required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	cart := h.state.carts[userID]
	for i := range cart {
		if cart[i].ID == req.ItemID {
			cart[i].Quantity = req.Quantity
			cart[i].TotalPrice = cart[i].UnitPrice * float64(req.Quantity)
			h.state.carts[userID] = cart
			c.JSON(http.StatusOK, cart[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
}

func (h *handlers) removeFromCart(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	cart := h.state.carts[userID]
	kept := cart[:0]
	for _, it := range cart {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	h.state.carts[userID] = kept
	c.Status(http.StatusNoContent)
}
