package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/domain"
)

func (h *handlers) getFavorite(c *gin.Context) {
	userID := currentUserID(c)
	h.state.mu.Lock()
	fav := h.favoriteLocked(userID)
	c.JSON(http.StatusOK, *fav)
	h.state.mu.Unlock()
}

func (h *handlers) addFavoriteItem(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	var product *domain.Product
	for i := range h.state.products {
		if h.state.products[i].ID == id {
			product = &h.state.products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	fav := h.favoriteLocked(userID)
	for _, it := range fav.FavoriteItems {
		if it.ID == id {
			c.JSON(http.StatusOK, *fav)
			return
		}
	}
	fav.FavoriteItems = append(fav.FavoriteItems, *product)
	c.JSON(http.StatusOK, *fav)
}

func (h *handlers) removeFavoriteItem(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	fav := h.favoriteLocked(userID)
	kept := fav.FavoriteItems[:0]
	for _, it := range fav.FavoriteItems {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	fav.FavoriteItems = kept
	c.Status(http.StatusNoContent)
}

func (h *handlers) addFavoriteSeller(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	fav := h.favoriteLocked(userID)
	for _, v := range fav.FavoriteSellers {
		if v.ID == id {
			c.JSON(http.StatusOK, *fav)
			return
		}
	}
	name := id
	for _, p := range h.state.products {
		if p.VendorID == id {
			name = p.VendorName
			break
		}
	}
	fav.FavoriteSellers = append(fav.FavoriteSellers, domain.Vendor{ID: id, Name: name})
	c.JSON(http.StatusOK, *fav)
}

func (h *handlers) removeFavoriteSeller(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	fav := h.favoriteLocked(userID)
	kept := fav.FavoriteSellers[:0]
	for _, v := range fav.FavoriteSellers {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	fav.FavoriteSellers = kept
	c.Status(http.StatusNoContent)
}

// favoriteLocked returns the user's aggregate, creating it on first touch.
// Callers hold the state lock.
func (h *handlers) favoriteLocked(userID string) *domain.Favorite {
	fav, ok := h.state.favorites[userID]
	if !ok {
		fav = &domain.Favorite{
			ID:              uuid.NewString(),
			UserID:          userID,
			FavoriteItems:   []domain.Product{},
			FavoriteSellers: []domain.Vendor{},
		}
		h.state.favorites[userID] = fav
	}
	return fav
}

func (h *handlers) listCoupons(c *gin.Context) {
	h.state.mu.Lock()
	coupons := append([]domain.Coupon(nil), h.state.coupons...)
	h.state.mu.Unlock()
	c.JSON(http.StatusOK, coupons)
}

func (h *handlers) validateCoupon(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "code is required"})
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	for _, coupon := range h.state.coupons {
		if strings.ToUpper(coupon.Code) == code {
			c.JSON(http.StatusOK, coupon)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Coupon not found"})
}

func (h *handlers) listCommissions(c *gin.Context) {
	h.state.mu.Lock()
	rules := append([]domain.CommissionRule(nil), h.state.commission...)
	h.state.mu.Unlock()
	c.JSON(http.StatusOK, rules)
}

func (h *handlers) listShippingRates(c *gin.Context) {
	h.state.mu.Lock()
	rates := append([]domain.ShippingRate(nil), h.state.shipping...)
	h.state.mu.Unlock()
	c.JSON(http.StatusOK, rates)
}

func (h *handlers) createProblem(c *gin.Context) {
	var req domain.SupportProblem
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Subject) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "subject is required"})
		return
	}
	req.ID = uuid.NewString()
	req.CreatedAt = time.Now().UTC()

	h.state.mu.Lock()
	h.state.problems = append(h.state.problems, req)
	h.state.mu.Unlock()
	c.JSON(http.StatusCreated, req)
}

func (h *handlers) getProfile(c *gin.Context) {
	userID := currentUserID(c)
	h.state.mu.Lock()
	profile, ok := h.state.profiles[userID]
	h.state.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *handlers) updateProfile(c *gin.Context) {
	var req domain.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid profile"})
		return
	}
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	stored := h.state.profiles[userID]
	stored.FirstName = req.FirstName
	stored.LastName = req.LastName
	stored.Phone = req.Phone
	stored.Image = req.Image
	h.state.profiles[userID] = stored
	c.JSON(http.StatusOK, stored)
}

func (h *handlers) listAddresses(c *gin.Context) {
	userID := currentUserID(c)
	h.state.mu.Lock()
	addresses := append([]domain.Address(nil), h.state.addresses[userID]...)
	h.state.mu.Unlock()
	c.JSON(http.StatusOK, addresses)
}

func (h *handlers) addAddress(c *gin.Context) {
	var req domain.Address
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.City) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "city is required"})
		return
	}
	req.ID = uuid.NewString()
	userID := currentUserID(c)

	h.state.mu.Lock()
	h.state.addresses[userID] = append(h.state.addresses[userID], req)
	h.state.mu.Unlock()
	c.JSON(http.StatusCreated, req)
}

func (h *handlers) removeAddress(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	addresses := h.state.addresses[userID]
	kept := addresses[:0]
	for _, a := range addresses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	h.state.addresses[userID] = kept
	c.Status(http.StatusNoContent)
}

func (h *handlers) listBankAccounts(c *gin.Context) {
	userID := currentUserID(c)
	h.state.mu.Lock()
	accounts := append([]domain.BankAccount(nil), h.state.bank[userID]...)
	h.state.mu.Unlock()
	c.JSON(http.StatusOK, accounts)
}

func (h *handlers) addBankAccount(c *gin.Context) {
	var req domain.BankAccount
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.AccountNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "accountNumber is required"})
		return
	}
	req.ID = uuid.NewString()
	userID := currentUserID(c)

	h.state.mu.Lock()
	h.state.bank[userID] = append(h.state.bank[userID], req)
	h.state.mu.Unlock()
	c.JSON(http.StatusCreated, req)
}

func (h *handlers) removeBankAccount(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	accounts := h.state.bank[userID]
	kept := accounts[:0]
	for _, b := range accounts {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	h.state.bank[userID] = kept
	c.Status(http.StatusNoContent)
}
