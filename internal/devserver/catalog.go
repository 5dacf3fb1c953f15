package devserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

func (h *handlers) listCategories(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 10)

	h.state.mu.Lock()
	flat := h.state.flatCategories()
	h.state.mu.Unlock()

	total := len(flat)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      flat[start:end],
		"totalCount": total,
	})
}

func (h *handlers) listProducts(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 10)

	h.state.mu.Lock()
	products := append([]domain.Product(nil), h.state.products...)
	h.state.mu.Unlock()

	total := len(products)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	c.JSON(http.StatusOK, products[start:end])
}

func (h *handlers) getProduct(c *gin.Context) {
	id := c.Param("id")
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	for _, p := range h.state.products {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
}

func (h *handlers) productsByCategory(c *gin.Context) {
	id := c.Param("id")
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	out := []domain.Product{}
	for _, p := range h.state.products {
		if p.CategoryID == id {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) searchProducts(c *gin.Context) {
	var req struct {
		Term string `json:"term"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "term is required"})
		return
	}
	term := strings.ToLower(strings.TrimSpace(req.Term))

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	out := []domain.Product{}
	for _, p := range h.state.products {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, out)
}

// searchByImage accepts the upload and returns a fixed sample; there is no
// vision model behind the devserver.
func (h *handlers) searchByImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}
	file.Close()

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	limit := 3
	if len(h.state.products) < limit {
		limit = len(h.state.products)
	}
	c.JSON(http.StatusOK, h.state.products[:limit])
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
