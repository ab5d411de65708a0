package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shop-api/internal/models"
	"shop-api/internal/store"
)

type CartHandler struct {
	carts *store.Carts
	log   *logrus.Logger
}

func NewCartHandler(carts *store.Carts, log *logrus.Logger) *CartHandler {
	return &CartHandler{
		carts: carts,
		log:   log,
	}
}

// POST /cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	cart := h.carts.Create()
	h.log.WithField("cart_id", cart.ID).Debug("cart created")

	c.Header("Location", fmt.Sprintf("/cart/%d", cart.ID))
	c.JSON(http.StatusCreated, gin.H{"id": cart.ID})
}

// GET /cart/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	cart, err := h.carts.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Cart %d not found", id)})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GET /cart
func (h *CartHandler) ListCarts(c *gin.Context) {
	offset, limit, ok := pageParams(c)
	if !ok {
		return
	}
	minPrice, ok := floatBound(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := floatBound(c, "max_price")
	if !ok {
		return
	}
	minQuantity, ok := intBound(c, "min_quantity")
	if !ok {
		return
	}
	maxQuantity, ok := intBound(c, "max_quantity")
	if !ok {
		return
	}

	carts := h.carts.List(offset, limit, func(cart models.Cart) bool {
		if minPrice != nil && cart.TotalPrice < *minPrice {
			return false
		}
		if maxPrice != nil && cart.TotalPrice > *maxPrice {
			return false
		}
		quantity := cart.TotalQuantity()
		if minQuantity != nil && quantity < *minQuantity {
			return false
		}
		if maxQuantity != nil && quantity > *maxQuantity {
			return false
		}
		return true
	})

	c.JSON(http.StatusOK, carts)
}

// POST /cart/:cart_id/add/:item_id
// Deleted items are still addable; the resulting line is unavailable.
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, ok := idParam(c, "cart_id")
	if !ok {
		return
	}
	itemID, ok := idParam(c, "item_id")
	if !ok {
		return
	}

	line, err := h.carts.AddItem(cartID, itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Cart %d or item %d not found", cartID, itemID),
		})
		return
	}

	c.JSON(http.StatusOK, line)
}
