package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"shop-api/internal/models"
	"shop-api/internal/store"
)

type ItemHandler struct {
	catalog *store.Catalog
	log     *logrus.Logger
}

func NewItemHandler(catalog *store.Catalog, log *logrus.Logger) *ItemHandler {
	return &ItemHandler{
		catalog: catalog,
		log:     log,
	}
}

// POST /item
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := h.catalog.Create(req.Name, *req.Price, req.Deleted)
	h.log.WithField("item_id", item.ID).Debug("item created")

	c.Header("Location", fmt.Sprintf("/item/%d", item.ID))
	c.JSON(http.StatusCreated, item)
}

// GET /item/:id
// The public read hides soft-deleted items; the store's Get does not.
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.catalog.Get(id)
	if err != nil || item.Deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %d not found", id)})
		return
	}

	c.JSON(http.StatusOK, item)
}

// GET /item
func (h *ItemHandler) ListItems(c *gin.Context) {
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
	showDeleted := c.DefaultQuery("show_deleted", "false") == "true"

	items := h.catalog.List(offset, limit, func(item models.Item) bool {
		if minPrice != nil && item.Price < *minPrice {
			return false
		}
		if maxPrice != nil && item.Price > *maxPrice {
			return false
		}
		return showDeleted || !item.Deleted
	})

	c.JSON(http.StatusOK, items)
}

// PUT /item/:id
func (h *ItemHandler) ReplaceItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalog.Replace(id, req.Name, *req.Price, req.Deleted)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %d not found", id)})
		return
	}

	c.JSON(http.StatusOK, item)
}

// PATCH /item/:id
// Bodies are decoded strictly: an unknown field fails before the store
// is touched. A patch on a deleted item comes back as 304.
func (h *ItemHandler) PatchItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var patch models.ItemPatch
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
		return
	}

	item, err := h.catalog.Patch(id, patch)
	switch {
	case errors.Is(err, store.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %d not found", id)})
	case errors.Is(err, store.ErrItemDeleted):
		c.Status(http.StatusNotModified)
	default:
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /item/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if !h.catalog.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %d not found", id)})
		return
	}
	h.log.WithField("item_id", id).Debug("item deleted")

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Item %d deleted", id)})
}
