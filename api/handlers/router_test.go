package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"shop-api/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, *store.Catalog, *store.Carts) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.Out = io.Discard

	catalog := store.NewCatalog()
	carts := store.NewCarts(catalog)
	itemHandler := NewItemHandler(catalog, log)
	cartHandler := NewCartHandler(carts, log)

	router := gin.New()
	router.Use(RequestLogger(log))

	item := router.Group("/item")
	{
		item.POST("", itemHandler.CreateItem)
		item.GET("", itemHandler.ListItems)
		item.GET("/:id", itemHandler.GetItem)
		item.PUT("/:id", itemHandler.ReplaceItem)
		item.PATCH("/:id", itemHandler.PatchItem)
		item.DELETE("/:id", itemHandler.DeleteItem)
	}

	cart := router.Group("/cart")
	{
		cart.POST("", cartHandler.CreateCart)
		cart.GET("", cartHandler.ListCarts)
		cart.GET("/:id", cartHandler.GetCart)
		cart.POST("/:cart_id/add/:item_id", cartHandler.AddItem)
	}

	router.GET("/health", HealthCheck)

	return router, catalog, carts
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
