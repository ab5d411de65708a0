package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pageParams parses offset/limit with the API defaults. On a bad value
// it writes the 400 itself and reports false.
func pageParams(c *gin.Context) (offset, limit int, ok bool) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, 0, false
	}

	return offset, limit, true
}

// floatBound parses an optional non-negative float query parameter,
// returning nil when absent.
func floatBound(c *gin.Context, name string) (*float64, bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative number"})
		return nil, false
	}
	return &v, true
}

// intBound parses an optional non-negative integer query parameter.
func intBound(c *gin.Context, name string) (*int, bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative integer"})
		return nil, false
	}
	return &v, true
}

// idParam parses the numeric path parameter named name.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
