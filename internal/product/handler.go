package product

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// List products (sample menu when degraded)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --------------------------------------------------
// Create product
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		// Create only fails on validation or a hard store error;
		// validation errors come from NewProduct before any write.
		status := http.StatusBadRequest
		if !isValidationError(err) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// --------------------------------------------------
// Delete product
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, errNameRequired),
		errors.Is(err, errNegativePrice),
		errors.Is(err, errIngredientName),
		errors.Is(err, errNegativeUnitCost),
		errors.Is(err, errNegativeQuantity),
		errors.Is(err, errZeroPackSize),
		errors.Is(err, errNegativePackValues):
		return true
	}
	return false
}
