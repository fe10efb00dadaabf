package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/ctx"
	"github.com/shashiranjanraj/dinein/pkg/logger"
	"github.com/shashiranjanraj/dinein/pkg/metrics"
	"github.com/shashiranjanraj/dinein/pkg/validate"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (h *CartController) Store(c *ctx.Context) {
	var in services.AddToCartInput
	if err := c.Bind(&in); err != nil {
		decodeFailed(c, err)
		c.Error(http.StatusBadRequest, invalidRequest)
		return
	}

	item, err := h.cart.Add(c.Context(), in)
	switch {
	case err == nil:
		metrics.CartOps.WithLabelValues("add").Inc()
		logger.WithCtx(c.Context()).Info("cart item added", "user_id", in.UserID, "item_id", item.ID.Hex())
		c.Message(http.StatusCreated, "Item added to cart successfully!")
	case errors.Is(err, services.ErrUserNotFound):
		c.Message(http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrMenuItemNotFound):
		c.Message(http.StatusNotFound, err.Error())
	case errors.Is(err, validate.ErrInvalidQuantity):
		c.Message(http.StatusBadRequest, err.Error())
	default:
		internalError(c, "Error adding item to cart.", err)
	}
}

func (h *CartController) Index(c *ctx.Context) {
	items, err := h.cart.List(c.Context(), c.Param("userId"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, items)
	case errors.Is(err, services.ErrCartEmpty):
		c.Message(http.StatusNotFound, err.Error())
	default:
		internalError(c, "Error fetching cart items.", err)
	}
}

func (h *CartController) Destroy(c *ctx.Context) {
	err := h.cart.Remove(c.Context(), c.Param("userId"), c.Param("itemId"))
	switch {
	case err == nil:
		metrics.CartOps.WithLabelValues("delete").Inc()
		c.Message(http.StatusOK, "Item deleted from cart successfully.")
	case errors.Is(err, services.ErrItemNotFound):
		c.Message(http.StatusNotFound, services.ErrItemNotFound.Error())
	case errors.Is(err, services.ErrNotOwner):
		c.Message(http.StatusUnauthorized, "You do not have permission to delete this item.")
	default:
		internalError(c, "Error deleting item from cart.", err)
	}
}

func (h *CartController) Update(c *ctx.Context) {
	var in services.UpdateQuantityInput
	if err := c.Bind(&in); err != nil {
		decodeFailed(c, err)
		c.Message(http.StatusBadRequest, invalidRequest)
		return
	}

	_, err := h.cart.UpdateQuantity(c.Context(), c.Param("userId"), c.Param("itemId"), in.Quantity)
	switch {
	case err == nil:
		metrics.CartOps.WithLabelValues("update").Inc()
		c.Message(http.StatusOK, "Quantity updated in cart successfully.")
	case errors.Is(err, services.ErrItemNotFound):
		c.Message(http.StatusNotFound, services.ErrItemNotFound.Error())
	case errors.Is(err, services.ErrNotOwner):
		c.Message(http.StatusUnauthorized, "You do not have permission to update this item.")
	case errors.Is(err, validate.ErrInvalidQuantity):
		c.Message(http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(c.Context()).Error("cart update failed", "error", err)
		c.Message(http.StatusInternalServerError, "An error occurred while updating the quantity.")
	}
}
