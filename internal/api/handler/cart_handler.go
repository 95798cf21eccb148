package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/storefront-system/internal/api/metrics"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

// CartHandler handles the authenticated user's order-in-progress. All routes
// operate on the session user's cart; there is no cross-user access path.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /v1/cart.
//
// @Summary      Get the current user's cart
// @Tags         cart
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.service.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// AddItem handles POST /v1/cart/items. Adding a product already in the cart
// increments its quantity instead of creating a second line.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      addCartItemRequest  true  "Product to add"
// @Success      200   {object}  cartResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cart, err := h.service.AddItem(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// UpdateItem handles PUT /v1/cart/items/:product_id. Quantities below 1 are
// floored to 1, never removed.
//
// @Summary      Set a cart line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        product_id  path      string                 true  "Product id"
// @Param        body        body      updateCartItemRequest  true  "New quantity"
// @Success      200         {object}  cartResponse
// @Router       /v1/cart/items/{product_id} [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	cart, err := h.service.UpdateQuantity(c.Request().Context(), userID, c.Param("product_id"), req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("update_quantity").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// RemoveItem handles DELETE /v1/cart/items/:product_id.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Security     CookieAuth
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  cartResponse
// @Router       /v1/cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.service.RemoveItem(c.Request().Context(), userID, c.Param("product_id"))
	if err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  map[string]string
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.ClearCart(c.Request().Context(), userID); err != nil {
		return err
	}

	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "cart cleared"})
}
