package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tastypoint-cart/internal/models"
	"tastypoint-cart/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartIDHeader selects a cart other than the default one.
const CartIDHeader = "X-Cart-ID"

type CartHandler struct {
	carts       CartManagerInterface
	checkout    CheckoutServiceInterface
	cartKey     string
	deliveryFee int64
}

func NewCartHandler(carts CartManagerInterface, checkout CheckoutServiceInterface, cartKey string, deliveryFee int64) *CartHandler {
	return &CartHandler{
		carts:       carts,
		checkout:    checkout,
		cartKey:     cartKey,
		deliveryFee: deliveryFee,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		// Get the cart page view
		cart.GET("", h.GetCart)
		// Add item to cart
		cart.POST("/items", h.AddToCart)
		// Remove item from cart by position
		cart.DELETE("/items/:index", h.RemoveFromCart)
		// Header badge
		cart.GET("/badge", h.GetBadge)
		// Totals for an order type
		cart.GET("/totals", h.GetTotals)
		// Build the order message and link
		cart.POST("/checkout", h.Checkout)
	}
}

// GetCart godoc
// @Summary Get the cart
// @Description Cart lines with line totals, bill totals and badge
// @Tags cart
// @Produce json
// @Param order_type query string false "pickup or delivery"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	key, ok := h.resolveCartKey(c)
	if !ok {
		return
	}
	orderType, ok := parseOrderType(c, c.Query("order_type"))
	if !ok {
		return
	}

	var view *services.CartView
	err := h.carts.Do(c.Request.Context(), key, func(cart *services.CartService) error {
		view = services.BuildCartView(cart.Items(), orderType, h.deliveryFee)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Add one unit of a product with its selected option
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddToCartRequest true "Cart item data"
// @Success 200 {object} AddToCartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	key, ok := h.resolveCartKey(c)
	if !ok {
		return
	}

	var resp AddToCartResponse
	err := h.carts.Do(c.Request.Context(), key, func(cart *services.CartService) error {
		name, err := cart.AddItem(c.Request.Context(), *req.ProductID, req.Name, *req.Price, req.Option)
		if err != nil {
			return err
		}
		resp = AddToCartResponse{
			Name:    name,
			Message: name + " added!",
			Badge:   cart.Badge(),
		}
		return nil
	})
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid item",
			Message: validationErr.Message,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to add item to cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Remove the cart line at the given position
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{index} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid item index",
			Message: "Please provide a numeric item index",
		})
		return
	}

	key, ok := h.resolveCartKey(c)
	if !ok {
		return
	}
	orderType, ok := parseOrderType(c, c.Query("order_type"))
	if !ok {
		return
	}

	var view *services.CartView
	err = h.carts.Do(c.Request.Context(), key, func(cart *services.CartService) error {
		if err := cart.RemoveItem(c.Request.Context(), index); err != nil {
			return err
		}
		view = services.BuildCartView(cart.Items(), orderType, h.deliveryFee)
		return nil
	})
	if errors.Is(err, services.ErrOutOfRange) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Item not found",
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to remove item from cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetBadge godoc
// @Summary Cart badge
// @Tags cart
// @Produce json
// @Success 200 {object} models.Badge
// @Router /cart/badge [get]
func (h *CartHandler) GetBadge(c *gin.Context) {
	key, ok := h.resolveCartKey(c)
	if !ok {
		return
	}

	var badge models.Badge
	err := h.carts.Do(c.Request.Context(), key, func(cart *services.CartService) error {
		badge = cart.Badge()
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get badge",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, badge)
}

// GetTotals godoc
// @Summary Bill totals
// @Description Subtotal, delivery fee and total for the chosen order type
// @Tags cart
// @Produce json
// @Param order_type query string false "pickup or delivery"
// @Success 200 {object} models.Totals
// @Failure 400 {object} ErrorResponse
// @Router /cart/totals [get]
func (h *CartHandler) GetTotals(c *gin.Context) {
	key, ok := h.resolveCartKey(c)
	if !ok {
		return
	}
	orderType, ok := parseOrderType(c, c.Query("order_type"))
	if !ok {
		return
	}

	var totals models.Totals
	err := h.carts.Do(c.Request.Context(), key, func(cart *services.CartService) error {
		totals = services.ComputeTotals(cart.Items(), orderType, h.deliveryFee)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to compute totals",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// Checkout godoc
// @Summary Checkout cart
// @Description Validate customer fields and build the order message and link
// @Tags cart
// @Accept json
// @Produce json
// @Param checkout body CheckoutRequest true "Checkout data"
// @Success 200 {object} services.CheckoutResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	key, ok := h.resolveCartKey(c)
	if !ok {
		return
	}
	orderType, ok := parseOrderType(c, req.OrderType)
	if !ok {
		return
	}

	var items []models.LineItem
	err := h.carts.Do(c.Request.Context(), key, func(cart *services.CartService) error {
		items = cart.Items()
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to checkout",
			Message: err.Error(),
		})
		return
	}

	customer := models.Customer{Name: req.Name, Address: req.Address}
	result, err := h.checkout.Checkout(c.Request.Context(), items, customer, orderType)
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "Missing " + validationErr.Field,
			Message: validationErr.Message,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to checkout",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// resolveCartKey picks the storage key from the X-Cart-ID header, falling
// back to the shared default cart.
func (h *CartHandler) resolveCartKey(c *gin.Context) (string, bool) {
	cartID := c.GetHeader(CartIDHeader)
	if cartID == "" {
		return h.cartKey, true
	}

	id, err := uuid.Parse(cartID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid cart ID",
			Message: "X-Cart-ID must be a UUID",
		})
		return "", false
	}
	return h.cartKey + ":" + id.String(), true
}

func parseOrderType(c *gin.Context, value string) (models.OrderType, bool) {
	orderType, err := models.ParseOrderType(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid order type",
			Message: "order_type must be pickup or delivery",
		})
		return "", false
	}
	return orderType, true
}

// Request and Response structs
type AddToCartRequest struct {
	ProductID *int    `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     *int64  `json:"price" binding:"required,min=0,max=10000000"`
	Option    *string `json:"option"`
}

type AddToCartResponse struct {
	Name    string       `json:"name"`
	Message string       `json:"message"`
	Badge   models.Badge `json:"badge"`
}

type CheckoutRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	OrderType string `json:"order_type"`
}
