package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lelekart/storefront/internal/cart/application"
	"github.com/lelekart/storefront/internal/cart/domain"
	"github.com/lelekart/storefront/pkg/logger"
	"github.com/lelekart/storefront/pkg/response"
)

// CartHandler HTTP 处理器
// 负责处理购物车相关的 HTTP 请求
type CartHandler struct {
	app *application.CartApplicationService
}

// 创建 HTTP 处理器实例
func NewCartHandler(app *application.CartApplicationService) *CartHandler {
	return &CartHandler{app: app}
}

// 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/cart")
	{
		api.GET("", h.GetCart)
		api.GET("/count", h.GetItemCount)
		api.POST("/items", h.AddItem)
		api.PUT("/items/:id", h.UpdateQuantity)
		api.DELETE("/items/:id", h.RemoveItem)
		api.DELETE("", h.ClearCart)
	}
}

// ownerKey 解析购物车归属：登录用户 id 优先，其次游客会话 id
func ownerKey(c *gin.Context) string {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		return "user:" + userID
	}
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return "session:" + sessionID
	}
	return ""
}

// AddItemRequest 添加商品到购物车请求
type AddItemRequest struct {
	ProductID       uint             `json:"product_id" binding:"required"`
	VariantID       *uint            `json:"variant_id"`
	Quantity        int              `json:"quantity"`
	Name            string           `json:"name" binding:"required"`
	Category        string           `json:"category"`
	Price           decimal.Decimal  `json:"price"`
	MRP             *decimal.Decimal `json:"mrp"`
	DeliveryCharges decimal.Decimal  `json:"delivery_charges"`
	IsDealOfTheDay  bool             `json:"is_deal_of_the_day"`
	ImageURL        string           `json:"image_url"`
	VariantSKU      string           `json:"variant_sku"`
	VariantPrice    *decimal.Decimal `json:"variant_price"`
	VariantMRP      *decimal.Decimal `json:"variant_mrp"`
	VariantColor    string           `json:"variant_color"`
	VariantSize     string           `json:"variant_size"`
}

// UpdateQuantityRequest 设置行项数量请求
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemView 购物车行项响应
type CartItemView struct {
	ID              uint             `json:"id"`
	ProductID       uint             `json:"product_id"`
	VariantID       *uint            `json:"variant_id,omitempty"`
	Quantity        int              `json:"quantity"`
	Name            string           `json:"name"`
	Category        string           `json:"category,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	MRP             *decimal.Decimal `json:"mrp,omitempty"`
	DeliveryCharges decimal.Decimal  `json:"delivery_charges"`
	IsDealOfTheDay  bool             `json:"is_deal_of_the_day"`
	ImageURL        string           `json:"image_url,omitempty"`
	VariantSKU      string           `json:"variant_sku,omitempty"`
	VariantPrice    *decimal.Decimal `json:"variant_price,omitempty"`
	VariantMRP      *decimal.Decimal `json:"variant_mrp,omitempty"`
	VariantColor    string           `json:"variant_color,omitempty"`
	VariantSize     string           `json:"variant_size,omitempty"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
}

// CartView 购物车响应
type CartView struct {
	ID            uint            `json:"id"`
	Items         []CartItemView  `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryTotal decimal.Decimal `json:"delivery_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

func toCartView(cart *domain.Cart) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, CartItemView{
			ID:              item.ID,
			ProductID:       item.ProductID,
			VariantID:       item.VariantID,
			Quantity:        item.Quantity,
			Name:            item.Name,
			Category:        item.Category,
			Price:           item.Price,
			MRP:             item.MRP,
			DeliveryCharges: item.DeliveryCharges,
			IsDealOfTheDay:  item.IsDealOfTheDay,
			ImageURL:        item.ImageURL,
			VariantSKU:      item.VariantSKU,
			VariantPrice:    item.VariantPrice,
			VariantMRP:      item.VariantMRP,
			VariantColor:    item.VariantColor,
			VariantSize:     item.VariantSize,
			UnitPrice:       item.UnitPrice(),
		})
	}
	return CartView{
		ID:            cart.ID,
		Items:         items,
		Subtotal:      cart.Subtotal(),
		DeliveryTotal: cart.DeliveryTotal(),
		GrandTotal:    cart.GrandTotal(),
	}
}

// GetCart 获取购物车及汇总金额
func (h *CartHandler) GetCart(c *gin.Context) {
	key := ownerKey(c)
	if key == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "missing X-User-ID or X-Session-ID header")
		return
	}

	cart, err := h.app.GetCart(c.Request.Context(), key)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get cart", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, toCartView(cart))
}

// GetItemCount 获取购物车商品总件数
func (h *CartHandler) GetItemCount(c *gin.Context) {
	key := ownerKey(c)
	if key == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "missing X-User-ID or X-Session-ID header")
		return
	}

	count, err := h.app.GetCartItemCount(c.Request.Context(), key)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to count cart items", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"count": count})
}

// AddItem 添加商品到购物车
func (h *CartHandler) AddItem(c *gin.Context) {
	key := ownerKey(c)
	if key == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "missing X-User-ID or X-Session-ID header")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.AddItemCommand{
		OwnerKey:        key,
		ProductID:       req.ProductID,
		VariantID:       req.VariantID,
		Quantity:        req.Quantity,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		MRP:             req.MRP,
		DeliveryCharges: req.DeliveryCharges,
		IsDealOfTheDay:  req.IsDealOfTheDay,
		ImageURL:        req.ImageURL,
		VariantSKU:      req.VariantSKU,
		VariantPrice:    req.VariantPrice,
		VariantMRP:      req.VariantMRP,
		VariantColor:    req.VariantColor,
		VariantSize:     req.VariantSize,
	}
	if err := h.app.AddItem(c.Request.Context(), cmd); err != nil {
		logger.Error(c.Request.Context(), "Failed to add cart item", "product_id", req.ProductID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondWithCart(c, key)
}

// UpdateQuantity 设置行项数量
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	key := ownerKey(c)
	if key == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "missing X-User-ID or X-Session-ID header")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.UpdateQuantityCommand{
		OwnerKey: key,
		ItemID:   uint(itemID),
		Quantity: req.Quantity,
	}
	if err := h.app.UpdateQuantity(c.Request.Context(), cmd); err != nil {
		logger.Error(c.Request.Context(), "Failed to update cart item quantity", "item_id", itemID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondWithCart(c, key)
}

// RemoveItem 从购物车移除行项
func (h *CartHandler) RemoveItem(c *gin.Context) {
	key := ownerKey(c)
	if key == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "missing X-User-ID or X-Session-ID header")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid item id")
		return
	}

	cmd := application.RemoveItemCommand{
		OwnerKey: key,
		ItemID:   uint(itemID),
	}
	if err := h.app.RemoveItem(c.Request.Context(), cmd); err != nil {
		logger.Error(c.Request.Context(), "Failed to remove cart item", "item_id", itemID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondWithCart(c, key)
}

// ClearCart 清空购物车
func (h *CartHandler) ClearCart(c *gin.Context) {
	key := ownerKey(c)
	if key == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "missing X-User-ID or X-Session-ID header")
		return
	}

	cmd := application.ClearCartCommand{OwnerKey: key}
	if err := h.app.ClearCart(c.Request.Context(), cmd); err != nil {
		logger.Error(c.Request.Context(), "Failed to clear cart", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"status": "cleared"})
}

func (h *CartHandler) respondWithCart(c *gin.Context, key string) {
	cart, err := h.app.GetCart(c.Request.Context(), key)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to reload cart", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, toCartView(cart))
}
