package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lelekart/storefront/internal/catalog/application"
	"github.com/lelekart/storefront/internal/catalog/domain"
	"github.com/lelekart/storefront/pkg/logger"
	"github.com/lelekart/storefront/pkg/response"
)

// CatalogHandler HTTP 处理器
// 负责处理与商品目录相关的 HTTP 请求
type CatalogHandler struct {
	app *application.CatalogApplicationService
}

// 创建 HTTP 处理器实例
func NewCatalogHandler(app *application.CatalogApplicationService) *CatalogHandler {
	return &CatalogHandler{app: app}
}

// 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/products")
	{
		api.GET("", h.ListProducts)
		api.GET("/:id", h.GetProduct)
		api.POST("", h.CreateProduct)
		api.PUT("/:id", h.UpdateProduct)
		api.DELETE("/:id", h.DeleteProduct)
	}
}

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category" binding:"required"`
	Subcategory     string   `json:"subcategory"`
	Price           float64  `json:"price" binding:"min=0"`
	MRP             *float64 `json:"mrp"`
	DeliveryCharges float64  `json:"delivery_charges" binding:"min=0"`
	IsDealOfTheDay  bool     `json:"is_deal_of_the_day"`
	ImageURL        string   `json:"image_url"`
	Images          string   `json:"images"`
	Stock           int      `json:"stock" binding:"min=0"`
}

// ProductView 商品响应
type ProductView struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory,omitempty"`
	Price           float64  `json:"price"`
	MRP             *float64 `json:"mrp,omitempty"`
	DeliveryCharges float64  `json:"delivery_charges"`
	IsDealOfTheDay  bool     `json:"is_deal_of_the_day"`
	ImageURL        string   `json:"image_url,omitempty"`
	Images          string   `json:"images,omitempty"`
	Stock           int      `json:"stock"`
}

func toProductView(p *domain.Product) ProductView {
	return ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Price:           p.Price,
		MRP:             p.MRP,
		DeliveryCharges: p.DeliveryCharges,
		IsDealOfTheDay:  p.IsDealOfTheDay,
		ImageURL:        p.ImageURL,
		Images:          p.Images,
		Stock:           p.Stock,
	}
}

// ListProducts 商品列表。带 ids 参数时按传入顺序批量返回。
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if idsParam := c.Query("ids"); idsParam != "" {
		h.listByIDs(c, idsParam)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "36"))
	category := c.Query("category")

	products, total, err := h.app.ListProducts(c.Request.Context(), category, page, size)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	totalPages := total / int64(size)
	if total%int64(size) > 0 {
		totalPages++
	}

	response.Success(c, gin.H{
		"products": views,
		"pagination": gin.H{
			"current_page": page,
			"total_pages":  totalPages,
			"total":        total,
		},
	})
}

func (h *CatalogHandler) listByIDs(c *gin.Context, idsParam string) {
	parts := strings.Split(idsParam, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			response.ErrorWithStatus(c, http.StatusBadRequest, "invalid ids parameter")
			return
		}
		ids = append(ids, uint(id))
	}

	products, err := h.app.GetProductsByIDs(c.Request.Context(), ids)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get products by ids", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	response.Success(c, gin.H{"products": views})
}

// GetProduct 商品详情
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid id")
		return
	}

	product, err := h.app.GetProduct(c.Request.Context(), uint(id))
	if errors.Is(err, domain.ErrProductNotFound) {
		response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get product", "product_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, toProductView(product))
}

// CreateProduct 创建商品
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.CreateProductCommand{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Price:           req.Price,
		MRP:             req.MRP,
		DeliveryCharges: req.DeliveryCharges,
		IsDealOfTheDay:  req.IsDealOfTheDay,
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		Stock:           req.Stock,
	}

	id, err := h.app.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPrice) || errors.Is(err, domain.ErrInvalidMRP) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error(c.Request.Context(), "Failed to create product", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(c, gin.H{"product_id": id})
}

// UpdateProduct 更新商品
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.UpdateProductCommand{
		ID:              uint(id),
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Price:           req.Price,
		MRP:             req.MRP,
		DeliveryCharges: req.DeliveryCharges,
		IsDealOfTheDay:  req.IsDealOfTheDay,
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		Stock:           req.Stock,
	}

	if err := h.app.UpdateProduct(c.Request.Context(), cmd); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
			return
		}
		logger.Error(c.Request.Context(), "Failed to update product", "product_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"product_id": id})
}

// DeleteProduct 删除商品
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.app.DeleteProduct(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, "product not found")
			return
		}
		logger.Error(c.Request.Context(), "Failed to delete product", "product_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"status": "deleted", "product_id": id})
}
