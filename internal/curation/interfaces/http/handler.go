package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lelekart/storefront/internal/curation/application"
	"github.com/lelekart/storefront/pkg/logger"
	"github.com/lelekart/storefront/pkg/response"
)

// CurationHandler HTTP 处理器
// 负责处理首页策展货架相关的 HTTP 请求
type CurationHandler struct {
	app *application.CurationQueryService
}

// 创建 HTTP 处理器实例
func NewCurationHandler(app *application.CurationQueryService) *CurationHandler {
	return &CurationHandler{app: app}
}

// 注册路由
func (h *CurationHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/curation")
	{
		api.GET("/home", h.GetHome)
		api.GET("/price-tiers", h.GetPriceTiers)
		api.GET("/discount-tiers", h.GetDiscountTiers)
		api.GET("/best-sellers", h.GetBestSellers)
		api.GET("/trending", h.GetTrending)
		api.GET("/featured-deals", h.GetFeaturedDeals)
		api.GET("/categories/:category", h.GetCategoryBlock)
	}
}

// GetHome 首页全部货架
func (h *CurationHandler) GetHome(c *gin.Context) {
	view, err := h.app.GetHomeView(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build home view", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, view)
}

// GetPriceTiers 价格档货架
func (h *CurationHandler) GetPriceTiers(c *gin.Context) {
	buckets, err := h.app.GetPriceTiers(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build price tiers", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, gin.H{"buckets": buckets})
}

// GetDiscountTiers 折扣档货架
func (h *CurationHandler) GetDiscountTiers(c *gin.Context) {
	buckets, err := h.app.GetDiscountTiers(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build discount tiers", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, gin.H{"buckets": buckets})
}

// GetBestSellers Best Seller 货架
func (h *CurationHandler) GetBestSellers(c *gin.Context) {
	products, err := h.app.GetBestSellers(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build best sellers", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetTrending Trending 货架
func (h *CurationHandler) GetTrending(c *gin.Context) {
	products, err := h.app.GetTrending(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build trending", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetFeaturedDeals Featured Deal 货架
func (h *CurationHandler) GetFeaturedDeals(c *gin.Context) {
	products, err := h.app.GetFeaturedDeals(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build featured deals", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetCategoryBlock 单个分类货架（专区版）
func (h *CurationHandler) GetCategoryBlock(c *gin.Context) {
	category := c.Param("category")

	block, err := h.app.GetCategoryBlock(c.Request.Context(), category)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build category block", "category", category, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}
	if block == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "category not found")
		return
	}

	response.Success(c, block)
}
