package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lelekart/storefront/internal/affiliate/application"
	"github.com/lelekart/storefront/internal/affiliate/domain"
	"github.com/lelekart/storefront/pkg/logger"
	"github.com/lelekart/storefront/pkg/response"
)

// AffiliateHandler HTTP 处理器
// 负责处理推广码相关的 HTTP 请求
type AffiliateHandler struct {
	app *application.AffiliateApplicationService
}

// 创建 HTTP 处理器实例
func NewAffiliateHandler(app *application.AffiliateApplicationService) *AffiliateHandler {
	return &AffiliateHandler{app: app}
}

// 注册路由
func (h *AffiliateHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/affiliate-codes")
	{
		api.GET("", h.ListCodes)
		api.GET("/:code", h.GetCode)
		api.POST("", h.CreateCode)
		api.PUT("/:code", h.UpdateCode)
		api.DELETE("/:code", h.DeleteCode)
		api.POST("/:code/usage", h.IncrementUsage)
	}
}

// CodeRequest 创建/更新推广码请求
type CodeRequest struct {
	Name               string   `json:"name"`
	Code               string   `json:"code" binding:"required"`
	DiscountPercentage *float64 `json:"discount_percentage" binding:"required"`
}

// CodeView 推广码响应
type CodeView struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name,omitempty"`
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discount_percentage"`
	UsageCount         int     `json:"usage_count"`
}

func toCodeView(c *domain.AffiliateCode) CodeView {
	return CodeView{
		ID:                 c.ID,
		Name:               c.Name,
		Code:               c.Code,
		DiscountPercentage: c.DiscountPercentage,
		UsageCount:         c.UsageCount,
	}
}

// ListCodes 列出全部推广码
func (h *AffiliateHandler) ListCodes(c *gin.Context) {
	codes, err := h.app.ListCodes(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list affiliate codes", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]CodeView, 0, len(codes))
	for _, code := range codes {
		views = append(views, toCodeView(code))
	}
	response.Success(c, gin.H{"codes": views})
}

// GetCode 按码值查询推广码，忽略大小写
func (h *AffiliateHandler) GetCode(c *gin.Context) {
	code, err := h.app.GetCode(c.Request.Context(), c.Param("code"))
	if errors.Is(err, domain.ErrCodeNotFound) {
		response.ErrorWithStatus(c, http.StatusNotFound, "affiliate code not found")
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get affiliate code", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, toCodeView(code))
}

// CreateCode 创建推广码
func (h *AffiliateHandler) CreateCode(c *gin.Context) {
	var req CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.CreateCodeCommand{
		Name:               req.Name,
		Code:               req.Code,
		DiscountPercentage: *req.DiscountPercentage,
	}
	id, err := h.app.CreateCode(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, domain.ErrCodeRequired) || errors.Is(err, domain.ErrInvalidDiscount) {
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error(c.Request.Context(), "Failed to create affiliate code", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(c, gin.H{"code_id": id})
}

// UpdateCode 更新推广码
func (h *AffiliateHandler) UpdateCode(c *gin.Context) {
	id, err := h.resolveID(c)
	if err != nil {
		return
	}

	var req CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := application.UpdateCodeCommand{
		ID:                 id,
		Name:               req.Name,
		Code:               req.Code,
		DiscountPercentage: *req.DiscountPercentage,
	}
	if err := h.app.UpdateCode(c.Request.Context(), cmd); err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeNotFound):
			response.ErrorWithStatus(c, http.StatusNotFound, "affiliate code not found")
		case errors.Is(err, domain.ErrCodeRequired), errors.Is(err, domain.ErrInvalidDiscount):
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error(c.Request.Context(), "Failed to update affiliate code", "code_id", id, "error", err)
			response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, gin.H{"code_id": id})
}

// DeleteCode 删除推广码
func (h *AffiliateHandler) DeleteCode(c *gin.Context) {
	id, err := h.resolveID(c)
	if err != nil {
		return
	}

	if err := h.app.DeleteCode(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCodeNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, "affiliate code not found")
			return
		}
		logger.Error(c.Request.Context(), "Failed to delete affiliate code", "code_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"status": "deleted", "code_id": id})
}

// IncrementUsage 推广码使用计数加一
func (h *AffiliateHandler) IncrementUsage(c *gin.Context) {
	id, err := h.resolveID(c)
	if err != nil {
		return
	}

	if err := h.app.IncrementUsage(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCodeNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, "affiliate code not found")
			return
		}
		logger.Error(c.Request.Context(), "Failed to increment affiliate code usage", "code_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{"code_id": id})
}

// resolveID 路径参数既接受数字 id，也接受码值
func (h *AffiliateHandler) resolveID(c *gin.Context) (uint, error) {
	param := c.Param("code")
	if id, err := strconv.ParseUint(param, 10, 64); err == nil {
		return uint(id), nil
	}

	code, err := h.app.GetCode(c.Request.Context(), param)
	if errors.Is(err, domain.ErrCodeNotFound) {
		response.ErrorWithStatus(c, http.StatusNotFound, "affiliate code not found")
		return 0, err
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to resolve affiliate code", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error())
		return 0, err
	}
	return code.ID, nil
}
