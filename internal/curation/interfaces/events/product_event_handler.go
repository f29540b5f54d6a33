package events

import (
	"context"

	"github.com/lelekart/storefront/internal/curation/application"
	"github.com/lelekart/storefront/pkg/logger"
)

// ProductEventHandler 订阅商品目录事件，商品变更后丢弃首页快照
type ProductEventHandler struct {
	app *application.CurationQueryService
}

// 创建事件处理器实例
func NewProductEventHandler(app *application.CurationQueryService) *ProductEventHandler {
	return &ProductEventHandler{app: app}
}

// Topics 需要订阅的商品事件主题
func (h *ProductEventHandler) Topics() []string {
	return []string{
		"product.created",
		"product.updated",
		"product.stock.changed",
		"product.deleted",
	}
}

// Handle 处理商品事件。快照只是缓存，失效即可，无需解析事件体。
func (h *ProductEventHandler) Handle(ctx context.Context, key, value []byte) error {
	logger.Debug(ctx, "product event received, invalidating home view", "key", string(key))
	h.app.Invalidate(ctx)
	return nil
}
