package application

import (
	"context"

	"github.com/lelekart/storefront/internal/affiliate/domain"
)

// CreateCodeCommand 创建推广码命令
type CreateCodeCommand struct {
	Name               string
	Code               string
	DiscountPercentage float64
}

// UpdateCodeCommand 更新推广码命令
type UpdateCodeCommand struct {
	ID                 uint
	Name               string
	Code               string
	DiscountPercentage float64
}

// AffiliateApplicationService 推广码应用服务
type AffiliateApplicationService struct {
	repo domain.AffiliateCodeRepository
}

// NewAffiliateApplicationService 创建推广码应用服务实例
func NewAffiliateApplicationService(repo domain.AffiliateCodeRepository) *AffiliateApplicationService {
	return &AffiliateApplicationService{repo: repo}
}

// ListCodes 列出全部推广码
func (s *AffiliateApplicationService) ListCodes(ctx context.Context) ([]*domain.AffiliateCode, error) {
	return s.repo.List(ctx)
}

// GetCode 按码值查询，忽略大小写
func (s *AffiliateApplicationService) GetCode(ctx context.Context, code string) (*domain.AffiliateCode, error) {
	return s.repo.GetByCode(ctx, code)
}

// CreateCode 创建推广码
func (s *AffiliateApplicationService) CreateCode(ctx context.Context, cmd CreateCodeCommand) (uint, error) {
	code := &domain.AffiliateCode{
		Name:               cmd.Name,
		Code:               cmd.Code,
		DiscountPercentage: cmd.DiscountPercentage,
	}
	if err := code.Validate(); err != nil {
		return 0, err
	}
	if err := s.repo.Save(ctx, code); err != nil {
		return 0, err
	}
	return code.ID, nil
}

// UpdateCode 更新推广码
func (s *AffiliateApplicationService) UpdateCode(ctx context.Context, cmd UpdateCodeCommand) error {
	code, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	code.Name = cmd.Name
	code.Code = cmd.Code
	code.DiscountPercentage = cmd.DiscountPercentage
	if err := code.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, code)
}

// DeleteCode 删除推广码
func (s *AffiliateApplicationService) DeleteCode(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// IncrementUsage 推广码使用计数加一
func (s *AffiliateApplicationService) IncrementUsage(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.IncrementUsage(ctx, id)
}
