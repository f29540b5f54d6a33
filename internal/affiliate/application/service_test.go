package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelekart/storefront/internal/affiliate/domain"
)

type fakeCodeRepository struct {
	codes  map[uint]*domain.AffiliateCode
	nextID uint
}

func newFakeCodeRepository() *fakeCodeRepository {
	return &fakeCodeRepository{codes: map[uint]*domain.AffiliateCode{}, nextID: 1}
}

func (r *fakeCodeRepository) List(_ context.Context) ([]*domain.AffiliateCode, error) {
	out := make([]*domain.AffiliateCode, 0, len(r.codes))
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.codes[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCodeRepository) GetByID(_ context.Context, id uint) (*domain.AffiliateCode, error) {
	c, ok := r.codes[id]
	if !ok {
		return nil, domain.ErrCodeNotFound
	}
	return c, nil
}

func (r *fakeCodeRepository) GetByCode(_ context.Context, code string) (*domain.AffiliateCode, error) {
	for _, c := range r.codes {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return nil, domain.ErrCodeNotFound
}

func (r *fakeCodeRepository) Save(_ context.Context, code *domain.AffiliateCode) error {
	if code.ID == 0 {
		code.ID = r.nextID
		r.nextID++
	}
	r.codes[code.ID] = code
	return nil
}

func (r *fakeCodeRepository) Delete(_ context.Context, id uint) error {
	delete(r.codes, id)
	return nil
}

func (r *fakeCodeRepository) IncrementUsage(_ context.Context, id uint) error {
	if c, ok := r.codes[id]; ok {
		c.UsageCount++
	}
	return nil
}

func TestCreateCodeValidation(t *testing.T) {
	svc := NewAffiliateApplicationService(newFakeCodeRepository())
	ctx := context.Background()

	_, err := svc.CreateCode(ctx, CreateCodeCommand{Name: "Blogger", DiscountPercentage: 10})
	assert.ErrorIs(t, err, domain.ErrCodeRequired)

	_, err = svc.CreateCode(ctx, CreateCodeCommand{Code: "SAVE10"})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	_, err = svc.CreateCode(ctx, CreateCodeCommand{Code: "SAVE10", DiscountPercentage: 150})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	id, err := svc.CreateCode(ctx, CreateCodeCommand{Name: "Blogger", Code: "SAVE10", DiscountPercentage: 10})
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestGetCodeCaseInsensitive(t *testing.T) {
	svc := NewAffiliateApplicationService(newFakeCodeRepository())
	ctx := context.Background()

	_, err := svc.CreateCode(ctx, CreateCodeCommand{Code: "SAVE10", DiscountPercentage: 10})
	require.NoError(t, err)

	code, err := svc.GetCode(ctx, "save10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", code.Code)

	_, err = svc.GetCode(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
}

func TestUpdateCode(t *testing.T) {
	svc := NewAffiliateApplicationService(newFakeCodeRepository())
	ctx := context.Background()

	id, err := svc.CreateCode(ctx, CreateCodeCommand{Code: "SAVE10", DiscountPercentage: 10})
	require.NoError(t, err)

	err = svc.UpdateCode(ctx, UpdateCodeCommand{ID: id, Code: "SAVE20", DiscountPercentage: 20})
	require.NoError(t, err)

	code, err := svc.GetCode(ctx, "SAVE20")
	require.NoError(t, err)
	assert.Equal(t, float64(20), code.DiscountPercentage)

	err = svc.UpdateCode(ctx, UpdateCodeCommand{ID: 999, Code: "X", DiscountPercentage: 5})
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
}

func TestDeleteCode(t *testing.T) {
	svc := NewAffiliateApplicationService(newFakeCodeRepository())
	ctx := context.Background()

	id, err := svc.CreateCode(ctx, CreateCodeCommand{Code: "SAVE10", DiscountPercentage: 10})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCode(ctx, id))
	assert.ErrorIs(t, svc.DeleteCode(ctx, id), domain.ErrCodeNotFound)
}

func TestIncrementUsage(t *testing.T) {
	repo := newFakeCodeRepository()
	svc := NewAffiliateApplicationService(repo)
	ctx := context.Background()

	id, err := svc.CreateCode(ctx, CreateCodeCommand{Code: "SAVE10", DiscountPercentage: 10})
	require.NoError(t, err)

	require.NoError(t, svc.IncrementUsage(ctx, id))
	require.NoError(t, svc.IncrementUsage(ctx, id))

	code, err := svc.GetCode(ctx, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 2, code.UsageCount)

	assert.ErrorIs(t, svc.IncrementUsage(ctx, 999), domain.ErrCodeNotFound)
}
