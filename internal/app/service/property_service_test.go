package service_test

import (
	"context"
	"strings"
	"testing"

	"realestate_crud/internal/app/service"
	"realestate_crud/internal/common"
	"realestate_crud/internal/domain/model"
	"realestate_crud/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePropertyRepo keeps properties in insertion order and applies the
// filter contract in memory: case-sensitive substring OR over address and
// description, inclusive upper bounds, AND-combined.
type fakePropertyRepo struct {
	properties []model.Property
	nextID     int64
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{nextID: 1}
}

func matches(p model.Property, f repository.PropertyFilter) bool {
	if f.Query != nil && !strings.Contains(p.Address, *f.Query) && !strings.Contains(p.Description, *f.Query) {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MaxSize != nil && p.Size > *f.MaxSize {
		return false
	}
	return true
}

func (r *fakePropertyRepo) List(ctx context.Context, filter repository.PropertyFilter, limit, offset int) ([]model.Property, int, error) {
	var filtered []model.Property
	for _, p := range r.properties {
		if matches(p, filter) {
			filtered = append(filtered, p)
		}
	}
	total := len(filtered)
	if offset >= total {
		return []model.Property{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return filtered[offset:end], total, nil
}

func (r *fakePropertyRepo) FindByID(ctx context.Context, id int64) (*model.Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakePropertyRepo) Create(ctx context.Context, p *model.Property) error {
	p.ID = r.nextID
	r.nextID++
	r.properties = append(r.properties, *p)
	return nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, p *model.Property) error {
	for i := range r.properties {
		if r.properties[i].ID == p.ID {
			r.properties[i] = *p
			return nil
		}
	}
	return nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.properties {
		if r.properties[i].ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return nil
		}
	}
	return nil
}

func seedProperties(t *testing.T, svc *service.PropertyService) []*model.Property {
	t.Helper()
	details := []service.PropertyDetails{
		{Address: "Calle 123", Price: 100000, Size: 150, Description: "Casa en el centro"},
		{Address: "Carrera 45", Price: 200000, Size: 80, Description: "Apartamento con vista al mar"},
	}
	var created []*model.Property
	for _, d := range details {
		p, err := svc.Create(context.Background(), d)
		require.NoError(t, err)
		created = append(created, p)
	}
	return created
}

func TestPropertyService_Create(t *testing.T) {
	svc := service.NewPropertyService(newFakePropertyRepo())

	p, err := svc.Create(context.Background(), service.PropertyDetails{
		Address: "Calle 123", Price: 100000, Size: 150, Description: "Casa nueva",
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Calle 123", p.Address)
	assert.Equal(t, 100000.0, p.Price)
	assert.Equal(t, 150.0, p.Size)
	assert.Equal(t, "Casa nueva", p.Description)
}

func TestPropertyService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPropertyService(newFakePropertyRepo())
	seedProperties(t, svc)

	page, err := svc.GetAll(ctx, 0, 5)
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, 2, page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Number)

	t.Run("pagination applies after the full set", func(t *testing.T) {
		first, err := svc.GetAll(ctx, 0, 1)
		require.NoError(t, err)
		second, err := svc.GetAll(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, first.Content, 1)
		require.Len(t, second.Content, 1)
		assert.NotEqual(t, first.Content[0].ID, second.Content[0].ID)
		assert.Equal(t, 2, first.TotalElements)
		assert.Equal(t, 2, first.TotalPages)
	})
}

func TestPropertyService_Search(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPropertyService(newFakePropertyRepo())
	seedProperties(t, svc)

	query := func(s string) *string { return &s }
	bound := func(f float64) *float64 { return &f }

	t.Run("no filters matches GetAll", func(t *testing.T) {
		all, err := svc.GetAll(ctx, 0, 5)
		require.NoError(t, err)
		searched, err := svc.Search(ctx, repository.PropertyFilter{}, 0, 5)
		require.NoError(t, err)
		assert.Equal(t, all, searched)
	})

	t.Run("substring over description", func(t *testing.T) {
		page, err := svc.Search(ctx, repository.PropertyFilter{Query: query("centro")}, 0, 5)
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "Casa en el centro", page.Content[0].Description)
	})

	t.Run("substring over address", func(t *testing.T) {
		page, err := svc.Search(ctx, repository.PropertyFilter{Query: query("Carrera")}, 0, 5)
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "Carrera 45", page.Content[0].Address)
	})

	t.Run("query is case-sensitive", func(t *testing.T) {
		page, err := svc.Search(ctx, repository.PropertyFilter{Query: query("CENTRO")}, 0, 5)
		require.NoError(t, err)
		assert.Empty(t, page.Content)
	})

	t.Run("inclusive price bound", func(t *testing.T) {
		page, err := svc.Search(ctx, repository.PropertyFilter{MaxPrice: bound(150000)}, 0, 5)
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, 100000.0, page.Content[0].Price)

		exact, err := svc.Search(ctx, repository.PropertyFilter{MaxPrice: bound(100000)}, 0, 5)
		require.NoError(t, err)
		assert.Len(t, exact.Content, 1)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		page, err := svc.Search(ctx, repository.PropertyFilter{
			Query:    query("Casa"),
			MaxPrice: bound(150000),
			MaxSize:  bound(100),
		}, 0, 5)
		require.NoError(t, err)
		assert.Empty(t, page.Content, "size 150 exceeds the bound")
	})
}

func TestPropertyService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPropertyService(newFakePropertyRepo())
	created := seedProperties(t, svc)

	t.Run("found", func(t *testing.T) {
		p, err := svc.GetByID(ctx, created[0].ID)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, created[0].Address, p.Address)
	})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		p, err := svc.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestPropertyService_Update(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPropertyService(newFakePropertyRepo())
	created := seedProperties(t, svc)

	t.Run("replaces all four fields of the target only", func(t *testing.T) {
		updated, err := svc.Update(ctx, created[0].ID, service.PropertyDetails{
			Address: "X", Price: 1, Size: 2, Description: "Y",
		})
		require.NoError(t, err)
		assert.Equal(t, created[0].ID, updated.ID)
		assert.Equal(t, "X", updated.Address)
		assert.Equal(t, 1.0, updated.Price)
		assert.Equal(t, 2.0, updated.Size)
		assert.Equal(t, "Y", updated.Description)

		other, err := svc.GetByID(ctx, created[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Carrera 45", other.Address)
	})

	t.Run("missing id fails with the property-not-found message", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, service.PropertyDetails{Address: "X"})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrPropertyNotFound)
		assert.Equal(t, "Propiedad no encontrada", err.Error())
	})
}

func TestPropertyService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPropertyService(newFakePropertyRepo())
	created := seedProperties(t, svc)

	t.Run("removes an existing record", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created[0].ID))

		p, err := svc.GetByID(ctx, created[0].ID)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.Delete(ctx, 9999))
	})
}
