package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatgrids/internal/repository"
)

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, repository.EnsureDataFiles(dir))
	return NewCatalogService(
		repository.NewProductRepository(dir),
		repository.NewGalleryRepository(dir),
	)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func TestCatalogService_createProductDefaults(t *testing.T) {
	svc := newCatalogService(t)

	product, err := svc.CreateProduct(&ProductFields{
		Name:  strPtr("Braai Grid L"),
		Price: floatPtr(495),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "fas fa-star", product.TagIcon)
	assert.Equal(t, "bestseller", product.BadgeType)
	assert.NotNil(t, product.Specs)
	assert.Empty(t, product.Specs)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCatalogService_createProductRequiresName(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.CreateProduct(&ProductFields{Price: floatPtr(100)})
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestCatalogService_updateLeavesUnsetFieldsAlone(t *testing.T) {
	svc := newCatalogService(t)

	created, err := svc.CreateProduct(&ProductFields{
		Name:        strPtr("Braai Grid L"),
		Description: strPtr("Large stainless grid"),
		Price:       floatPtr(495),
		InStock:     boolPtr(true),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, &ProductFields{
		Price: floatPtr(525),
	})
	require.NoError(t, err)

	assert.Equal(t, 525.0, updated.Price)
	assert.Equal(t, "Braai Grid L", updated.Name)
	assert.Equal(t, "Large stainless grid", updated.Description)
	assert.True(t, updated.InStock)
	require.NotNil(t, updated.UpdatedAt)
}

func TestCatalogService_toggleStock(t *testing.T) {
	svc := newCatalogService(t)

	created, err := svc.CreateProduct(&ProductFields{
		Name:    strPtr("Braai Grid S"),
		InStock: boolPtr(true),
	})
	require.NoError(t, err)

	toggled, err := svc.ToggleStock(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.InStock)

	toggled, err = svc.ToggleStock(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.InStock)
}

func TestCatalogService_toggleStockUnknownProduct(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.ToggleStock("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogService_addGalleryImage(t *testing.T) {
	svc := newCatalogService(t)

	first, err := svc.AddGalleryImage("uploads/gallery/a.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, "Gallery image", first.Alt)
	assert.Equal(t, 0, first.Order)

	second, err := svc.AddGalleryImage("uploads/gallery/b.jpg", "Sunset braai")
	require.NoError(t, err)
	assert.Equal(t, "Sunset braai", second.Alt)
	assert.Equal(t, 1, second.Order)

	_, err = svc.AddGalleryImage("", "")
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}
