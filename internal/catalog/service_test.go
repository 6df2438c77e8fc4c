package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
	"github.com/nekogravitycat/petcare-booking-backend/internal/store/memory"
)

func newService() catalog.Service {
	return catalog.NewService(memory.NewStore().Services())
}

func createReq() catalog.CreateRequest {
	return catalog.CreateRequest{
		Name:        "  Nail Trim  ",
		Description: "Quick and gentle nail trim",
		Price:       15,
		ImageURL:    "https://example.com/nails.jpg",
	}
}

func TestCreate_AppliesDefaultsAndTrims(t *testing.T) {
	svc := newService()

	cs, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	assert.True(t, objectid.IsValid(cs.ID))
	assert.Equal(t, "Nail Trim", cs.Name)
	assert.Equal(t, catalog.DefaultDuration, cs.Duration)
	assert.True(t, cs.Available)
}

func TestCreate_RejectsInvalidFields(t *testing.T) {
	req := createReq()
	req.Price = -5

	_, err := newService().Create(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdate_RevalidatesMergedRecord(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	cs, err := svc.Create(ctx, createReq())
	require.NoError(t, err)

	// Each rule applies to an update exactly as on create.
	short := 10
	_, err = svc.Update(ctx, cs.ID, catalog.UpdateRequest{Duration: &short})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"Duration must be at least 15 minutes"}, appErr.Errors)

	badURL := "ftp:/nope"
	_, err = svc.Update(ctx, cs.ID, catalog.UpdateRequest{ImageURL: &badURL})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{"Please provide a valid image URL"}, appErr.Errors)

	price := 30.5
	updated, err := svc.Update(ctx, cs.ID, catalog.UpdateRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 30.5, updated.Price)
	assert.Equal(t, "Nail Trim", updated.Name)

	_, err = svc.Update(ctx, objectid.New(), catalog.UpdateRequest{Price: &price})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestList_FilterAndEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.List(ctx, catalog.Filter{})
	assert.ErrorIs(t, err, catalog.ErrNoServices)

	first, err := svc.Create(ctx, createReq())
	require.NoError(t, err)
	off := false
	req := createReq()
	req.Name = "Spa Day"
	req.Available = &off
	second, err := svc.Create(ctx, req)
	require.NoError(t, err)

	all, err := svc.List(ctx, catalog.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	on := true
	available, err := svc.List(ctx, catalog.Filter{Available: &on})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, first.ID, available[0].ID)

	unavailable, err := svc.List(ctx, catalog.Filter{Available: &off})
	require.NoError(t, err)
	require.Len(t, unavailable, 1)
	assert.Equal(t, second.ID, unavailable[0].ID)
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	cs, err := svc.Create(ctx, createReq())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, cs.ID, deleted.ID)

	_, err = svc.GetByID(ctx, cs.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	_, err = svc.Delete(ctx, cs.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
