package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
)

func testParams() domain.TemplateParams {
	return domain.TemplateParams{
		Page:       map[string]interface{}{"format": "A4"},
		Typography: map[string]interface{}{"font_family": "Times New Roman", "font_size": 14},
		Headings:   map[string]interface{}{},
		Numbering:  map[string]interface{}{},
	}
}

func TestTemplateCreate(t *testing.T) {
	svc := NewTemplateService(testLogger(), newMockTemplateRepo())

	tpl, err := svc.Create(context.Background(), "GOST", "State standard", testParams())
	require.NoError(t, err)
	assert.True(t, tpl.IsActive)
	assert.Equal(t, "GOST", tpl.Name)

	_, err = svc.Create(context.Background(), "GOST", "Duplicate", testParams())
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(context.Background(), "  ", "Unnamed", testParams())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTemplateInactiveFiltering(t *testing.T) {
	templates := newMockTemplateRepo()
	svc := NewTemplateService(testLogger(), templates)

	_, err := svc.Create(context.Background(), "Active", "d", testParams())
	require.NoError(t, err)
	retired, err := svc.Create(context.Background(), "Retired", "d", testParams())
	require.NoError(t, err)

	off := false
	_, err = svc.Update(context.Background(), retired.ID, TemplateUpdate{IsActive: &off})
	require.NoError(t, err)

	visible, err := svc.GetAll(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.GetAll(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTemplateUpdate(t *testing.T) {
	svc := NewTemplateService(testLogger(), newMockTemplateRepo())

	first, err := svc.Create(context.Background(), "First", "d", testParams())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "Second", "d", testParams())
	require.NoError(t, err)

	name := "First"
	_, err = svc.Update(context.Background(), second.ID, TemplateUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrConflict)

	desc := "updated description"
	updated, err := svc.Update(context.Background(), first.ID, TemplateUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "updated description", updated.Description)
	assert.Equal(t, "First", updated.Name)

	_, err = svc.Update(context.Background(), 999, TemplateUpdate{Description: &desc})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateDelete(t *testing.T) {
	svc := NewTemplateService(testLogger(), newMockTemplateRepo())

	tpl, err := svc.Create(context.Background(), "GOST", "d", testParams())
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), tpl.ID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), tpl.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
