package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	categorySvc := NewCategoryService(db)

	t.Run("name is required", func(t *testing.T) {
		_, err := categorySvc.CreateCategory("")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "category name is required!", validationErr.Message)
	})

	t.Run("create, duplicate, update, delete", func(t *testing.T) {
		category, err := categorySvc.CreateCategory("Science Fiction")
		require.NoError(t, err)
		assert.NotEmpty(t, category.ID)

		_, err = categorySvc.CreateCategory("Science Fiction")
		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, "category name already exists!", conflictErr.Message)

		name := "SF"
		require.NoError(t, categorySvc.UpdateCategory(category.ID, CategoryUpdateData{Name: &name}))

		got, err := categorySvc.GetCategoryByID(category.ID)
		require.NoError(t, err)
		assert.Equal(t, "SF", got.Name)

		require.NoError(t, categorySvc.DeleteCategory(category.ID))

		_, err = categorySvc.GetCategoryByID(category.ID)
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "category not found!", notFoundErr.Message)
	})
}
