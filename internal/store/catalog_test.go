package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-api/internal/models"
)

func TestCatalogCreateAssignsMonotonicIDs(t *testing.T) {
	catalog := NewCatalog()

	for i := 0; i < 5; i++ {
		item := catalog.Create("item", 1.0, false)
		assert.Equal(t, i, item.ID)
	}

	// Deleting must not free ids for reuse.
	require.True(t, catalog.Delete(2))
	item := catalog.Create("after delete", 1.0, false)
	assert.Equal(t, 5, item.ID)
}

func TestCatalogGet(t *testing.T) {
	catalog := NewCatalog()
	created := catalog.Create("pen", 1.5, false)

	t.Run("existing item", func(t *testing.T) {
		item, err := catalog.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, item)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := catalog.Get(99)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("deleted item is still returned", func(t *testing.T) {
		require.True(t, catalog.Delete(created.ID))
		item, err := catalog.Get(created.ID)
		require.NoError(t, err)
		assert.True(t, item.Deleted)
	})
}

func TestCatalogReplace(t *testing.T) {
	catalog := NewCatalog()
	created := catalog.Create("pen", 1.5, false)

	t.Run("overwrites all fields", func(t *testing.T) {
		item, err := catalog.Replace(created.ID, "pencil", 2.0, false)
		require.NoError(t, err)
		assert.Equal(t, "pencil", item.Name)
		assert.Equal(t, 2.0, item.Price)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := catalog.Replace(99, "ghost", 1.0, false)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("replace un-deletes", func(t *testing.T) {
		require.True(t, catalog.Delete(created.ID))
		item, err := catalog.Replace(created.ID, "pencil", 2.0, false)
		require.NoError(t, err)
		assert.False(t, item.Deleted)

		got, err := catalog.Get(created.ID)
		require.NoError(t, err)
		assert.False(t, got.Deleted)
	})
}

func TestCatalogPatch(t *testing.T) {
	name := "marker"
	price := 3.0

	t.Run("updates only supplied fields", func(t *testing.T) {
		catalog := NewCatalog()
		created := catalog.Create("pen", 1.5, false)

		item, err := catalog.Patch(created.ID, models.ItemPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "marker", item.Name)
		assert.Equal(t, 1.5, item.Price)

		item, err = catalog.Patch(created.ID, models.ItemPatch{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, "marker", item.Name)
		assert.Equal(t, 3.0, item.Price)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		catalog := NewCatalog()
		created := catalog.Create("pen", 1.5, false)

		item, err := catalog.Patch(created.ID, models.ItemPatch{})
		require.NoError(t, err)
		assert.Equal(t, created, item)
	})

	t.Run("unknown id", func(t *testing.T) {
		catalog := NewCatalog()
		_, err := catalog.Patch(99, models.ItemPatch{Name: &name})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("rejected on deleted item without modification", func(t *testing.T) {
		catalog := NewCatalog()
		created := catalog.Create("pen", 1.5, false)
		require.True(t, catalog.Delete(created.ID))

		_, err := catalog.Patch(created.ID, models.ItemPatch{Name: &name, Price: &price})
		assert.ErrorIs(t, err, ErrItemDeleted)

		got, err := catalog.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "pen", got.Name)
		assert.Equal(t, 1.5, got.Price)
	})
}

func TestCatalogDelete(t *testing.T) {
	catalog := NewCatalog()
	created := catalog.Create("pen", 1.5, false)

	assert.False(t, catalog.Delete(99))

	assert.True(t, catalog.Delete(created.ID))
	assert.True(t, catalog.Delete(created.ID), "repeat delete still reports true")
}

func TestCatalogList(t *testing.T) {
	catalog := NewCatalog()
	for i := 0; i < 5; i++ {
		catalog.Create("item", float64(i), false)
	}

	t.Run("offset and limit over all matches", func(t *testing.T) {
		items := catalog.List(2, 2, nil)
		require.Len(t, items, 2)
		assert.Equal(t, 2, items[0].ID)
		assert.Equal(t, 3, items[1].ID)
	})

	t.Run("limit past the end", func(t *testing.T) {
		items := catalog.List(3, 10, nil)
		require.Len(t, items, 2)
		assert.Equal(t, 3, items[0].ID)
	})

	t.Run("offset past the end", func(t *testing.T) {
		assert.Empty(t, catalog.List(10, 5, nil))
	})

	t.Run("offset counts matches, not rows", func(t *testing.T) {
		items := catalog.List(1, 2, func(item models.Item) bool {
			return item.Price >= 2
		})
		require.Len(t, items, 2)
		assert.Equal(t, 3, items[0].ID)
		assert.Equal(t, 4, items[1].ID)
	})

	t.Run("predicate controls deleted visibility", func(t *testing.T) {
		require.True(t, catalog.Delete(1))

		visible := catalog.List(0, 10, func(item models.Item) bool {
			return !item.Deleted
		})
		require.Len(t, visible, 4)
		for _, item := range visible {
			assert.NotEqual(t, 1, item.ID)
		}

		all := catalog.List(0, 10, nil)
		assert.Len(t, all, 5)
	})
}

func TestCatalogConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			catalog.Create("item", 1.0, false)
		}()
		go func() {
			defer wg.Done()
			catalog.List(0, 100, nil)
		}()
	}
	wg.Wait()

	items := catalog.List(0, 100, nil)
	require.Len(t, items, 50)
	seen := make(map[int]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID], "id %d assigned twice", item.ID)
		seen[item.ID] = true
	}
}
