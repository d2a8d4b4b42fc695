package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culibrary/portal/internal/entities"
)

func TestFilterBooks(t *testing.T) {
	books := entities.DefaultCatalog()

	t.Run("empty query returns the full catalog in order", func(t *testing.T) {
		result := FilterBooks(books, Query{})

		require.Len(t, result, len(books))
		for i := range books {
			assert.Equal(t, books[i].ID, result[i].ID)
		}
	})

	t.Run("text matches title and author case-insensitively", func(t *testing.T) {
		result := FilterBooks(books, Query{Text: "data"})

		require.Len(t, result, 1)
		assert.Equal(t, "Data Science Essentials", result[0].Title)

		byAuthor := FilterBooks(books, Query{Text: "LEVIT"})
		require.Len(t, byAuthor, 2)
		assert.Equal(t, "Foundations of Algorithms", byAuthor[0].Title)
		assert.Equal(t, "Data Science Essentials", byAuthor[1].Title)
	})

	t.Run("category matches exactly", func(t *testing.T) {
		result := FilterBooks(books, Query{Category: "Engineering"})

		require.Len(t, result, 1)
		assert.Equal(t, "Principles of Engineering Physics", result[0].Title)
	})

	t.Run("criteria combine conjunctively", func(t *testing.T) {
		result := FilterBooks(books, Query{Author: "C. Levit", Category: "Computer Science"})
		assert.Len(t, result, 2)

		none := FilterBooks(books, Query{Author: "C. Levit", Category: "Engineering"})
		assert.Empty(t, none)
	})

	t.Run("language matches exactly", func(t *testing.T) {
		result := FilterBooks(books, Query{Language: "Kannada"})

		require.Len(t, result, 1)
		assert.Equal(t, "Kannada Literature", result[0].Title)
	})

	t.Run("empty result is valid", func(t *testing.T) {
		result := FilterBooks(books, Query{Text: "no such book"})
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("does not reorder matches", func(t *testing.T) {
		result := FilterBooks(books, Query{Language: "English"})

		require.Len(t, result, 5)
		assert.Equal(t, []int{1, 2, 3, 5, 6}, []int{result[0].ID, result[1].ID, result[2].ID, result[3].ID, result[4].ID})
	})
}

func TestQuery_IsEmpty(t *testing.T) {
	assert.True(t, Query{}.IsEmpty())
	assert.True(t, Query{Text: "   "}.IsEmpty())
	assert.False(t, Query{Text: "x"}.IsEmpty())
	assert.False(t, Query{Language: "English"}.IsEmpty())
}

func TestDistinctFields(t *testing.T) {
	books := entities.DefaultCatalog()

	t.Run("categories deduped in first-occurrence order", func(t *testing.T) {
		categories := DistinctCategories(books)
		assert.Equal(t, []string{"Computer Science", "Psychology", "Engineering", "Literature", "Social Sciences"}, categories)
	})

	t.Run("authors deduped in first-occurrence order", func(t *testing.T) {
		authors := DistinctAuthors(books)
		assert.Equal(t, []string{"C. Levit", "L. Hartman", "R. Mehta", "S. Rao", "B. Nair"}, authors)
	})

	t.Run("languages deduped in first-occurrence order", func(t *testing.T) {
		languages := DistinctLanguages(books)
		assert.Equal(t, []string{"English", "Kannada"}, languages)
	})

	t.Run("empty catalog yields empty lists", func(t *testing.T) {
		assert.Empty(t, DistinctCategories(nil))
	})
}
