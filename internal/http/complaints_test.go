package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintsController_Submit(t *testing.T) {
	t.Run("files a complaint for the session user", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "POST", "/api/complaints", map[string]string{
			"type":    "Missing book",
			"details": "Shelf B is empty",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = portal.do(t, "GET", "/api/complaints", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		complaints, ok := body["complaints"].([]any)
		require.True(t, ok)
		require.Len(t, complaints, 1)

		filed, ok := complaints[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "asha@christuniversity.in", filed["user"])
		assert.Equal(t, "Missing book", filed["type"])
	})

	t.Run("substitutes the free-text category for Other", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "POST", "/api/complaints", map[string]string{
			"type":  "Other",
			"other": "Broken chair",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Broken chair")
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "POST", "/api/complaints", map[string]string{
			"type": "Nonsense",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = portal.do(t, "GET", "/api/complaints", nil)
		body := decodeBody(t, w)
		assert.Empty(t, body["complaints"])
	})
}

func TestComplaintsController_List(t *testing.T) {
	t.Run("includes the type options", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "GET", "/api/complaints", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		types, ok := body["types"].([]any)
		require.True(t, ok)
		assert.Len(t, types, 6)
		assert.Equal(t, "Book damaged", types[0])
	})
}

func TestRoomsController_Book(t *testing.T) {
	t.Run("books a room for the session user", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "POST", "/api/rooms", map[string]any{
			"date":   "2025-03-20",
			"from":   "10:00",
			"to":     "12:00",
			"people": 4,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = portal.do(t, "GET", "/api/rooms", nil)
		body := decodeBody(t, w)
		bookings, ok := body["bookings"].([]any)
		require.True(t, ok)
		require.Len(t, bookings, 1)

		booking, ok := bookings[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "asha@christuniversity.in", booking["user"])
		assert.EqualValues(t, 4, booking["people"])
	})

	t.Run("omitted people defaults to one", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "POST", "/api/rooms", map[string]any{
			"date": "2025-03-20",
			"from": "10:00",
			"to":   "12:00",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"people":1`)
	})

	t.Run("rejects an explicit zero people count", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "POST", "/api/rooms", map[string]any{
			"date":   "2025-03-20",
			"from":   "10:00",
			"to":     "12:00",
			"people": 0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a booking without a date", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "POST", "/api/rooms", map[string]any{
			"from": "10:00",
			"to":   "12:00",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
