package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileController_Show(t *testing.T) {
	portal := setupPortal(t)
	portal.loginAs(t, "asha@christuniversity.in")

	w := portal.do(t, "GET", "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asha@christuniversity.in")
}

func TestProfileController_Update(t *testing.T) {
	t.Run("persists the edited profile", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "PUT", "/api/profile", map[string]string{
			"name":     "Asha K",
			"email":    "Asha.K@ChristUniversity.in",
			"phone":    "9876543210",
			"password": "newpass",
		})
		require.Equal(t, http.StatusOK, w.Code)

		user, err := portal.sessions.Load()
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Asha K", user.Name)
		assert.Equal(t, "asha.k@christuniversity.in", user.Email)
		assert.Equal(t, "9876543210", user.Phone)
	})

	t.Run("rejects a non-institutional email without saving", func(t *testing.T) {
		portal := setupPortal(t)
		portal.loginAs(t, "asha@christuniversity.in")

		w := portal.do(t, "PUT", "/api/profile", map[string]string{
			"name":  "Asha",
			"email": "asha@gmail.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		user, err := portal.sessions.Load()
		require.NoError(t, err)
		assert.Equal(t, "asha@christuniversity.in", user.Email)
	})
}
