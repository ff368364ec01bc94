package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundOrLog(t *testing.T) {
	e := echo.New()
	respond := func(err error) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, notFoundOrLog(c, err, repository.ErrCartItemNotFound, "Cart item not found", "Failed to remove cart item"))
		return rec
	}

	rec := respond(repository.ErrCartItemNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = respond(fmt.Errorf("remove: %w", repository.ErrCartItemNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code, "wrapped sentinel still maps to 404")

	// A driver failure must surface as a 500 with the generic message, never
	// as a 404.
	rec = respond(errors.New("connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to remove cart item")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
