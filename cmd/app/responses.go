package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// notFoundOrLog maps a repository not-found sentinel to a 404 and any other
// failure to a logged 500, so driver errors never masquerade as missing rows.
func notFoundOrLog(c echo.Context, err, notFound error, notFoundMsg, failureMsg string) error {
	if errors.Is(err, notFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": notFoundMsg})
	}
	log.Println(failureMsg+":", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"message": failureMsg})
}
