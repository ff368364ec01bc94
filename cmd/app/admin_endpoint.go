package main

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAdminRoutes(g *echo.Group, as *services.AuthService, cs *services.CustomerService) {
	a := g.Group("/admin")

	a.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		token, admin, err := as.LoginAdmin(c.Request().Context(), req.Login, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "Login successful",
			"token":   token,
			"adminId": base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(admin.ID, 10))),
		})
	})

	a.GET("/verify", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Token is valid"})
	}, middleware.JWTMiddleware(), middleware.AdminOnly)

	// The adminId path param is the base64 form handed out at login.
	a.GET("/profile/:adminId", func(c echo.Context) error {
		raw, err := base64.StdEncoding.DecodeString(c.Param("adminId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid admin ID"})
		}
		adminID, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid admin ID"})
		}
		admin, err := as.AdminProfile(c.Request().Context(), adminID)
		if err != nil {
			return notFoundOrLog(c, err, repository.ErrAdminNotFound, "Admin not found", "Failed to fetch admin")
		}
		return c.JSON(http.StatusOK, admin)
	}, middleware.JWTMiddleware(), middleware.AdminOnly)

	a.GET("/customers", func(c echo.Context) error {
		customers, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch customers"})
		}
		return c.JSON(http.StatusOK, customers)
	}, middleware.JWTMiddleware(), middleware.AdminOnly)
}
