package main

import (
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func registerCustomerAuthRoutes(g *echo.Group, as *services.AuthService, cs *services.CustomerService) {
	p := g.Group("/customer")

	p.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		_, err := as.Register(c.Request().Context(), &services.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Phone:    req.Phone,
		})
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "Registration successful"})
	})

	p.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		token, customer, err := as.Login(c.Request().Context(), req.Login, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":    "Login successful",
			"token":      token,
			"customerId": customer.ID,
		})
	})

	// Profile requires a bearer token whose identity matches ?customerId=.
	p.GET("/profile", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		customerID, err := strconv.ParseInt(c.QueryParam("customerId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid customer ID"})
		}
		if claims == nil || claims.ID != customerID {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Token does not match customer ID"})
		}
		customer, err := cs.Profile(c.Request().Context(), customerID)
		if err != nil {
			return notFoundOrLog(c, err, repository.ErrCustomerNotFound, "User not found", "Failed to fetch profile")
		}
		return c.JSON(http.StatusOK, map[string]string{
			"full_name": customer.FullName,
			"email":     customer.Email,
		})
	}, middleware.JWTMiddleware())
}
