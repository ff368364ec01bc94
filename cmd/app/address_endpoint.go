package main

import (
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

type addressRequest struct {
	CustomerID int64   `json:"customerId"`
	Label      *string `json:"label"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

func registerAddressRoutes(g *echo.Group, as *services.AddressService) {
	addr := g.Group("/customer/addresses", middleware.JWTMiddleware())

	addr.POST("", func(c echo.Context) error {
		req := new(addressRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		claims := middleware.GetClaims(c)
		if claims == nil || claims.ID != req.CustomerID {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Token does not match customer ID"})
		}
		id, err := as.Create(c.Request().Context(), &model.Address{
			CustomerID: req.CustomerID,
			Label:      req.Label,
			Street:     req.Street,
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		})
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message":   "Address added successfully",
			"addressId": id,
		})
	})

	addr.GET("", func(c echo.Context) error {
		customerID, err := strconv.ParseInt(c.QueryParam("customerId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid customer ID"})
		}
		claims := middleware.GetClaims(c)
		if claims == nil || claims.ID != customerID {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Token does not match customer ID"})
		}
		list, err := as.List(c.Request().Context(), customerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch addresses"})
		}
		return c.JSON(http.StatusOK, list)
	})
}
