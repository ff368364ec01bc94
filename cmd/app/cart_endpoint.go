package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

type cartRequest struct {
	CustomerID int64 `json:"customerId"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	cart := g.Group("/customer/cart")

	cart.POST("", func(c echo.Context) error {
		req := new(cartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		if err := cs.Add(c.Request().Context(), req.CustomerID, req.ProductID, req.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Product added to cart"})
	})

	cart.GET("", func(c echo.Context) error {
		customerID, err := strconv.ParseInt(c.QueryParam("customerId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid customer ID"})
		}
		items, err := cs.Get(c.Request().Context(), customerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch cart"})
		}
		return c.JSON(http.StatusOK, items)
	})

	cart.PUT("", func(c echo.Context) error {
		req := new(cartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		if err := cs.SetQuantity(c.Request().Context(), req.CustomerID, req.ProductID, req.Quantity); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Cart item not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Cart updated"})
	})

	cart.DELETE("", func(c echo.Context) error {
		customerID, err := strconv.ParseInt(c.QueryParam("customerId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid customer ID"})
		}
		productID, err := strconv.ParseInt(c.QueryParam("productId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid product ID"})
		}
		if err := cs.Remove(c.Request().Context(), customerID, productID); err != nil {
			return notFoundOrLog(c, err, repository.ErrCartItemNotFound, "Cart item not found", "Failed to remove cart item")
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Product removed from cart"})
	})
}
