package main

import (
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

type wishlistRequest struct {
	CustomerID int64 `json:"customerId"`
	ProductID  int64 `json:"productId"`
}

func registerWishlistRoutes(g *echo.Group, ws *services.WishlistService) {
	wl := g.Group("/customer/wishlist")

	wl.GET("", func(c echo.Context) error {
		customerID, err := strconv.ParseInt(c.QueryParam("customerId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid customer ID"})
		}
		items, err := ws.List(c.Request().Context(), customerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch wishlist"})
		}
		return c.JSON(http.StatusOK, items)
	})

	wl.POST("", func(c echo.Context) error {
		req := new(wishlistRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		liked, err := ws.Toggle(c.Request().Context(), req.CustomerID, req.ProductID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		msg := "Product removed from wishlist"
		if liked == 1 {
			msg = "Product added to wishlist"
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":  msg,
			"is_liked": liked,
		})
	})
}
