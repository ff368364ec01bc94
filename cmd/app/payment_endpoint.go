package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService) {
	g.POST("/customer/payments/:orderId", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid order ID"})
		}
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
		}
		redirectURL, err := ps.CreateSnapPayment(c.Request().Context(), orderID, claims.ID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrOrderNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Order not found"})
			case errors.Is(err, services.ErrNotOwner):
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Order does not belong to customer"})
			case errors.Is(err, services.ErrOrderNotPayable), errors.Is(err, services.ErrPaymentExists):
				return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
			default:
				log.Println("payment creation failed:", err)
				return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create payment"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{
			"message":      "Payment created",
			"redirect_url": redirectURL,
		})
	}, middleware.JWTMiddleware())

	// Provider webhook, authenticated by its signature rather than a token.
	g.POST("/customer/payments/notify", func(c echo.Context) error {
		payload := map[string]interface{}{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		if err := ps.HandleNotification(c.Request().Context(), payload); err != nil {
			log.Println("payment notification rejected:", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "OK"})
	})
}
