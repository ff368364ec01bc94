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

type orderItemRequest struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type placeOrderRequest struct {
	CustomerID      int64              `json:"customerId"`
	AddressID       int64              `json:"addressId"`
	PaymentMethodID int64              `json:"paymentMethodId"`
	OrderMethod     string             `json:"orderMethod"`
	TotalAmount     *float64           `json:"totalAmount"`
	Items           []orderItemRequest `json:"items"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService, is *services.InvoiceService) {
	orders := g.Group("/customer/orders", middleware.JWTMiddleware())

	orders.POST("", func(c echo.Context) error {
		req := new(placeOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		claims := middleware.GetClaims(c)
		if claims == nil || claims.ID != req.CustomerID {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Token does not match customer ID"})
		}

		in := &services.PlaceOrderInput{
			CustomerID:      req.CustomerID,
			AddressID:       req.AddressID,
			PaymentMethodID: req.PaymentMethodID,
			OrderMethod:     req.OrderMethod,
			TotalAmount:     req.TotalAmount,
		}
		for _, it := range req.Items {
			in.Items = append(in.Items, services.OrderItemInput{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}

		orderID, err := os.PlaceOrder(c.Request().Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrUnknownOrderMethod),
				errors.Is(err, services.ErrInvalidItem),
				errors.Is(err, services.ErrTotalMismatch):
				return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
			default:
				log.Println("order placement failed:", err)
				return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to place order"})
			}
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message": "Order placed successfully",
			"orderId": orderID,
		})
	})

	orders.GET("", func(c echo.Context) error {
		customerID, err := strconv.ParseInt(c.QueryParam("customerId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid customer ID"})
		}
		claims := middleware.GetClaims(c)
		if claims == nil || claims.ID != customerID {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized: Token does not match customer ID"})
		}
		list, err := os.OrdersByCustomer(c.Request().Context(), customerID)
		if err != nil {
			log.Println("order history fetch failed:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch orders"})
		}
		return c.JSON(http.StatusOK, list)
	})

	orders.GET("/:orderId/invoice", func(c echo.Context) error {
		orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid order ID"})
		}
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
		}
		pdf, err := is.RenderForCustomer(c.Request().Context(), orderID, claims.ID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrOrderNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Order not found"})
			case errors.Is(err, services.ErrNotOwner):
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Order does not belong to customer"})
			default:
				log.Println("invoice render failed:", err)
				return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to generate invoice"})
			}
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=invoice-"+c.Param("orderId")+".pdf")
		return c.Blob(http.StatusOK, "application/pdf", pdf)
	})

	g.GET("/customer/payment-methods", func(c echo.Context) error {
		methods, err := os.PaymentMethods(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch payment methods"})
		}
		return c.JSON(http.StatusOK, methods)
	})
}
