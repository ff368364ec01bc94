package main

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	g.GET("/products", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch products"})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid product ID"})
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return notFoundOrLog(c, err, repository.ErrProductNotFound, "Product not found", "Failed to fetch product")
		}
		return c.JSON(http.StatusOK, p)
	})

	g.GET("/uoms", func(c echo.Context) error {
		list, err := ps.ListUoms(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch units"})
		}
		return c.JSON(http.StatusOK, list)
	})

	a := g.Group("/admin/products", middleware.JWTMiddleware(), middleware.AdminOnly)

	a.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)

		price, err := strconv.ParseFloat(c.FormValue("price"), 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid price"})
		}
		stock, err := strconv.Atoi(c.FormValue("stock_quantity"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid stock quantity"})
		}
		categoryID, err := strconv.ParseInt(c.FormValue("category_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid category ID"})
		}
		quantity, err := strconv.ParseFloat(c.FormValue("quantity"), 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid quantity"})
		}
		uomID, err := strconv.ParseInt(c.FormValue("uom_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid unit of measure"})
		}

		in := &services.CreateProductInput{
			Name:          c.FormValue("name"),
			Price:         price,
			StockQuantity: stock,
			CategoryID:    categoryID,
			AdminID:       claims.ID,
			Quantity:      quantity,
			UomID:         uomID,
		}
		if desc := c.FormValue("description"); desc != "" {
			in.Description = &desc
		}
		if fh, err := c.FormFile("thumbnail"); err == nil {
			in.Thumbnail = fh
		}
		in.Images = formFiles(c, "images")

		id, err := ps.Create(c.Request().Context(), in)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message":   "Product added successfully",
			"productId": id,
		})
	})

	a.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid product ID"})
		}

		in := &services.UpdateProductInput{}
		if v := c.FormValue("name"); v != "" {
			in.Name = &v
		}
		if v := c.FormValue("description"); v != "" {
			in.Description = &v
		}
		if v := c.FormValue("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid price"})
			}
			in.Price = &price
		}
		if v := c.FormValue("stock_quantity"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid stock quantity"})
			}
			in.StockQuantity = &stock
		}
		if v := c.FormValue("category_id"); v != "" {
			categoryID, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid category ID"})
			}
			in.CategoryID = &categoryID
		}
		if v := c.FormValue("quantity"); v != "" {
			quantity, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid quantity"})
			}
			in.Quantity = &quantity
		}
		if v := c.FormValue("uom_id"); v != "" {
			uomID, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid unit of measure"})
			}
			in.UomID = &uomID
		}
		if form, err := c.MultipartForm(); err == nil {
			in.RetainedImages = form.Value["retained_images"]
		}
		if fh, err := c.FormFile("thumbnail"); err == nil {
			in.Thumbnail = fh
		}
		in.Images = formFiles(c, "images")

		if err := ps.Update(c.Request().Context(), id, in); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Product updated successfully"})
	})

	a.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid product ID"})
		}
		if err := ps.Delete(c.Request().Context(), id); err != nil {
			return notFoundOrLog(c, err, repository.ErrProductNotFound, "Product not found", "Failed to delete product")
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
	})
}

func formFiles(c echo.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form.File[field]
}
