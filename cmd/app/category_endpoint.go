package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
)

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService) {
	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch categories"})
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/categories/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid category ID"})
		}
		cat, err := cs.Get(c.Request().Context(), id)
		if err != nil {
			return notFoundOrLog(c, err, repository.ErrCategoryNotFound, "Category not found", "Failed to fetch category")
		}
		return c.JSON(http.StatusOK, cat)
	})

	a := g.Group("/admin/categories", middleware.JWTMiddleware(), middleware.AdminOnly)

	a.POST("", func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		id, err := cs.Create(c.Request().Context(), req.Name, req.Description)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message":    "Category added successfully",
			"categoryId": id,
		})
	})

	a.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid category ID"})
		}
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
		}
		if err := cs.Update(c.Request().Context(), id, req.Name, req.Description); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Category not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Category updated successfully"})
	})

	a.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid category ID"})
		}
		if err := cs.Delete(c.Request().Context(), id); err != nil {
			return notFoundOrLog(c, err, repository.ErrCategoryNotFound, "Category not found", "Failed to delete category")
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted successfully"})
	})
}
