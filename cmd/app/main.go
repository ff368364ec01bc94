package main

import (
	"log"
	"os"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/external/midtrans"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/external/resend"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/db"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := db.RunMigrations(os.Getenv("DATABASE_URL"), migrationsDir); err != nil {
		log.Fatal(err)
	}

	// ======================
	// EXTERNALS
	// ======================
	mailer, err := resend.NewResendMailer("SS Food Products<orders@ssfoodproducts.dev>")
	if err != nil {
		log.Fatal(err)
	}
	snapClient := midtrans.NewSnapClient()

	imageDir := os.Getenv("IMAGE_DIR")
	if imageDir == "" {
		imageDir = "public/productImages"
	}
	imageBase := os.Getenv("IMAGE_BASE")
	if imageBase == "" {
		imageBase = "http://localhost:8080"
	}

	// ======================
	// REPOSITORIES
	// ======================
	customerRepo := repository.NewCustomerRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	wishlistRepo := repository.NewWishlistRepository(pool)
	addressRepo := repository.NewAddressRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	// ======================
	// SERVICES
	// ======================
	sessions := session.NewStore()
	authSvc := services.NewAuthService(customerRepo, adminRepo, sessions)
	customerSvc := services.NewCustomerService(customerRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	productSvc := services.NewProductService(productRepo, imageDir, imageBase)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo)
	invoiceSvc := services.NewInvoiceService(orderRepo, mailer)
	orderSvc := services.NewOrderService(orderRepo, invoiceSvc)
	addressSvc := services.NewAddressService(addressRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, orderRepo, snapClient)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Static("/productImages", imageDir)

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCustomerAuthRoutes(api, authSvc, customerSvc)
	registerAdminRoutes(api, authSvc, customerSvc)
	registerCategoryRoutes(api, categorySvc)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartSvc)
	registerWishlistRoutes(api, wishlistSvc)
	registerOrderRoutes(api, orderSvc, invoiceSvc)
	registerAddressRoutes(api, addressSvc)
	registerPaymentRoutes(api, paymentSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
