package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-storefront/internal/config"
	"go-storefront/internal/handler"
	"go-storefront/internal/middleware"
	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/internal/service"
	"go-storefront/internal/ws"
	"go-storefront/pkg/database"
	"go-storefront/pkg/jwt"
	"go-storefront/pkg/storage"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	// 2. Setup database
	db := database.Connect(cfg.DSN())
	db.AutoMigrate(
		&model.User{}, &model.Role{}, &model.Privilege{},
		&model.Category{}, &model.Product{}, &model.ProductImage{},
		&model.Client{}, &model.Sale{}, &model.Review{}, &model.Banner{},
	)

	// 3. Seed reference data and the bootstrap admin
	seedDefaults(db, cfg)

	// 4. Shared infrastructure
	wsHub := ws.NewHub()
	go wsHub.Run()

	tokens := jwt.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	store := storage.NewStore(cfg.StorageRoot, "/storage")
	sessions := session.New(session.Config{
		Expiration:     time.Duration(cfg.SessionTTLHours) * time.Hour,
		CookieHTTPOnly: true,
	})

	// 5. Dependency injection (wiring layers)
	txManager := repository.NewTxManager(db)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	clientRepo := repository.NewClientRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	bannerRepo := repository.NewBannerRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, reviewRepo, bannerRepo)
	cartService := service.NewCartService(productRepo)
	saleService := service.NewSaleService(txManager, productRepo, clientRepo, saleRepo, categoryRepo, wsHub)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	productService := service.NewProductService(productRepo, categoryRepo, store, wsHub)
	bannerService := service.NewBannerService(bannerRepo, store)
	authService := service.NewAuthService(userRepo, roleRepo, tokens)
	dashboardService := service.NewDashboardService(saleRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService, sessions)
	saleHandler := handler.NewSaleHandler(saleService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	productHandler := handler.NewProductHandler(productService)
	bannerHandler := handler.NewBannerHandler(bannerService)
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Storefront API v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Uploaded images
	app.Static("/storage", store.Root())

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	// ============ PUBLIC ROUTES ============
	app.Get("/", catalogHandler.Home)
	app.Get("/products", catalogHandler.Catalogue)
	app.Get("/products/search", catalogHandler.Search)
	app.Get("/products/:id", catalogHandler.Detail)

	app.Get("/cart", cartHandler.GetCart)
	app.Post("/cart/add/:id", cartHandler.AddToCart)
	app.Patch("/cart/update", cartHandler.UpdateCart)
	app.Delete("/cart/remove", cartHandler.RemoveFromCart)
	app.Post("/cart/checkout", cartHandler.Checkout)

	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	app.Post("/products/:id/review", requireAuth, middleware.RequirePrivilege("review:create"), reviewHandler.SubmitReview)

	app.Post("/sales", requireAuth, middleware.RequirePrivilege("sale:create"), saleHandler.RecordSale)
	app.Get("/sales", requireAuth, middleware.RequirePrivilege("sale:view"), saleHandler.ListSales)

	app.Get("/dashboard/sales", requireAuth, middleware.RequirePrivilege("dashboard:view"), dashboardHandler.RecentSales)
	app.Get("/dashboard/stats", requireAuth, middleware.RequirePrivilege("dashboard:view"), dashboardHandler.Stats)

	my := app.Group("/my", requireAuth, middleware.RequirePrivilege("product:manage"))
	my.Get("/products", productHandler.ListOwned)
	my.Post("/products", productHandler.Create)
	my.Put("/products/:id", productHandler.Update)
	my.Delete("/products/:id", productHandler.Delete)
	my.Post("/products/:id/status", productHandler.ToggleStatus)
	my.Delete("/product-images/:id", productHandler.DeleteImage)

	admin := app.Group("/admin", requireAuth, middleware.RequirePrivilege("banner:manage"))
	admin.Get("/banners", bannerHandler.List)
	admin.Post("/banners", bannerHandler.Create)
	admin.Delete("/banners/:id", bannerHandler.Delete)

	// Live catalog feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaults creates privileges, roles, categories, and the bootstrap admin
// if they don't exist
func seedDefaults(db *gorm.DB, cfg *config.Config) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}
	if err := categoryRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed categories: %v", err)
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	// ADMIN gets everything, including banner:manage
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		if err := roleRepo.ReplacePrivileges(adminRole, allPrivileges); err != nil {
			log.Printf("Warning: Failed to assign ADMIN privileges: %v", err)
		}
	}

	// SELLER gets everything except site configuration
	sellerRole, err := roleRepo.FindByCode(model.RoleSeller)
	if err == nil && len(sellerRole.Privileges) == 0 {
		sellerPrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			if p.Code != "banner:manage" {
				sellerPrivileges = append(sellerPrivileges, p)
			}
		}
		if err := roleRepo.ReplacePrivileges(sellerRole, sellerPrivileges); err != nil {
			log.Printf("Warning: Failed to assign SELLER privileges: %v", err)
		}
	}

	// Bootstrap admin account
	if _, err := userRepo.FindByEmail(cfg.AdminEmail); err != nil {
		adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
		if err != nil {
			log.Printf("Warning: ADMIN role missing, skipping admin user: %v", err)
			return
		}

		admin := &model.User{
			Email:    cfg.AdminEmail,
			FullName: "Site Administrator",
			RoleID:   &adminRole.ID,
			IsActive: true,
		}
		if err := admin.SetPassword(cfg.AdminPassword); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Printf("Admin user created: %s", cfg.AdminEmail)
		}
	}
}
