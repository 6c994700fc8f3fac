package main

import (
	"context"
	"log"

	"github.com/Zughayyar/fin-stack-server/config"
	"github.com/Zughayyar/fin-stack-server/db"
	authhandler "github.com/Zughayyar/fin-stack-server/internal/auth/handler"
	authrepo "github.com/Zughayyar/fin-stack-server/internal/auth/repository/postgres"
	authservice "github.com/Zughayyar/fin-stack-server/internal/auth/service"
	finhandler "github.com/Zughayyar/fin-stack-server/internal/finance/handler"
	finrepo "github.com/Zughayyar/fin-stack-server/internal/finance/repository/postgres"
	finservice "github.com/Zughayyar/fin-stack-server/internal/finance/service"
	"github.com/Zughayyar/fin-stack-server/internal/health"
	"github.com/Zughayyar/fin-stack-server/internal/logging"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Env)
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	defer pool.Close()

	userRepo := authrepo.NewPostgresRepository(pool)
	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryMin)
	hasher := authservice.NewBcryptHasher(cfg.BcryptCost)
	userService := authservice.NewUserService(userRepo, tokenService, hasher, logger)
	authH := authhandler.NewAuthHandler(userService, tokenService, logger)

	incomeRepo := finrepo.NewIncomeRepository(pool)
	expenseRepo := finrepo.NewExpenseRepository(pool)
	incomeH := finhandler.NewIncomeHandler(finservice.NewIncomeService(incomeRepo, logger))
	expenseH := finhandler.NewExpenseHandler(finservice.NewExpenseService(expenseRepo, logger))

	app := fiber.New(fiber.Config{AppName: "fin-stack-server"})

	health.RegisterRoutes(app, health.NewHandler(pool))
	authhandler.RegisterRoutes(app, authH)
	finhandler.RegisterRoutes(app, incomeH, expenseH, authH.RequireAuth, authH.RequireOwner("userID"))

	logger.Info(ctx, "starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
