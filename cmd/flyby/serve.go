package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/flyby-predictor/internal/api/http"
	"github.com/i474232898/flyby-predictor/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves predictions over HTTP and refreshes the watch list periodically",
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newComponents()
		if err != nil {
			return err
		}

		// Scheduler that periodically predicts the watch list.
		sched := scheduler.New(a.cfg.Locations, a.cfg.Places, a.cfg.WatchInterval, a.service)
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()

		// Basic app configuration
		app := fiber.New(fiber.Config{
			AppName:               "flyby-predictor",
			DisableStartupMessage: true,
			ReadTimeout:           10 * time.Second,
			WriteTimeout:          a.cfg.HTTPTimeout + 10*time.Second,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				// Centralized error response
				code := fiber.StatusInternalServerError
				if e, ok := err.(*fiber.Error); ok {
					code = e.Code
				}
				return c.Status(code).JSON(fiber.Map{
					"error":   true,
					"message": err.Error(),
				})
			},
		})

		// Global middleware
		app.Use(logger.New())
		app.Use(recover.New())

		// Basic health endpoint
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"status":  "ok",
				"service": "flyby-predictor",
				"version": rootCmd.Version,
			})
		})

		// API routes.
		httpapi.RegisterRoutes(app, a.service)

		go func() {
			log.Printf("INFO: listening on :%s", a.cfg.Port)
			if err := app.Listen(":" + a.cfg.Port); err != nil {
				log.Printf("fiber server stopped: %v", err)
			}
		}()

		// Wait for termination signal
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
