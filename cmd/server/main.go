package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/matiashmuller/ep-api-tp/config"
	"github.com/matiashmuller/ep-api-tp/internal/api/handler"
	"github.com/matiashmuller/ep-api-tp/internal/api/router"
	"github.com/matiashmuller/ep-api-tp/internal/repository"
	"github.com/matiashmuller/ep-api-tp/internal/service"
	"github.com/matiashmuller/ep-api-tp/pkg/database"
	"github.com/matiashmuller/ep-api-tp/pkg/jwt"
	applogger "github.com/matiashmuller/ep-api-tp/pkg/logger"
)

func main() {
	// 1. Configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger de consola
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al iniciar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando aplicación",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Base de datos
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("error al conectar con la base de datos", zap.Error(err))
	}
	logger.Info("conexión a la base de datos establecida")

	// 3.1 Migraciones
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("error al obtener el sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("error al migrar el esquema", zap.Error(err))
	}

	// 3.2 Datos de ejemplo, si se pidieron
	if cfg.Database.Seed {
		if err := database.Seed(db, logger); err != nil {
			logger.Fatal("error al cargar datos de ejemplo", zap.Error(err))
		}
	}

	// 4. Manejador de tokens
	jwtManager := jwt.NewManager(&cfg.Auth)

	// 5. Inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtManager, logger)
	h := handler.NewHandler(svc)

	// 6. Router. El middleware de peticiones usa el logger con
	// persistencia en la tabla logs; el resto de la aplicación loguea
	// solo a consola.
	loggerPeticiones := applogger.ConRegistroEnDB(logger, db)
	engine := router.Setup(cfg, h, jwtManager, loggerPeticiones)

	// 7. Servidor HTTP con cierre ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP escuchando", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("error del servidor HTTP", zap.Error(err))
		}
	}()

	// 8. Señales del sistema
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de cierre recibida", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error al cerrar el servidor", zap.Error(err))
	}

	if cerrarDB, _ := db.DB(); cerrarDB != nil {
		cerrarDB.Close()
	}

	logger.Info("aplicación detenida")
}
