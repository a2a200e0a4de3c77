package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/itdeptjamiat/portfolio/config"
	"github.com/itdeptjamiat/portfolio/handlers"
	"github.com/itdeptjamiat/portfolio/logging"
	"github.com/itdeptjamiat/portfolio/repositories"
	"github.com/itdeptjamiat/portfolio/services"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const serviceName = "portfolio-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: %v", err)
	}

	logging.InitLogger(logging.Options{
		SystemName: serviceName,
		Level:      cfg.App.LogLevel,
		File:       cfg.App.LogFile,
	})
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Portfolio Service...")

	projectStore, contactStore, closeStores := openStores(cfg)
	defer closeStores()

	router := handlers.NewRouter(handlers.RouterConfig{
		Projects:      services.NewProjectService(projectStore),
		Contacts:      services.NewContactService(contactStore),
		MaxPageLimit:  cfg.Server.MaxPageLimit,
		Version:       cfg.App.Version,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logging.Logger.Info("Event ID: SERVER_SHUTDOWN, Description: Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Errorf("Event ID: SERVER_SHUTDOWN_ERROR, Description: %v", err)
	}
}

// openStores picks the storage backend. When MongoDB is configured but
// unreachable the service keeps running on in-memory stores.
func openStores(cfg *config.Config) (services.ProjectStore, services.ContactStore, func()) {
	memory := func() (services.ProjectStore, services.ContactStore, func()) {
		logging.Logger.Warn("Event ID: STORAGE_MEMORY, Description: Projects and contact submissions will be stored in memory")
		return repositories.NewProjectMemoryRepository(), repositories.NewContactMemoryRepository(), func() {}
	}

	if cfg.App.Storage == config.StorageMemory {
		return memory()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		logging.Logger.Errorf("Event ID: DB_CONNECTION_FAILED, Description: Error connecting to MongoDB: %v", err)
		if client != nil {
			_ = client.Disconnect(context.Background())
		}
		return memory()
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB database %s", cfg.Mongo.Database)

	db := client.Database(cfg.Mongo.Database)
	projects := repositories.NewProjectMongoRepository(db.Collection(cfg.Mongo.ProjectsCollection))
	if err := projects.EnsureIndexes(ctx); err != nil {
		logging.Logger.Warnf("Event ID: DB_INDEX_FAILED, Description: %v", err)
	}

	guarded := repositories.NewProjectBreakerStore(projects, repositories.BreakerSettings{
		Name:        "projects-store-cb",
		Timeout:     cfg.Breaker.Timeout,
		MaxFailures: cfg.Breaker.MaxFailures,
	})
	contacts := repositories.NewContactMongoRepository(db.Collection(cfg.Mongo.ContactsCollection))

	return guarded, contacts, func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logging.Logger.Errorf("Event ID: DB_DISCONNECT_FAILED, Description: %v", err)
		}
	}
}
