package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/userdata-api/internal/config"
	"github.com/GregMSThompson/userdata-api/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Mongo     *MongoConnector
	Firestore *firestore.Client
}

// Run builds the logger and the handle for the configured store driver.
// Mongo connects lazily on the first request, so an unreachable server
// surfaces per operation instead of failing startup.
func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.ForFormat(cfg.LogFormat))

	switch cfg.StoreDriver {
	case config.DriverMongo:
		bs.Mongo = NewMongoConnector(cfg.MongoURI, cfg.DatabaseName)
	case config.DriverFirestore:
		bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
		if err != nil {
			return bs, err
		}
	}

	bs.Log.Info("bootstrap complete", "store_driver", cfg.StoreDriver)
	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Mongo != nil {
		if err := bs.Mongo.Close(context.Background()); err != nil {
			bs.Log.Error("failed to disconnect document store", "error", err)
		}
	}
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Error("failed to close firestore client", "error", err)
		}
	}
}
