package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"expohub/config"
	"expohub/database"
	"expohub/media"
	"expohub/store"
	"expohub/store/fsstore"
	"expohub/store/memstore"
	"expohub/store/mongostore"
)

var defaultIndustries = []string{
	"Agriculture", "Automotive", "Construction", "Education", "Energy", "Fashion",
	"Finance", "Food & Beverage", "Healthcare", "Hospitality", "Manufacturing",
	"Media", "Real Estate", "Retail", "Technology", "Tourism",
}

func main() {
	exitOnError(newRootCmd().Execute())
}

// exitOnError logs err as fatal on the standard logger, which newLogger has
// configured once the configuration loaded.
func exitOnError(err error) {
	if err != nil {
		logrus.WithError(err).Fatal("expohub stopped")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "expohub",
		Short:         "Exhibition networking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(serveCmd(), migrateCmd(), seedIndustriesCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE:  runServe,
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Register the MongoDB indexes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			if cfg.StoreDriver != config.DriverMongo {
				log.WithField("driver", cfg.StoreDriver).Info("nothing to migrate")
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
			if err != nil {
				return err
			}
			log.Info("indexes registered")
			return database.DisconnectMongo(db)
		},
	}
}

func seedIndustriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-industries [name...]",
		Short: "Add industries to the lookup list, the built-in list when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = defaultIndustries
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			st, err := openStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			added, err := st.SeedIndustries(ctx, args)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"added": added, "given": len(args)}).Info("industries seeded")
			return nil
		},
	}
}

func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, newLogger(cfg), nil
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.Release() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(log.Formatter)
	return log
}

func openStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverFirestore:
		client, err := database.ConnectFirestore(ctx, cfg.FirestoreProject)
		if err != nil {
			return nil, err
		}
		return fsstore.New(client, log), nil
	case config.DriverMemory:
		log.Warn("using the in-memory store, data is lost on restart")
		return memstore.New(memstore.WithIndustries(defaultIndustries...)), nil
	default:
		db, err := database.ConnectMongoWithRetry(ctx, cfg.MongoURI, cfg.MongoDatabase, 3, 2*time.Second)
		if err != nil {
			return nil, err
		}
		return mongostore.New(db, log), nil
	}
}

func newUploader(cfg *config.Config, log logrus.FieldLogger) (media.Uploader, error) {
	if cfg.CloudinaryURL == "" {
		log.Warn("CLOUDINARY_URL not set, uploads are kept in memory")
		return media.NewMemory("memory://" + cfg.CloudinaryFolder), nil
	}
	return media.NewCloudinary(cfg.CloudinaryURL, cfg.CloudinaryFolder)
}
