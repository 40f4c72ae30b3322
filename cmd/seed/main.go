package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"grocery/internal/domain/model"
	"grocery/internal/infrastructure/config"
	"grocery/internal/infrastructure/db"
	"grocery/internal/infrastructure/persistence/postgres"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", err)
		}
	}()

	cfg, err := config.LoadSeedConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	sqldb, err := db.NewDB(cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	defer func() {
		if err := sqldb.Close(); err != nil {
			logger.Error("Failed to close DB connection", zap.Error(err))
		}
	}()

	if err := db.RunMigrations(sqldb, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := seeder{
		lookups:   postgres.NewLookupRepository(sqldb, logger),
		producers: postgres.NewProducerRepository(sqldb, logger),
		suppliers: postgres.NewSupplierRepository(sqldb, logger),
		logger:    logger,
	}
	if err := s.run(ctx, cfg); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Seeding finished")
}

type seeder struct {
	lookups   *postgres.LookupRepository
	producers *postgres.ProducerRepository
	suppliers *postgres.SupplierRepository
	logger    *zap.Logger
}

func (s seeder) run(ctx context.Context, cfg *config.SeedConfig) error {
	for range cfg.Customers {
		c := model.Customer{FirstName: gofakeit.FirstName(), LastName: gofakeit.LastName(), Email: gofakeit.Email()}
		if err := s.lookups.InsertCustomer(ctx, &c); err != nil {
			return err
		}
	}

	for range cfg.Payments {
		p := model.Payment{
			Method:      gofakeit.RandomString([]string{"card", "cash", "transfer"}),
			AmountMinor: int64(gofakeit.Number(100, 50000)),
		}
		if err := s.lookups.InsertPayment(ctx, &p); err != nil {
			return err
		}
	}

	producerIDs := make([]int64, 0, cfg.Producers)
	for range cfg.Producers {
		p := model.Producer{Name: gofakeit.Company()}
		if err := s.producers.Save(ctx, &p); err != nil {
			s.logger.Warn("Skipping producer", zap.String("name", p.Name), zap.Error(err))
			continue
		}
		producerIDs = append(producerIDs, p.ID)
	}

	supplierIDs := make([]int64, 0, cfg.Suppliers)
	for range cfg.Suppliers {
		sp := model.Supplier{
			Name:        gofakeit.Company() + " Supply",
			Email:       gofakeit.Email(),
			PhoneNumber: gofakeit.Numerify("###-###-####"),
		}
		if err := s.suppliers.Save(ctx, &sp); err != nil {
			s.logger.Warn("Skipping supplier", zap.String("name", sp.Name), zap.Error(err))
			continue
		}
		supplierIDs = append(supplierIDs, sp.ID)
	}

	for range cfg.Products {
		p := model.Product{
			Name:           gofakeit.ProductName(),
			UnitPriceMinor: int64(gofakeit.Price(1, 100) * 100),
			ProducerID:     pick(producerIDs),
			SupplierID:     pick(supplierIDs),
		}
		if err := s.lookups.InsertProduct(ctx, &p); err != nil {
			return err
		}
	}

	s.logger.Info("Reference data seeded",
		zap.Int("customers", cfg.Customers),
		zap.Int("payments", cfg.Payments),
		zap.Int("producers", len(producerIDs)),
		zap.Int("suppliers", len(supplierIDs)),
		zap.Int("products", cfg.Products))
	return nil
}

// pick returns a random id from ids, or nil for an empty slice.
func pick(ids []int64) *int64 {
	if len(ids) == 0 {
		return nil
	}
	id := ids[gofakeit.Number(0, len(ids)-1)]
	return &id
}
