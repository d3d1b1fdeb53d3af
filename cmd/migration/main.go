package main

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/drivers/database"
	"chanv-service/internal/app/drivers/logger"
	"chanv-service/internal/app/models"
	"chanv-service/internal/app/services/core/users"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

var errSeedAdminIncomplete = errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must both be set")

// Creates the collection indexes and, when SEED_ADMIN_* is configured, the
// first admin account. Safe to run repeatedly.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer func() {
		_ = mongoDB.Disconnect(context.Background())
	}()

	err := database.EnsureIndexes(ctx, mongoDB.Database(driverConfig.MongoDB.DbName))
	if err != nil {
		log.Fatal("Error ensuring indexes", zap.Error(err))
	}
	log.Info("Indexes are up to date", zap.Int("collections", len(database.CollectionIndexes())))

	seed := internalConfig.Seed
	if seed.AdminEmail == "" && seed.AdminPassword == "" {
		log.Info("No admin seed configured, skipping")
		return
	}

	accountRepository := users.NewAccountMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	created, err := seedAdmin(ctx, accountRepository, seed, time.Now())
	if err != nil {
		log.Fatal("Error seeding admin account", zap.Error(err))
	}
	if created {
		log.Info("Admin account seeded", zap.String("email", seed.AdminEmail))
		return
	}
	log.Info("Admin account already exists", zap.String("email", seed.AdminEmail))
}

func seedAdmin(ctx context.Context, repo contracts.AccountRepository, seed config.Seed, now time.Time) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(seed.AdminEmail))
	if email == "" || seed.AdminPassword == "" {
		return false, errSeedAdminIncomplete
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := utils.HashPassword(seed.AdminPassword)
	if err != nil {
		return false, err
	}

	admin := &models.Account{
		FirstName:     seed.AdminFirstName,
		LastName:      seed.AdminLastName,
		Email:         email,
		PhoneNumber:   seed.AdminPhoneNumber,
		Password:      hash,
		Role:          models.RoleAdmin,
		Relatives:     []models.Relative{},
		HealthReports: []string{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = repo.CreateAccount(ctx, admin)
	if err != nil {
		return false, err
	}
	return true, nil
}
