package main

import (
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finerp/models"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logger.Fatal().Msg("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres database")
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	// Ensure the roles master table exists first and seed it so users FK can be applied safely.
	if shouldMigrate {
		if err := db.AutoMigrate(&models.Role{}); err != nil {
			logger.Warn().Err(err).Msg("migration warning (roles)")
		}
	}
	seedRoles()

	// Now migrate the rest (users will get FK to roles).
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		tables := []struct {
			name  string
			model interface{}
		}{
			{"users", &models.User{}},
			{"refresh_tokens", &models.RefreshToken{}},
			{"payables", &models.Payable{}},
			{"receivables", &models.Receivable{}},
			{"goals", &models.Goal{}},
			{"goal_transactions", &models.GoalTransaction{}},
			{"investments", &models.Investment{}},
			{"monthly_summaries", &models.MonthlySummary{}},
			{"monthly_targets", &models.MonthlyTarget{}},
		}
		for _, t := range tables {
			if err := db.AutoMigrate(t.model); err != nil {
				logger.Warn().Err(err).Str("table", t.name).Msg("migration warning")
			}
		}
	}
	seedDB()
}

func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "full access"},
		{Name: models.RoleMember, Description: "regular user"},
	}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}
}

// seedDB guarantees exactly one administrator exists so a fresh install is
// usable immediately.
func seedDB() {
	seedRoles()

	var role models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&role).Error; err != nil {
		logger.Warn().Err(err).Msg("failed to find admin role")
		return
	}

	var count int64
	db.Model(&models.User{}).Where("role_id = ?", role.ID).Count(&count)
	if count == 0 {
		rid := role.ID
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := models.User{
			Username:       "admin",
			Email:          "admin@erp.local",
			FullName:       "Administrador",
			HashedPassword: hashedPassword,
			Active:         true,
			RoleID:         &rid,
		}
		if err := db.Create(&admin).Error; err != nil {
			logger.Warn().Err(err).Msg("failed to seed admin user")
			return
		}
		logger.Info().Msg("seeded admin user: username=admin, password=admin123")
	}
}
