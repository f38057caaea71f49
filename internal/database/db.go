package database

import (
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	logger := config.GetLogger()
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatalf("could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Branch{},
		&models.Attendant{},
		&models.User{},
		&models.Shift{},
		&models.ShiftData{},
		&models.Expense{},
		&models.CashAnalysisReport{},
		&models.AuditLog{},
	)
	if err != nil {
		logger.Fatalf("AutoMigrate failed: %v", err)
	}

	for _, m := range indexMigrations {
		if err := DB.Exec(m.sql).Error; err != nil {
			logger.WithField("index", m.name).Errorf("index migration failed: %v", err)
			continue
		}
		logger.WithField("index", m.name).Debug("index ensured")
	}

	logger.Info("database connected, migrations done")
}

// Indexes AutoMigrate cannot express: expression and partial indexes.
var indexMigrations = []struct {
	name string
	sql  string
}{
	{
		name: "uq_attendants_branch_lower_name",
		sql:  "CREATE UNIQUE INDEX IF NOT EXISTS uq_attendants_branch_lower_name ON attendants (branch_id, lower(name))",
	},
	{
		name: "uq_shifts_one_open_per_slot",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS uq_shifts_one_open_per_slot
			ON shifts (branch_id, shift_date, shift_time) WHERE status = 'OPEN'`,
	},
	{
		name: "idx_cash_analysis_soft_join",
		sql: `CREATE INDEX IF NOT EXISTS idx_cash_analysis_soft_join
			ON cash_analysis_reports (branch_id, lower(attendant_name), shift_date, shift_time)`,
	},
}
