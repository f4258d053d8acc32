package service

import (
	"testing"

	"go-cozypos/internal/model"
	"go-cozypos/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory store with the full schema. A single
// connection keeps the in-memory database alive and serializes the report
// fan-out the way the real store would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Project{}, &model.Item{}, &model.Transaction{}, &model.ItemTransaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testRepos struct {
	project repository.ProjectRepository
	item    repository.ItemRepository
	tx      repository.TransactionRepository
	itemTx  repository.ItemTransactionRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		project: repository.NewProjectRepo(db),
		item:    repository.NewItemRepo(db),
		tx:      repository.NewTransactionRepo(db),
		itemTx:  repository.NewItemTransactionRepo(db),
	}
}

func newTestIngest(r testRepos) IngestService {
	return NewIngestService(r.project, r.item, r.tx, r.itemTx, nil)
}

func newTestReport(r testRepos) ReportService {
	return NewReportService(r.project, r.item, r.tx, r.itemTx)
}

func testDescriptor() ProjectDescriptor {
	return ProjectDescriptor{Name: "CF14", Date: model.NewDate(2020, 2, 23)}
}
