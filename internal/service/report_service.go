package service

import (
	"context"
	"fmt"
	"sort"

	"go-cozypos/internal/model"
	"go-cozypos/internal/repository"

	"golang.org/x/sync/errgroup"
)

// LineEntry pairs one item-transaction with its resolved item. A null or
// dangling item reference yields a nil Item, never an error.
type LineEntry struct {
	ItemTransaction model.ItemTransaction `json:"itemTransaction"`
	Item            *model.Item           `json:"item"`
}

type TransactionEntry struct {
	Transaction      model.Transaction `json:"transaction"`
	ItemTransactions []LineEntry       `json:"itemTransactions"`
}

// ProjectReport is the reconstructed project tree. Project is nil when the
// requested id does not exist; the report is still produced ("soft 404" —
// the HTTP layer decides whether that becomes an error status).
type ProjectReport struct {
	Project      *model.Project     `json:"project"`
	Transactions []TransactionEntry `json:"transactions"`
}

type ReportService interface {
	BuildProjectReport(ctx context.Context, projectID uint) (*ProjectReport, error)
}

type reportService struct {
	projectRepo repository.ProjectRepository
	itemRepo    repository.ItemRepository
	txRepo      repository.TransactionRepository
	itemTxRepo  repository.ItemTransactionRepository
}

func NewReportService(
	projectRepo repository.ProjectRepository,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	itemTxRepo repository.ItemTransactionRepository,
) ReportService {
	return &reportService{
		projectRepo: projectRepo,
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		itemTxRepo:  itemTxRepo,
	}
}

func (s *reportService) BuildProjectReport(ctx context.Context, projectID uint) (*ProjectReport, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch project %d: %w", projectID, err)
	}

	transactions, err := s.txRepo.FindByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions for project %d: %w", projectID, err)
	}

	// Fan out per transaction. Every branch only reads already-persisted,
	// immutable rows, so no locking is needed; indexed slots keep the
	// store's return order until the final sort.
	entries := make([]TransactionEntry, len(transactions))
	g, _ := errgroup.WithContext(ctx)
	for i, tx := range transactions {
		i, tx := i, tx
		g.Go(func() error {
			entry, err := s.buildTransactionEntry(tx)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Join point: ordering starts only after every branch has completed.
	// Descending by store-assigned id, with the stable sort keeping store
	// order among equal keys (an absent id compares as 0).
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Transaction.ID > entries[b].Transaction.ID
	})

	return &ProjectReport{Project: project, Transactions: entries}, nil
}

func (s *reportService) buildTransactionEntry(tx model.Transaction) (TransactionEntry, error) {
	itemTxs, err := s.itemTxRepo.FindByTransactionID(tx.ID)
	if err != nil {
		return TransactionEntry{}, fmt.Errorf("fetch item transactions for transaction %d: %w", tx.ID, err)
	}

	lines := make([]LineEntry, 0, len(itemTxs))
	for _, itemTx := range itemTxs {
		var item *model.Item
		if itemTx.ItemID != nil {
			item, err = s.itemRepo.FindByID(*itemTx.ItemID)
			if err != nil {
				return TransactionEntry{}, fmt.Errorf("fetch item %d: %w", *itemTx.ItemID, err)
			}
		}
		lines = append(lines, LineEntry{ItemTransaction: itemTx, Item: item})
	}
	return TransactionEntry{Transaction: tx, ItemTransactions: lines}, nil
}
