package service

import (
	"encoding/json"
	"fmt"

	"go-cozypos/internal/csvsource"
	"go-cozypos/internal/model"
	"go-cozypos/internal/repository"
	"go-cozypos/internal/ws"
	"go-cozypos/pkg/validator"

	"github.com/google/uuid"
)

// ProjectDescriptor is the literal project record an ingestion run attaches
// to; unlike the entity streams it is not read from CSV.
type ProjectDescriptor struct {
	Name string     `validate:"required"`
	Date model.Date `validate:"date_required"`
	UUID string
}

type IngestService interface {
	IngestAll(desc ProjectDescriptor, items, transactions, itemTransactions []csvsource.Record) (uint, error)
}

type ingestService struct {
	projectRepo repository.ProjectRepository
	itemRepo    repository.ItemRepository
	txRepo      repository.TransactionRepository
	itemTxRepo  repository.ItemTransactionRepository
	wsHub       *ws.Hub
}

func NewIngestService(
	projectRepo repository.ProjectRepository,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	itemTxRepo repository.ItemTransactionRepository,
	hub *ws.Hub,
) IngestService {
	return &ingestService{
		projectRepo: projectRepo,
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		itemTxRepo:  itemTxRepo,
		wsHub:       hub,
	}
}

// IngestAll loads one denormalized snapshot into the store. The pipeline is
// strictly sequential: every row is persisted before the next is read, and
// item-transactions go last because their natural-key lookups can only see
// rows that are already durable. The first storage failure aborts the run;
// rows persisted before it stay. Re-running against a populated store
// duplicates rows, since uuid carries no uniqueness constraint — callers
// must guard repeated invocation.
func (s *ingestService) IngestAll(desc ProjectDescriptor, items, transactions, itemTransactions []csvsource.Record) (uint, error) {
	// 1. Validate the descriptor before touching the store.
	if errs := validator.ValidateStruct(desc); len(errs) > 0 {
		first := errs[0]
		return 0, fmt.Errorf("invalid project descriptor: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	// 2. The project row goes first: every transaction in this batch
	// references its store-assigned id.
	project := &model.Project{Name: desc.Name, Date: desc.Date}
	project.UUID = desc.UUID
	if project.UUID == "" {
		project.UUID = uuid.NewString()
	}
	if err := s.projectRepo.Create(project); err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	projectID := project.ID

	s.broadcastProgress("ingest_started", projectID, len(items), len(transactions), len(itemTransactions))

	// 3. Items, in source order, no dedup. Duplicate source ids are a
	// caller error and pass through untouched.
	for _, rec := range items {
		item := &model.Item{
			Name:               rec["name"],
			Desc:               rec["desc"],
			Price:              parsePrice(rec["price"]),
			ManufacturingPrice: parseNullablePrice(rec["manufacturing_price"]),
		}
		item.UUID = "item-" + rec["id"]
		if err := s.itemRepo.Create(item); err != nil {
			return 0, fmt.Errorf("create item %s: %w", item.UUID, err)
		}
	}

	// 4. Transactions, all attached to the captured project id.
	for _, rec := range transactions {
		tx := &model.Transaction{
			CustomPrice: parseNullablePrice(rec["custom_price"]),
			Cashier:     rec["cashier"],
			ProjectID:   &projectID,
		}
		tx.UUID = "transaction-" + rec["id"]
		if err := s.txRepo.Create(tx); err != nil {
			return 0, fmt.Errorf("create transaction %s: %w", tx.UUID, err)
		}
	}

	// 5. Item-transactions last: both sides of the join must already be
	// persisted for the uuid lookups to resolve. Their uuid is copied
	// verbatim, not synthesized.
	for _, rec := range itemTransactions {
		itemID, err := s.resolveItemID(rec["item_id"])
		if err != nil {
			return 0, err
		}
		transactionID, err := s.resolveTransactionID(rec["transaction_id"])
		if err != nil {
			return 0, err
		}

		itemTx := &model.ItemTransaction{
			ItemID:        itemID,
			TransactionID: transactionID,
			Qty:           parseQty(rec["qty"]),
		}
		itemTx.UUID = rec["uuid"]
		if err := s.itemTxRepo.Create(itemTx); err != nil {
			return 0, fmt.Errorf("create item transaction %s: %w", itemTx.UUID, err)
		}
	}

	s.broadcastProgress("ingest_finished", projectID, len(items), len(transactions), len(itemTransactions))
	return projectID, nil
}

// resolveItemID maps a source item id to the store-assigned one. A lookup
// miss resolves to nil; only storage failures abort the stream.
func (s *ingestService) resolveItemID(srcID string) (*uint, error) {
	item, err := s.itemRepo.FindByUUID("item-" + srcID)
	if err != nil {
		return nil, fmt.Errorf("resolve item %q: %w", srcID, err)
	}
	if item == nil {
		return nil, nil
	}
	return &item.ID, nil
}

func (s *ingestService) resolveTransactionID(srcID string) (*uint, error) {
	tx, err := s.txRepo.FindByUUID("transaction-" + srcID)
	if err != nil {
		return nil, fmt.Errorf("resolve transaction %q: %w", srcID, err)
	}
	if tx == nil {
		return nil, nil
	}
	return &tx.ID, nil
}

func (s *ingestService) broadcastProgress(action string, projectID uint, items, transactions, itemTransactions int) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":       "ingest_progress",
			"action":     action,
			"project_id": projectID,
			"counts": map[string]int{
				"items":            items,
				"transactions":     transactions,
				"itemTransactions": itemTransactions,
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
