package handler

import (
	"go-cozypos/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the flat list endpoints straight off the
// repositories; there is no business logic between them and the store.
type CatalogHandler struct {
	projectRepo repository.ProjectRepository
	itemRepo    repository.ItemRepository
	txRepo      repository.TransactionRepository
	itemTxRepo  repository.ItemTransactionRepository
}

func NewCatalogHandler(
	projectRepo repository.ProjectRepository,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	itemTxRepo repository.ItemTransactionRepository,
) *CatalogHandler {
	return &CatalogHandler{
		projectRepo: projectRepo,
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		itemTxRepo:  itemTxRepo,
	}
}

func (h *CatalogHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.itemRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

func (h *CatalogHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.txRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

func (h *CatalogHandler) GetItemTransactions(c *fiber.Ctx) error {
	itemTxs, err := h.itemTxRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(itemTxs)
}

func (h *CatalogHandler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.projectRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(projects)
}
