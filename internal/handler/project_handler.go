package handler

import (
	"log"

	"go-cozypos/internal/repository"
	"go-cozypos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	projectRepo   repository.ProjectRepository
	reportService service.ReportService
	// strictNotFound turns the report's soft-null project into a 404.
	strictNotFound bool
}

func NewProjectHandler(projectRepo repository.ProjectRepository, reportService service.ReportService, strictNotFound bool) *ProjectHandler {
	return &ProjectHandler{
		projectRepo:    projectRepo,
		reportService:  reportService,
		strictNotFound: strictNotFound,
	}
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	project, err := h.projectRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if project == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Project not found"})
	}
	return c.JSON(project)
}

func (h *ProjectHandler) GetProjectReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	report, err := h.reportService.BuildProjectReport(c.UserContext(), uint(id))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if h.strictNotFound && report.Project == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Project not found"})
	}
	return c.JSON(report)
}

// Populate is a stub: the actual CSV load runs at boot, so the endpoint
// only logs.
func (h *ProjectHandler) Populate(c *fiber.Ctx) error {
	log.Println("Populating...")
	return c.SendString("Success.")
}
