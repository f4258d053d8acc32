package repository

import (
	"errors"

	"go-cozypos/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindAll() ([]model.Project, error)
	FindByID(id uint) (*model.Project, error)
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db}
}

func (r *projectRepo) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepo) FindAll() ([]model.Project, error) {
	var projects []model.Project
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindByID returns (nil, nil) when no project matches: a missing row is a
// value to callers, only storage failures are errors.
func (r *projectRepo) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}
