package storage

import (
	"sort"

	"github.com/danreyes/reckon/internal/model"
)

// ProjectRepo provides operations for Project entities.
type ProjectRepo struct {
	db *DB
}

// NewProjectRepo creates a new project repository.
func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create creates a new project.
func (r *ProjectRepo) Create(project *model.Project) error {
	if project.Key == "" {
		project.Key = model.GenerateProjectKey(project.SID)
	}
	return r.db.Set(project)
}

// Get retrieves a project by SID.
func (r *ProjectRepo) Get(sid string) (*model.Project, error) {
	project := &model.Project{}
	if err := r.db.Get(model.GenerateProjectKey(sid), project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update updates an existing project.
func (r *ProjectRepo) Update(project *model.Project) error {
	return r.db.Set(project)
}

// Delete removes a project by SID.
func (r *ProjectRepo) Delete(sid string) error {
	return r.db.Delete(model.GenerateProjectKey(sid))
}

// Exists checks whether a project with the given SID exists.
func (r *ProjectRepo) Exists(sid string) (bool, error) {
	return r.db.Exists(model.GenerateProjectKey(sid))
}

// List retrieves all projects sorted by SID.
func (r *ProjectRepo) List() ([]*model.Project, error) {
	projects, err := GetAllByPrefix(r.db, model.PrefixProject+":", func() *model.Project {
		return &model.Project{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].SID < projects[j].SID
	})
	return projects, nil
}
