package store

import (
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/joshbuilds/portfolio-api/database"
	"github.com/joshbuilds/portfolio-api/models"
	"github.com/joshbuilds/portfolio-api/utils"
)

// ErrProjectNotFound is returned when no project carries the requested id.
var ErrProjectNotFound = errors.New("project not found")

// ProjectStore owns the projects JSON document. Mutations follow the same
// serialized load-mutate-persist cycle as the analytics store.
type ProjectStore struct {
	mu    sync.Mutex
	files *database.FilesClient
}

func NewProjectStore(files *database.FilesClient) (*ProjectStore, error) {
	if err := database.InitJSON(files.ProjectsPath(), []models.Project{}); err != nil {
		return nil, err
	}
	return &ProjectStore{files: files}, nil
}

func (s *ProjectStore) load() []models.Project {
	var projects []models.Project
	if err := database.ReadJSON(s.files.ProjectsPath(), &projects); err != nil {
		log.Printf("Error reading projects: %v", err)
		return []models.Project{}
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects
}

func (s *ProjectStore) persist(projects []models.Project) {
	if err := database.WriteJSON(s.files.ProjectsPath(), projects); err != nil {
		log.Printf("Error writing projects: %v", err)
	}
}

// List returns every project sorted ascending by display order.
func (s *ProjectStore) List() []models.Project {
	s.mu.Lock()
	projects := s.load()
	s.mu.Unlock()

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})
	return projects
}

func (s *ProjectStore) Get(id string) (*models.Project, error) {
	s.mu.Lock()
	projects := s.load()
	s.mu.Unlock()

	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// Create appends a new project at the end of the display order.
func (s *ProjectStore) Create(req models.CreateProjectRequest) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	maxOrder := -1
	for _, p := range projects {
		if p.Order > maxOrder {
			maxOrder = p.Order
		}
	}

	techStack := req.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	now := utils.NowMillis()
	project := models.Project{
		ID:          utils.NewID("project"),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		WebsiteLink: req.WebsiteLink,
		TechStack:   techStack,
		Order:       maxOrder + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	projects = append(projects, project)
	s.persist(projects)
	return &project
}

// Update applies the non-nil fields of req to the stored project.
func (s *ProjectStore) Update(id string, req models.UpdateProjectRequest) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	idx := -1
	for i := range projects {
		if projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrProjectNotFound
	}

	p := &projects[idx]
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.WebsiteLink != nil {
		p.WebsiteLink = *req.WebsiteLink
	}
	if req.TechStack != nil {
		p.TechStack = *req.TechStack
		if p.TechStack == nil {
			p.TechStack = []string{}
		}
	}
	p.UpdatedAt = utils.NowMillis()

	s.persist(projects)
	updated := *p
	return &updated, nil
}

func (s *ProjectStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(projects) {
		return ErrProjectNotFound
	}

	s.persist(filtered)
	return nil
}

// Reorder sets each listed project's order to its index in projectIDs.
// Unknown ids are skipped; projects absent from the list keep their order.
func (s *ProjectStore) Reorder(projectIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	now := utils.NowMillis()
	for index, id := range projectIDs {
		for i := range projects {
			if projects[i].ID == id {
				projects[i].Order = index
				projects[i].UpdatedAt = now
				break
			}
		}
	}

	s.persist(projects)
}
