package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshbuilds/portfolio-api/models"
	"github.com/joshbuilds/portfolio-api/store"
)

type ProjectHandlers struct {
	Store *store.ProjectStore
}

func NewProjectHandlers(s *store.ProjectStore) *ProjectHandlers {
	return &ProjectHandlers{Store: s}
}

// List returns every project sorted by display order. Public.
func (h *ProjectHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.List())
}

// Get returns one project by id. Public.
func (h *ProjectHandlers) Get(c *gin.Context) {
	project, err := h.Store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create adds a project at the end of the display order. Title and
// description are required.
func (h *ProjectHandlers) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	c.JSON(http.StatusOK, h.Store.Create(req))
}

// Update applies a partial update: only fields present in the body change.
func (h *ProjectHandlers) Update(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.Store.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandlers) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reorder rewrites the display order: each project's order becomes its
// index in the submitted id list.
func (h *ProjectHandlers) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectIds must be an array"})
		return
	}

	h.Store.Reorder(req.ProjectIDs)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
