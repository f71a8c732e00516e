package controllers

import (
	"errors"
	"net/http"

	"magazine/internal/editor"
	"magazine/internal/repository"

	"github.com/gin-gonic/gin"
)

type EditorController struct {
	repo        repository.ArticleRepository
	coordinator *editor.Coordinator
}

func NewEditorController(repo repository.ArticleRepository, coordinator *editor.Coordinator) *EditorController {
	return &EditorController{repo: repo, coordinator: coordinator}
}

type saveRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type previewRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LoadArticle godoc
// @Summary Load an article into the editor
// @Description Fetch the editable snapshot of an article by ID
// @Tags editor
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{} "Article loaded successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /admin/editor/{id} [get]
func (ec *EditorController) LoadArticle(c *gin.Context) {
	doc, err := editor.LoadDocument(ec.repo, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article loaded successfully",
		"data":    doc.Article(),
	})
}

// SaveArticle godoc
// @Summary Save an article from the editor
// @Description Persist title and content as one update; last write wins
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body saveRequest true "Editable fields"
// @Success 200 {object} map[string]interface{} "Article saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 500 {object} map[string]interface{} "Failed to save article"
// @Router /admin/editor/{id} [put]
func (ec *EditorController) SaveArticle(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	doc, err := editor.LoadDocument(ec.repo, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	_ = doc.SetField(editor.FieldTitle, req.Title)
	_ = doc.SetField(editor.FieldContent, req.Content)

	result, err := ec.coordinator.Save(doc)
	if err != nil {
		var storeErr *editor.StoreError
		message := err.Error()
		if errors.As(err, &storeErr) {
			message = storeErr.Err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save article",
			"error":   message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": result.Message,
		"data":    result,
	})
}

// PreviewArticle godoc
// @Summary Render an editor preview
// @Description Project title and content into display markup without persisting
// @Tags editor
// @Accept json
// @Produce html
// @Param article body previewRequest true "Fields to preview"
// @Success 200 {string} string "Rendered markup"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /admin/editor/preview [post]
func (ec *EditorController) PreviewArticle(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(editor.RenderPreview(req.Title, req.Content)))
}
