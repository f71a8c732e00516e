package controllers

import (
	"net/http"
	"strconv"

	"magazine/internal/models"
	"magazine/internal/repository"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	repo repository.ArticleRepository
}

func NewArticleController(repo repository.ArticleRepository) *ArticleController {
	return &ArticleController{repo: repo}
}

// GetArticlesByType godoc
// @Summary List published articles of one category
// @Description Retrieve published articles filtered by type, newest first
// @Tags article
// @Produce json
// @Param type query string true "Article type (e.g. interview, insight)"
// @Param limit query int false "Maximum number of articles"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Missing article type"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /articles [get]
func (ac *ArticleController) GetArticlesByType(c *gin.Context) {
	articleType := c.Query("type")
	if articleType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Article type is required",
			"error":   "Provide a type query parameter",
		})
		return
	}

	limit := 0
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "Limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	articles, err := ac.repo.FindPublishedByType(articleType, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Retrieve a single article for the detail view
// @Tags article
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	article, err := ac.repo.FindByID(c.Param("id"))
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
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// GetAllArticles godoc
// @Summary List every article
// @Description Retrieve all articles, drafts included, for the admin view
// @Tags article
// @Produce json
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /admin/articles [get]
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	articles, err := ac.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Seed a new article record; the store assigns its id
// @Tags article
// @Accept json
// @Produce json
// @Param article body models.Article true "Article data"
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create article"
// @Router /admin/articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var article models.Article

	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// The store owns id assignment.
	article.ID = ""

	if err := ac.repo.Create(&article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}
