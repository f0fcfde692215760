package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/majormofor/money-tracker/internal/models"
	"github.com/majormofor/money-tracker/internal/store"
	"github.com/majormofor/money-tracker/internal/util"
)

// CategoryHandler serves category CRUD.
type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(st *store.Store) *CategoryHandler {
	return &CategoryHandler{Store: st}
}

type categoryResp struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

func toCategoryResp(cat *models.Category) categoryResp {
	return categoryResp{
		ID:        cat.ID,
		Name:      cat.Name,
		Type:      cat.Type,
		CreatedAt: cat.CreatedAt.Format("2006-01-02"),
	}
}

// List returns the user's categories, optionally filtered by type.
func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	cats, err := h.Store.Categories(user.ID, c.Query("type"))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load categories")
		return
	}

	items := make([]categoryResp, 0, len(cats))
	for i := range cats {
		items = append(items, toCategoryResp(&cats[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

type categoryReq struct {
	Name string `json:"name" binding:"required,max=50"`
	Type string `json:"type" binding:"required,oneof=Income Expense"`
}

// Create adds a category for the user.
func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if store.NormalizeName(req.Name) == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category name is required")
		return
	}

	cat, err := h.Store.CreateCategory(user.ID, req.Name, req.Type)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCategory) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
				"you already have a category with this name for this type")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create category")
		}
		return
	}

	util.Success(c, util.Response{
		"category": toCategoryResp(cat),
	})
}

// Update renames a category (or changes its type, while unused).
func (h *CategoryHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid category id")
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if store.NormalizeName(req.Name) == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category name is required")
		return
	}

	cat, err := h.Store.UpdateCategory(user.ID, uint(id), req.Name, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCategoryNotFound):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		case errors.Is(err, store.ErrDuplicateCategory):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
				"you already have a category with this name for this type")
		case errors.Is(err, store.ErrCategoryInUse):
			util.Error(c, http.StatusConflict, util.CodeConflict,
				"cannot change the type of a category that has transactions")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update category")
		}
		return
	}

	util.Success(c, util.Response{
		"category": toCategoryResp(cat),
	})
}

// Delete removes a category; blocked while transactions reference it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid category id")
		return
	}

	if err := h.Store.DeleteCategory(user.ID, uint(id)); err != nil {
		switch {
		case errors.Is(err, store.ErrCategoryNotFound):
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		case errors.Is(err, store.ErrCategoryInUse):
			util.Error(c, http.StatusConflict, util.CodeConflict,
				"you can't delete this category because it has transactions; delete or reassign those transactions first")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete category")
		}
		return
	}

	util.Success(c, util.Response{
		"message": "category deleted",
	})
}
