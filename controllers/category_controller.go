package controllers

import (
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategorySvc *services.CategoryService
}

func NewCategoryController(categorySvc *services.CategoryService) *CategoryController {
	return &CategoryController{CategorySvc: categorySvc}
}

// GET /category
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.CategorySvc.ListAll()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{"id": cat.UUID, "categoryName": cat.CategoryName})
	}
	resp.OK(c, gin.H{"categories": out})
}

// GET /category/:category_id
func (ctl *CategoryController) Details(c *gin.Context) {
	category, err := ctl.CategorySvc.GetByUUID(c.Param("category_id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	items := make([]gin.H, 0, len(category.Items))
	for _, it := range category.Items {
		items = append(items, gin.H{
			"id":       it.UUID,
			"itemName": it.ItemName,
			"price":    it.Price,
			"itemType": it.Type,
		})
	}
	resp.OK(c, gin.H{
		"id":           category.UUID,
		"categoryName": category.CategoryName,
		"itemList":     items,
	})
}
