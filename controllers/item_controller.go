package controllers

import (
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	ItemSvc *services.ItemService
}

func NewItemController(itemSvc *services.ItemService) *ItemController {
	return &ItemController{ItemSvc: itemSvc}
}

// GET /item/restaurant/:restaurant_id/category/:category_id
func (ctl *ItemController) ListByRestaurantAndCategory(c *gin.Context) {
	items, err := ctl.ItemSvc.ListByRestaurantAndCategory(c.Param("restaurant_id"), c.Param("category_id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, gin.H{
			"id":       it.UUID,
			"itemName": it.ItemName,
			"price":    it.Price,
			"itemType": it.Type,
		})
	}
	resp.OK(c, gin.H{"itemList": out})
}
