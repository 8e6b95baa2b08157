package controllers

import (
	"strconv"

	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	RestaurantSvc *services.RestaurantService
}

func NewRestaurantController(restaurantSvc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{RestaurantSvc: restaurantSvc}
}

func restaurantSummary(r *entity.Restaurant) gin.H {
	categories := make([]string, 0, len(r.Categories))
	for _, cat := range r.Categories {
		categories = append(categories, cat.CategoryName)
	}
	return gin.H{
		"id":                   r.UUID,
		"restaurantName":       r.RestaurantName,
		"photoURL":             r.PhotoURL,
		"averagePrice":         r.AvgPrice,
		"customerRating":       r.CustomerRating,
		"numberCustomersRated": r.NumberCustomersRated,
		"categories":           categories,
		"address": gin.H{
			"id":               r.Address.UUID,
			"flatBuildingName": r.Address.FlatBuilNo,
			"locality":         r.Address.Locality,
			"city":             r.Address.City,
			"pincode":          r.Address.Pincode,
			"state": gin.H{
				"id":        r.Address.State.UUID,
				"stateName": r.Address.State.StateName,
			},
		},
	}
}

func restaurantList(c *gin.Context, restaurants []entity.Restaurant) {
	out := make([]gin.H, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, restaurantSummary(&restaurants[i]))
	}
	resp.OK(c, gin.H{"restaurants": out})
}

// GET /restaurant
func (ctl *RestaurantController) List(c *gin.Context) {
	restaurants, err := ctl.RestaurantSvc.ListByRating()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	restaurantList(c, restaurants)
}

// GET /restaurant/category/:category_id
func (ctl *RestaurantController) ListByCategory(c *gin.Context) {
	restaurants, err := ctl.RestaurantSvc.ListByCategory(c.Param("category_id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	restaurantList(c, restaurants)
}

// GET /restaurant/name/:restaurant_name
func (ctl *RestaurantController) ListByName(c *gin.Context) {
	restaurants, err := ctl.RestaurantSvc.ListByName(c.Param("restaurant_name"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	restaurantList(c, restaurants)
}

// GET /restaurant/:restaurant_id
func (ctl *RestaurantController) Details(c *gin.Context) {
	restaurant, err := ctl.RestaurantSvc.GetByUUID(c.Param("restaurant_id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, restaurantSummary(restaurant))
}

// PUT /restaurant/:restaurant_id?customer_rating=
func (ctl *RestaurantController) Rate(c *gin.Context) {
	rating, err := strconv.ParseFloat(c.Query("customer_rating"), 64)
	if err != nil {
		resp.Fail(c, apperr.InvalidRating())
		return
	}
	restaurant, err := ctl.RestaurantSvc.UpdateRating(c.Param("restaurant_id"), rating)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": restaurant.UUID, "status": "RESTAURANT RATING UPDATED SUCCESSFULLY"})
}
