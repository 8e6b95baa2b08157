package controllers

import (
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"
	"foodapp-backend/utils"

	"github.com/gin-gonic/gin"
)

type ItemQuantity struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Price    int64  `json:"price" binding:"required,gte=0"`
}

type SaveOrderRequest struct {
	CouponID     string         `json:"couponId"`
	PaymentID    string         `json:"paymentId"`
	AddressID    string         `json:"addressId"`
	RestaurantID string         `json:"restaurantId"`
	Bill         float64        `json:"bill"`
	Discount     *float64       `json:"discount"`
	ItemList     []ItemQuantity `json:"itemQuantities"`
}

type OrderController struct {
	OrderSvc *services.OrderService
}

func NewOrderController(orderSvc *services.OrderService) *OrderController {
	return &OrderController{OrderSvc: orderSvc}
}

// GET /order/coupon/:coupon_name
func (ctl *OrderController) CouponByName(c *gin.Context) {
	coupon, err := ctl.OrderSvc.GetCouponByName(c.Param("coupon_name"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id":         coupon.UUID,
		"couponName": coupon.CouponName,
		"percent":    coupon.Percent,
	})
}

// POST /order
func (ctl *OrderController) Place(c *gin.Context) {
	var req SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.ItemList))
	for _, iq := range req.ItemList {
		items = append(items, services.OrderItemInput{
			ItemUUID: iq.ItemID,
			Quantity: iq.Quantity,
			Price:    iq.Price,
		})
	}
	order, err := ctl.OrderSvc.PlaceOrder(utils.CurrentCustomer(c), services.PlaceOrderInput{
		CouponUUID:     req.CouponID,
		PaymentUUID:    req.PaymentID,
		AddressUUID:    req.AddressID,
		RestaurantUUID: req.RestaurantID,
		Bill:           req.Bill,
		Discount:       req.Discount,
		Items:          items,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": order.UUID, "status": "ORDER SUCCESSFULLY PLACED"})
}

// GET /order — past orders, newest first, each expanded with its coupon,
// payment, customer, address and line items.
func (ctl *OrderController) ListPast(c *gin.Context) {
	orders, err := ctl.OrderSvc.ListPastOrders(utils.CurrentCustomer(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		o := &orders[i]

		items := make([]gin.H, 0, len(o.OrderItems))
		for _, oi := range o.OrderItems {
			items = append(items, gin.H{
				"item": gin.H{
					"id":       oi.Item.UUID,
					"itemName": oi.Item.ItemName,
					"itemType": oi.Item.Type,
					"price":    oi.Item.Price,
				},
				"quantity": oi.Quantity,
				"price":    oi.Price,
			})
		}

		entry := gin.H{
			"id":       o.UUID,
			"bill":     o.Bill,
			"discount": o.Discount,
			"date":     o.OrderedAt,
			"customer": gin.H{
				"id":            o.Customer.UUID,
				"firstName":     o.Customer.FirstName,
				"lastName":      o.Customer.LastName,
				"emailAddress":  o.Customer.Email,
				"contactNumber": o.Customer.ContactNumber,
			},
			"payment": gin.H{
				"id":          o.Payment.UUID,
				"paymentName": o.Payment.PaymentName,
			},
			"address": gin.H{
				"id":               o.Address.UUID,
				"flatBuildingName": o.Address.FlatBuilNo,
				"locality":         o.Address.Locality,
				"city":             o.Address.City,
				"pincode":          o.Address.Pincode,
				"state": gin.H{
					"id":        o.Address.State.UUID,
					"stateName": o.Address.State.StateName,
				},
			},
			"itemQuantities": items,
		}
		if o.Coupon != nil {
			entry["coupon"] = gin.H{
				"id":         o.Coupon.UUID,
				"couponName": o.Coupon.CouponName,
				"percent":    o.Coupon.Percent,
			}
		}
		out = append(out, entry)
	}
	resp.OK(c, gin.H{"orders": out})
}
