package controllers

import (
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(paymentSvc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: paymentSvc}
}

// GET /payment
func (ctl *PaymentController) List(c *gin.Context) {
	payments, err := ctl.PaymentSvc.ListAll()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(payments))
	for _, p := range payments {
		out = append(out, gin.H{"id": p.UUID, "paymentName": p.PaymentName})
	}
	resp.OK(c, gin.H{"paymentMethods": out})
}
