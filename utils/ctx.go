package utils

import (
	"foodapp-backend/entity"

	"github.com/gin-gonic/gin"
)

const ctxCustomerKey = "customer"

func SetCurrentCustomer(c *gin.Context, customer *entity.Customer) {
	c.Set(ctxCustomerKey, customer)
}

func CurrentCustomer(c *gin.Context) *entity.Customer {
	v, ok := c.Get(ctxCustomerKey)
	if !ok {
		return nil
	}
	if cust, ok := v.(*entity.Customer); ok {
		return cust
	}
	return nil
}
