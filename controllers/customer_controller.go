package controllers

import (
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"
	"foodapp-backend/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	EmailAddress  string `json:"emailAddress"`
	ContactNumber string `json:"contactNumber"`
	Password      string `json:"password"`
}

type UpdateCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type CustomerController struct {
	CustomerSvc *services.CustomerService
	AuthSvc     *services.AuthService
}

func NewCustomerController(customerSvc *services.CustomerService, authSvc *services.AuthService) *CustomerController {
	return &CustomerController{CustomerSvc: customerSvc, AuthSvc: authSvc}
}

// POST /customer/signup
func (ctl *CustomerController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := ctl.CustomerSvc.Signup(services.SignupInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.EmailAddress,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": customer.UUID, "status": "CUSTOMER SUCCESSFULLY REGISTERED"})
}

// POST /customer/login — credentials arrive in a Basic authorization header,
// the issued token goes back in the access-token response header.
func (ctl *CustomerController) Login(c *gin.Context) {
	contactNumber, password, err := ctl.AuthSvc.BasicCredentials(c.GetHeader("Authorization"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	auth, err := ctl.AuthSvc.Login(contactNumber, password)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	c.Header("access-token", auth.AccessToken)
	resp.OK(c, gin.H{
		"id":            auth.Customer.UUID,
		"firstName":     auth.Customer.FirstName,
		"lastName":      auth.Customer.LastName,
		"emailAddress":  auth.Customer.Email,
		"contactNumber": auth.Customer.ContactNumber,
		"message":       "LOGGED IN SUCCESSFULLY",
	})
}

// POST /customer/logout
func (ctl *CustomerController) Logout(c *gin.Context) {
	accessToken, err := ctl.AuthSvc.BearerToken(c.GetHeader("Authorization"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	auth, err := ctl.AuthSvc.Logout(accessToken)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": auth.Customer.UUID, "message": "LOGGED OUT SUCCESSFULLY"})
}

// PUT /customer
func (ctl *CustomerController) UpdateProfile(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := ctl.CustomerSvc.UpdateProfile(utils.CurrentCustomer(c), req.FirstName, req.LastName)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id":        customer.UUID,
		"firstName": customer.FirstName,
		"lastName":  customer.LastName,
		"status":    "CUSTOMER DETAILS UPDATED SUCCESSFULLY",
	})
}

// PUT /customer/password
func (ctl *CustomerController) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := ctl.CustomerSvc.UpdatePassword(utils.CurrentCustomer(c), req.OldPassword, req.NewPassword)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": customer.UUID, "status": "CUSTOMER PASSWORD UPDATED SUCCESSFULLY"})
}
