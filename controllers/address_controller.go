package controllers

import (
	"foodapp-backend/pkg/resp"
	"foodapp-backend/services"
	"foodapp-backend/utils"

	"github.com/gin-gonic/gin"
)

type SaveAddressRequest struct {
	FlatBuildingName string `json:"flatBuildingName"`
	Locality         string `json:"locality"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
	StateID          string `json:"stateId"`
}

type AddressController struct {
	AddressSvc *services.AddressService
}

func NewAddressController(addressSvc *services.AddressService) *AddressController {
	return &AddressController{AddressSvc: addressSvc}
}

// POST /address
func (ctl *AddressController) Save(c *gin.Context) {
	var req SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	address, err := ctl.AddressSvc.SaveAddress(utils.CurrentCustomer(c), services.SaveAddressInput{
		FlatBuilNo: req.FlatBuildingName,
		Locality:   req.Locality,
		City:       req.City,
		Pincode:    req.Pincode,
		StateUUID:  req.StateID,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": address.UUID, "status": "ADDRESS SUCCESSFULLY REGISTERED"})
}

// GET /address/customer
func (ctl *AddressController) ListMine(c *gin.Context) {
	addresses, err := ctl.AddressSvc.ListForCustomer(utils.CurrentCustomer(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, gin.H{
			"id":               a.UUID,
			"flatBuildingName": a.FlatBuilNo,
			"locality":         a.Locality,
			"city":             a.City,
			"pincode":          a.Pincode,
			"state": gin.H{
				"id":        a.State.UUID,
				"stateName": a.State.StateName,
			},
		})
	}
	resp.OK(c, gin.H{"addresses": out})
}

// DELETE /address/:address_id
func (ctl *AddressController) Delete(c *gin.Context) {
	address, err := ctl.AddressSvc.DeleteAddress(utils.CurrentCustomer(c), c.Param("address_id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": address.UUID, "status": "ADDRESS DELETED SUCCESSFULLY"})
}

// GET /states
func (ctl *AddressController) States(c *gin.Context) {
	states, err := ctl.AddressSvc.ListStates()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(states))
	for _, s := range states {
		out = append(out, gin.H{"id": s.UUID, "stateName": s.StateName})
	}
	resp.OK(c, gin.H{"states": out})
}
