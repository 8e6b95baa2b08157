package services

import (
	"time"

	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
	"foodapp-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB         *gorm.DB
	OrderRepo  *repository.OrderRepository
	CouponRepo *repository.CouponRepository
	PaymentSvc *PaymentService
	AddressSvc *AddressService
	RestSvc    *RestaurantService
	ItemSvc    *ItemService
}

func NewOrderService(db *gorm.DB, orderRepo *repository.OrderRepository,
	couponRepo *repository.CouponRepository, paymentSvc *PaymentService,
	addressSvc *AddressService, restSvc *RestaurantService, itemSvc *ItemService) *OrderService {
	return &OrderService{
		DB:         db,
		OrderRepo:  orderRepo,
		CouponRepo: couponRepo,
		PaymentSvc: paymentSvc,
		AddressSvc: addressSvc,
		RestSvc:    restSvc,
		ItemSvc:    itemSvc,
	}
}

// GetCouponByName is the coupon preview used before placing an order.
func (s *OrderService) GetCouponByName(couponName string) (*entity.Coupon, error) {
	if utils.IsBlank(couponName) {
		return nil, apperr.EmptyCouponName()
	}
	coupon, err := s.CouponRepo.GetByName(couponName)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperr.CouponNotFoundByName()
	}
	return coupon, nil
}

func (s *OrderService) getCouponByUUID(couponUUID string) (*entity.Coupon, error) {
	coupon, err := s.CouponRepo.GetByUUID(couponUUID)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperr.CouponNotFoundByID()
	}
	return coupon, nil
}

type OrderItemInput struct {
	ItemUUID string
	Quantity int
	Price    int64
}

type PlaceOrderInput struct {
	CouponUUID     string // optional
	PaymentUUID    string
	AddressUUID    string
	RestaurantUUID string
	Bill           float64
	Discount       *float64 // nil means no discount was supplied, distinct from 0
	Items          []OrderItemInput
}

// PlaceOrder resolves every referenced entity before any write, then commits
// the order, its line items and the address archival in one transaction, so
// a failed reference never leaves a partial order behind.
func (s *OrderService) PlaceOrder(customer *entity.Customer, in PlaceOrderInput) (*entity.Order, error) {
	var coupon *entity.Coupon
	var err error
	if !utils.IsBlank(in.CouponUUID) {
		if coupon, err = s.getCouponByUUID(in.CouponUUID); err != nil {
			return nil, err
		}
	}

	if utils.IsBlank(in.PaymentUUID) {
		return nil, apperr.PaymentNotFound()
	}
	payment, err := s.PaymentSvc.GetByUUID(in.PaymentUUID)
	if err != nil {
		return nil, err
	}

	if utils.IsBlank(in.AddressUUID) {
		return nil, apperr.AddressNotFound()
	}
	address, err := s.AddressSvc.GetAddressForOrder(customer, in.AddressUUID)
	if err != nil {
		return nil, err
	}

	if utils.IsBlank(in.RestaurantUUID) {
		return nil, apperr.RestaurantNotFound()
	}
	restaurant, err := s.RestSvc.GetByUUID(in.RestaurantUUID)
	if err != nil {
		return nil, err
	}

	// Snapshot rows at the supplied price, never the current catalog price.
	orderItems := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := s.ItemSvc.GetByUUID(it.ItemUUID)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, entity.OrderItem{
			ItemID:   item.ID,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	discount := 0.0
	if in.Discount != nil {
		discount = *in.Discount
	}
	order := &entity.Order{
		UUID:         uuid.NewString(),
		Bill:         in.Bill,
		Discount:     discount,
		OrderedAt:    time.Now(),
		CustomerID:   customer.ID,
		AddressID:    address.ID,
		PaymentID:    payment.ID,
		RestaurantID: restaurant.ID,
	}
	if coupon != nil {
		order.CouponID = &coupon.ID
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.CreateOrder(tx, order); err != nil {
			return err
		}
		// The delivery address archives at placement so it can't be deleted
		// or reused while this order references it.
		address.Active = false
		if err := s.AddressSvc.AddressRepo.Update(tx, address); err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
			if err := s.OrderRepo.CreateOrderItem(tx, &orderItems[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListPastOrders returns the customer's orders newest first; a customer with
// no orders gets an empty list, never nil.
func (s *OrderService) ListPastOrders(customer *entity.Customer) ([]entity.Order, error) {
	orders, err := s.OrderRepo.ListByCustomer(customer.ID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return orders, nil
}
