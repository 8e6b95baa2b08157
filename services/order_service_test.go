package services

import (
	"testing"

	"foodapp-backend/entity"

	"github.com/google/uuid"
)

func (e *testEnv) orderFixture(t *testing.T) (*entity.Customer, PlaceOrderInput) {
	t.Helper()
	customer := e.createCustomer(t, "9998887776", "Sup3r#secret")
	state := e.createState(t)
	address := e.createAddress(t, customer, state)
	restaurant := e.createRestaurant(t, 4.0, 3)
	payment := e.createPayment(t)
	item := e.createItem(t)

	return customer, PlaceOrderInput{
		PaymentUUID:    payment.UUID,
		AddressUUID:    address.UUID,
		RestaurantUUID: restaurant.UUID,
		Bill:           500,
		Items:          []OrderItemInput{{ItemUUID: item.UUID, Quantity: 2, Price: 250}},
	}
}

func TestPlaceOrderWithoutCoupon(t *testing.T) {
	env := newTestEnv(t)
	customer, in := env.orderFixture(t)

	order, err := env.orderSvc.PlaceOrder(customer, in)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.UUID == "" {
		t.Error("expected a generated order id")
	}
	if order.CouponID != nil {
		t.Error("order without coupon should carry no coupon reference")
	}
	if order.Discount != 0 {
		t.Errorf("absent discount should persist as 0, got %v", order.Discount)
	}

	// the delivery address archives at placement
	var address entity.Address
	if err := env.db.Where("uuid = ?", in.AddressUUID).First(&address).Error; err != nil {
		t.Fatalf("reload address: %v", err)
	}
	if address.Active {
		t.Error("address should be archived once an order references it")
	}

	var itemCount int64
	env.db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	if itemCount != 1 {
		t.Errorf("expected 1 order item, got %d", itemCount)
	}
}

func TestPlaceOrderWithCouponAndDiscount(t *testing.T) {
	env := newTestEnv(t)
	customer, in := env.orderFixture(t)

	coupon := &entity.Coupon{UUID: uuid.NewString(), CouponName: "FLAT10", Percent: 10}
	if err := env.db.Create(coupon).Error; err != nil {
		t.Fatalf("create coupon: %v", err)
	}
	discount := 50.0
	in.CouponUUID = coupon.UUID
	in.Discount = &discount

	order, err := env.orderSvc.PlaceOrder(customer, in)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.CouponID == nil || *order.CouponID != coupon.ID {
		t.Error("order should reference the coupon")
	}
	if order.Discount != 50.0 {
		t.Errorf("got discount %v", order.Discount)
	}

	in.CouponUUID = uuid.NewString()
	_, err = env.orderSvc.PlaceOrder(customer, in)
	wantCode(t, err, "CPF-002")
}

func TestPlaceOrderMissingReferences(t *testing.T) {
	env := newTestEnv(t)
	customer, in := env.orderFixture(t)

	cases := []struct {
		name   string
		mutate func(*PlaceOrderInput)
		code   string
	}{
		{"missing payment", func(in *PlaceOrderInput) { in.PaymentUUID = "" }, "PNF-002"},
		{"unknown payment", func(in *PlaceOrderInput) { in.PaymentUUID = uuid.NewString() }, "PNF-002"},
		{"missing address", func(in *PlaceOrderInput) { in.AddressUUID = "" }, "ANF-003"},
		{"unknown address", func(in *PlaceOrderInput) { in.AddressUUID = uuid.NewString() }, "ANF-003"},
		{"missing restaurant", func(in *PlaceOrderInput) { in.RestaurantUUID = "" }, "RNF-001"},
		{"unknown restaurant", func(in *PlaceOrderInput) { in.RestaurantUUID = uuid.NewString() }, "RNF-001"},
		{"unknown item", func(in *PlaceOrderInput) { in.Items[0].ItemUUID = uuid.NewString() }, "INF-003"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := in
			bad.Items = []OrderItemInput{in.Items[0]}
			tc.mutate(&bad)
			_, err := env.orderSvc.PlaceOrder(customer, bad)
			wantCode(t, err, tc.code)
		})
	}

	// every failure above happened before any write
	var orderCount int64
	env.db.Model(&entity.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Errorf("no order should be persisted, found %d", orderCount)
	}
	var address entity.Address
	if err := env.db.Where("uuid = ?", in.AddressUUID).First(&address).Error; err != nil {
		t.Fatalf("reload address: %v", err)
	}
	if !address.Active {
		t.Error("address must stay active when placement fails")
	}
}

func TestPlaceOrderRejectsForeignAddress(t *testing.T) {
	env := newTestEnv(t)
	customer, in := env.orderFixture(t)

	other := env.createCustomer(t, "8887776665", "Sup3r#secret")
	state := env.createState(t)
	foreign := env.createAddress(t, other, state)

	in.AddressUUID = foreign.UUID
	_, err := env.orderSvc.PlaceOrder(customer, in)
	wantCode(t, err, "ANF-003")
}

func TestListPastOrders(t *testing.T) {
	env := newTestEnv(t)
	customer, in := env.orderFixture(t)

	// empty history is an empty list, not nil
	orders, err := env.orderSvc.ListPastOrders(customer)
	if err != nil {
		t.Fatalf("list past orders failed: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty list, got %v", orders)
	}

	placed, err := env.orderSvc.PlaceOrder(customer, in)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	orders, err = env.orderSvc.ListPastOrders(customer)
	if err != nil {
		t.Fatalf("list past orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].UUID != placed.UUID {
		t.Fatalf("got %d orders", len(orders))
	}
	o := orders[0]
	if o.Payment.UUID == "" || o.Customer.UUID != customer.UUID || o.Address.State.UUID == "" {
		t.Error("past order should come back with payment, customer and address+state")
	}
	if len(o.OrderItems) != 1 || o.OrderItems[0].Item.ItemName == "" {
		t.Error("past order should include its line items with item details")
	}
	if o.OrderItems[0].Price != 250 {
		t.Errorf("line item should keep the snapshotted price, got %d", o.OrderItems[0].Price)
	}
}

func TestGetCouponByName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orderSvc.GetCouponByName("")
	wantCode(t, err, "CPF-002")

	_, err = env.orderSvc.GetCouponByName("NOPE")
	wantCode(t, err, "CPF-001")

	coupon := &entity.Coupon{UUID: uuid.NewString(), CouponName: "FLAT20", Percent: 20}
	if err := env.db.Create(coupon).Error; err != nil {
		t.Fatalf("create coupon: %v", err)
	}
	found, err := env.orderSvc.GetCouponByName("FLAT20")
	if err != nil {
		t.Fatalf("coupon lookup failed: %v", err)
	}
	if found.Percent != 20 {
		t.Errorf("got percent %d", found.Percent)
	}
}
