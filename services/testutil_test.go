package services

import (
	"path/filepath"
	"testing"
	"time"

	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
	"foodapp-backend/utils"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Customer{}, &entity.CustomerAuth{},
		&entity.State{}, &entity.Address{},
		&entity.Restaurant{}, &entity.Category{}, &entity.Item{},
		&entity.Coupon{}, &entity.PaymentMethod{},
		&entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testEnv struct {
	db          *gorm.DB
	authSvc     *AuthService
	customerSvc *CustomerService
	restSvc     *RestaurantService
	categorySvc *CategoryService
	itemSvc     *ItemService
	addressSvc  *AddressService
	paymentSvc  *PaymentService
	orderSvc    *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testDB(t)

	customerRepo := repository.NewCustomerRepository(db)
	authRepo := repository.NewCustomerAuthRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	stateRepo := repository.NewStateRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authSvc := NewAuthService(db, customerRepo, authRepo, "test-secret", 8*time.Hour)
	customerSvc := NewCustomerService(db, customerRepo)
	restSvc := NewRestaurantService(db, restaurantRepo, categoryRepo)
	categorySvc := NewCategoryService(categoryRepo)
	itemSvc := NewItemService(itemRepo, restaurantRepo, categoryRepo)
	addressSvc := NewAddressService(db, addressRepo, stateRepo, orderRepo)
	paymentSvc := NewPaymentService(paymentRepo)
	orderSvc := NewOrderService(db, orderRepo, couponRepo, paymentSvc, addressSvc, restSvc, itemSvc)

	return &testEnv{
		db:          db,
		authSvc:     authSvc,
		customerSvc: customerSvc,
		restSvc:     restSvc,
		categorySvc: categorySvc,
		itemSvc:     itemSvc,
		addressSvc:  addressSvc,
		paymentSvc:  paymentSvc,
		orderSvc:    orderSvc,
	}
}

func (e *testEnv) createCustomer(t *testing.T, contactNumber, password string) *entity.Customer {
	t.Helper()
	salt, hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	customer := &entity.Customer{
		UUID:          uuid.NewString(),
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		ContactNumber: contactNumber,
		Password:      hash,
		Salt:          salt,
	}
	if err := e.db.Create(customer).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

func (e *testEnv) createState(t *testing.T) *entity.State {
	t.Helper()
	state := &entity.State{UUID: uuid.NewString(), StateName: "Karnataka"}
	if err := e.db.Create(state).Error; err != nil {
		t.Fatalf("create state: %v", err)
	}
	return state
}

func (e *testEnv) createAddress(t *testing.T, customer *entity.Customer, state *entity.State) *entity.Address {
	t.Helper()
	address := &entity.Address{
		UUID:       uuid.NewString(),
		FlatBuilNo: "1, Main Road",
		Locality:   "Koramangala",
		City:       "Bengaluru",
		Pincode:    "560034",
		Active:     true,
		StateID:    state.ID,
		CustomerID: customer.ID,
	}
	if err := e.db.Create(address).Error; err != nil {
		t.Fatalf("create address: %v", err)
	}
	return address
}

func (e *testEnv) createRestaurant(t *testing.T, rating float64, count int) *entity.Restaurant {
	t.Helper()
	state := e.createState(t)
	restaurant := &entity.Restaurant{
		UUID:                 uuid.NewString(),
		RestaurantName:       "Spice Route",
		AvgPrice:             280,
		CustomerRating:       rating,
		NumberCustomersRated: count,
		Address: entity.Address{
			UUID:    uuid.NewString(),
			City:    "Bengaluru",
			Pincode: "560038",
			Active:  true,
			StateID: state.ID,
		},
	}
	if err := e.db.Create(restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return restaurant
}

func (e *testEnv) createPayment(t *testing.T) *entity.PaymentMethod {
	t.Helper()
	payment := &entity.PaymentMethod{UUID: uuid.NewString(), PaymentName: "Cash on Delivery"}
	if err := e.db.Create(payment).Error; err != nil {
		t.Fatalf("create payment method: %v", err)
	}
	return payment
}

func (e *testEnv) createItem(t *testing.T) *entity.Item {
	t.Helper()
	item := &entity.Item{UUID: uuid.NewString(), ItemName: "Paneer Tikka", Price: 250, Type: entity.ItemTypeVeg}
	if err := e.db.Create(item).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	return item
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	ae, ok := apperr.As(err)
	if !ok {
		t.Fatalf("expected apperr with code %s, got %v", code, err)
	}
	if ae.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, ae.Code, ae.Message)
	}
}
