package service

import (
	"context"
	"testing"
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeOrderRepo is an in-memory OrderRepository with the same CAS semantics
// as the mongo-backed one.
type fakeOrderRepo struct {
	orders map[string]domain.Order
	writes int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]domain.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	f.orders[order.ID.Hex()] = *order
	f.writes++
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, ok := f.orders[id.Hex()]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return &order, nil
}

func (f *fakeOrderRepo) List(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if filter.Customer != "" && order.Customer != filter.Customer {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, id primitive.ObjectID, version int64, set bson.M) (*domain.Order, error) {
	order, ok := f.orders[id.Hex()]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	if order.Version != version {
		return nil, repository.ErrOrderVersionConflict
	}

	for key, val := range set {
		switch key {
		case "customer":
			order.Customer = val.(string)
		case "items":
			order.Items = val.([]domain.OrderItem)
		case "total":
			order.Total = val.(float64)
		case "status":
			order.Status = val.(domain.OrderStatus)
		case "paymentMethod":
			order.PaymentMethod = val.(domain.PaymentMethod)
		case "shippingInfo":
			info := val.(domain.ShippingInfo)
			order.ShippingInfo = &info
		}
	}

	order.Version++
	order.UpdatedAt = time.Now().UTC()
	f.orders[id.Hex()] = order
	f.writes++
	return &order, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.orders[id.Hex()]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(f.orders, id.Hex())
	f.writes++
	return nil
}

type fakeProductRepo struct {
	products map[string]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]domain.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	f.products[product.ID.Hex()] = *product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	product, ok := f.products[id.Hex()]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &product, nil
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if product, ok := f.products[id.Hex()]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) List(_ context.Context, _ string) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range f.products {
		out = append(out, product)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, _ bson.M) (*domain.Product, error) {
	product, ok := f.products[id.Hex()]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &product, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.products[id.Hex()]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id.Hex())
	return nil
}

func newTestOrderService(t *testing.T, strictPricing bool) (OrderService, *fakeOrderRepo, *fakeProductRepo) {
	t.Helper()

	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	svc := NewOrderService(orderRepo, productRepo, zap.NewNop(), strictPricing)
	return svc, orderRepo, productRepo
}

func testItems() []domain.OrderItem {
	return []domain.OrderItem{
		{ProductID: primitive.NewObjectID(), Name: "لوحة إعلانية", Price: 100, Quantity: 2},
		{ProductID: primitive.NewObjectID(), Name: "تصميم شعار", Price: 50, Quantity: 1},
	}
}

func TestCreateOrder_ComputesTotalAndDefaults(t *testing.T) {
	svc, _, _ := newTestOrderService(t, false)

	// A client-submitted total must be discarded.
	order := &domain.Order{
		Customer:      "أحمد",
		Items:         testItems(),
		PaymentMethod: domain.PaymentMethodCash,
		Total:         9999,
	}

	created, err := svc.Create(context.Background(), order)
	require.NoError(t, err)

	assert.InDelta(t, 250, created.Total, 1e-9)
	assert.Equal(t, domain.OrderStatusNew, created.Status)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), created.Date)
	assert.EqualValues(t, 1, created.Version)
	assert.False(t, created.ID.IsZero())
}

func TestCreateOrder_RejectsEmptyItems(t *testing.T) {
	svc, orderRepo, _ := newTestOrderService(t, false)

	_, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		PaymentMethod: domain.PaymentMethodCard,
	})

	assert.ErrorIs(t, err, ErrNoItems)
	assert.Zero(t, orderRepo.writes)
}

func TestCreateOrder_RejectsUnknownPaymentMethod(t *testing.T) {
	svc, _, _ := newTestOrderService(t, false)

	_, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		Items:         testItems(),
		PaymentMethod: "bitcoin",
	})

	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestCreateOrder_StrictPricing(t *testing.T) {
	svc, _, productRepo := newTestOrderService(t, true)

	productID := primitive.NewObjectID()
	require.NoError(t, productRepo.Create(context.Background(), &domain.Product{
		ID:     productID,
		NameAr: "لوحة إعلانية",
		Price:  100,
	}))

	order := func(price float64) *domain.Order {
		return &domain.Order{
			Customer:      "سارة",
			PaymentMethod: domain.PaymentMethodCard,
			Items: []domain.OrderItem{
				{ProductID: productID, Name: "لوحة إعلانية", Price: price, Quantity: 1},
			},
		}
	}

	_, err := svc.Create(context.Background(), order(80))
	assert.ErrorIs(t, err, ErrPriceMismatch)

	created, err := svc.Create(context.Background(), order(100))
	require.NoError(t, err)
	assert.InDelta(t, 100, created.Total, 1e-9)

	_, err = svc.Create(context.Background(), &domain.Order{
		Customer:      "سارة",
		PaymentMethod: domain.PaymentMethodCard,
		Items: []domain.OrderItem{
			{ProductID: primitive.NewObjectID(), Price: 10, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestUpdateOrder_RecomputesTotalOnlyWithItems(t *testing.T) {
	svc, _, _ := newTestOrderService(t, false)

	created, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		Items:         testItems(),
		PaymentMethod: domain.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.InDelta(t, 250, created.Total, 1e-9)

	// Status-only update leaves the total untouched.
	status := domain.OrderStatusInProgress
	updated, err := svc.Update(context.Background(), created.ID, domain.OrderPatch{Status: &status})
	require.NoError(t, err)
	assert.InDelta(t, 250, updated.Total, 1e-9)
	assert.Equal(t, domain.OrderStatusInProgress, updated.Status)

	// Replacing the items recomputes the total.
	newItems := []domain.OrderItem{
		{ProductID: primitive.NewObjectID(), Name: "مطبوعات", Price: 30, Quantity: 3},
	}
	updated, err = svc.Update(context.Background(), created.ID, domain.OrderPatch{Items: &newItems})
	require.NoError(t, err)
	assert.InDelta(t, 90, updated.Total, 1e-9)
}

func TestUpdateOrder_ImmutableDate(t *testing.T) {
	svc, _, _ := newTestOrderService(t, false)

	created, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		Items:         testItems(),
		PaymentMethod: domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	customer := "خالد"
	updated, err := svc.Update(context.Background(), created.ID, domain.OrderPatch{Customer: &customer})
	require.NoError(t, err)

	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, "خالد", updated.Customer)
}

func TestUpdateOrder_NotFoundPerformsNoWrite(t *testing.T) {
	svc, orderRepo, _ := newTestOrderService(t, false)

	status := domain.OrderStatusCompleted
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), domain.OrderPatch{Status: &status})

	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	assert.Zero(t, orderRepo.writes)
}

func TestUpdateOrder_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestOrderService(t, false)

	created, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		Items:         testItems(),
		PaymentMethod: domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	status := domain.OrderStatus("shipped")
	_, err = svc.Update(context.Background(), created.ID, domain.OrderPatch{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateOrder_VersionConflict(t *testing.T) {
	svc, orderRepo, _ := newTestOrderService(t, false)

	created, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		Items:         testItems(),
		PaymentMethod: domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	// Another writer bumps the version behind our back.
	stored := orderRepo.orders[created.ID.Hex()]
	stored.Version++
	orderRepo.orders[created.ID.Hex()] = stored

	customer := "خالد"
	_, err = svc.Update(context.Background(), created.ID, domain.OrderPatch{Customer: &customer})
	assert.ErrorIs(t, err, repository.ErrOrderVersionConflict)
}

func TestDeleteOrder(t *testing.T) {
	svc, _, _ := newTestOrderService(t, false)

	created, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		Items:         testItems(),
		PaymentMethod: domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestListOrders_ResolvesProducts(t *testing.T) {
	svc, _, productRepo := newTestOrderService(t, false)

	productID := primitive.NewObjectID()
	require.NoError(t, productRepo.Create(context.Background(), &domain.Product{
		ID:     productID,
		NameAr: "لوحة إعلانية",
		Price:  120,
	}))

	_, err := svc.Create(context.Background(), &domain.Order{
		Customer:      "أحمد",
		PaymentMethod: domain.PaymentMethodCash,
		Items: []domain.OrderItem{
			{ProductID: productID, Name: "لوحة إعلانية", Price: 100, Quantity: 1},
			{ProductID: primitive.NewObjectID(), Name: "منتج محذوف", Price: 10, Quantity: 1},
		},
	})
	require.NoError(t, err)

	views, err := svc.List(context.Background(), domain.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 2)

	// Live product resolved, deleted product left as the snapshot only.
	assert.NotNil(t, views[0].Items[0].Product)
	assert.Equal(t, "لوحة إعلانية", views[0].Items[0].Product.NameAr)
	assert.Nil(t, views[0].Items[1].Product)
	assert.Equal(t, "جديد", views[0].StatusLabel)
}

func TestListOrders_CustomerFilter(t *testing.T) {
	svc, _, _ := newTestOrderService(t, false)

	for _, customer := range []string{"أحمد", "سارة", "أحمد"} {
		_, err := svc.Create(context.Background(), &domain.Order{
			Customer:      customer,
			Items:         testItems(),
			PaymentMethod: domain.PaymentMethodCash,
		})
		require.NoError(t, err)
	}

	views, err := svc.List(context.Background(), domain.OrderFilter{Customer: "أحمد"})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
