package tests

import (
	"time"

	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *IntegrationTestSuite) createOrder(customer string) *domain.Order {
	order := &domain.Order{
		Customer:      customer,
		PaymentMethod: domain.PaymentMethodCash,
		Items: []domain.OrderItem{
			{ProductID: primitive.NewObjectID(), Name: "لوحة إعلانية", Price: 100, Quantity: 2},
			{ProductID: primitive.NewObjectID(), Name: "تصميم شعار", Price: 50, Quantity: 1},
		},
	}

	created, err := s.OrderService.Create(s.Ctx, order)
	s.Require().NoError(err)
	s.Require().NotNil(created)

	return created
}

func (s *IntegrationTestSuite) TestCreateOrder_PersistsComputedFields() {
	created := s.createOrder("أحمد")

	s.Require().False(created.ID.IsZero())
	s.Require().InDelta(250, created.Total, 1e-9)
	s.Require().Equal(domain.OrderStatusNew, created.Status)
	s.Require().Equal(time.Now().UTC().Format("2006-01-02"), created.Date)

	stored, err := s.OrderRepo.FindByID(s.Ctx, created.ID)
	s.Require().NoError(err)
	s.Require().InDelta(250, stored.Total, 1e-9)
	s.Require().EqualValues(1, stored.Version)
	s.Require().Len(stored.Items, 2)
}

func (s *IntegrationTestSuite) TestUpdateOrder_RecomputesTotal() {
	created := s.createOrder("أحمد")

	newItems := []domain.OrderItem{
		{ProductID: primitive.NewObjectID(), Name: "مطبوعات", Price: 30, Quantity: 3},
	}

	updated, err := s.OrderService.Update(s.Ctx, created.ID, domain.OrderPatch{Items: &newItems})
	s.Require().NoError(err)
	s.Require().InDelta(90, updated.Total, 1e-9)
	s.Require().EqualValues(2, updated.Version)
	s.Require().Equal(created.Date, updated.Date)

	// A status-only update afterwards must leave the total alone.
	status := domain.OrderStatusCompleted
	updated, err = s.OrderService.Update(s.Ctx, created.ID, domain.OrderPatch{Status: &status})
	s.Require().NoError(err)
	s.Require().InDelta(90, updated.Total, 1e-9)
	s.Require().Equal(domain.OrderStatusCompleted, updated.Status)
}

func (s *IntegrationTestSuite) TestUpdateOrder_StaleVersionRejected() {
	created := s.createOrder("أحمد")

	customer := "خالد"
	_, err := s.OrderService.Update(s.Ctx, created.ID, domain.OrderPatch{Customer: &customer})
	s.Require().NoError(err)

	// Replay the write against the already-bumped version.
	_, err = s.OrderRepo.Update(s.Ctx, created.ID, created.Version, bson.M{
		"customer": "سارة",
	})
	s.Require().ErrorIs(err, repository.ErrOrderVersionConflict)

	stored, err := s.OrderRepo.FindByID(s.Ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Equal("خالد", stored.Customer)
}

func (s *IntegrationTestSuite) TestUpdateOrder_NotFound() {
	status := domain.OrderStatusInProgress
	_, err := s.OrderService.Update(s.Ctx, primitive.NewObjectID(), domain.OrderPatch{Status: &status})
	s.Require().ErrorIs(err, repository.ErrOrderNotFound)
}

func (s *IntegrationTestSuite) TestDeleteOrder_RemovesDocument() {
	created := s.createOrder("أحمد")

	s.Require().NoError(s.OrderService.Delete(s.Ctx, created.ID))

	_, err := s.OrderService.Get(s.Ctx, created.ID)
	s.Require().ErrorIs(err, repository.ErrOrderNotFound)

	err = s.OrderService.Delete(s.Ctx, created.ID)
	s.Require().ErrorIs(err, repository.ErrOrderNotFound)
}

func (s *IntegrationTestSuite) TestListOrders_FilterByCustomer() {
	s.createOrder("أحمد")
	s.createOrder("سارة")
	s.createOrder("أحمد")

	views, err := s.OrderService.List(s.Ctx, domain.OrderFilter{Customer: "أحمد"})
	s.Require().NoError(err)
	s.Require().Len(views, 2)

	views, err = s.OrderService.List(s.Ctx, domain.OrderFilter{})
	s.Require().NoError(err)
	s.Require().Len(views, 3)
}

func (s *IntegrationTestSuite) TestCachedProduct_InvalidatedOnDelete() {
	product := &domain.Product{
		NameAr:  "لوحة إعلانية كبيرة",
		Price:   500,
		InStock: true,
	}

	created, err := s.ProductService.Create(s.Ctx, product)
	s.Require().NoError(err)

	// First read warms the cache, second read hits it.
	fetched, err := s.ProductService.FindByID(s.Ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Equal("لوحة إعلانية كبيرة", fetched.NameAr)

	fetched, err = s.ProductService.FindByID(s.Ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Equal("لوحة إعلانية كبيرة", fetched.NameAr)

	s.Require().NoError(s.ProductService.Delete(s.Ctx, created.ID))

	_, err = s.ProductService.FindByID(s.Ctx, created.ID)
	s.Require().ErrorIs(err, repository.ErrProductNotFound)
}
