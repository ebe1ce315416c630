package tests

import (
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/domain"
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/repository"
)

func (s *IntegrationTestSuite) TestListServices_SortedByDisplayOrder() {
	// Inserted out of order on purpose; the listing must come back sorted
	// ascending by sortOrder.
	for _, svc := range []*domain.Service{
		{TitleAr: "تصميم الهوية", SortOrder: 3},
		{TitleAr: "اللوحات الإعلانية", SortOrder: 1},
		{TitleAr: "الطباعة", SortOrder: 2},
	} {
		_, err := s.ContentService.CreateService(s.Ctx, svc)
		s.Require().NoError(err)
	}

	services, err := s.ContentService.ListServices(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(services, 3)

	s.Require().Equal("اللوحات الإعلانية", services[0].TitleAr)
	s.Require().Equal("الطباعة", services[1].TitleAr)
	s.Require().Equal("تصميم الهوية", services[2].TitleAr)
}

func (s *IntegrationTestSuite) TestSettings_UpsertThenGet() {
	_, err := s.SettingsService.Get(s.Ctx)
	s.Require().ErrorIs(err, repository.ErrSettingsNotFound)

	settings := &domain.SiteSettings{
		SiteNameAr: "خط الإعلان",
		SiteNameEn: "Khat Al-Ilan",
		Phone:      "0501234567",
		Socials:    map[string]string{"instagram": "khat.alilan"},
	}

	_, err = s.SettingsService.Update(s.Ctx, settings)
	s.Require().NoError(err)

	stored, err := s.SettingsService.Get(s.Ctx)
	s.Require().NoError(err)
	s.Require().Equal("خط الإعلان", stored.SiteNameAr)
	s.Require().Equal("khat.alilan", stored.Socials["instagram"])
	s.Require().False(stored.UpdatedAt.IsZero())

	// A second update replaces the same singleton document.
	settings.Phone = "0559876543"
	_, err = s.SettingsService.Update(s.Ctx, settings)
	s.Require().NoError(err)

	stored, err = s.SettingsService.Get(s.Ctx)
	s.Require().NoError(err)
	s.Require().Equal("0559876543", stored.Phone)
}

func (s *IntegrationTestSuite) TestContactMessages_MarkReadFlow() {
	msg := &domain.ContactMessage{
		Name:    "أحمد",
		Phone:   "0501234567",
		Message: "أريد عرض سعر للوحة إعلانية",
	}

	created, err := s.ContactService.Submit(s.Ctx, msg)
	s.Require().NoError(err)
	s.Require().False(created.ID.IsZero())
	s.Require().False(created.Read)

	s.Require().NoError(s.ContactService.MarkRead(s.Ctx, created.ID))

	messages, err := s.ContactService.List(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)
	s.Require().True(messages[0].Read)

	s.Require().NoError(s.ContactService.Delete(s.Ctx, created.ID))
	s.Require().ErrorIs(s.ContactService.Delete(s.Ctx, created.ID), repository.ErrContactNotFound)
}
