package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	ierr "github.com/runforua/donorboard/internal/errors"
	"github.com/runforua/donorboard/internal/testutil"
	"github.com/runforua/donorboard/internal/types"
)

type ReportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ReportService
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewReportService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		TrackingRepo: s.GetStores().TrackingRepo,
	})
}

func (s *ReportServiceSuite) seedCampaign() {
	s.GetStores().InvoiceRepo.Add(
		testutil.NewInvoiceFixture("inv-1", "2FUA-RUN4UA",
			testutil.WithAmountPaid("50.00"),
			testutil.WithItems(testutil.NewLineItemFixture("5K Run", "1", "50.00")),
		),
		testutil.NewInvoiceFixture("inv-2", "2FUA-RUN4UA",
			testutil.WithAmountPaid("100.00"),
			testutil.WithCountry("Poland"),
		),
		testutil.NewInvoiceFixture("inv-3", "2FUA-RUN4UA",
			testutil.WithStatus(types.InvoiceStatusViewed),
		),
	)
	s.GetStores().TrackingRepo.Add(
		testutil.NewTrackingFixture("inv-1", "https://donate.example.org/?utm_campaign=spring&utm_medium=email"),
	)
}

func (s *ReportServiceSuite) TestGetInvoiceRows() {
	s.seedCampaign()

	rows, err := s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{})
	s.NoError(err)
	s.Len(rows, 3)

	s.Equal("inv-1", rows[0].ID)
	s.NotNil(rows[0].UTMCampaign)
	s.Equal("spring", *rows[0].UTMCampaign)
	s.Nil(rows[1].UTMCampaign)
}

func (s *ReportServiceSuite) TestGetInvoiceRowsSlugIsCaseInsensitive() {
	s.seedCampaign()

	rows, err := s.service.GetInvoiceRows(s.GetContext(), "2fua-run4ua", types.InvoiceRowFilter{})
	s.NoError(err)
	s.Len(rows, 3)
}

func (s *ReportServiceSuite) TestGetInvoiceRowsUnknownCampaign() {
	s.seedCampaign()

	_, err := s.service.GetInvoiceRows(s.GetContext(), "NO-SUCH-CAMPAIGN", types.InvoiceRowFilter{})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Equal(0, s.GetStores().InvoiceRepo.ListCalls, "no fetch happens for an unknown slug")
}

func (s *ReportServiceSuite) TestGetInvoiceRowsStatusFilter() {
	s.seedCampaign()

	rows, err := s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{
		Status: types.InvoiceStatusViewed,
	})
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal("inv-3", rows[0].ID)
}

func (s *ReportServiceSuite) TestGetInvoiceRowsTextSearch() {
	s.seedCampaign()

	rows, err := s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{
		Search: "olena@",
	})
	s.NoError(err)
	s.Len(rows, 3, "every fixture shares the donor email")

	rows, err = s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{
		Search: "no such donor",
	})
	s.NoError(err)
	s.Empty(rows)
}

func (s *ReportServiceSuite) TestSecondCallServedFromCache() {
	s.seedCampaign()

	_, err := s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{})
	s.NoError(err)
	_, err = s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{})
	s.NoError(err)

	s.Equal(1, s.GetStores().InvoiceRepo.ListCalls)
	s.Equal(1, s.GetStores().TrackingRepo.ListCalls)
}

func (s *ReportServiceSuite) TestFetchErrorPropagates() {
	s.seedCampaign()
	s.GetStores().InvoiceRepo.Err = ierr.NewError("upstream down").Mark(ierr.ErrIntegration)

	_, err := s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{})
	s.Error(err)
	s.True(ierr.IsIntegration(err))
}

func (s *ReportServiceSuite) TestGetItemRows() {
	s.seedCampaign()

	rows, err := s.service.GetItemRows(s.GetContext(), "2FUA-RUN4UA")
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal("5K Run", rows[0].ProductName)
	s.Equal(int64(1), rows[0].Quantity)
}

func (s *ReportServiceSuite) TestGetSummary() {
	s.seedCampaign()

	summary, err := s.service.GetSummary(s.GetContext(), "2FUA-RUN4UA")
	s.NoError(err)
	s.Equal("Run For Ukraine", summary.Campaign)

	s.True(summary.Summary.TotalCollected.Equal(decimal.RequireFromString("150.00")))
	s.Equal(2, summary.Summary.TotalDonated)
	s.Equal(1, summary.Summary.TotalAbandoned)

	s.Len(summary.ByCountry, 2)
	s.Len(summary.ByItem, 1)
	s.Equal("5K Run", summary.ByItem[0].Key)

	s.Require().Len(summary.ByUTMCampaign, 1)
	s.Equal("spring", summary.ByUTMCampaign[0].Key)
	s.True(summary.ByUTMCampaign[0].Amount.Equal(decimal.RequireFromString("50.00")))
	s.Require().Len(summary.ByUTMMedium, 1)
	s.Equal("email", summary.ByUTMMedium[0].Key)
}

func (s *ReportServiceSuite) TestNoTrackingRepository() {
	s.seedCampaign()
	s.service = NewReportService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		Cache:       s.GetCache(),
		InvoiceRepo: s.GetStores().InvoiceRepo,
	})

	rows, err := s.service.GetInvoiceRows(s.GetContext(), "2FUA-RUN4UA", types.InvoiceRowFilter{})
	s.NoError(err)
	s.Len(rows, 3)
	for _, row := range rows {
		s.Nil(row.UTMCampaign)
	}
}
