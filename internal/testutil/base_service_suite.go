package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/runforua/donorboard/internal/cache"
	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/logger"
)

// Stores holds the repository fakes for testing
type Stores struct {
	InvoiceRepo  *InMemoryInvoiceStore
	TrackingRepo *InMemoryTrackingStore
}

// BaseServiceTestSuite provides common functionality for service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
}

// SetupTest initializes fresh collaborators before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.config = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.config)
	s.Require().NoError(err)
	s.logger = log

	s.cache = cache.NewInMemoryCache(s.config)
	s.stores = Stores{
		InvoiceRepo:  NewInMemoryInvoiceStore(),
		TrackingRepo: NewInMemoryTrackingStore(),
	}
}

// ClearStores removes all seeded data
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.InvoiceRepo.Clear()
	s.stores.TrackingRepo.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
