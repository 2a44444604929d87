//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"employee-roster/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// StorageEntryRepositoryTestSuite runs the storage contract against Postgres
type StorageEntryRepositoryTestSuite struct {
	KeyValueStoreContractSuite
	baseTestSuite *testutils.BaseTestSuite
	repo          *StorageEntryRepository
}

// SetupSuite runs before all tests in the suite
func (s *StorageEntryRepositoryTestSuite) SetupSuite() {
	s.baseTestSuite = testutils.SetupTestSuite(s.T())
	s.repo = NewStorageEntryRepository(s.baseTestSuite.DB)
	s.Store = s.repo
}

// TearDownSuite runs after all tests in the suite
func (s *StorageEntryRepositoryTestSuite) TearDownSuite() {
	s.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (s *StorageEntryRepositoryTestSuite) SetupTest() {
	s.baseTestSuite.SetupTest()
}

// TestKeys tests listing keys in order
func (s *StorageEntryRepositoryTestSuite) TestKeys() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SetItem(ctx, "emp_language", "en"))
	s.Require().NoError(s.repo.SetItem(ctx, "emp_data", "[]"))

	keys, err := s.repo.Keys(ctx)
	s.NoError(err)
	s.Equal([]string{"emp_data", "emp_language"}, keys)
}

func TestStorageEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StorageEntryRepositoryTestSuite))
}
