package repository

import (
	"context"

	"github.com/stretchr/testify/suite"
)

// KeyValueStoreContractSuite exercises the behaviour every storage adapter
// must share. Adapter suites embed it and set Store in SetupTest.
type KeyValueStoreContractSuite struct {
	suite.Suite
	Store KeyValueStoreInterface
}

func (s *KeyValueStoreContractSuite) TestGetMissingKey() {
	v, ok, err := s.Store.GetItem(context.Background(), "missing")
	s.NoError(err)
	s.False(ok)
	s.Equal("", v)
}

func (s *KeyValueStoreContractSuite) TestSetThenGet() {
	ctx := context.Background()
	s.Require().NoError(s.Store.SetItem(ctx, "emp_data", `[{"id":"1"}]`))

	v, ok, err := s.Store.GetItem(ctx, "emp_data")
	s.NoError(err)
	s.True(ok)
	s.Equal(`[{"id":"1"}]`, v)
}

func (s *KeyValueStoreContractSuite) TestOverwrite() {
	ctx := context.Background()
	s.Require().NoError(s.Store.SetItem(ctx, "emp_language", "en"))
	s.Require().NoError(s.Store.SetItem(ctx, "emp_language", "tr"))

	v, ok, err := s.Store.GetItem(ctx, "emp_language")
	s.NoError(err)
	s.True(ok)
	s.Equal("tr", v)
}

func (s *KeyValueStoreContractSuite) TestEmptyValueIsPresent() {
	ctx := context.Background()
	s.Require().NoError(s.Store.SetItem(ctx, "blank", ""))

	v, ok, err := s.Store.GetItem(ctx, "blank")
	s.NoError(err)
	s.True(ok)
	s.Equal("", v)
}

func (s *KeyValueStoreContractSuite) TestRemoveItem() {
	ctx := context.Background()
	s.Require().NoError(s.Store.SetItem(ctx, "a", "1"))
	s.Require().NoError(s.Store.SetItem(ctx, "b", "2"))

	s.NoError(s.Store.RemoveItem(ctx, "a"))
	s.NoError(s.Store.RemoveItem(ctx, "never-set"))

	_, ok, err := s.Store.GetItem(ctx, "a")
	s.NoError(err)
	s.False(ok)

	v, ok, err := s.Store.GetItem(ctx, "b")
	s.NoError(err)
	s.True(ok)
	s.Equal("2", v)
}

func (s *KeyValueStoreContractSuite) TestClear() {
	ctx := context.Background()
	s.Require().NoError(s.Store.SetItem(ctx, "a", "1"))
	s.Require().NoError(s.Store.SetItem(ctx, "b", "2"))

	s.NoError(s.Store.Clear(ctx))

	for _, key := range []string{"a", "b"} {
		_, ok, err := s.Store.GetItem(ctx, key)
		s.NoError(err)
		s.False(ok, key)
	}
}
