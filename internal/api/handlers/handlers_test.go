package handlers_test

import (
	"context"
	"encoding/json"
	"time"

	"employee-roster/internal/api/handlers"
	"employee-roster/internal/clock"
	"employee-roster/internal/database/models"
	"employee-roster/internal/events"
	"employee-roster/internal/i18n"
	"employee-roster/internal/logger"
	"employee-roster/internal/repository"
	"employee-roster/internal/seed"
	"employee-roster/internal/service"
	"employee-roster/internal/state"
	"employee-roster/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// handlerSuite wires the real service and store over an in-memory repository
type handlerSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *repository.MemoryStore
	clock   *clock.ManualClock
	factory *testutils.EmployeeFactory
	bus     *events.Bus
	service *service.EmployeeService
	store   *state.Store
	http    *testutils.HTTPTestSuite
}

func (s *handlerSuite) setup(n int) {
	s.ctx = context.Background()
	s.repo = repository.NewMemoryStore()
	s.clock = clock.NewManualClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	s.factory = testutils.NewEmployeeFactory()
	s.bus = events.NewBus()

	if n > 0 {
		data, err := json.Marshal(s.factory.Many(n))
		require.NoError(s.T(), err)
		require.NoError(s.T(), s.repo.SetItem(s.ctx, models.StorageKeyEmployees, string(data)))
	}

	s.service = service.NewEmployeeService(s.repo, service.NewValidator(), s.clock,
		service.WithSeed(seed.None{}),
		service.WithLogger(logger.Discard()),
	)
	s.service.Init(s.ctx)

	s.store = state.NewStore(s.service, s.repo,
		state.WithBus(s.bus),
		state.WithStoreLogger(logger.Discard()),
	)
	s.store.Init(s.ctx)

	s.http = testutils.SetupHTTPTest(nil)
}

func (s *handlerSuite) localizer() *handlers.Localizer {
	return handlers.NewLocalizer(i18n.New("en"), s.store)
}

func (s *handlerSuite) router() *gin.Engine {
	return s.http.Router
}
