package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/pets-service/internal/api/v1/handlers"
	"ulascansenturk/pets-service/internal/db/petstore"
	"ulascansenturk/pets-service/internal/mocks"
)

type PetHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockPetService
	handler     *handlers.PetHandler
}

func (s *PetHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewMockPetService(s.T())
	s.handler = handlers.NewPetHandler(s.mockService, 5*time.Second)
}

func (s *PetHandlerTestSuite) TestListPetsSuccess() {
	born := time.Date(2019, time.May, 4, 10, 30, 0, 0, time.FixedZone("", 3*60*60))

	s.mockService.On("ListPets", mock.Anything).Return([]petstore.Pet{
		{ID: 7, Name: "Rex", DateOfBirth: born},
		{ID: 9, Name: "Rex", DateOfBirth: born.AddDate(1, 0, 0)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	recorder := httptest.NewRecorder()

	s.handler.ListPets(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))

	var response []handlers.PetResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Require().Len(response, 2)
	s.Equal(7, response[0].ID)
	s.Equal("Rex", response[0].Name)
	s.True(born.Equal(response[0].DateOfBirth))
	s.Equal(9, response[1].ID)

	s.mockService.AssertExpectations(s.T())
}

func (s *PetHandlerTestSuite) TestListPetsKeepsOffset() {
	born := time.Date(2019, time.May, 4, 10, 30, 0, 0, time.FixedZone("", 3*60*60))

	s.mockService.On("ListPets", mock.Anything).Return([]petstore.Pet{
		{ID: 1, Name: "Rex", DateOfBirth: born},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	recorder := httptest.NewRecorder()

	s.handler.ListPets(recorder, req)

	s.JSONEq(`[{"id":1,"name":"Rex","dateOfBirth":"2019-05-04T10:30:00+03:00"}]`, recorder.Body.String())
}

func (s *PetHandlerTestSuite) TestListPetsEmptyReturnsArray() {
	s.mockService.On("ListPets", mock.Anything).Return([]petstore.Pet{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	recorder := httptest.NewRecorder()

	s.handler.ListPets(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`[]`, recorder.Body.String())
}

func (s *PetHandlerTestSuite) TestListPetsServiceError() {
	s.mockService.On("ListPets", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	recorder := httptest.NewRecorder()

	s.handler.ListPets(recorder, req)

	s.Equal(http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Len(response.Errors, 1)
	s.Equal("INTERNAL_ERROR", response.Errors[0].Code)
	s.Equal("failed to list pets", response.Errors[0].Detail)
	s.NotContains(response.Errors[0].Detail, "connection refused")

	s.mockService.AssertExpectations(s.T())
}

func (s *PetHandlerTestSuite) TestListPetsContextTimeout() {
	s.mockService.On("ListPets", mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(nil, context.DeadlineExceeded)

	s.handler = handlers.NewPetHandler(s.mockService, 50*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	recorder := httptest.NewRecorder()

	s.handler.ListPets(recorder, req)

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.mockService.AssertExpectations(s.T())
}

func TestPetHandlerSuite(t *testing.T) {
	suite.Run(t, new(PetHandlerTestSuite))
}
