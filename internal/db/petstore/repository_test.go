package petstore_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/pets-service/internal/db/petstore"
)

const listPetsQuery = `SELECT \* FROM "Pets"`

type PetRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo petstore.Repository
}

func (s *PetRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = petstore.NewRepository(s.DB)
}

func (s *PetRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *PetRepositorySuite) TestListPets() {
	s.Run("Returns every row unchanged", func() {
		offset := time.FixedZone("UTC+3", 3*60*60)
		rex := time.Date(2019, time.May, 4, 10, 30, 0, 0, offset)
		luna := time.Date(2021, time.November, 12, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"Id", "Name", "DateOfBirth"}).
			AddRow(1, "Rex", rex).
			AddRow(2, "Luna", luna).
			AddRow(3, "Rex", luna)

		s.mock.ExpectQuery(listPetsQuery).WillReturnRows(rows)

		pets, err := s.repo.ListPets(context.Background())

		s.Require().NoError(err)
		s.Require().Len(pets, 3)
		s.Equal(petstore.Pet{ID: 1, Name: "Rex", DateOfBirth: rex}, pets[0])
		s.Equal(petstore.Pet{ID: 2, Name: "Luna", DateOfBirth: luna}, pets[1])
		s.Equal(petstore.Pet{ID: 3, Name: "Rex", DateOfBirth: luna}, pets[2])
	})

	s.Run("Returns an empty, non-nil slice for an empty table", func() {
		s.mock.ExpectQuery(listPetsQuery).
			WillReturnRows(sqlmock.NewRows([]string{"Id", "Name", "DateOfBirth"}))

		pets, err := s.repo.ListPets(context.Background())

		s.Require().NoError(err)
		s.Require().NotNil(pets)
		s.Empty(pets)
	})

	s.Run("Returns error when the database is unreachable", func() {
		dbError := errors.New("connection refused")

		s.mock.ExpectQuery(listPetsQuery).WillReturnError(dbError)

		pets, err := s.repo.ListPets(context.Background())

		s.Require().Error(err)
		s.Require().ErrorIs(err, dbError)
		s.Contains(err.Error(), "failed to list pets")
		s.Nil(pets)
	})
}

func TestPetRepositorySuite(t *testing.T) {
	suite.Run(t, new(PetRepositorySuite))
}
