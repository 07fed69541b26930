package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

func TestCreateContact(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewContactsRepository(gormDB)

	contact := &models.Contact{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Message: "Interested in your catalog",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "contacts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := repo.CreateContact(context.Background(), contact)
	assert.NoError(t, err)
	assert.Equal(t, models.EnquiryTypeGeneral, contact.EnquiryType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
