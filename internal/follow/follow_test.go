package follow

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MuhammadMLV/Yatube-Back/internal/database"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db

	return mock, func() {
		database.DB = originalDB
		mockDB.Close()
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	// La relation existe déjà : aucun INSERT ne doit partir
	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "created_at", "follower_id", "author_id"}).
			AddRow(1, time.Now(), "user1", "author1"),
	)

	err := Create("user1", "author1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSelfFollowIsSkipped(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	// Aucune requête attendue : l'auto-follow est ignoré avant la base
	err := Create("user1", "user1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNewFollow(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "created_at", "follower_id", "author_id"}),
	)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow(1),
	)
	mock.ExpectCommit()

	err := Create("user1", "author1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithoutExistingFollow(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	// Aucune ligne supprimée : pas d'erreur pour autant
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := Delete("user1", "author1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExistingFollow(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Delete("user1", "author1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
