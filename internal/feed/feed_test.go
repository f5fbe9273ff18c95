package feed

import (
	"errors"
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

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "user_id", "group_id", "text", "image_url", "comments_count"})
}

func TestListAll(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	now := time.Now()
	mock.ExpectQuery(`SELECT`).WillReturnRows(
		postRows().
			AddRow(2, now, "author1", nil, "deuxième post", "", 3).
			AddRow(1, now, "author1", nil, "premier post", "", 0),
	)
	// Preload de l'auteur des posts retournés
	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "username"}).AddRow("author1", "leo"),
	)

	posts, err := ListAll(1)

	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
	assert.Equal(t, int64(3), posts[0].CommentsCount)
	assert.Equal(t, "leo", posts[0].User.Username)
}

func TestListAllEmptyPage(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	// Page au-delà de la dernière : liste vide, pas d'erreur
	mock.ExpectQuery(`SELECT`).WillReturnRows(postRows())

	posts, err := ListAll(3)

	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestListByGroupUnknownSlug(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "title", "slug", "description"}),
	)

	_, _, err := ListByGroup("other-slug", 1)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListByGroup(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "title", "slug", "description"}).
			AddRow(7, "Groupe de test", "test-slug", "description"),
	)
	mock.ExpectQuery(`SELECT posts\..*group_id`).WillReturnRows(postRows())

	g, posts, err := ListByGroup("test-slug", 1)

	assert.NoError(t, err)
	assert.Equal(t, "test-slug", g.Slug)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAuthorUnknownUsername(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "username"}),
	)

	_, _, err := ListByAuthor("nobody", 1)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListFollowedScopesToFollowedAuthors(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	now := time.Now()
	// La requête doit restreindre aux auteurs suivis via la table follows
	mock.ExpectQuery(`SELECT posts\..*follows.*follower_id`).WillReturnRows(
		postRows().AddRow(5, now, "followed-author", nil, "post suivi", "", 0),
	)
	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "username"}).AddRow("followed-author", "anna"),
	)

	posts, err := ListFollowed("viewer1", 1)

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "followed-author", posts[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
