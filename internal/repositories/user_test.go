package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/felirami/neetme/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		name TEXT,
		bio TEXT,
		about_me TEXT,
		avatar TEXT,
		image TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id),
		provider VARCHAR(32) NOT NULL,
		provider_account_id VARCHAR(128) NOT NULL,
		type VARCHAR(32) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (provider, provider_account_id)
	);

	CREATE TABLE IF NOT EXISTS links (
		link_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id),
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		icon TEXT,
		position INTEGER NOT NULL DEFAULT 0,
		background_color TEXT,
		text_color TEXT,
		icon_color TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

const testAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func TestUserWriteRepository_SaveWithAccount(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user, err := repo.SaveWithAccount(ctx, "temp_abc123", "0x5aAe...eAed", models.ProviderWallet, testAddress)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "temp_abc123", user.Username)
	assert.NotNil(t, user.Name)
	assert.Equal(t, "0x5aAe...eAed", *user.Name)

	var account struct {
		Provider          string `db:"provider"`
		ProviderAccountID string `db:"provider_account_id"`
	}
	err = db.Get(&account, "SELECT provider, provider_account_id FROM accounts WHERE user_id=$1", user.UserID)
	assert.NoError(t, err)
	assert.Equal(t, models.ProviderWallet, account.Provider)
	assert.Equal(t, testAddress, account.ProviderAccountID)
}

func TestUserWriteRepository_SaveWithAccount_DuplicateAddress(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	_, err := repo.SaveWithAccount(ctx, "temp_one", "short", models.ProviderWallet, testAddress)
	assert.NoError(t, err)

	_, err = repo.SaveWithAccount(ctx, "temp_two", "short", models.ProviderWallet, testAddress)
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestUserReadRepository_GetByAccount(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.SaveWithAccount(ctx, "temp_xyz", "short", models.ProviderWallet, testAddress)
	assert.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByAccount(ctx, models.ProviderWallet, testAddress)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, created.UserID, user.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByAccount(ctx, models.ProviderWallet, "0x0000000000000000000000000000000000000000")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("WrongProvider", func(t *testing.T) {
		user, err := readRepo.GetByAccount(ctx, "github", testAddress)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_UpdateUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	alice, err := writeRepo.SaveWithAccount(ctx, "temp_alice", "a", models.ProviderWallet, testAddress)
	assert.NoError(t, err)
	_, err = writeRepo.SaveWithAccount(ctx, "bob-claimed", "b", models.ProviderWallet, "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		updated, err := writeRepo.UpdateUsername(ctx, alice.UserID, "alice-rules")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "alice-rules", updated.Username)

		got, err := readRepo.GetByUsername(ctx, "alice-rules")
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("Taken", func(t *testing.T) {
		_, err := writeRepo.UpdateUsername(ctx, alice.UserID, "bob-claimed")
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		updated, err := writeRepo.UpdateUsername(ctx, uuid.New(), "whoever")
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestUserWriteRepository_UpdateProfile(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user, err := writeRepo.SaveWithAccount(ctx, "temp_carol", "c", models.ProviderWallet, testAddress)
	assert.NoError(t, err)

	bio := "gm"
	updated, err := writeRepo.UpdateProfile(ctx, user.UserID, models.ProfilePatch{Bio: &bio})
	assert.NoError(t, err)
	assert.NotNil(t, updated.Bio)
	assert.Equal(t, "gm", *updated.Bio)
	// Untouched fields keep their values.
	assert.NotNil(t, updated.Name)
	assert.Equal(t, "c", *updated.Name)

	// A pointer to "" clears the field without touching others.
	empty := ""
	updated, err = writeRepo.UpdateProfile(ctx, user.UserID, models.ProfilePatch{Name: &empty})
	assert.NoError(t, err)
	assert.Equal(t, "", *updated.Name)
	assert.Equal(t, "gm", *updated.Bio)
}

func TestUserWriteRepository_UpdateAvatar(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user, err := writeRepo.SaveWithAccount(ctx, "temp_dave", "d", models.ProviderWallet, testAddress)
	assert.NoError(t, err)

	err = writeRepo.UpdateAvatar(ctx, user.UserID, "data:image/png;base64,AAAA")
	assert.NoError(t, err)

	got, err := readRepo.GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got.Avatar)
	assert.Equal(t, "data:image/png;base64,AAAA", *got.Avatar)
}
