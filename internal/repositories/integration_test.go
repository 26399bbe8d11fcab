package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-listings/internal/migrations"
	"github.com/sbilibin2017/job-listings/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Postgres container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Up(ctx, db.DB))
	return db
}

func TestJobRepository_Postgres(t *testing.T) {
	db := setupPostgresContainer(t)
	repo := NewJobRepository(db, nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleJob())
	require.NoError(t, err)
	assert.True(t, models.IsValidID(created.ID), "store must assign a 24-hex id, got %q", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, created.ID, jobs[0].ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, sampleJob(), got.Job)

	changed := got.Job
	changed.Title = "Updated title"
	updated, err := repo.Replace(ctx, created.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, sampleJob().Company, updated.Company)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), models.ErrNotFound)
}

func TestUserRepository_Postgres_UniqueUsername(t *testing.T) {
	db := setupPostgresContainer(t)
	repo := NewUserRepository(db, nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleUser())
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleUser())
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	other := sampleUser()
	other.Username = "jane_doe"
	second, err := repo.Create(ctx, other)
	require.NoError(t, err)

	second.User.Username = first.Username
	_, err = repo.Replace(ctx, second.ID, second.User)
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
}
