package mongo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/internal/api/store/drivers/mongo"
)

// startMongo runs a throwaway mongod and returns a store on a fresh
// database. Skipped with -short or when no container runtime is available.
func startMongo(t *testing.T) *mongo.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForListeningPort("27017/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	s, err := mongo.NewStore(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "wad_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(ctx))
	return s
}

func ptr[T any](v T) *T { return &v }

func TestMongoStore(t *testing.T) {
	s := startMongo(t)
	ctx := context.Background()
	users := s.Users()

	id, err := users.Create(ctx, domain.NewUser{
		Username: "ada", Email: "ada@example.com", Firstname: "Ada", Lastname: "L",
		PasswordHash: "$2a$10$x", Status: domain.StatusActive,
	}, time.Now())
	require.NoError(t, err)
	require.Len(t, id, 24)

	t.Run("migrate twice", func(t *testing.T) {
		require.NoError(t, s.Migrate(ctx))
		require.NoError(t, s.Ping(ctx))
	})

	t.Run("profile projection", func(t *testing.T) {
		p, err := users.FindProfile(ctx, "ada@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.Profile{ID: id, Firstname: "Ada", Lastname: "L", Email: "ada@example.com"}, p)

		_, err = users.FindProfile(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update profile and image", func(t *testing.T) {
		require.NoError(t, users.UpdateProfile(ctx, "ada@example.com", domain.ProfileUpdate{
			Lastname: ptr("Lovelace"), UpdatedAt: time.Now(),
		}))
		require.NoError(t, users.SetProfileImage(ctx, "ada@example.com", ptr("/profile-images/x.png"), time.Now()))

		p, err := users.FindProfile(ctx, "ada@example.com")
		require.NoError(t, err)
		require.Equal(t, "Ada", p.Firstname)
		require.Equal(t, "Lovelace", p.Lastname)
		require.Equal(t, ptr("/profile-images/x.png"), p.ProfileImage)

		require.NoError(t, users.SetProfileImage(ctx, "ada@example.com", nil, time.Now()))
		p, err = users.FindProfile(ctx, "ada@example.com")
		require.NoError(t, err)
		require.Nil(t, p.ProfileImage)

		err = users.UpdateProfile(ctx, "nobody@example.com", domain.ProfileUpdate{UpdatedAt: time.Now()})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicates", func(t *testing.T) {
		var dup *store.DuplicateError
		_, err := users.Create(ctx, domain.NewUser{Username: "ada", Email: "x@example.com"}, time.Now())
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "username", dup.Field)

		_, err = users.Create(ctx, domain.NewUser{Username: "x", Email: "ada@example.com"}, time.Now())
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "email", dup.Field)
	})

	t.Run("list hides password", func(t *testing.T) {
		list, err := users.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Empty(t, list[0].PasswordHash)
	})

	t.Run("update and delete by id", func(t *testing.T) {
		require.NoError(t, users.UpdateByID(ctx, id, domain.UserUpdate{Status: ptr("INACTIVE")}))
		require.ErrorIs(t, users.UpdateByID(ctx, "000000000000000000000000", domain.UserUpdate{Status: ptr("X")}), store.ErrNotFound)
		require.ErrorIs(t, users.UpdateByID(ctx, "not-hex", domain.UserUpdate{}), store.ErrInvalidID)

		require.NoError(t, users.UpsertByEmail(ctx, domain.NewUser{
			Username: "testuser", Email: "test@example.com", PasswordHash: "h", Status: domain.StatusActive,
		}, time.Now()))
		n, err := users.Count(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		require.NoError(t, users.DeleteByID(ctx, id))
		require.ErrorIs(t, users.DeleteByID(ctx, id), store.ErrNotFound)
	})

	t.Run("items", func(t *testing.T) {
		items := s.Items()
		itemID, err := items.Create(ctx, domain.Item{Name: "Pen", Category: "Office", Price: 2.5, Status: domain.StatusActive})
		require.NoError(t, err)

		require.NoError(t, items.UpdateByID(ctx, itemID, domain.ItemUpdate{Price: ptr(3.0)}))
		list, err := items.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, domain.Item{ID: itemID, Name: "Pen", Category: "Office", Price: 3, Status: domain.StatusActive}, list[0])

		require.NoError(t, items.DeleteByID(ctx, itemID))
		require.ErrorIs(t, items.DeleteByID(ctx, itemID), store.ErrNotFound)
	})
}
