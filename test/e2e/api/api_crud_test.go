package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wad01/wad/pkg/wadsdk"
)

// TestUserCRUD creates, lists, updates and deletes a user document.
func TestUserCRUD(t *testing.T) {
	client := wadsdk.NewSDKClient(setupAPIContainer(t))
	ctx := t.Context()

	id, err := client.CreateUser(ctx, wadsdk.CreateUserRequest{
		Username:  "grace",
		Email:     "grace@example.com",
		Password:  "hopper-123",
		Firstname: "Grace",
		Lastname:  "Hopper",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = client.CreateUser(ctx, wadsdk.CreateUserRequest{
		Username: "grace",
		Email:    "other@example.com",
		Password: "x",
	})
	assertStatus(t, err, http.StatusBadRequest, "Duplicate Username!!")

	_, err = client.CreateUser(ctx, wadsdk.CreateUserRequest{Username: "nobody"})
	assertStatus(t, err, http.StatusBadRequest, "Missing mandatory data")

	// The new user can log in with the password it was created with.
	_, err = client.Authenticate(ctx, "grace@example.com", "hopper-123")
	require.NoError(t, err)

	list, err := client.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, list.Total)
	require.EqualValues(t, 1, list.TotalPages)
	require.Len(t, list.Users, 1)
	require.Equal(t, "grace", list.Users[0].Username)
	require.Equal(t, "ACTIVE", list.Users[0].Status)

	require.NoError(t, client.UpdateUser(ctx, id, wadsdk.UpdateUserRequest{Firstname: ptr("Amazing Grace")}))

	list, err = client.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "Amazing Grace", list.Users[0].Firstname)
	require.Equal(t, 10, list.Limit)

	require.NoError(t, client.DeleteUser(ctx, id))

	err = client.DeleteUser(ctx, id)
	require.True(t, wadsdk.IsNotFound(err), "got: %v", err)
}

// TestItemCRUD creates, lists, updates and deletes an item.
func TestItemCRUD(t *testing.T) {
	client := wadsdk.NewSDKClient(setupAPIContainer(t))
	ctx := t.Context()

	created, err := client.CreateItem(ctx, wadsdk.CreateItemRequest{
		ItemName:     "Stapler",
		ItemCategory: "Office",
		ItemPrice:    12.5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "ACTIVE", created.Status)
	require.InDelta(t, 12.5, created.ItemPrice, 0.0001)

	price := wadsdk.Price(9.99)
	require.NoError(t, client.UpdateItem(ctx, created.ID, wadsdk.UpdateItemRequest{ItemPrice: &price}))

	list, err := client.ListItems(ctx, 1, 5)
	require.NoError(t, err)
	require.EqualValues(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	require.InDelta(t, 9.99, list.Items[0].ItemPrice, 0.0001)

	require.NoError(t, client.DeleteItem(ctx, created.ID))

	err = client.UpdateItem(ctx, created.ID, wadsdk.UpdateItemRequest{ItemName: ptr("gone")})
	require.True(t, wadsdk.IsNotFound(err), "got: %v", err)
}
