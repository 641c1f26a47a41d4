package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kargotakip/freightline/internal/models"
)

// TestStore_AddMessage_AgainstRealRedis exercises the store against an
// actual Redis container instead of miniredis, running the pending-
// notification and redsync lock paths against a real server as well.
// Skipped in short mode since it needs Docker.
func TestStore_AddMessage_AgainstRealRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skipping, could not start redis container: %v", err)
	}
	defer func() { _ = container.Terminate(ctx) }()

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	s, err := New(fmt.Sprintf("%s:%s", host, port.Port()), "it-")
	require.NoError(t, err)
	defer s.Close()

	err = s.AddMessage(ctx, "driver-1", models.ConversationMessage{
		Role: models.RoleUser, Content: "ankaradan istanbula tir ariyorum", At: time.Now(),
	}, map[string]interface{}{"last_origin": "ankara", "last_destination": "istanbul"})
	require.NoError(t, err)

	conv, err := s.GetConversation(ctx, "driver-1")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	require.Equal(t, "ankara", conv.Context.LastOrigin)

	pn := models.PendingNotification{UserID: "driver-1", OriginAscii: "ankara", DestinationAscii: "istanbul", TTLExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, s.UpsertPendingNotification(ctx, pn))

	locked := false
	err = s.WithNotificationLock(ctx, pn.RouteKey(), func() error {
		locked = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, locked)

	matches, err := s.GetPendingNotificationsByRoute(ctx, "ankara", "istanbul")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "driver-1", matches[0].UserID)
}
