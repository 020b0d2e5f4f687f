package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/session"
	"github.com/desteklab/concierge/test/util"
)

func TestStateStoreRoundTrip(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := session.NewStateStore(entClient, time.Hour)

	// Unknown session loads as a fresh default.
	state, err := store.Load(ctx, "conv_fresh")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationNone, state.Verification.Status)
	assert.Empty(t, state.ExtractedSlots)

	state.ExtractedSlots[models.FieldOrderNumber] = "SIP-12345"
	state.Verification.Status = models.VerificationPending
	state.Verification.Attempts = 2
	entries := []models.ChatLogEntry{
		{Role: "user", Text: "SIP-12345 nerede"},
		{Role: "assistant", Text: "Doğrulama gerekli", MessageType: "ORDER_STATUS"},
	}
	require.NoError(t, store.Persist(ctx, "conv_fresh", state, entries))

	loaded, err := store.Load(ctx, "conv_fresh")
	require.NoError(t, err)
	assert.Equal(t, "SIP-12345", loaded.ExtractedSlots[models.FieldOrderNumber])
	assert.Equal(t, models.VerificationPending, loaded.Verification.Status)
	assert.Equal(t, 2, loaded.Verification.Attempts)

	history, err := store.History(ctx, "conv_fresh", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, "ORDER_STATUS", history[1].MessageType)
}

func TestStateStoreLoadReturnsIndependentCopies(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := session.NewStateStore(entClient, time.Hour)

	state, err := store.Load(ctx, "conv_copy")
	require.NoError(t, err)
	state.ExtractedSlots["phone"] = "+905551234567"

	other, err := store.Load(ctx, "conv_copy")
	require.NoError(t, err)
	assert.Empty(t, other.ExtractedSlots, "mutation on one copy must not leak into another")
}

func TestStateStoreExpiredStateTreatedAsAbsent(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	shortLived := session.NewStateStore(entClient, -time.Minute)
	state := models.NewTurnState()
	state.ExtractedSlots["order_number"] = "SIP-1"
	require.NoError(t, shortLived.Persist(ctx, "conv_old", state, nil))

	loaded, err := shortLived.Load(ctx, "conv_old")
	require.NoError(t, err)
	assert.Empty(t, loaded.ExtractedSlots)

	deleted, err := shortLived.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestMapperResolvesChannelIdentity(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	mapper := session.NewMapper(entClient)

	req := &models.TurnRequest{
		Channel:       models.ChannelWhatsApp,
		BusinessID:    "biz-1",
		ChannelUserID: "+905551234567",
	}
	first, err := mapper.Resolve(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, first, "conv_")

	again, err := mapper.Resolve(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// Same user on another channel is a different session.
	other, err := mapper.Resolve(ctx, &models.TurnRequest{
		Channel:       models.ChannelChat,
		BusinessID:    "biz-1",
		ChannelUserID: "+905551234567",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestMapperRejectsUnknownExplicitSessionID(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	mapper := session.NewMapper(entClient)

	_, err := mapper.Resolve(context.Background(), &models.TurnRequest{
		Channel:    models.ChannelChat,
		BusinessID: "biz-1",
		SessionID:  "conv_forged",
	})
	assert.Error(t, err)
}

func TestMapperAcceptsKnownExplicitSessionID(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	mapper := session.NewMapper(entClient)

	created, err := mapper.Resolve(ctx, &models.TurnRequest{
		Channel:       models.ChannelChat,
		BusinessID:    "biz-1",
		ChannelUserID: "visitor-1",
	})
	require.NoError(t, err)

	pinned, err := mapper.Resolve(ctx, &models.TurnRequest{
		Channel:    models.ChannelChat,
		BusinessID: "biz-1",
		SessionID:  created,
	})
	require.NoError(t, err)
	assert.Equal(t, created, pinned)
}

func TestLockServiceLifecycle(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	locks := session.NewLockService(entClient)

	active, err := locks.Active(ctx, "conv_1")
	require.NoError(t, err)
	assert.Nil(t, active)

	require.NoError(t, locks.LockSession(ctx, "conv_1", session.LockEnumeration, time.Hour))

	active, err = locks.Active(ctx, "conv_1")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.LockEnumeration, active.Reason)
	assert.True(t, active.Until.After(time.Now()))
}

func TestLockServiceIgnoresExpiredLocks(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	locks := session.NewLockService(entClient)

	require.NoError(t, locks.LockSession(ctx, "conv_2", session.LockPIIRisk, -time.Minute))

	active, err := locks.Active(ctx, "conv_2")
	require.NoError(t, err)
	assert.Nil(t, active)

	deleted, err := locks.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}
