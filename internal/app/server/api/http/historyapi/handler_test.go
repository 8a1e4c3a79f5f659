package historyapi

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"qure/internal/domain/history"
	"qure/internal/domain/premium"
	"qure/internal/domain/qr"
	"qure/internal/infrastructure/storage/memory"
)

func newTestHandler(premiumEnabled bool) (*Handler, *history.Service) {
	log := slog.Default()
	service := history.NewService(memory.New(), log)
	h := NewHandler(service, premium.NewGate(premiumEnabled), log, huma.Middlewares{})
	return h, service
}

func TestGetEmptyHistory(t *testing.T) {
	h, _ := newTestHandler(false)

	out, err := h.get(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, out.Body.Codes)
	assert.Nil(t, out.Body.PrimarySlot)
	assert.Nil(t, out.Body.SecondarySlot)
}

func TestAssignPrimarySlot(t *testing.T) {
	h, service := newTestHandler(false)
	ctx := context.Background()

	code := qr.NewLink(qr.LinkInput{URL: "example.com"})
	_, err := service.Upsert(ctx, code)
	require.NoError(t, err)

	out, err := h.assignSlot(ctx, &assignSlotInput{
		Slot: "primary",
		Body: assignSlotRequest{ID: &code.ID},
	})

	require.NoError(t, err)
	require.NotNil(t, out.Body.PrimarySlot)
	assert.Equal(t, code.ID, *out.Body.PrimarySlot)
}

func TestAssignSlotUnknownID(t *testing.T) {
	h, _ := newTestHandler(false)

	missing := "does-not-exist"
	_, err := h.assignSlot(context.Background(), &assignSlotInput{
		Slot: "primary",
		Body: assignSlotRequest{ID: &missing},
	})

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestSecondarySlotRequiresPremium(t *testing.T) {
	h, service := newTestHandler(false)
	ctx := context.Background()

	code := qr.NewText(qr.TextInput{Content: "pinned"})
	_, err := service.Upsert(ctx, code)
	require.NoError(t, err)

	_, err = h.assignSlot(ctx, &assignSlotInput{
		Slot: "secondary",
		Body: assignSlotRequest{ID: &code.ID},
	})

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 403, statusErr.GetStatus())
}

func TestSecondarySlotClearIsAlwaysAllowed(t *testing.T) {
	// Clearing a slot is not a premium feature.
	h, _ := newTestHandler(false)

	out, err := h.assignSlot(context.Background(), &assignSlotInput{
		Slot: "secondary",
		Body: assignSlotRequest{ID: nil},
	})

	require.NoError(t, err)
	assert.Nil(t, out.Body.SecondarySlot)
}

func TestSecondarySlotWithPremium(t *testing.T) {
	h, service := newTestHandler(true)
	ctx := context.Background()

	code := qr.NewText(qr.TextInput{Content: "pinned"})
	_, err := service.Upsert(ctx, code)
	require.NoError(t, err)

	out, err := h.assignSlot(ctx, &assignSlotInput{
		Slot: "secondary",
		Body: assignSlotRequest{ID: &code.ID},
	})

	require.NoError(t, err)
	require.NotNil(t, out.Body.SecondarySlot)
	assert.Equal(t, code.ID, *out.Body.SecondarySlot)
}
