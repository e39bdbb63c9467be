package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidItem(t *testing.T) *GeneratedContent {
	t.Helper()
	item, err := NewGeneratedContent(1, NewRunSID(), KindFeed, "Hoje tem!", "Chegou o lanche do dia 🍔", "Peça no link da bio", []string{"#burger"})
	require.NoError(t, err)
	require.NotNil(t, item)
	return item
}

func TestNewGeneratedContent_ValidInput(t *testing.T) {
	item := newValidItem(t)

	assert.NotEmpty(t, item.SID())
	assert.Contains(t, item.SID(), "gen_")
	assert.Contains(t, item.RunSID(), "run_")
	assert.Equal(t, uint(1), item.UserID())
	assert.Equal(t, KindFeed, item.Kind())
	assert.Equal(t, "Hoje tem!", item.Hook())
	assert.Equal(t, []string{"#burger"}, item.Hashtags())
	assert.False(t, item.HasImage())
	assert.False(t, item.CreatedAt().IsZero())
}

func TestNewGeneratedContent_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		userID  uint
		runSID  string
		kind    Kind
		caption string
	}{
		{"zero user", 0, "run_a", KindFeed, "texto"},
		{"empty run", 1, "", KindFeed, "texto"},
		{"bad kind", 1, "run_a", Kind("TIKTOK"), "texto"},
		{"empty caption", 1, "run_a", KindFeed, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item, err := NewGeneratedContent(tc.userID, tc.runSID, tc.kind, "", tc.caption, "", nil)
			assert.Error(t, err)
			assert.Nil(t, item)
		})
	}
}

func TestNewGeneratedContent_NilHashtagsBecomeEmpty(t *testing.T) {
	item, err := NewGeneratedContent(1, NewRunSID(), KindWhatsApp, "", "mensagem", "", nil)

	require.NoError(t, err)
	assert.NotNil(t, item.Hashtags())
	assert.Empty(t, item.Hashtags())
}

func TestGeneratedContent_AttachImage(t *testing.T) {
	item := newValidItem(t)

	item.AttachImage("aGVsbG8=")

	assert.True(t, item.HasImage())
	assert.Equal(t, "aGVsbG8=", item.Image())
}

func TestKind_WantsImage(t *testing.T) {
	assert.True(t, KindFeed.WantsImage())
	assert.True(t, KindStory.WantsImage())
	assert.True(t, KindReels.WantsImage())
	assert.True(t, KindWhatsApp.WantsImage())
	assert.False(t, KindReply.WantsImage())
}

func TestKind_AspectRatio(t *testing.T) {
	assert.Equal(t, "1:1", KindFeed.AspectRatio())
	assert.Equal(t, "1:1", KindWhatsApp.AspectRatio())
	assert.Equal(t, "9:16", KindStory.AspectRatio())
	assert.Equal(t, "9:16", KindReels.AspectRatio())
}

func TestMode_IsValid(t *testing.T) {
	assert.True(t, ModeWeeklyPack.IsValid())
	assert.True(t, ModeDailyOffer.IsValid())
	assert.True(t, ModeCustomerReply.IsValid())
	assert.False(t, Mode("MONTHLY_PACK").IsValid())
}

func TestReconstructGeneratedContent_RequiresID(t *testing.T) {
	item, err := ReconstructGeneratedContent(0, "gen_x", 1, "run_x", KindFeed, "", "texto", "", nil, "", "", "", time.Now())
	assert.Error(t, err)
	assert.Nil(t, item)
}
