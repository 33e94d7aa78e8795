package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"legaldata-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiscord(t *testing.T, h http.HandlerFunc) IDiscord {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	d, err := NewWithConfig(log.NewNop(), &DiscordWebhook{ID: "123", Token: "abc"}, Config{
		BaseURL:    srv.URL,
		Timeout:    time.Second,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	_, err := New(log.NewNop(), nil)
	assert.ErrorIs(t, err, ErrWebhookRequired)

	_, err = NewDiscordWebhook("123", "")
	assert.ErrorIs(t, err, ErrWebhookRequired)

	webhook, err := NewDiscordWebhook("123", "abc")
	require.NoError(t, err)
	d, err := New(log.NewNop(), webhook)
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/123/abc", d.GetWebhookURL())
}

func TestSendSuccess(t *testing.T) {
	var got WebhookPayload
	d := newTestDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/123/abc", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := d.SendSuccess(context.Background(), "README generated", "ok", []EmbedField{{Name: "Cases", Value: "1,234", Inline: true}})
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, DefaultUsername, got.Username)
	assert.Equal(t, "README generated", got.Embeds[0].Title)
	assert.Equal(t, ColorSuccess, got.Embeds[0].Color)
	assert.Equal(t, "1,234", got.Embeds[0].Fields[0].Value)
	assert.NotEmpty(t, got.Embeds[0].Timestamp)
}

func TestSendError(t *testing.T) {
	var got WebhookPayload
	d := newTestDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := d.SendError(context.Background(), "README failed", "write", errors.New("permission denied"))
	require.NoError(t, err)
	assert.Equal(t, ColorError, got.Embeds[0].Color)
	assert.Equal(t, "permission denied", got.Embeds[0].Fields[0].Value)
}

func TestSendEmbedUnexpectedStatus(t *testing.T) {
	d := newTestDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := d.SendWarning(context.Background(), "degraded", "cases fetch failed", nil)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("é", 20)
	out := truncate(long, 10)
	assert.Equal(t, 10, len([]rune(out)))
	assert.True(t, strings.HasSuffix(out, "..."))
}
