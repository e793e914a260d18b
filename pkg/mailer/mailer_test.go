package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContactNotification(t *testing.T) {
	var gotAuth string
	var gotBody sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer srv.Close()

	svc := NewServiceWithURL("re_key", "Portfolio <no-reply@example.com>", "me@example.com", srv.URL)
	err := svc.SendContactNotification(context.Background(), "visitor@example.com", "hello there", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_key", gotAuth)
	assert.Equal(t, "Portfolio <no-reply@example.com>", gotBody.From)
	assert.Equal(t, []string{"me@example.com"}, gotBody.To)
	assert.Equal(t, "visitor@example.com", gotBody.ReplyTo)
	assert.Contains(t, gotBody.Text, "hello there")
	assert.Contains(t, gotBody.HTML, "hello there")
}

func TestSendContactNotificationEscapesHTML(t *testing.T) {
	var gotBody sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	raw := `<script>alert("x") & 'y'</script>`
	svc := NewServiceWithURL("re_key", "a@b.com", "c@d.com", srv.URL)
	require.NoError(t, svc.SendContactNotification(context.Background(), "visitor@example.com", raw, time.Now()))

	assert.NotContains(t, gotBody.HTML, "<script>", "user text must not inject markup")
	assert.Contains(t, gotBody.HTML, "&lt;script&gt;")
	assert.Contains(t, gotBody.HTML, "&amp;")
	assert.Contains(t, gotBody.HTML, "&#34;")
	assert.Contains(t, gotBody.HTML, "&#39;")
	assert.Contains(t, gotBody.Text, raw, "text part carries the message verbatim")
}

func TestSendContactNotificationNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewServiceWithURL("bad", "a@b.com", "c@d.com", srv.URL)
	err := svc.SendContactNotification(context.Background(), "v@example.com", "hi", time.Now())
	assert.Error(t, err)
}

func TestSendContactNotificationUnreachableIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := NewServiceWithURL("key", "a@b.com", "c@d.com", srv.URL)
	err := svc.SendContactNotification(context.Background(), "v@example.com", "hi", time.Now())
	assert.Error(t, err)
}
