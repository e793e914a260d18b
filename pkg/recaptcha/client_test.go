package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySendsFormFields(t *testing.T) {
	var gotSecret, gotResponse string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"score":0.9}`))
	}))
	defer srv.Close()

	client := NewClientWithURL("sekrit", srv.URL)
	result, err := client.Verify(context.Background(), "the-token")
	require.NoError(t, err)

	assert.Equal(t, "sekrit", gotSecret)
	assert.Equal(t, "the-token", gotResponse)
	assert.True(t, result.Passed)
	require.NotNil(t, result.Score)
	assert.Equal(t, 0.9, *result.Score)
}

func TestVerifyRejectedWithErrorCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response","browser-error"],"hostname":"example.com"}`))
	}))
	defer srv.Close()

	result, err := NewClientWithURL("sekrit", srv.URL).Verify(context.Background(), "bad")
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"invalid-input-response", "browser-error"}, result.ErrorCodes)
	assert.Equal(t, "example.com", result.Hostname)
}

func TestVerifyNoScoreField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	result, err := NewClientWithURL("sekrit", srv.URL).Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Nil(t, result.Score)
}

func TestVerifyNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClientWithURL("sekrit", srv.URL).Verify(context.Background(), "tok")
	assert.Error(t, err)
}

func TestVerifyUnreachableIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClientWithURL("sekrit", srv.URL).Verify(context.Background(), "tok")
	assert.Error(t, err)
}

func TestVerifyInvalidJSONIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClientWithURL("sekrit", srv.URL).Verify(context.Background(), "tok")
	assert.Error(t, err)
}
