package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "quotescrape")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	res, err := Fetch(context.Background(), server.URL, Config{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<html><body>hello</body></html>", res.Body)
}

func TestFetch_SendsHeadersAndCookies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "custom-agent/2.0", r.Header.Get("User-Agent"))

		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "abc123", cookie.Value)

		w.Write([]byte("ok"))
	}))
	defer server.Close()

	cfg := Config{
		Headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "custom-agent/2.0",
		},
		Cookies: map[string]string{"session": "abc123"},
	}

	res, err := Fetch(context.Background(), server.URL, cfg)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Body)
}

func TestFetch_ConnectionRefused(t *testing.T) {
	// Grab a port that nothing is listening on
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	res, err := Fetch(context.Background(), url, Config{})
	require.Error(t, err)
	assert.Nil(t, res)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, url, terr.URL)
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, Config{Timeout: 20 * time.Millisecond})
	require.Error(t, err)

	var terr *TransportError
	assert.ErrorAs(t, err, &terr)
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal error page"))
	}))
	defer server.Close()

	t.Run("raise for status enabled", func(t *testing.T) {
		res, err := Fetch(context.Background(), server.URL, Config{RaiseForStatus: true})
		require.Error(t, err)
		assert.Nil(t, res)

		var serr *StatusError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, http.StatusInternalServerError, serr.StatusCode)
	})

	t.Run("raise for status disabled", func(t *testing.T) {
		res, err := Fetch(context.Background(), server.URL, Config{})
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, "internal error page", res.Body)
	})
}

func TestFetch_NotFoundReturnedTransparently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("nothing here"))
	}))
	defer server.Close()

	res, err := Fetch(context.Background(), server.URL, Config{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "nothing here", res.Body)
}
