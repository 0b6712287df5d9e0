package netx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadToPresignedURL_OK(t *testing.T) {
	var gotMethod, gotCT string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	err := UploadToPresignedURL(context.Background(), ts.Client(), ts.URL+"/receipts/e1/a.png?X-Amz-Signature=x", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "image/png", gotCT)
	assert.Equal(t, []byte("png"), gotBody)
}

func TestUploadToPresignedURL_DefaultContentType(t *testing.T) {
	var gotCT string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
	}))
	defer ts.Close()

	require.NoError(t, UploadToPresignedURL(context.Background(), nil, ts.URL, []byte("x"), ""))
	assert.Equal(t, "application/octet-stream", gotCT)
}

func TestUploadToPresignedURL_Non200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("SignatureDoesNotMatch"))
	}))
	defer ts.Close()

	err := UploadToPresignedURL(context.Background(), ts.Client(), ts.URL, []byte("x"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload failed: 403")
	assert.Contains(t, err.Error(), "SignatureDoesNotMatch")
}

func TestUploadToPresignedURL_BadURL(t *testing.T) {
	err := UploadToPresignedURL(context.Background(), nil, "://bad", []byte("x"), "")
	require.Error(t, err)
}
