package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImageKitService(client *http.Client, uploadURL string) *ImageKitService {
	return &ImageKitService{
		client:     client,
		publicKey:  "public_test",
		privateKey: "private_test",
		uploadURL:  uploadURL,
	}
}

func TestAuthParams(t *testing.T) {
	svc := testImageKitService(http.DefaultClient, imageKitUploadURL)

	params := svc.AuthParams()
	assert.NotEmpty(t, params.Token)
	assert.Greater(t, params.Expire, time.Now().Unix())

	mac := hmac.New(sha1.New, []byte("private_test"))
	mac.Write([]byte(params.Token + strconv.FormatInt(params.Expire, 10)))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), params.Signature)

	// Every call issues a fresh token.
	assert.NotEqual(t, params.Token, svc.AuthParams().Token)
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "ring.jpg", r.FormValue("fileName"))
		assert.Equal(t, FolderProducts, r.FormValue("folder"))
		assert.Equal(t, "public_test", r.FormValue("publicKey"))
		assert.NotEmpty(t, r.FormValue("token"))
		assert.NotEmpty(t, r.FormValue("signature"))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example.com/products/ring.jpg"}`))
	}))
	defer srv.Close()

	svc := testImageKitService(srv.Client(), srv.URL)
	url, err := svc.Upload(context.Background(), "ring.jpg", FolderProducts, strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/ring.jpg", url)
}

func TestUploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Your account cannot be authenticated."}`))
	}))
	defer srv.Close()

	svc := testImageKitService(srv.Client(), srv.URL)
	_, err := svc.Upload(context.Background(), "ring.jpg", FolderProducts, strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be authenticated")
}
