package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mvdbroek/go-jewelry/app/configs"
)

const imageKitUploadURL = "https://upload.imagekit.io/api/v1/files/upload"

// Upload folders used by the storefront.
const (
	FolderProducts        = "/products"
	FolderAttract         = "/attract"
	FolderSpecialEditions = "/specialEditions"
	FolderValuations      = "/valuations"
)

// UploadAuthParams authorize one direct-to-CDN upload. The same params
// are served to browser clients by the standalone /auth endpoint and
// consumed by server-side uploads.
type UploadAuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

type ImageKitService struct {
	client     *http.Client
	publicKey  string
	privateKey string
	uploadURL  string
}

func NewImageKitService() *ImageKitService {
	return &ImageKitService{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		publicKey:  configs.LoadENV.ImageKitPublicKey,
		privateKey: configs.LoadENV.ImageKitPrivateKey,
		uploadURL:  imageKitUploadURL,
	}
}

// AuthParams issues a fresh set of signed upload credentials: a random
// token, a 30-minute expiry and an HMAC-SHA1 signature of token+expire
// under the private key, per the CDN's signing scheme.
func (s *ImageKitService) AuthParams() UploadAuthParams {
	token := uuid.New().String()
	expire := time.Now().Add(30 * time.Minute).Unix()
	return UploadAuthParams{
		Token:     token,
		Expire:    expire,
		Signature: s.sign(token, expire),
	}
}

func (s *ImageKitService) sign(token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(s.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

type uploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Upload pushes one file to the CDN and returns its public URL. Files
// are uploaded one at a time; callers loop over multi-file forms.
func (s *ImageKitService) Upload(ctx context.Context, fileName, folder string, file io.Reader) (string, error) {
	auth := s.AuthParams()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload file: %w", err)
	}

	fields := map[string]string{
		"fileName":  fileName,
		"folder":    folder,
		"publicKey": s.publicKey,
		"token":     auth.Token,
		"expire":    strconv.FormatInt(auth.Expire, 10),
		"signature": auth.Signature,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return "", fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || parsed.URL == "" {
		if parsed.Message != "" {
			return "", fmt.Errorf("image upload rejected: %s", parsed.Message)
		}
		return "", fmt.Errorf("image upload failed with status %d", resp.StatusCode)
	}
	return parsed.URL, nil
}
