package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
)

// uploadResponse is the subset of the cloud upload reply we read.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CloudUploadFacade uploads images to an unsigned-preset cloud image endpoint.
type CloudUploadFacade struct {
	client *http.Client
	url    string
	preset string
}

// NewCloudUploadFacade creates a new facade. client may be nil.
func NewCloudUploadFacade(client *http.Client, url, preset string) *CloudUploadFacade {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &CloudUploadFacade{client: client, url: url, preset: preset}
}

// Upload posts data as a multipart form and returns the secure URL of the stored image.
func (f *CloudUploadFacade) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if filename == "" {
		filename = "upload"
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := form.WriteField("upload_preset", f.preset); err != nil {
		return "", err
	}
	if err := form.WriteField("folder", folder); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call cloud upload", "folder", folder, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Errorw("failed to decode cloud upload response", "status", resp.StatusCode, "error", err)
		return "", fmt.Errorf("cloud upload: status %d: %w", resp.StatusCode, err)
	}

	if out.Error != nil {
		logger.Log.Errorw("cloud upload rejected", "status", resp.StatusCode, "message", out.Error.Message)
		return "", errors.New(out.Error.Message)
	}
	if resp.StatusCode >= http.StatusBadRequest || out.SecureURL == "" {
		logger.Log.Errorw("cloud upload returned no url", "status", resp.StatusCode)
		return "", fmt.Errorf("cloud upload: status %d", resp.StatusCode)
	}

	logger.Log.Infow("image uploaded", "folder", folder, "url", out.SecureURL)
	return out.SecureURL, nil
}
