package figma

import (
	"Shotshelf/config"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrCreateFile Figma 返回非 2xx
var ErrCreateFile = errors.New("failed to create Figma file")

type Client struct {
	httpClient  *http.Client
	baseURL     string
	fileURLBase string
}

func NewClient(cfg *config.FigmaConfig) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		fileURLBase: strings.TrimRight(cfg.FileURLBase, "/"),
	}
}

// CreateFile 用调用方的 token 新建一个空文件，返回 file key
func (c *Client) CreateFile(ctx context.Context, accessToken, name string) (string, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/files", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Figma-Token", accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s", ErrCreateFile, string(respBody))
	}

	key := gjson.GetBytes(respBody, "key").String()
	if key == "" {
		return "", fmt.Errorf("%w: response has no file key", ErrCreateFile)
	}
	return key, nil
}

// FileURL 浏览器打开文件的地址
func (c *Client) FileURL(fileKey string) string {
	return c.fileURLBase + "/" + fileKey
}
