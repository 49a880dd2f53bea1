package release

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"nvdl/pkg/channel"
)

const (
	// DefaultBaseURL serves the per-channel metadata documents.
	DefaultBaseURL = "https://nvda.zip"

	// BaseURLEnv overrides DefaultBaseURL when set.
	BaseURLEnv = "NVDL_BASE_URL"
)

// Metadata describes the latest build published for a channel.
type Metadata struct {
	URL     string `json:"url"`
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

// Resolver looks up the latest build for a channel against the metadata API.
type Resolver struct {
	BaseURL string
	Client  *http.Client
}

// NewResolver returns a Resolver against the default metadata API, honoring
// the NVDL_BASE_URL override.
func NewResolver(client *http.Client) *Resolver {
	base := os.Getenv(BaseURLEnv)
	if base == "" {
		base = DefaultBaseURL
	}
	return &Resolver{BaseURL: base, Client: client}
}

// Resolve fetches the metadata document for ch and returns the download
// details it describes.
func (r *Resolver) Resolve(ctx context.Context, ch channel.Channel) (*Metadata, error) {
	url := strings.TrimSuffix(r.BaseURL, "/") + "/" + ch.Endpoint()
	slog.Debug("fetching release metadata", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var md Metadata
	if err := json.NewDecoder(resp.Body).Decode(&md); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	if md.URL == "" {
		return nil, &DecodeError{URL: url, Err: errors.New("metadata has no download url")}
	}

	slog.Debug("resolved release", "channel", ch.String(), "version", md.Version, "download_url", md.URL)
	return &md, nil
}
