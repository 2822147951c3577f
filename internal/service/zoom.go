package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// ZoomService resolves the download URL for the main recording file of a
// completed meeting. Each call fetches a fresh server-to-server OAuth token;
// tokens are not cached across requests.
type ZoomService struct {
	client       *resty.Client
	clientID     string
	clientSecret string
	accountID    string
	oauthURL     string
	apiURL       string
}

// ZoomConfig holds the server-to-server OAuth app credentials.
type ZoomConfig struct {
	ClientID     string
	ClientSecret string
	AccountID    string
	OAuthURL     string
	APIURL       string
}

// NewZoomService creates a new Zoom recordings client.
func NewZoomService(cfg *ZoomConfig) *ZoomService {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	oauthURL := cfg.OAuthURL
	if oauthURL == "" {
		oauthURL = "https://zoom.us"
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = "https://api.zoom.us"
	}

	return &ZoomService{
		client:       client,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		accountID:    cfg.AccountID,
		oauthURL:     oauthURL,
		apiURL:       apiURL,
	}
}

type zoomTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// RecordingFile is one file of a meeting recording. Duration is a pointer so
// a file that does not report one can be told apart from a zero-length file.
type RecordingFile struct {
	Duration    *int   `json:"duration,omitempty"`
	FileSize    int64  `json:"file_size"`
	DownloadURL string `json:"download_url"`
}

type recordingsResponse struct {
	RecordingFiles []RecordingFile `json:"recording_files"`
}

// accessToken fetches an account_credentials OAuth token.
func (s *ZoomService) accessToken(ctx context.Context) (string, error) {
	var result zoomTokenResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBasicAuth(s.clientID, s.clientSecret).
		SetQueryParams(map[string]string{
			"grant_type": "account_credentials",
			"account_id": s.accountID,
		}).
		SetResult(&result).
		Post(s.oauthURL + "/oauth/token")

	if err != nil {
		return "", domain.NewUpstreamError("zoom oauth", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", domain.NewUpstreamError("zoom oauth",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String()))
	}
	if result.AccessToken == "" {
		return "", domain.NewUpstreamError("zoom oauth",
			fmt.Errorf("no access_token in response"))
	}

	return result.AccessToken, nil
}

// LargestRecordingURL returns the download URL of the meeting's main
// recording file with an access token appended as a query parameter.
func (s *ZoomService) LargestRecordingURL(ctx context.Context, meetingID string) (string, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return "", err
	}

	var result recordingsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&result).
		Get(fmt.Sprintf("%s/v2/meetings/%s/recordings", s.apiURL, meetingID))

	if err != nil {
		return "", domain.NewUpstreamError("zoom recordings", err)
	}
	if resp.StatusCode() != 200 {
		return "", domain.NewUpstreamError("zoom recordings",
			fmt.Errorf("failed to fetch recordings: %d, %s", resp.StatusCode(), resp.String()))
	}
	if len(result.RecordingFiles) == 0 {
		return "", domain.NewNotFoundError("No recording files found for this meeting")
	}

	file := selectRecordingFile(result.RecordingFiles)
	return fmt.Sprintf("%s?access_token=%s", file.DownloadURL, token), nil
}

// selectRecordingFile picks the largest file: by duration when every file
// reports one, otherwise by file size.
func selectRecordingFile(files []RecordingFile) RecordingFile {
	allHaveDuration := true
	for _, f := range files {
		if f.Duration == nil {
			allHaveDuration = false
			break
		}
	}

	best := files[0]
	for _, f := range files[1:] {
		if allHaveDuration {
			if *f.Duration > *best.Duration {
				best = f
			}
		} else if f.FileSize > best.FileSize {
			best = f
		}
	}
	return best
}
