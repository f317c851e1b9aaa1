package metalimits

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/smartzap/server/internal/logger"
	"golang.org/x/time/rate"
)

const (
	defaultGraphBaseURL = "https://graph.facebook.com/v21.0"
	fetchTimeout        = 10 * time.Second
)

// shared HTTP client for Graph API calls
var graphHTTPClient = &http.Client{
	Timeout: fetchTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Graph API calls (10 requests/second with burst capacity of 5)
var graphRateLimiter = rate.NewLimiter(10, 5)

type phoneNumberResponse struct {
	Throughput *struct {
		Level string `json:"level"`
	} `json:"throughput"`
	QualityScore *struct {
		Score string `json:"score"`
	} `json:"quality_score"`
}

type messagingLimitResponse struct {
	MessagingLimit string `json:"whatsapp_business_manager_messaging_limit"`
}

type FetcherConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// retrieves account limit snapshots from the Graph API
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	now        func() time.Time
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGraphBaseURL
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = graphHTTPClient
	}

	return &Fetcher{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		limiter:    graphRateLimiter,
		now:        time.Now,
	}
}

// fetches the current tier, throughput and quality snapshot for a
// phone number. the two Graph calls run concurrently; any failure in
// either degrades to the conservative defaults instead of an error,
// so a provider outage never blocks the caller.
func (f *Fetcher) FetchAccountLimits(ctx context.Context, phoneNumberID, accessToken string) *AccountLimits {
	var (
		wg        sync.WaitGroup
		phoneResp phoneNumberResponse
		limitResp messagingLimitResponse
		phoneErr  error
		limitErr  error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		phoneErr = f.getJSON(ctx, phoneNumberID, "throughput,quality_score", accessToken, &phoneResp)
	}()

	go func() {
		defer wg.Done()
		limitErr = f.getJSON(ctx, phoneNumberID, "whatsapp_business_manager_messaging_limit", accessToken, &limitResp)
	}()

	wg.Wait()

	// no partial-success state: either call failing aborts the fetch
	if phoneErr != nil || limitErr != nil {
		err := phoneErr
		if err == nil {
			err = limitErr
		}

		logger.ErrorErr(err, "failed to fetch account limits, using defaults",
			"phone_number_id", phoneNumberID,
		)

		return DefaultLimits(f.now())
	}

	limits := &AccountLimits{
		MessagingTier:   ParseMessagingTier(limitResp.MessagingLimit),
		ThroughputLevel: ThroughputStandard,
		QualityScore:    QualityUnknown,
		UsedToday:       0,
		LastFetched:     f.now(),
	}

	if phoneResp.Throughput != nil {
		limits.ThroughputLevel = ParseThroughputLevel(phoneResp.Throughput.Level)
	}

	if phoneResp.QualityScore != nil {
		limits.QualityScore = ParseQualityScore(phoneResp.QualityScore.Score)
	}

	return limits
}

// issues a single fields query against the phone number node
func (f *Fetcher) getJSON(ctx context.Context, phoneNumberID, fields, accessToken string, out any) error {
	url := fmt.Sprintf("%s/%s?fields=%s", f.baseURL, phoneNumberID, fields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck
		return fmt.Errorf("graph API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
