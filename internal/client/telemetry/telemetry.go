// Package telemetry is the consent-gated analytics collector. It has two
// states: unconsented (initial) and consented (terminal). The transition
// happens only on an explicit user action, is persisted so it survives
// restarts, and has no opt-out path.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/quizgen/quizgen/internal/client/prefs"
	"github.com/quizgen/quizgen/internal/dto"
)

const (
	consentKey     = "quizgen_analytics_consent"
	consentGranted = "granted"
)

type Collector struct {
	prefs      *prefs.Prefs
	serverURL  string
	userAgent  string
	httpClient *http.Client
}

func New(p *prefs.Prefs, serverURL, userAgent string) *Collector {
	return &Collector{
		prefs:      p,
		serverURL:  serverURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// HasConsent reports whether the user already accepted the prompt. The
// caller shows the consent prompt only while this is false.
func (c *Collector) HasConsent(ctx context.Context) bool {
	return c.prefs.GetString(ctx, consentKey, "") == consentGranted
}

// GrantConsent persists the accept. There is no way back through this API.
func (c *Collector) GrantConsent(ctx context.Context) error {
	return c.prefs.Set(ctx, consentKey, consentGranted)
}

// CollectAndSend reports a minimal engagement payload for the given path.
// Without consent it does nothing. Transmission failures are logged and
// discarded; telemetry loss is acceptable and never retried.
func (c *Collector) CollectAndSend(ctx context.Context, path string) {
	if !c.HasConsent(ctx) {
		return
	}

	engagement, err := json.Marshal(map[string]any{
		"path": path,
		"ts":   time.Now().UnixMilli(),
	})
	if err != nil {
		slog.Warn("analytics payload encode failed", "error", err)
		return
	}

	// Personal fields stay empty: the schema reserves them, the collector
	// never populates them.
	payload := dto.AnalyticsRequest{
		Consent:    true,
		DeviceType: DeviceType(c.userAgent),
		Engagement: engagement,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("analytics payload encode failed", "error", err)
		return
	}

	url := strings.TrimSuffix(c.serverURL, "/") + "/api/analytics"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		slog.Warn("analytics request build failed", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("analytics send failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("analytics send rejected", "status", resp.StatusCode)
	}
}

// DeviceType infers a coarse device class from a user-agent string, falling
// back to desktop.
func DeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android"):
		return "mobile"
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "tablet"
	default:
		return "desktop"
	}
}
