// Package sources wraps the external video-platform API.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/glowuprizz/go_scout/internal/engine"
	"github.com/glowuprizz/go_scout/internal/engine/store"
)

const ytDataAPIBase = "https://www.googleapis.com/youtube/v3"

// Search modes.
const (
	ModeVideo   = "video"   // search videos, map each hit to its owning channel
	ModeChannel = "channel" // search channel names directly
)

// quotaMarkers are the reason strings the API uses for an exhausted quota.
var quotaMarkers = []string{"quotaExceeded", "dailyLimitExceeded"}

// Client calls the YouTube Data API v3. Every request posts its unit cost
// to the quota ledger before going out.
type Client struct{}

// NewClient returns a Data API client. Keys come from the engine config so
// the fallback key can be rotated without re-wiring callers.
func NewClient() *Client {
	return &Client{}
}

// --- wire types ---

type ytSearchResp struct {
	Items []struct {
		ID struct {
			VideoID   string `json:"videoId"`
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

type ytChannelResp struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type ytPlaylistItemsResp struct {
	Items []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type ytVideosResp struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Search runs one keyword query and returns the owning channel of every hit,
// deduplicated within the call. Mode "video" finds channels whose content
// (not name) matches the keyword; mode "channel" matches names.
func (c *Client) Search(ctx context.Context, keyword, region, mode string, limit int) ([]engine.ChannelRef, error) {
	engine.IncrSearchRequests()
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	if mode != ModeChannel {
		mode = ModeVideo
	}

	if _, _, err := store.Record(ctx, store.CostSearch, 0); err != nil {
		slog.Warn("youtube: quota ledger update failed", slog.Any("error", err))
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", keyword)
	params.Set("type", mode)
	params.Set("maxResults", strconv.Itoa(limit))
	if region != "" {
		params.Set("regionCode", region)
	}

	var data ytSearchResp
	if err := c.getJSON(ctx, "/search", params, &data); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(data.Items))
	refs := make([]engine.ChannelRef, 0, len(data.Items))
	for _, item := range data.Items {
		id := item.Snippet.ChannelID
		if id == "" {
			id = item.ID.ChannelID
		}
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, engine.ChannelRef{ID: id, Keyword: keyword})
	}
	return refs, nil
}

// ChannelDetail resolves a channel ID into its candidate fields.
// Returns (nil, nil) when the channel no longer exists.
func (c *Client) ChannelDetail(ctx context.Context, id string) (*engine.Channel, error) {
	engine.IncrDetailRequests()
	if _, _, err := store.Record(ctx, store.CostList, 0); err != nil {
		slog.Warn("youtube: quota ledger update failed", slog.Any("error", err))
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", id)

	var data ytChannelResp
	if err := c.getJSON(ctx, "/channels", params, &data); err != nil {
		return nil, err
	}
	if len(data.Items) == 0 {
		return nil, nil
	}

	item := data.Items[0]
	subs, _ := strconv.ParseInt(item.Statistics.SubscriberCount, 10, 64)
	return &engine.Channel{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ThumbnailURL: item.Snippet.Thumbnails.Default.URL,
		UploadsID:    item.ContentDetails.RelatedPlaylists.Uploads,
		Subscribers:  subs,
		URL:          "https://youtube.com/channel/" + item.ID,
	}, nil
}

// RecentUploads returns up to limit most recent uploads from a channel's
// uploads playlist, with view counts and parsed durations.
func (c *Client) RecentUploads(ctx context.Context, playlistID string, limit int) ([]engine.Video, error) {
	engine.IncrDetailRequests()
	if limit <= 0 || limit > 50 {
		limit = 15
	}
	if _, _, err := store.Record(ctx, 2*store.CostList, 0); err != nil {
		slog.Warn("youtube: quota ledger update failed", slog.Any("error", err))
	}

	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(limit))

	var items ytPlaylistItemsResp
	if err := c.getJSON(ctx, "/playlistItems", params, &items); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items.Items))
	for _, it := range items.Items {
		if it.ContentDetails.VideoID != "" {
			ids = append(ids, it.ContentDetails.VideoID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	params = url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))

	var vids ytVideosResp
	if err := c.getJSON(ctx, "/videos", params, &vids); err != nil {
		return nil, err
	}

	out := make([]engine.Video, 0, len(vids.Items))
	for _, v := range vids.Items {
		published, _ := time.Parse(time.RFC3339, v.Snippet.PublishedAt)
		views, _ := strconv.ParseInt(v.Statistics.ViewCount, 10, 64)
		dur, err := ParseISODuration(v.ContentDetails.Duration)
		if err != nil {
			slog.Debug("youtube: bad duration, skipping video",
				slog.String("video", v.ID), slog.String("duration", v.ContentDetails.Duration))
			continue
		}
		out = append(out, engine.Video{
			ID:          v.ID,
			Title:       v.Snippet.Title,
			Description: v.Snippet.Description,
			PublishedAt: published,
			DurationSec: dur,
			Views:       views,
			URL:         "https://youtu.be/" + v.ID,
		})
	}
	return out, nil
}

// getJSON issues one Data API GET, trying the fallback key when the primary
// hits its quota. A quota failure on every key surfaces ErrQuotaExhausted.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	keys := []string{engine.Cfg.YouTubeAPIKey}
	if engine.Cfg.YouTubeAPIKeyFallback != "" {
		keys = append(keys, engine.Cfg.YouTubeAPIKeyFallback)
	}

	var lastErr error
	for _, key := range keys {
		p := url.Values{}
		for k, vs := range params {
			p[k] = vs
		}
		p.Set("key", key)
		apiURL := ytDataAPIBase + path + "?" + p.Encode()

		resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
			req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("User-Agent", engine.UserAgentBot)
			return engine.Cfg.HTTPClient.Do(req)
		})
		if err != nil {
			return fmt.Errorf("youtube%s: %w", path, err)
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			resp.Body.Close()
			if isQuotaBody(resp.StatusCode, string(body)) {
				lastErr = fmt.Errorf("youtube%s: %w", path, engine.ErrQuotaExhausted)
				slog.Debug("youtube: key over quota, trying fallback", slog.String("path", path))
				continue
			}
			return fmt.Errorf("youtube%s: status %d: %s", path, resp.StatusCode, string(body))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("youtube%s: decode: %w", path, err)
		}
		return nil
	}
	return lastErr
}

// isQuotaBody reports whether a 403 body carries a quota-exhaustion reason.
func isQuotaBody(status int, body string) bool {
	if status != http.StatusForbidden {
		return false
	}
	for _, marker := range quotaMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
