package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GetVideo fetches one video.
func (c *youtubeImpl) GetVideo(ctx context.Context, apiKey, videoID string) (Video, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics,contentDetails")
	q.Set("id", videoID)

	body, err := c.get(ctx, apiKey, PathVideos, q)
	if err != nil {
		return Video{}, err
	}

	var resp videoListResp
	if err := json.Unmarshal(body, &resp); err != nil {
		return Video{}, fmt.Errorf("youtube: failed to unmarshal videos: %w", err)
	}
	if len(resp.Items) == 0 {
		return Video{}, ErrNotFound
	}

	it := resp.Items[0]
	return Video{
		ID:           it.ID,
		Title:        it.Snippet.Title,
		Description:  it.Snippet.Description,
		ChannelTitle: it.Snippet.ChannelTitle,
		PublishedAt:  it.Snippet.PublishedAt,
		ViewCount:    orZero(it.Statistics.ViewCount),
		LikeCount:    orZero(it.Statistics.LikeCount),
		CommentCount: orZero(it.Statistics.CommentCount),
		Duration:     it.ContentDetails.Duration,
		Thumbnail:    it.Snippet.Thumbnails.High.URL,
	}, nil
}

// ListComments pages through commentThreads until max comments are collected or pages run out.
func (c *youtubeImpl) ListComments(ctx context.Context, apiKey, videoID string, max int) ([]Comment, error) {
	if max <= 0 {
		return []Comment{}, nil
	}

	comments := make([]Comment, 0, max)
	pageToken := ""
	for len(comments) < max {
		q := url.Values{}
		q.Set("part", "snippet")
		q.Set("videoId", videoID)
		q.Set("order", "relevance")
		q.Set("maxResults", strconv.Itoa(min(max-len(comments), maxPageSize)))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		body, err := c.get(ctx, apiKey, PathCommentThreads, q)
		if err != nil {
			return nil, err
		}

		var resp commentThreadListResp
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("youtube: failed to unmarshal comment threads: %w", err)
		}
		for _, it := range resp.Items {
			s := it.Snippet.TopLevelComment.Snippet
			comments = append(comments, Comment{
				ID:          it.ID,
				Author:      s.AuthorDisplayName,
				Text:        s.TextDisplay,
				LikeCount:   s.LikeCount,
				PublishedAt: s.PublishedAt,
			})
		}

		if resp.NextPageToken == "" || len(resp.Items) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}

	if len(comments) > max {
		comments = comments[:max]
	}
	return comments, nil
}

func (c *youtubeImpl) get(ctx context.Context, apiKey, path string, q url.Values) ([]byte, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// Header, not query: transport errors echo the request URL.
	headers := map[string]string{headerAPIKey: apiKey}
	body, status, err := c.httpClient.Get(ctx, c.baseURL+path+"?"+q.Encode(), headers)
	if err != nil {
		return nil, fmt.Errorf("youtube: request failed: %w", err)
	}
	if status != http.StatusOK {
		return nil, classify(status, body)
	}
	return body, nil
}

// classify maps an error response to one of the package errors, keeping the provider message.
func classify(status int, body []byte) error {
	var er errorResp
	_ = json.Unmarshal(body, &er)
	msg := er.Error.Message

	hasReason := func(reason string) bool {
		for _, e := range er.Error.Errors {
			if e.Reason == reason {
				return true
			}
		}
		return strings.Contains(msg, reason)
	}

	switch {
	case status == http.StatusForbidden && (strings.Contains(msg, msgAPINotEnabled) || hasReason(reasonNotConfigured)):
		return fmt.Errorf("%w: %s", ErrAPINotEnabled, msg)
	case status == http.StatusForbidden && hasReason(reasonQuotaExceeded):
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, msg)
	case status == http.StatusForbidden && hasReason(reasonCommentsDisabled):
		return fmt.Errorf("%w: %s", ErrCommentsDisabled, msg)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessDenied, msg)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	default:
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, status, msg)
	}
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
