package youtube

import (
	"time"

	pkgHttp "insight-srv/pkg/http"

	"golang.org/x/time/rate"
)

// Config holds configuration for the YouTube client.
type Config struct {
	BaseURL           string
	HTTPClient        pkgHttp.IClient
	RequestsPerSecond float64
	Burst             int
}

// Video is the subset of a videos resource the service uses.
// Counters are kept as the API returns them: decimal strings, possibly absent.
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelTitle string
	PublishedAt  time.Time
	ViewCount    string
	LikeCount    string
	CommentCount string
	Duration     string
	Thumbnail    string
}

// Comment is a top level comment of a comment thread.
type Comment struct {
	ID          string
	Author      string
	Text        string
	LikeCount   int64
	PublishedAt time.Time
}

// youtubeImpl implements IYouTube.
type youtubeImpl struct {
	baseURL    string
	httpClient pkgHttp.IClient
	limiter    *rate.Limiter
}

// =====================================================
// Wire format
// =====================================================

type videoListResp struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		ChannelTitle string    `json:"channelTitle"`
		PublishedAt  time.Time `json:"publishedAt"`
		Thumbnails   struct {
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type commentThreadListResp struct {
	NextPageToken string              `json:"nextPageToken"`
	Items         []commentThreadItem `json:"items"`
}

type commentThreadItem struct {
	ID      string `json:"id"`
	Snippet struct {
		TopLevelComment struct {
			Snippet struct {
				AuthorDisplayName string    `json:"authorDisplayName"`
				TextDisplay       string    `json:"textDisplay"`
				LikeCount         int64     `json:"likeCount"`
				PublishedAt       time.Time `json:"publishedAt"`
			} `json:"snippet"`
		} `json:"topLevelComment"`
	} `json:"snippet"`
}

type errorResp struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
