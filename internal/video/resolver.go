package video

import (
	"regexp"
	"strings"
)

var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([^&\n?#/]+)`),
	regexp.MustCompile(`youtube\.com/watch\?(?:.*&)?v=([^&\n?#]+)`),
}

// ExtractVideoID returns the id embedded in a YouTube URL, or "" when none matches.
func ExtractVideoID(url string) string {
	url = strings.TrimSpace(url)
	for _, re := range videoURLPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
