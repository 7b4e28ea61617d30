package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Route turns the path of a resolved URL into a gin route pattern. Segments
// containing ':' or '*' (a bot token always has a colon) become parameters;
// pair the pattern with ExactPath to keep the literal match.
func Route(rawURL string) (pattern, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	path = u.Path
	if path == "" {
		path = "/"
	}

	segs := strings.Split(path, "/")
	for i, s := range segs {
		if strings.ContainsAny(s, ":*") {
			segs[i] = fmt.Sprintf(":seg%d", i)
		}
	}
	return strings.Join(segs, "/"), path, nil
}

// ExactPath answers 404 unless the request path is exactly path.
func (mw Middleware) ExactPath(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path != path {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Next()
	}
}
