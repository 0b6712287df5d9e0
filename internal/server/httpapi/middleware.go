package httpapi

import (
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/dmitrijs2005/roomsplit/internal/logging"
	"github.com/gin-gonic/gin"
)

func requestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error(c.Request.Context(), "request", args...)
		case c.Writer.Status() >= 400:
			log.Warn(c.Request.Context(), "request", args...)
		default:
			log.Info(c.Request.Context(), "request", args...)
		}
	}
}

func observe(m RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// language picks the response language for the request.
func (h *Handler) language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Default
		if h.prefs != nil {
			lang = h.prefs.Current().Language
		}

		if q := c.Query("lang"); q != "" {
			if l, err := i18n.ParseLanguage(q); err == nil {
				lang = l
			}
		} else if l, ok := i18n.MatchAcceptLanguage(c.GetHeader("Accept-Language")); ok {
			lang = l
		}

		c.Set(translatorKey, i18n.New(lang))
		c.Next()
	}
}
