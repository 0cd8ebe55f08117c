package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Checker sends a HEAD request to every recorded source URL and stores the
// status code.
type Checker struct {
	sources *SourceDB
	logger  *slog.Logger
	client  *http.Client
}

func NewChecker(sources *SourceDB, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		sources: sources,
		logger:  logger,
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// CheckAll checks every source and returns how many answered below 400.
func (c *Checker) CheckAll(ctx context.Context) (ok, failed int, err error) {
	sources, err := c.sources.ListSources()
	if err != nil {
		return 0, 0, err
	}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return ok, failed, err
		}

		status, checkErr := c.checkOne(ctx, src.URL)
		errMsg := ""
		if checkErr != nil {
			errMsg = checkErr.Error()
		}
		if err := c.sources.UpdateCheck(src.ID, status, errMsg); err != nil {
			return ok, failed, err
		}

		if status >= 200 && status < 400 {
			ok++
			continue
		}
		failed++
		c.logger.Warn("source unavailable", "source", src.ID, "url", src.URL, "status", status, "error", errMsg)
	}
	c.logger.Info("source check complete", "total", ok+failed, "ok", ok, "failed", failed)
	return ok, failed, nil
}

// checkOne returns the HEAD status code of url, or 0 on network error.
func (c *Checker) checkOne(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HEAD %s: %w", url, err)
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
