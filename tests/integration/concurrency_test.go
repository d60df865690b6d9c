package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"bizdash-core/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(url string, body interface{}) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// TestConcurrentDispatch_CountersConsistent fires dispatches from many
// distinct users at once and checks that every counter and the durable log
// saw each one exactly once.
func TestConcurrentDispatch_CountersConsistent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	concurrency := 20
	url := app.server.URL + "/api/v1/webhooks/notes/dispatch"

	var wg sync.WaitGroup
	var successCount atomic.Int64
	var errs atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			status, err := postJSON(url, notePayload(fmt.Sprintf("user-%d", idx)))
			if err != nil {
				errs.Add(1)
				return
			}
			if status == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.Zero(t, errs.Load())
	assert.Equal(t, int64(concurrency), successCount.Load())
	assert.Len(t, app.hooks.all(), concurrency)
	assert.Equal(t, concurrency, app.log.count())

	_, body := doJSON(t, http.MethodGet, app.server.URL+"/api/v1/webhooks/stats", nil)
	notes := body["data"].(map[string]interface{})["notes"].(map[string]interface{})
	assert.Equal(t, float64(concurrency), notes["sent"])
	assert.Equal(t, float64(concurrency), notes["success"])
	assert.Equal(t, float64(0), notes["errors"])

	_, body = doJSON(t, http.MethodGet, app.server.URL+"/api/v1/webhooks/history", nil)
	assert.Len(t, body["data"], 20)
}

// TestConcurrentDispatch_RateLimitPerUser checks that the Redis window admits
// exactly the configured number of dispatches for one user even when they
// race.
func TestConcurrentDispatch_RateLimitPerUser(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	concurrency := 10
	url := app.server.URL + "/api/v1/webhooks/notes/dispatch"

	var wg sync.WaitGroup
	var okCount, limitedCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := postJSON(url, notePayload("same-user"))
			if err != nil {
				return
			}
			switch status {
			case http.StatusOK:
				okCount.Add(1)
			case http.StatusTooManyRequests:
				limitedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(dispatchLimit), okCount.Load())
	assert.Equal(t, int64(concurrency-dispatchLimit), limitedCount.Load())
	assert.Len(t, app.hooks.all(), dispatchLimit)
}

// TestConcurrentAppends checks that rows appended in parallel through the
// cache all land in the sheet and the next read sees them.
func TestConcurrentAppends(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	concurrency := 20
	url := app.server.URL + "/api/v1/sheets/" + projectsSheet + "/rows"

	var wg sync.WaitGroup
	var created atomic.Int64
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			status, err := postJSON(url, map[string]interface{}{
				"row": []interface{}{fmt.Sprintf("Parallel %d", idx), "", "Not Started", "2024-01-01", "2024-02-01"},
			})
			if err == nil && status == http.StatusCreated {
				created.Add(1)
			}
		}(i)
	}

	// Readers racing the writers must always get a well-formed table.
	var readFailures atomic.Int64
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(app.server.URL + "/api/v1/sheets/" + projectsSheet)
			if err != nil {
				readFailures.Add(1)
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				readFailures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(concurrency), created.Load())
	assert.Zero(t, readFailures.Load())

	_, body := doJSON(t, http.MethodGet, app.server.URL+"/api/v1/sheets/"+projectsSheet, nil)
	rows := body["data"].(map[string]interface{})["rows"].([]interface{})
	assert.Len(t, rows, domain.SampleProjects().Len()+concurrency)
}
