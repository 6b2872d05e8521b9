// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package admin

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paradox-labs/para/log"
)

func TestAdminRoutes(t *testing.T) {
	var level slog.LevelVar
	level.Set(log.LevelInfo)
	apiLogs := &atomic.Bool{}

	handler := NewHTTPHandler(&level, apiLogs)

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodPost, "/admin/loglevel", strings.NewReader(`{"level":"warn"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, log.LevelWarn, level.Level())

	rr = httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodPost, "/admin/apilogs", strings.NewReader(`{"enabled":true}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, apiLogs.Load())

	rr = httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/admin/health", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
