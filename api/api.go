// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/paradox-labs/para/api/accounts"
	"github.com/paradox-labs/para/api/middleware"
	"github.com/paradox-labs/para/api/pool"
	"github.com/paradox-labs/para/api/stakes"
	"github.com/paradox-labs/para/api/staker"
	"github.com/paradox-labs/para/api/token"
	"github.com/paradox-labs/para/host"
	"github.com/paradox-labs/para/log"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins       string
	EnableReqLogger      *atomic.Bool
	SlowQueriesThreshold time.Duration
	EnableMetrics        bool
}

// New return api router
func New(h *host.Host, opts Options) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	pool.New(h).
		Mount(router, "/pool")
	accounts.New(h).
		Mount(router, "/accounts")
	stakes.New(h).
		Mount(router, "/stakes")
	token.New(h).
		Mount(router, "/token")
	staker.New(h).
		Mount(router, "/staker")

	if opts.EnableMetrics {
		router.Use(metricsMiddleware)
	}

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
	)(handler)

	enabled := opts.EnableReqLogger
	if enabled == nil {
		enabled = &atomic.Bool{}
	}
	handler = middleware.RequestLoggerMiddleware(logger, enabled, opts.SlowQueriesThreshold)(handler)

	return handler.ServeHTTP
}
