package rest

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/wassup1201/Simple-Agent/internal/config"
	"github.com/wassup1201/Simple-Agent/internal/logging"
)

// NewRouter mounts every endpoint on a gorilla/mux router. ctx bounds the
// rate limiter's background sweep.
func NewRouter(ctx context.Context, h *Handler, cfg config.ServerConfig, logger logging.LoggerService) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	limited := NewIPRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)

	r := mux.NewRouter()
	r.Use(requestID, accessLog(logger), recovery(logger))

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	r.HandleFunc("/shopify/ping", h.shopifyPing).Methods(http.MethodGet)
	r.HandleFunc("/shopify/products", h.listProducts).Methods(http.MethodGet)
	r.HandleFunc("/shopify/product/", h.productByHandle).Methods(http.MethodGet)
	r.HandleFunc("/shopify/product/{handle}", h.productByHandle).Methods(http.MethodGet)
	r.HandleFunc("/shopify/search", h.searchProducts).Methods(http.MethodGet)
	r.HandleFunc("/shopify-admin/ping", h.adminPing).Methods(http.MethodGet)

	r.Handle("/order-status", limited.Middleware(http.HandlerFunc(h.orderStatus))).Methods(http.MethodPost)
	r.Handle("/chat", limited.Middleware(http.HandlerFunc(h.chatReply))).Methods(http.MethodPost)

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = "public"
	}
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
	}).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(http.FileServer(staticFS{root: http.Dir(staticDir)})).Methods(http.MethodGet, http.MethodHead)

	return r
}
