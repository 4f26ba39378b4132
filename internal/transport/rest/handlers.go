package rest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify"
	"github.com/wassup1201/Simple-Agent/internal/app/usecases"
	"github.com/wassup1201/Simple-Agent/internal/config"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
	"github.com/wassup1201/Simple-Agent/internal/logging"
)

const (
	present = "present ✅"
	missing = "missing ❌"
)

type Handler struct {
	shopifyCfg config.ShopifyConfig
	catalog    shopify.CatalogService
	orders     usecases.OrderStatusService
	chat       usecases.ChatService
	logger     logging.LoggerService
}

func NewHandler(
	shopifyCfg config.ShopifyConfig,
	catalog shopify.CatalogService,
	orders usecases.OrderStatusService,
	chat usecases.ChatService,
	logger logging.LoggerService,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		shopifyCfg: shopifyCfg,
		catalog:    catalog,
		orders:     orders,
		chat:       chat,
		logger:     logger,
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type storefrontPing struct {
	Domain *string `json:"domain"`
	Token  string  `json:"token"`
}

type adminPing struct {
	Domain     *string `json:"domain"`
	AdminToken string  `json:"adminToken"`
	Version    string  `json:"version"`
}

func (h *Handler) shopifyPing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, storefrontPing{
		Domain: nullable(h.shopifyCfg.Domain),
		Token:  presence(h.shopifyCfg.StorefrontToken),
	})
}

func (h *Handler) adminPing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, adminPing{
		Domain:     nullable(h.shopifyCfg.Domain),
		AdminToken: presence(h.shopifyCfg.AdminToken),
		Version:    h.shopifyCfg.AdminAPIVer,
	})
}

type productsResponse struct {
	Count int                 `json:"count"`
	Items []model.CatalogItem `json:"items"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	limit := shopify.ParseLimit(r.URL.Query().Get("limit"))
	items, err := h.catalog.ListProducts(r.Context(), limit)
	if err != nil {
		h.fail(w, "GET /shopify/products", err)
		return
	}
	if items == nil {
		items = []model.CatalogItem{}
	}
	writeJSON(w, http.StatusOK, productsResponse{Count: len(items), Items: items})
}

type productResponse struct {
	Product *model.ProductDetail `json:"product"`
}

func (h *Handler) productByHandle(w http.ResponseWriter, r *http.Request) {
	handle := strings.TrimSpace(mux.Vars(r)["handle"])
	if handle == "" {
		writeError(w, http.StatusBadRequest, "Missing handle")
		return
	}
	product, err := h.catalog.ProductByHandle(r.Context(), handle)
	if err != nil {
		h.fail(w, "GET /shopify/product/:handle", err)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, productResponse{Product: product})
}

type searchResponse struct {
	Query string             `json:"query"`
	Count int                `json:"count"`
	Items []model.SearchItem `json:"items"`
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if strings.TrimSpace(q) == "" {
		q = r.URL.Query().Get("q")
	}
	q = strings.TrimSpace(q)
	if q == "" {
		writeError(w, http.StatusBadRequest, "Missing query (?query= or ?q=)")
		return
	}
	items, err := h.catalog.SearchProducts(r.Context(), q)
	if err != nil {
		h.fail(w, "GET /shopify/search", err)
		return
	}
	if items == nil {
		items = []model.SearchItem{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: q, Count: len(items), Items: items})
}

type orderNotFound struct {
	Found bool   `json:"found"`
	Note  string `json:"note"`
}

func (h *Handler) orderStatus(w http.ResponseWriter, r *http.Request) {
	body := decodeObject(r)

	result, err := h.orders.Lookup(r.Context(), body.String("order_number"), body.String("email"))
	if err != nil {
		h.fail(w, "POST /order-status", err)
		return
	}
	if !result.Found {
		writeJSON(w, http.StatusOK, orderNotFound{Found: false, Note: usecases.OrderNotFoundNote})
		return
	}
	writeJSON(w, http.StatusOK, result.Order)
}

func (h *Handler) chatReply(w http.ResponseWriter, r *http.Request) {
	body := decodeObject(r)
	product := body.Object("product")

	reply, err := h.chat.Reply(r.Context(), usecases.ChatRequest{
		Message: body.String("message"),
		Mode:    body.String("mode"),
		Product: model.ProductOverrides{
			PrinterName: product.String("printerName"),
			PaperName:   product.String("paperName"),
			PrinterURL:  product.String("printerUrl"),
			PaperURL:    product.String("paperUrl"),
		},
	})
	if err != nil {
		h.fail(w, "POST /chat", err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) fail(w http.ResponseWriter, endpoint string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.LogError(endpoint+" error", err, zap.Int("status", status))
	} else {
		h.logger.LogWarning(endpoint+" rejected", zap.Error(err))
	}
	writeError(w, status, err.Error())
}

func presence(v string) string {
	if v != "" {
		return present
	}
	return missing
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
