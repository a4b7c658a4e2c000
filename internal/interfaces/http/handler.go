package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"velya/internal/entities"
	"velya/internal/infrastructure"
	"velya/internal/repository"
	"velya/internal/usecases"
)

// Handler exposes the web chat webhook and the operator API.
type Handler struct {
	resolver *usecases.Resolver
	auth     *usecases.AuthUsecase
	store    *repository.Store
	archive  *repository.ArchiveRepository
	whatsapp *infrastructure.WhatsAppClient
	limiter  *infrastructure.SenderRateLimiter
	log      *zap.Logger
}

func NewHandler(
	resolver *usecases.Resolver,
	auth *usecases.AuthUsecase,
	store *repository.Store,
	archive *repository.ArchiveRepository,
	whatsapp *infrastructure.WhatsAppClient,
	limiter *infrastructure.SenderRateLimiter,
	log *zap.Logger,
) *Handler {
	return &Handler{
		resolver: resolver,
		auth:     auth,
		store:    store,
		archive:  archive,
		whatsapp: whatsapp,
		limiter:  limiter,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, mw *Middleware) {
	router.Use(SecurityHeaders())
	router.Use(mw.CORSMiddleware())
	router.Use(RequestSizeLimiter(1 << 20))

	router.GET("/health", h.health)
	router.POST("/webhook/web", h.webChat)
	router.POST("/api/auth/login", h.login)

	api := router.Group("/api")
	api.Use(mw.AuthRequired(), mw.RateLimitPerOperator(rate.Limit(5), 10))
	{
		api.GET("/interactions/:phone", h.interactions)
		api.GET("/products", h.products)
		api.GET("/faqs", h.faqs)
		api.GET("/whatsapp/qr", h.whatsappQR)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type webChatRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// webChat resolves a web widget message synchronously and returns the
// reply in the response body.
func (h *Handler) webChat(c *gin.Context) {
	var req webChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sender := req.Phone
	if sender == "" {
		sender = c.ClientIP()
	}
	if !h.limiter.Allow(sender) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many messages, slow down"})
		return
	}

	exchange := h.resolver.Resolve(c.Request.Context(), entities.InboundMessage{
		From:       req.Phone,
		Content:    req.Message,
		Platform:   "web",
		ReceivedAt: time.Now(),
	})

	c.JSON(http.StatusOK, gin.H{
		"reply":     exchange.Reply.Body,
		"source":    string(exchange.Reply.Source),
		"language":  string(exchange.Locale),
		"sentiment": string(exchange.Sentiment),
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) interactions(c *gin.Context) {
	phone := c.Param("phone")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.archive.RecentBySender(c.Request.Context(), phone, limit)
	if err != nil {
		h.log.Error("failed to list interactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load interactions"})
		return
	}

	out := make([]gin.H, 0, len(records))
	for _, rec := range records {
		out = append(out, gin.H{
			"id":        rec.ID,
			"sender":    rec.Sender,
			"input":     rec.Input,
			"output":    rec.Output,
			"language":  string(rec.Locale),
			"sentiment": string(rec.Sentiment),
			"timestamp": rec.Timestamp,
		})
	}
	c.JSON(http.StatusOK, gin.H{"interactions": out})
}

func (h *Handler) products(c *gin.Context) {
	products, err := h.store.AllActiveProducts(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, gin.H{
			"sku":            p.SKU,
			"name":           p.Name,
			"description":    p.Description,
			"price":          p.Price,
			"discount_price": p.DiscountPrice,
			"category":       p.Category,
			"brand":          p.Brand,
			"rating":         p.Rating,
			"stock":          p.Stock,
			"is_featured":    p.IsFeatured,
		})
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (h *Handler) faqs(c *gin.Context) {
	faqs, err := h.store.AllFAQs(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list faqs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load FAQs"})
		return
	}

	out := make([]gin.H, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, gin.H{
			"id":       f.ID,
			"question": f.Question,
			"answer":   f.Answer,
			"language": string(f.Locale),
		})
	}
	c.JSON(http.StatusOK, gin.H{"faqs": out})
}

// whatsappQR serves the current pairing code as a PNG so the operator
// dashboard can display it.
func (h *Handler) whatsappQR(c *gin.Context) {
	if h.whatsapp == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WhatsApp transport disabled"})
		return
	}
	if h.whatsapp.IsLoggedIn() {
		c.JSON(http.StatusOK, gin.H{"status": "connected"})
		return
	}

	code := h.whatsapp.GetQR()
	if code == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pairing code available yet"})
		return
	}

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
