// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/pkg/receipt"
	"github.com/your-org/storefront-client/internal/store"
)

// ReceiptHandler renders the order summary of the current cart
type ReceiptHandler struct {
	store   *store.Store
	receipt *receipt.Service
	logger  *logrus.Logger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(st *store.Store, svc *receipt.Service, logger *logrus.Logger) *ReceiptHandler {
	return &ReceiptHandler{store: st, receipt: svc, logger: logger}
}

// GetReceipt handles GET /views/cart/receipt.pdf. When PDF rendering is
// disabled the HTML summary is served instead.
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap.Session.Shopper == nil {
		respondError(c, store.ErrUnauthenticated)
		return
	}
	shopper := snap.Session.Shopper.Name

	pdf, err := h.receipt.PDF(shopper, snap.Cart)
	if err == nil {
		filename := fmt.Sprintf("order-summary-%s.pdf", time.Now().Format("20060102-150405"))
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", pdf)
		return
	}
	if !errors.Is(err, receipt.ErrPDFDisabled) {
		h.logger.WithError(err).Error("Failed to render receipt PDF")
	}

	html, err := h.receipt.HTML(shopper, snap.Cart)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render receipt")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render order summary",
		})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
