// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// ErrPDFDisabled is returned by PDF when wkhtmltopdf rendering is turned off
var ErrPDFDisabled = errors.New("receipt PDF rendering is disabled")

var receiptTmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

// Service renders order summaries of the shopper's cart
type Service struct {
	config config.ReceiptConfig
	now    func() time.Time
}

// NewService creates a new receipt service
func NewService(cfg config.ReceiptConfig) *Service {
	return &Service{
		config: cfg,
		now:    time.Now,
	}
}

// Data is what the receipt template renders
type Data struct {
	StoreName   string
	GeneratedAt string
	Shopper     string
	Lines       []LineData
	ItemCount   int
	Total       catalog.Money
}

// LineData is one rendered cart line
type LineData struct {
	Name     string
	Quantity int
	Price    catalog.Money
	Subtotal catalog.Money
}

// Build prepares template data for the given cart
func (s *Service) Build(shopper string, c cart.Cart) Data {
	lines := c.Lines()
	data := Data{
		StoreName:   s.config.StoreName,
		GeneratedAt: s.now().Format("January 2, 2006 15:04"),
		Shopper:     shopper,
		Lines:       make([]LineData, 0, len(lines)),
		ItemCount:   c.Totals().ItemCount,
		Total:       c.Totals().Price,
	}
	for _, l := range lines {
		data.Lines = append(data.Lines, LineData{
			Name:     l.MenuItem.Name,
			Quantity: l.Quantity,
			Price:    l.MenuItem.Price,
			Subtotal: l.Subtotal(),
		})
	}
	return data
}

// HTML renders the order summary as an HTML document
func (s *Service) HTML(shopper string, c cart.Cart) ([]byte, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, s.Build(shopper, c)); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders the order summary through wkhtmltopdf
func (s *Service) PDF(shopper string, c cart.Cart) ([]byte, error) {
	if !s.config.PDFEnabled {
		return nil, ErrPDFDisabled
	}

	htmlContent, err := s.HTML(shopper, c)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA5)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return pdfg.Bytes(), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.StoreName}} order summary</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        h1 { font-size: 22px; color: #c2410c; margin-bottom: 4px; }
        .meta { color: #6b7280; font-size: 12px; margin-bottom: 20px; }
        table { width: 100%; border-collapse: collapse; }
        th, td { border-bottom: 1px solid #e5e7eb; padding: 8px 4px; text-align: left; }
        th { background-color: #f9fafb; }
        .num { text-align: right; }
        .total td { font-weight: bold; font-size: 16px; border-top: 2px solid #333; }
        .empty { color: #6b7280; font-style: italic; }
    </style>
</head>
<body>
    <h1>{{.StoreName}}</h1>
    <div class="meta">Order summary{{if .Shopper}} for {{.Shopper}}{{end}} &middot; {{.GeneratedAt}}</div>
    {{if .Lines}}
    <table>
        <tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Subtotal</th></tr>
        {{range .Lines}}
        <tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.Price}}</td><td class="num">{{.Subtotal}}</td></tr>
        {{end}}
        <tr class="total"><td>Total</td><td class="num">{{.ItemCount}}</td><td></td><td class="num">{{.Total}}</td></tr>
    </table>
    {{else}}
    <p class="empty">Your cart is empty.</p>
    {{end}}
</body>
</html>
`
