package receipt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

func testService() *Service {
	s := NewService(config.ReceiptConfig{StoreName: "Hotel Aroma"})
	s.now = func() time.Time { return time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC) }
	return s
}

func TestHTML(t *testing.T) {
	c := cart.New([]cart.Line{
		{MenuItem: catalog.MenuItem{ID: "m1", Name: "Burger", Price: catalog.MoneyFromFloat(10)}, Quantity: 2},
		{MenuItem: catalog.MenuItem{ID: "m2", Name: "Fries & Dip", Price: catalog.MoneyFromFloat(5.05)}, Quantity: 1},
	})

	out, err := testService().HTML("Asha", c)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"Hotel Aroma",
		"for Asha",
		"March 1, 2025 19:30",
		"Burger",
		"Fries &amp; Dip",
		"20.00",
		"5.05",
		"25.05",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestHTMLEmptyCart(t *testing.T) {
	out, err := testService().HTML("", cart.Empty())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(string(out), "Your cart is empty.") {
		t.Errorf("empty cart not rendered")
	}
}

func TestBuild(t *testing.T) {
	c := cart.New([]cart.Line{
		{MenuItem: catalog.MenuItem{ID: "m1", Name: "Tea", Price: catalog.MoneyFromFloat(1.5)}, Quantity: 3},
	})

	data := testService().Build("Asha", c)
	if len(data.Lines) != 1 || data.Lines[0].Subtotal != 450 || data.Total != 450 || data.ItemCount != 3 {
		t.Errorf("Build = %+v", data)
	}
}

func TestPDFDisabled(t *testing.T) {
	if _, err := testService().PDF("", cart.Empty()); !errors.Is(err, ErrPDFDisabled) {
		t.Errorf("err = %v, want ErrPDFDisabled", err)
	}
}
