package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/northsidewear/storefront-api/internal/config"
	"github.com/northsidewear/storefront-api/internal/domain"
)

// Builder constructs the prefilled chat message and link a buyer is handed
// off with. Fire-and-forget: no response is awaited and nothing is stored.
type Builder struct {
	baseURL string
	chatURL string
	printer *message.Printer
}

// NewBuilder creates a handoff builder from store configuration
func NewBuilder(cfg config.StoreConfig) *Builder {
	return &Builder{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		chatURL: cfg.WhatsAppLink,
		printer: message.NewPrinter(language.MustParse("en-IN")),
	}
}

// Message renders the plain-text enquiry: product name, effective price
// with locale digit grouping, category and a deep link back to the product.
func (b *Builder) Message(p domain.Product) string {
	price := b.printer.Sprintf("%d", p.EffectivePrice())

	category := p.Category.Name
	if category == "" {
		category = "N/A"
	}

	return fmt.Sprintf(
		"Hi, I am interested in the %s.\n- Price: ₹%s\n- Category: %s\n\nCheck it out here: %s/p/%s",
		p.Name, price, category, b.baseURL, p.ID,
	)
}

// Link returns the chat URL with the enquiry prefilled
func (b *Builder) Link(p domain.Product) string {
	return b.chatURL + "?text=" + url.QueryEscape(b.Message(p))
}
