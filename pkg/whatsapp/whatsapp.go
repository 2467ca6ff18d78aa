package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
)

// LinkBuilder builds wa.me deep links that the storefront opens client-side
// as the order confirmation channel. The backend never sends a message
// itself; it only prepares the prefilled URL.
type LinkBuilder struct {
	number    string // digits only, with country code
	storeName string
}

func NewLinkBuilder(number, storeName string) *LinkBuilder {
	return &LinkBuilder{
		number:    strings.TrimPrefix(number, "+"),
		storeName: storeName,
	}
}

// OrderLink returns a wa.me URL with a URL-encoded order summary.
func (b *LinkBuilder) OrderLink(order *model.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.number, url.QueryEscape(b.orderSummary(order)))
}

func (b *LinkBuilder) orderSummary(order *model.Order) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Hi %s! I have placed order %s.\n\n", b.storeName, order.OrderNumber)
	for _, item := range order.Items {
		fmt.Fprintf(&sb, "- %s x%d @ Rs.%.2f\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&sb, "\nSubtotal: Rs.%.2f\n", order.Subtotal)
	if order.DeliveryFee > 0 {
		fmt.Fprintf(&sb, "Delivery: Rs.%.2f\n", order.DeliveryFee)
	} else {
		sb.WriteString("Delivery: FREE\n")
	}
	fmt.Fprintf(&sb, "Total: Rs.%.2f\n\n", order.TotalAmount)
	fmt.Fprintf(&sb, "Name: %s\nPhone: %s\n", order.CustomerName, order.CustomerPhone)
	fmt.Fprintf(&sb, "Address: %s, %s, %s - %s\n",
		order.Address.Street, order.Address.City, order.Address.State, order.Address.Pincode)
	fmt.Fprintf(&sb, "Payment: %s", order.PaymentMethod)

	return sb.String()
}
