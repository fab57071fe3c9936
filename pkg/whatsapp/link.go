package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidPhone = errors.New("phone has no digits")

// MessageLine is one order line as rendered in the WhatsApp message.
type MessageLine struct {
	Qty            int
	Name           string
	Notes          string
	LineTotalCents int64
}

// Message holds everything needed to render the order handoff text.
type Message struct {
	RestaurantName  string
	OrderNumber     string
	OrderID         string
	CustomerName    string
	CustomerPhone   string
	Delivery        string
	DeliveryAddress string
	Notes           string
	Currency        string
	Lines           []MessageLine
	TotalCents      int64
}

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink renders the message and returns the wa.me deep link for the
// merchant phone. Fails if the phone reduces to zero digits.
func BuildLink(merchantPhone string, msg Message) (string, error) {
	digits := NormalizePhone(merchantPhone)
	if digits == "" {
		return "", ErrInvalidPhone
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(Render(msg)), nil
}

// Render formats the order message text. The layout matches what merchants
// expect to receive: header, customer block, one line per item, total.
func Render(msg Message) string {
	lines := make([]string, 0, len(msg.Lines)+9)
	lines = append(lines, fmt.Sprintf("Nuevo pedido en %s", msg.RestaurantName))
	lines = append(lines, fmt.Sprintf("Pedido: %s (%s)", msg.OrderNumber, msg.OrderID))
	lines = append(lines, fmt.Sprintf("Cliente: %s", msg.CustomerName))
	lines = append(lines, fmt.Sprintf("Telefono: %s", msg.CustomerPhone))
	lines = append(lines, fmt.Sprintf("Entrega: %s", msg.Delivery))
	if msg.DeliveryAddress != "" {
		lines = append(lines, fmt.Sprintf("Direccion: %s", msg.DeliveryAddress))
	}
	if msg.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notas: %s", msg.Notes))
	}
	lines = append(lines, "Items:")
	for _, item := range msg.Lines {
		notes := ""
		if item.Notes != "" {
			notes = " (" + item.Notes + ")"
		}
		lines = append(lines, fmt.Sprintf("- %d x %s%s = %s", item.Qty, item.Name, notes, FormatMoney(item.LineTotalCents, msg.Currency)))
	}
	lines = append(lines, fmt.Sprintf("Total: %s", FormatMoney(msg.TotalCents, msg.Currency)))
	return strings.Join(lines, "\n")
}

// FormatMoney renders minor units as a decimal amount with currency code.
// Only used for the human-readable message; stored amounts stay integral.
func FormatMoney(cents int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}
