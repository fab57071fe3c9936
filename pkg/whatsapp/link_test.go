package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessage() Message {
	return Message{
		RestaurantName: "La Esquina",
		OrderNumber:    "#000123",
		OrderID:        "11111111-2222-3333-4444-555555555555",
		CustomerName:   "Juan Pérez",
		CustomerPhone:  "5491166778899",
		Delivery:       "delivery",
		Currency:       "ARS",
		Lines: []MessageLine{
			{Qty: 2, Name: "Burger Clásica", LineTotalCents: 1100000},
			{Qty: 1, Name: "Papas", Notes: "sin sal", LineTotalCents: 300000},
		},
		TotalCents: 1400000,
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5491122334455", NormalizePhone("+54 9 11 2233-4455"))
	assert.Equal(t, "5491122334455", NormalizePhone("5491122334455"))
	assert.Equal(t, "", NormalizePhone("sin-numeros"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestRender_FullMessage(t *testing.T) {
	msg := sampleMessage()
	msg.DeliveryAddress = "Av. Rivadavia 500"
	msg.Notes = "tocar timbre"

	text := Render(msg)
	lines := strings.Split(text, "\n")

	assert.Equal(t, "Nuevo pedido en La Esquina", lines[0])
	assert.Equal(t, "Pedido: #000123 (11111111-2222-3333-4444-555555555555)", lines[1])
	assert.Equal(t, "Cliente: Juan Pérez", lines[2])
	assert.Equal(t, "Telefono: 5491166778899", lines[3])
	assert.Equal(t, "Entrega: delivery", lines[4])
	assert.Equal(t, "Direccion: Av. Rivadavia 500", lines[5])
	assert.Equal(t, "Notas: tocar timbre", lines[6])
	assert.Equal(t, "Items:", lines[7])
	assert.Equal(t, "- 2 x Burger Clásica = 11000.00 ARS", lines[8])
	assert.Equal(t, "- 1 x Papas (sin sal) = 3000.00 ARS", lines[9])
	assert.Equal(t, "Total: 14000.00 ARS", lines[10])
}

func TestRender_OmitsEmptyOptionalBlocks(t *testing.T) {
	text := Render(sampleMessage())

	assert.NotContains(t, text, "Direccion:")
	assert.NotContains(t, text, "Notas:")
	assert.Contains(t, text, "Items:")
}

func TestBuildLink(t *testing.T) {
	link, err := BuildLink("+54 9 11 2233-4455", sampleMessage())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5491122334455?text="), link)

	encoded := strings.TrimPrefix(link, "https://wa.me/5491122334455?text=")
	text, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Contains(t, text, "Nuevo pedido en La Esquina")
	assert.Contains(t, text, "Total: 14000.00 ARS")
}

func TestBuildLink_PhoneWithoutDigits(t *testing.T) {
	_, err := BuildLink("sin-numeros", sampleMessage())
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "11000.00 ARS", FormatMoney(1100000, "ARS"))
	assert.Equal(t, "0.50 USD", FormatMoney(50, "USD"))
	assert.Equal(t, "0.00 ARS", FormatMoney(0, "ARS"))
}
