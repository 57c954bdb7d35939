package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderSummaryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // snapshot price, minor units
}

type OrderSummary struct {
	ID              uint
	OrderType       string
	TotalAmount     int64
	TableNumber     string
	CustomerPhone   string
	DeliveryAddress string
	Items           []OrderSummaryItem
}

// Money renders minor units as a fixed two-decimal string ("1050" -> "10.50").
func Money(minor int64) string {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// FormatOrderMessage builds the WhatsApp text for a freshly committed order.
func FormatOrderMessage(o OrderSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*NEW ORDER #%d*\n\n", o.ID)
	if o.OrderType == "DELIVERY" {
		b.WriteString("DELIVERY\n")
	} else {
		b.WriteString("DINE IN\n")
	}
	fmt.Fprintf(&b, "Total: %s\n", Money(o.TotalAmount))
	fmt.Fprintf(&b, "%s\n\n", time.Now().Format("02.01.2006 15:04"))

	if o.OrderType == "DELIVERY" {
		if o.CustomerPhone != "" {
			fmt.Fprintf(&b, "Phone: %s\n", o.CustomerPhone)
		}
		if o.DeliveryAddress != "" {
			fmt.Fprintf(&b, "Address: %s\n\n", o.DeliveryAddress)
		}
	} else if o.TableNumber != "" {
		fmt.Fprintf(&b, "Table: %s\n\n", o.TableNumber)
	}

	b.WriteString("*Items:*\n")
	for i, it := range o.Items {
		lineTotal := it.Price * int64(it.Quantity)
		fmt.Fprintf(&b, "%d. %s x%d = %s\n", i+1, it.Name, it.Quantity, Money(lineTotal))
	}
	fmt.Fprintf(&b, "\n*Total: %s*", Money(o.TotalAmount))

	return b.String()
}

// WhatsAppSender posts order summaries to Green API. With no credentials it
// runs in dev mode and only logs the message.
type WhatsAppSender struct {
	APIBase string
	ID      string
	Token   string
	Client  *http.Client
}

func NewWhatsAppSender(id, token string) *WhatsAppSender {
	return &WhatsAppSender{
		APIBase: "https://api.green-api.com",
		ID:      id,
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send is best-effort: the order is already committed when this runs, so
// every failure path just logs and returns false.
func (s *WhatsAppSender) Send(phone, message string) bool {
	clean := cleanPhone(phone)
	if clean == "" {
		return false
	}

	if s.ID == "" || s.Token == "" {
		log.Printf("whatsapp (dev mode) to %s:\n%s", clean, message)
		return true
	}

	body, err := json.Marshal(map[string]string{
		"chatId":  clean + "@c.us",
		"message": message,
	})
	if err != nil {
		log.Println("whatsapp marshal error:", err)
		return false
	}

	url := fmt.Sprintf("%s/waInstance%s/sendMessage/%s", s.APIBase, s.ID, s.Token)
	res, err := s.Client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("whatsapp send error:", err)
		return false
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		log.Println("whatsapp send failed, status:", res.StatusCode)
		return false
	}
	return true
}

func cleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
