package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1050, "10.50"},
		{300000, "3000.00"},
		{999999999, "9999999.99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.minor))
	}
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "77001234567", cleanPhone("+7 (700) 123-45-67"))
	assert.Equal(t, "", cleanPhone("no digits"))
}

func TestFormatOrderMessage(t *testing.T) {
	msg := FormatOrderMessage(OrderSummary{
		ID:          42,
		OrderType:   "DINE_IN",
		TotalAmount: 3300,
		TableNumber: "7",
		Items: []OrderSummaryItem{
			{Name: "Plov", Quantity: 3, Price: 1000},
			{Name: "Tea", Quantity: 1, Price: 300},
		},
	})

	assert.Contains(t, msg, "*NEW ORDER #42*")
	assert.Contains(t, msg, "DINE IN")
	assert.Contains(t, msg, "Table: 7")
	assert.Contains(t, msg, "1. Plov x3 = 30.00")
	assert.Contains(t, msg, "2. Tea x1 = 3.00")
	assert.Contains(t, msg, "*Total: 33.00*")
}

func TestFormatOrderMessage_Delivery(t *testing.T) {
	msg := FormatOrderMessage(OrderSummary{
		ID:              7,
		OrderType:       "DELIVERY",
		TotalAmount:     1000,
		CustomerPhone:   "77001112233",
		DeliveryAddress: "Abay ave 1",
		Items:           []OrderSummaryItem{{Name: "Plov", Quantity: 1, Price: 1000}},
	})

	assert.Contains(t, msg, "DELIVERY")
	assert.Contains(t, msg, "Phone: 77001112233")
	assert.Contains(t, msg, "Address: Abay ave 1")
	assert.NotContains(t, msg, "Table:")
}

func TestSend_DevModeWithoutCredentials(t *testing.T) {
	s := NewWhatsAppSender("", "")
	assert.True(t, s.Send("+7 700 123 45 67", "hello"))
	assert.False(t, s.Send("no digits", "hello"))
}

func TestSend_PostsToGreenAPI(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewWhatsAppSender("1101", "token123")
	s.APIBase = srv.URL

	assert.True(t, s.Send("+7 (700) 123-45-67", "order text"))
	assert.Equal(t, "/waInstance1101/sendMessage/token123", gotPath)
	assert.Equal(t, "77001234567@c.us", gotBody["chatId"])
	assert.Equal(t, "order text", gotBody["message"])
}

func TestSend_ServerErrorReturnsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewWhatsAppSender("1101", "token123")
	s.APIBase = srv.URL
	assert.False(t, s.Send("77001234567", "order text"))
}
