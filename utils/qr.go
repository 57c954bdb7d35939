package utils

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// MenuURL is the link a customer lands on after scanning a table's code.
func MenuURL(baseURL string, restaurantID, tableID uint) string {
	return fmt.Sprintf("%s/menu/client.html?restaurant_id=%d&table_id=%d", baseURL, restaurantID, tableID)
}

func GenerateQRPNG(url string, size int) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, size)
}

func GenerateQRDataURI(url string, size int) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
