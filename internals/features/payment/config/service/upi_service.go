package service

import (
	"fmt"
	"net/url"
)

// BuildUPIString menyusun deep-link pembayaran UPI yang dibaca aplikasi mobile
// saat QR dipindai. Nama payee di-escape supaya spasi tidak merusak link.
func BuildUPIString(upiID, payeeName string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&cu=INR",
		url.QueryEscape(upiID), url.QueryEscape(payeeName))
}
