package service

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// SnapGateway is the part of snap.Client the checkout flow needs.
type SnapGateway interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

// NewSnapGateway returns nil when no server key is configured, which disables checkout.
func NewSnapGateway(serverKey string, useProduction bool) SnapGateway {
	if strings.TrimSpace(serverKey) == "" {
		return nil
	}
	var c snap.Client
	if useProduction {
		c.New(serverKey, midtrans.Production)
	} else {
		c.New(serverKey, midtrans.Sandbox)
	}
	return &c
}

type CustomerInput struct {
	FullName string
	Email    string
	Phone    string
}

func buildSnapRequest(orderID string, grossIDR int64, itemName string, cust CustomerInput) *snap.Request {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossIDR,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:       orderID,
			Price:    grossIDR,
			Qty:      1,
			Name:     truncate(itemName, 50),
			Category: "Apartment fee",
		}},
	}
	if cust.Email != "" || cust.FullName != "" {
		req.CustomerDetail = &midtrans.CustomerDetails{
			FName: cust.FullName,
			Email: cust.Email,
			Phone: cust.Phone,
		}
	}
	return req
}

// NotificationSignature is SHA512(order_id + status_code + gross_amount + server_key), hex encoded.
func NotificationSignature(orderID, statusCode, grossAmount, serverKey string) string {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:])
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
