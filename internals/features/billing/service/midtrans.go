package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
)

/* =========================================================
   Midtrans Client
========================================================= */

var snapClient snap.Client

// InitMidtrans must be called at bootstrap. useProduction selects the
// production gateway; anything else hits the sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if serverKey == "" {
		return
	}
	if useProduction {
		snapClient.New(serverKey, midtrans.Production)
	} else {
		snapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// GenerateSnapToken creates a checkout token for one subscription order.
// Returns token and redirect URL.
func GenerateSnapToken(orderID string, amount decimal.Decimal, planName string, cust CustomerInput) (string, string, error) {
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}
	gross := amount.IntPart()
	if gross <= 0 {
		return "", "", errors.New("invalid subscription amount")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    orderID,
			Name:  planName,
			Price: gross,
			Qty:   1,
		}},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
