package qrcode

import "github.com/shopspring/decimal"

type QRData struct {
	BankID    string          `json:"bank_id"`
	ToAccount string          `json:"to_account"`
	Amount    decimal.Decimal `json:"amount"`
}

type Generator interface {
	Generate(data QRData) ([]byte, error)
}
