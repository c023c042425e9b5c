package requestqr

import (
	"github.com/shopspring/decimal"

	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/qrcode"
)

type Request struct {
	Account entity.AccountRef
	Amount  decimal.Decimal
}

// UseCase renders a scannable payment request: the payee's account ref and
// the asked amount, QR-encoded for the payer to scan.
type UseCase struct {
	generator qrcode.Generator
}

func NewUseCase(generator qrcode.Generator) *UseCase {
	return &UseCase{generator: generator}
}

func (uc *UseCase) Execute(req Request) ([]byte, error) {
	if !req.Amount.IsPositive() {
		return nil, entity.ErrInvalidAmount
	}
	return uc.generator.Generate(qrcode.QRData{
		BankID:    req.Account.BankID,
		ToAccount: req.Account.AccountID,
		Amount:    req.Amount,
	})
}
