package payment

import (
	"regexp"
	"strings"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

var accountRgx = regexp.MustCompile(`^[A-Z0-9]{8,34}$`)

// Method is how a ticket is paid for. The zero value is not a valid method;
// build one with BankTransfer or Cash.
type Method struct {
	kind    domain.PaymentKind
	account string
}

// BankTransfer pays from an IBAN-like account number. Spaces are ignored and
// letters are upper-cased.
func BankTransfer(account string) Method {
	return Method{
		kind:    domain.PaymentKindBankTransfer,
		account: strings.ToUpper(strings.ReplaceAll(account, " ", "")),
	}
}

func Cash() Method {
	return Method{kind: domain.PaymentKindCash}
}

func (m Method) Kind() domain.PaymentKind {
	return m.kind
}

func (m Method) Account() string {
	return m.account
}

// MaskedAccount keeps the last four characters of the account visible.
func (m Method) MaskedAccount() string {
	if len(m.account) <= 4 {
		return m.account
	}

	return strings.Repeat("*", len(m.account)-4) + m.account[len(m.account)-4:]
}

// ParseMethod builds a Method from its wire form.
func ParseMethod(kind, account string) (Method, error) {
	switch domain.PaymentKind(kind) {
	case domain.PaymentKindBankTransfer:
		return BankTransfer(account), nil
	case domain.PaymentKindCash:
		return Cash(), nil
	default:
		return Method{}, ErrUnknownMethod
	}
}
