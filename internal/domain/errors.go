package domain

import "errors"

// Kind classifies a domain error.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindAccount covers failures caused by the account's own state.
	KindAccount
	// KindTransaction covers failures caused by the transaction itself.
	KindTransaction
)

func (k Kind) String() string {
	switch k {
	case KindAccount:
		return "AccountError"
	case KindTransaction:
		return "TransactionError"
	default:
		return "UnknownError"
	}
}

// Error is a classified domain error. Values are used as sentinels.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

var (
	// Account errors
	ErrAccountLocked     = &Error{Kind: KindAccount, msg: "account is locked"}
	ErrInsufficientFunds = &Error{Kind: KindAccount, msg: "insufficient funds"}

	// Transaction errors
	ErrNegativeAmount = &Error{Kind: KindTransaction, msg: "amount must not be negative"}
	ErrMissingAmount  = &Error{Kind: KindTransaction, msg: "transaction amount is missing"}
	ErrOwnerMismatch  = &Error{Kind: KindTransaction, msg: "transaction account does not match account"}
	ErrOverflow       = &Error{Kind: KindTransaction, msg: "arithmetic overflow"}
	ErrUnderflow      = &Error{Kind: KindTransaction, msg: "arithmetic underflow"}
)

// ErrMalformedRecord marks an input row that could not be parsed into a Transaction.
// Such rows never reach the engine.
var ErrMalformedRecord = errors.New("malformed transaction record")

// KindOf returns the Kind of the first domain error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
