package taxes

import (
	"fmt"
	"sort"

	"github.com/lslemes/brazilian-income-tax-helper/date"
)

// TradeSide identifies the direction of a trade.
type TradeSide int

const (
	Buy TradeSide = iota
	Sell
)

func (s TradeSide) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTradeSide parses the operation keyword used in brokerage CSV
// exports ("compra", "venda").
func ParseTradeSide(s string) (TradeSide, error) {
	switch s {
	case "compra":
		return Buy, nil
	case "venda":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown operation type %q", s)
	}
}

// AssetClass enumerates the asset categories, each taxed under its own
// exemption and rate rules.
type AssetClass int

const (
	Stock AssetClass = iota
	Fii
	FixedIncomeEtf
	VariableIncomeEtf
	Subscription
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case Stock:
		return "stock"
	case Fii:
		return "fii"
	case FixedIncomeEtf:
		return "fixed-income-etf"
	case VariableIncomeEtf:
		return "variable-income-etf"
	case Subscription:
		return "subscription"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses the class keyword used in brokerage CSV
// exports.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "ação":
		return Stock, nil
	case "FII":
		return Fii, nil
	case "etfFixa":
		return FixedIncomeEtf, nil
	case "etfVariavel":
		return VariableIncomeEtf, nil
	case "subscricao":
		return Subscription, nil
	case "cripto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class %q", s)
	}
}

// Asset identifies a traded asset by its exchange ticker and class.
type Asset struct {
	Ticker string
	Class  AssetClass
}

// Transaction is an immutable record of one trade. Realized profit or
// loss is not part of it, the replay produces Trade values instead of
// mutating transactions in place.
type Transaction struct {
	date     date.Date
	side     TradeSide
	asset    Asset
	quantity Quantity
	price    Money // unit price
}

// NewTransaction validates and builds a trade record. The quantity
// must be positive and the unit price must not be negative.
func NewTransaction(on date.Date, side TradeSide, asset Asset, quantity Quantity, price Money) (Transaction, error) {
	if !quantity.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction must have a positive quantity %s", quantity)
	}
	if price.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction must not have negative price %s", price)
	}
	return Transaction{date: on, side: side, asset: asset, quantity: quantity, price: price}, nil
}

// When returns the date on which the trade occurred.
func (t Transaction) When() date.Date { return t.date }

// Side returns the trade direction.
func (t Transaction) Side() TradeSide { return t.side }

// Asset returns the traded asset.
func (t Transaction) Asset() Asset { return t.asset }

// Quantity returns the number of units traded.
func (t Transaction) Quantity() Quantity { return t.quantity }

// Price returns the unit price.
func (t Transaction) Price() Money { return t.price }

// Value returns the notional value of the trade, price times quantity.
func (t Transaction) Value() Money { return t.price.Mul(t.quantity) }

// stableSortByDate sorts transactions by date ascending. The sort is
// stable, trades on the same day keep their input order, so same-day
// sequencing follows the source file.
func stableSortByDate(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].When().Before(transactions[j].When())
	})
}

// filterByClass returns the transactions belonging to any of the given
// asset classes, preserving input order.
func filterByClass(transactions []Transaction, classes ...AssetClass) []Transaction {
	var filtered []Transaction
	for _, tx := range transactions {
		for _, class := range classes {
			if tx.Asset().Class == class {
				filtered = append(filtered, tx)
				break
			}
		}
	}
	return filtered
}
