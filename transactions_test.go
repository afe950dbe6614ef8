package taxes

import (
	"testing"
	"time"

	"github.com/lslemes/brazilian-income-tax-helper/date"
)

func TestNewTransaction_Validation(t *testing.T) {
	asset := Asset{Ticker: "ABEV3", Class: Stock}
	on := date.New(2021, time.March, 9)

	testCases := []struct {
		name     string
		quantity Quantity
		price    Money
		wantErr  bool
	}{
		{name: "valid", quantity: Q(10), price: M(15.5)},
		{name: "free attribution", quantity: Q(10), price: M(0)},
		{name: "zero quantity", quantity: Q(0), price: M(15.5), wantErr: true},
		{name: "negative quantity", quantity: Q(-10), price: M(15.5), wantErr: true},
		{name: "negative price", quantity: Q(10), price: M(-15.5), wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction(on, Buy, asset, tc.quantity, tc.price)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewTransaction() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestTransaction_Value(t *testing.T) {
	trade := tx(t, "2021-03-09", Buy, Stock, "ABEV3", 37, 18.31)
	assertMoney(t, "Value()", trade.Value(), 677.47)
}

func TestParseTradeSide(t *testing.T) {
	testCases := []struct {
		in      string
		want    TradeSide
		wantErr bool
	}{
		{in: "compra", want: Buy},
		{in: "venda", want: Sell},
		{in: "COMPRA", wantErr: true},
		{in: "transfer", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTradeSide(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseTradeSide(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTradeSide(%q) returned unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseTradeSide(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseAssetClass(t *testing.T) {
	testCases := []struct {
		in      string
		want    AssetClass
		wantErr bool
	}{
		{in: "ação", want: Stock},
		{in: "FII", want: Fii},
		{in: "etfFixa", want: FixedIncomeEtf},
		{in: "etfVariavel", want: VariableIncomeEtf},
		{in: "subscricao", want: Subscription},
		{in: "cripto", want: Crypto},
		{in: "fii", wantErr: true},
		{in: "bond", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAssetClass(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseAssetClass(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssetClass(%q) returned unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseAssetClass(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
