package taxes

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lslemes/brazilian-income-tax-helper/date"
	"github.com/shopspring/decimal"
)

// this file reads the brokerage export format: a comma separated file
// with a header row and the Portuguese column names
// data,operacao,classe,ticker,quantidade,preco,corretora.

// columns required in the header; corretora is read but unused.
var requiredColumns = []string{"data", "operacao", "classe", "ticker", "quantidade", "preco"}

// ImportTransactions reads transactions from 'r' in the brokerage
// export format. Any malformed row is fatal: tax reports must never be
// computed from a partially parsed batch.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // trailing columns (corretora, notes) are tolerated

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", name)
		}
	}

	var transactions []Transaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV record on line %d: %w", line, err)
		}
		tx, err := parseTransaction(record, index)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func parseTransaction(record []string, index map[string]int) (Transaction, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	on, err := date.Parse(field("data"))
	if err != nil {
		return Transaction{}, err
	}
	side, err := ParseTradeSide(field("operacao"))
	if err != nil {
		return Transaction{}, err
	}
	class, err := ParseAssetClass(field("classe"))
	if err != nil {
		return Transaction{}, err
	}
	quantity, err := decimal.NewFromString(field("quantidade"))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid quantity %q: %w", field("quantidade"), err)
	}
	price, err := decimal.NewFromString(field("preco"))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid price %q: %w", field("preco"), err)
	}

	return NewTransaction(on, side, Asset{Ticker: field("ticker"), Class: class}, Q(quantity), M(price))
}
