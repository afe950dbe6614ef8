package taxes

// Darf is one monthly withholding-tax charge (Documento de
// Arrecadação de Receitas Federais). Immutable once built.
type Darf struct {
	Year   int
	Month  string // label from the Months table
	Amount Money  // rounded to cents
}

func newDarf(year int, month Month, amount Money) Darf {
	return Darf{Year: year, Month: month.Label, Amount: amount.Monetary()}
}

// MarshalJSON implements the json.Marshaler interface for Darf.
func (d Darf) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", d.Year)
	w.Append("month", d.Month)
	w.Append("amount", d.Amount)
	return w.MarshalJSON()
}
