package taxes

// Month is one entry of the fixed reporting calendar.
type Month struct {
	Index int    // zero-based position in the calendar year
	Label string
}

// Months is the ordered table of the 12 calendar months. Every monthly
// aggregation in this package is bucketed against this table.
var Months = [12]Month{
	{0, "January"},
	{1, "February"},
	{2, "March"},
	{3, "April"},
	{4, "May"},
	{5, "June"},
	{6, "July"},
	{7, "August"},
	{8, "September"},
	{9, "October"},
	{10, "November"},
	{11, "December"},
}
