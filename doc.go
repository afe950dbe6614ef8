// Package taxes computes Brazilian capital-gains tax obligations from
// an investor's trading history.
//
// The input is a complete batch of buy/sell transactions, typically
// read from a brokerage CSV export. The package replays them in strict
// chronological order, maintaining per ticker the held quantity and
// the weighted-average acquisition price (the legally mandated cost
// basis), and snapshots both at every calendar year end so that
// holdings can be valued for any year in constant time.
//
// On top of that replay, one calculator per asset class (stocks,
// real-estate funds, ETFs, subscription rights, crypto) derives the
// yearly filing figures: monthly realized profit or loss, year-over-
// year holdings comparison, and the monthly DARF withholding charges,
// each class applying its own rate and exemption rules.
//
// Over-sells are deliberately permissive: selling more than held
// closes the position instead of failing, matching how the supported
// brokerage exports record subscription exercises and splits.
//
// This package is the foundational logic of the `birt` command-line
// tool.
package taxes
