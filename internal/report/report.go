// Package report renders valuations: a four-line text summary for the
// terminal, and rounded JSON and CSV files for batch runs.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/bs-parity/internal/valuation"
)

const (
	pricePlaces    = 6
	residualPlaces = 12
)

// Row is the flattened, rounded form of a valuation written to files.
// Inputs are kept at full precision.
type Row struct {
	Scenario         string          `json:"scenario"`
	Spot             decimal.Decimal `json:"spot"`
	Strike           decimal.Decimal `json:"strike"`
	Rate             decimal.Decimal `json:"rate"`
	Expiry           decimal.Decimal `json:"expiry"`
	Volatility       decimal.Decimal `json:"volatility"`
	D1               decimal.Decimal `json:"d1"`
	D2               decimal.Decimal `json:"d2"`
	Call             decimal.Decimal `json:"call"`
	Put              decimal.Decimal `json:"put"`
	Forward          decimal.Decimal `json:"forward"`
	ParityResidual   decimal.Decimal `json:"parity_residual"`
	ParityDifference decimal.Decimal `json:"parity_difference"`
	CallDelta        decimal.Decimal `json:"call_delta"`
	PutDelta         decimal.Decimal `json:"put_delta"`
	Gamma            decimal.Decimal `json:"gamma"`
	Vega             decimal.Decimal `json:"vega"`
}

func rounded(x float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(places)
}

// Rows converts valuations for the JSON and CSV writers.
func Rows(vals []*valuation.Valuation) []Row {
	rows := make([]Row, 0, len(vals))
	for _, v := range vals {
		s := v.Scenario
		rows = append(rows, Row{
			Scenario:         s.Name,
			Spot:             decimal.NewFromFloat(s.Spot),
			Strike:           decimal.NewFromFloat(s.Strike),
			Rate:             decimal.NewFromFloat(s.Rate),
			Expiry:           decimal.NewFromFloat(s.Expiry),
			Volatility:       decimal.NewFromFloat(s.Volatility),
			D1:               rounded(v.D1, pricePlaces),
			D2:               rounded(v.D2, pricePlaces),
			Call:             rounded(v.Call, pricePlaces),
			Put:              rounded(v.Put, pricePlaces),
			Forward:          rounded(v.Parity.Forward, pricePlaces),
			ParityResidual:   rounded(v.Parity.Residual, residualPlaces),
			ParityDifference: rounded(v.Parity.Difference, residualPlaces),
			CallDelta:        rounded(v.Greeks.CallDelta, pricePlaces),
			PutDelta:         rounded(v.Greeks.PutDelta, pricePlaces),
			Gamma:            rounded(v.Greeks.Gamma, pricePlaces),
			Vega:             rounded(v.Greeks.Vega, pricePlaces),
		})
	}
	return rows
}

// WriteText prints the four-line summary of a single valuation:
//
//	Call price: ...
//	Put price: ...
//	Put-call parity check: <signed residual>
//	Difference: <absolute residual>
func WriteText(w io.Writer, v *valuation.Valuation) error {
	lines := []struct {
		label string
		value float64
	}{
		{"Call price", v.Call},
		{"Put price", v.Put},
		{"Put-call parity check", v.Parity.Residual},
		{"Difference", v.Parity.Difference},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, strconv.FormatFloat(l.value, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the rounded rows of vals to <outdir>/valuations.json.
func WriteJSON(vals []*valuation.Valuation, outdir string) error {
	b, err := json.MarshalIndent(Rows(vals), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "valuations.json"), b, 0644)
}

// WriteCSV writes the rounded rows of vals to <outdir>/valuations.csv,
// one line per scenario after a header.
func WriteCSV(vals []*valuation.Valuation, outdir string) (err error) {
	f, err := os.Create(filepath.Join(outdir, "valuations.csv"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	headers := []string{"scenario", "spot", "strike", "rate", "expiry", "volatility", "d1", "d2", "call", "put", "forward", "parity_residual", "parity_difference", "call_delta", "put_delta", "gamma", "vega"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, r := range Rows(vals) {
		row := []string{r.Scenario, r.Spot.String(), r.Strike.String(), r.Rate.String(), r.Expiry.String(), r.Volatility.String(), r.D1.String(), r.D2.String(), r.Call.String(), r.Put.String(), r.Forward.String(), r.ParityResidual.String(), r.ParityDifference.String(), r.CallDelta.String(), r.PutDelta.String(), r.Gamma.String(), r.Vega.String()}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
