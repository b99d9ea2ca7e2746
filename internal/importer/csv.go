// Package importer parses bulk holding uploads. The expected input is the
// brokerage-export CSV shape: a header row naming a ticker column
// ("Ticker" or "Symbol"), a "Quantity" column, and an "Average Cost Basis"
// column, with quoted fields allowed.
package importer

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// Result reports what an import produced. Rows that fail to parse or carry a
// non-positive quantity are skipped silently and only counted.
type Result struct {
	Holdings    []model.Holding `json:"holdings"`
	SkippedRows int             `json:"skippedRows"`
}

// ParseHoldings reads CSV rows into security holdings. Column positions come
// from the header row; the ticker column may be named Ticker or Symbol, and
// the per-unit cost column Average Cost Basis. Returns an empty result when
// the header names no usable columns.
func ParseHoldings(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows with trailing columns are common in exports
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, err
	}

	tickerCol, quantityCol, costCol := columnIndexes(header)
	if tickerCol < 0 || quantityCol < 0 {
		return Result{}, nil
	}

	var result Result
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip it, keep reading.
			result.SkippedRows++
			continue
		}

		h, ok := parseRow(row, tickerCol, quantityCol, costCol)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Holdings = append(result.Holdings, h)
	}
	return result, nil
}

// columnIndexes locates the contract columns in the header row,
// case-insensitively. A missing cost column returns -1; cost is optional.
func columnIndexes(header []string) (ticker, quantity, cost int) {
	ticker, quantity, cost = -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "ticker", "symbol":
			if ticker < 0 {
				ticker = i
			}
		case "quantity":
			if quantity < 0 {
				quantity = i
			}
		case "average cost basis":
			if cost < 0 {
				cost = i
			}
		}
	}
	return ticker, quantity, cost
}

func parseRow(row []string, tickerCol, quantityCol, costCol int) (model.Holding, bool) {
	if tickerCol >= len(row) || quantityCol >= len(row) {
		return model.Holding{}, false
	}

	ticker := strings.ToUpper(strings.TrimSpace(row[tickerCol]))
	if ticker == "" {
		return model.Holding{}, false
	}

	quantity, err := parseAmount(row[quantityCol])
	if err != nil || quantity <= 0 {
		return model.Holding{}, false
	}

	sec := model.SecurityHolding{
		Ticker:   ticker,
		Quantity: quantity,
	}
	if costCol >= 0 && costCol < len(row) {
		if price, err := parseAmount(row[costCol]); err == nil && price > 0 {
			sec.PurchasePrice = &price
		}
	}
	return model.NewSecurityHolding(uuid.New().String(), sec), true
}

// parseAmount reads a numeric cell, tolerating currency symbols, commas and
// surrounding whitespace.
func parseAmount(cell string) (float64, error) {
	cleaned := strings.TrimSpace(cell)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return strconv.ParseFloat(cleaned, 64)
}
