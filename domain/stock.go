package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock categories and units are fixed pick-lists in the inventory form.
const (
	CategoryFilament = "Filament"
	CategoryParts    = "Parts"
	CategorySupplies = "Supplies"
	CategoryTools    = "Tools"
)

const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLitre      = "L"
	UnitMillilitre = "mL"
	UnitPieces     = "pcs"
)

var (
	StockCategories = []string{CategoryFilament, CategoryParts, CategorySupplies, CategoryTools}
	StockUnits      = []string{UnitKilogram, UnitGram, UnitLitre, UnitMillilitre, UnitPieces}
)

func init() {
	// Stored blobs carry quantities as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// StockItem is a stock-keeping-unit record in the `stock` collection.
type StockItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	MinQuantity decimal.Decimal `json:"minQuantity"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// IsLowStock is derived on every read, never stored, so it cannot go stale.
func (s StockItem) IsLowStock() bool {
	return s.Quantity.LessThanOrEqual(s.MinQuantity)
}

func ValidStockCategory(c string) bool {
	for _, v := range StockCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidStockUnit(u string) bool {
	for _, v := range StockUnits {
		if v == u {
			return true
		}
	}
	return false
}
