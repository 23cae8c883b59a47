package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"mealdash/models"
)

// GenerateOrderID produces a human-facing order code: "MD" followed by nine
// random digits. Uniqueness is not checked here; the order_id column carries
// a unique index, so the rare collision surfaces as an insert error.
func GenerateOrderID() string {
	return fmt.Sprintf("MD%d", rand.IntN(900000000)+100000000)
}

// AddonsTotal sums the prices of the requested addon names against the
// resolved catalog rows. Names with no matching row contribute nothing, and a
// name repeated in the request is charged once per occurrence.
func AddonsTotal(names []string, resolved []models.Addon) decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(resolved))
	for _, addon := range resolved {
		prices[addon.Name] = addon.Price
	}

	total := decimal.Zero
	for _, name := range names {
		if price, ok := prices[name]; ok {
			total = total.Add(price)
		}
	}
	return total
}

// ComputeTotal derives an order's total from current catalog prices:
// food price * quantity plus the addon sum. Totals are never stored, so this
// runs on every read as well as at creation time.
func ComputeTotal(food *models.Food, quantity int, addonNames []string, resolved []models.Addon) decimal.Decimal {
	return food.Price.
		Mul(decimal.NewFromInt(int64(quantity))).
		Add(AddonsTotal(addonNames, resolved))
}
