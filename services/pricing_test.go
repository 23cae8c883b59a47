package services

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mealdash/models"
)

func TestGenerateOrderID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^MD\d{9}$`)

	for i := 0; i < 1000; i++ {
		id := GenerateOrderID()
		assert.Regexp(t, pattern, id)

		digits, err := strconv.Atoi(id[2:])
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, digits, 100000000)
		assert.LessOrEqual(t, digits, 999999999)
	}
}

func TestComputeTotal_FoodTimesQuantityPlusAddons(t *testing.T) {
	food := &models.Food{Name: "Jollof Rice", Price: decimal.NewFromFloat(45.00)}
	resolved := []models.Addon{
		{Name: "Coke", Price: decimal.NewFromFloat(8.00)},
		{Name: "Extra Chicken", Price: decimal.NewFromFloat(15.00)},
	}

	total := ComputeTotal(food, 2, []string{"Coke", "Extra Chicken"}, resolved)

	// 45*2 + 8 + 15 = 113
	assert.True(t, decimal.NewFromFloat(113.00).Equal(total), "got %s", total)
}

func TestComputeTotal_UnresolvedAddonsContributeNothing(t *testing.T) {
	food := &models.Food{Name: "Burger", Price: decimal.NewFromFloat(35.00)}
	resolved := []models.Addon{{Name: "Coke", Price: decimal.NewFromFloat(8.00)}}

	total := ComputeTotal(food, 1, []string{"Coke", "Renamed Drink", "Ghost Addon"}, resolved)

	assert.True(t, decimal.NewFromFloat(43.00).Equal(total), "got %s", total)
}

func TestComputeTotal_DuplicateAddonNamesChargedPerOccurrence(t *testing.T) {
	food := &models.Food{Name: "Banku", Price: decimal.NewFromFloat(60.00)}
	resolved := []models.Addon{{Name: "Sobolo", Price: decimal.NewFromFloat(10.00)}}

	total := ComputeTotal(food, 1, []string{"Sobolo", "Sobolo"}, resolved)

	assert.True(t, decimal.NewFromFloat(80.00).Equal(total), "got %s", total)
}

func TestComputeTotal_NoAddons(t *testing.T) {
	food := &models.Food{Name: "Burger", Price: decimal.NewFromFloat(35.00)}

	total := ComputeTotal(food, 3, nil, nil)

	assert.True(t, decimal.NewFromFloat(105.00).Equal(total), "got %s", total)
}

func TestAddonsTotal_EmptyNames(t *testing.T) {
	total := AddonsTotal(nil, []models.Addon{{Name: "Coke", Price: decimal.NewFromFloat(8.00)}})
	assert.True(t, total.IsZero())
}
