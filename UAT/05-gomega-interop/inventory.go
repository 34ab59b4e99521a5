// Package inventory tracks stock levels, as a subject for mixing gomega and verify matchers.
package inventory

import "slices"

// Item is a stocked product.
type Item struct {
	SKU   string
	Count int
}

// LowStock returns the SKUs of items with fewer than threshold units, sorted.
func LowStock(items []Item, threshold int) []string {
	low := []string{}

	for _, item := range items {
		if item.Count < threshold {
			low = append(low, item.SKU)
		}
	}

	slices.Sort(low)

	return low
}
