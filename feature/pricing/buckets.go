package pricing

// PriceBucket maps a single-card market price to its range bucket.
// Buckets are half-open; a boundary price lands in the higher bucket.
func PriceBucket(price float64) string {
	switch {
	case price < 1:
		return "under_1"
	case price < 5:
		return "1_to_5"
	case price < 10:
		return "5_to_10"
	case price < 25:
		return "10_to_25"
	case price < 50:
		return "25_to_50"
	case price < 100:
		return "50_to_100"
	case price < 500:
		return "100_to_500"
	default:
		return "over_500"
	}
}

// ValueBucket maps a deck total to its range bucket. Same half-open rule.
func ValueBucket(value float64) string {
	switch {
	case value < 25:
		return "under_25"
	case value < 50:
		return "25_to_50"
	case value < 100:
		return "50_to_100"
	case value < 200:
		return "100_to_200"
	case value < 500:
		return "200_to_500"
	default:
		return "over_500"
	}
}
