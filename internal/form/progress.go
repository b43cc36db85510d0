package form

// stepWeight is each step's share of the progress bar; three steps partition
// the 0..1 range evenly.
const stepWeight = 1.0 / 3

// Progress maps the current step and draft to a completion fraction in [0,1].
// It feeds the progress bar only; it never gates navigation. Within a step,
// filling a field can only raise the result.
func Progress(step int, d Draft) float64 {
	var filled, total int
	switch step {
	case 0:
		total = 4
		filled = countFilled(d.Name != "", d.SKU != "", d.Category != "", d.Image != nil)
	case 1:
		total = 4
		filled = countFilled(d.QuantityType != "", d.UnitsInStock != "",
			d.CostPrice != "", d.SellingPrice != "")
	case 2:
		total = 5
		// the trailing true keeps the last step from ever reading as untouched
		filled = countFilled(d.LowStockThreshold != "",
			d.Expiry.Month != "" && d.Expiry.Year != "",
			d.Supplier.Name != "", d.Supplier.Phone != "", true)
	default:
		return 1
	}

	p := float64(step)*stepWeight + float64(filled)/float64(total)*stepWeight
	if p > 1 {
		return 1
	}
	return p
}

func countFilled(checks ...bool) int {
	n := 0
	for _, ok := range checks {
		if ok {
			n++
		}
	}
	return n
}
