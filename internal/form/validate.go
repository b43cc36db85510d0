package form

// ValidateStep gates forward navigation. Step 0 needs the identity fields and
// an image (local or remote); step 1 needs the numeric strings non-empty; the
// last step always passes. Numeric coercion and defaulting happen later in
// the save pipeline, not here.
func ValidateStep(step int, d Draft) *MissingFields {
	var missing []string
	switch step {
	case 0:
		if d.Name == "" {
			missing = append(missing, "name")
		}
		if d.SKU == "" {
			missing = append(missing, "sku")
		}
		if d.Category == "" {
			missing = append(missing, "category")
		}
		if d.Image == nil {
			missing = append(missing, "image")
		}
	case 1:
		if d.UnitsInStock == "" {
			missing = append(missing, "units_in_stock")
		}
		if d.CostPrice == "" {
			missing = append(missing, "cost_price")
		}
		if d.SellingPrice == "" {
			missing = append(missing, "selling_price")
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingFields{Step: step, Fields: missing}
}
