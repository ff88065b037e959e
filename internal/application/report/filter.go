package report

// Filter selects which movement sources a report covers.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterChargeOuts Filter = "chargeouts"
	FilterDeliveries Filter = "deliveries"
)

// ParseFilter maps the query-string value to a Filter. Unrecognized or empty
// values fall back to FilterAll; "charge-outs" is accepted as an alias.
func ParseFilter(s string) Filter {
	switch s {
	case "chargeouts", "charge-outs":
		return FilterChargeOuts
	case "deliveries":
		return FilterDeliveries
	default:
		return FilterAll
	}
}

// IncludesChargeOuts reports whether charge-out rows are in scope.
func (f Filter) IncludesChargeOuts() bool {
	return f == FilterAll || f == FilterChargeOuts
}

// IncludesDeliveries reports whether delivery rows are in scope.
func (f Filter) IncludesDeliveries() bool {
	return f == FilterAll || f == FilterDeliveries
}

// ReportTypeName is the name embedded in export filenames, derived from the
// filter and never from record content.
func (f Filter) ReportTypeName() string {
	switch f {
	case FilterChargeOuts:
		return "Charge-Outs"
	case FilterDeliveries:
		return "Deliveries"
	default:
		return "Parts"
	}
}
