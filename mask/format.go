package mask

// Format renders digits through d's template.
//
// Non-digits in digits are ignored and digits past Capacity(d) are dropped.
// The output ends at the last digit; empty input renders the literals in
// front of the first slot. With hasTrunkPrefix, d.TrunkPrefix is written
// ahead of the number.
func Format(digits string, d Descriptor, hasTrunkPrefix bool) string {
	ds := digitsOnly(digits)
	if c := Capacity(d); len(ds) > c {
		ds = ds[:c]
	}
	out := Resolve(d, len(ds)).render(ds)
	if hasTrunkPrefix {
		return d.TrunkPrefix + out
	}
	return out
}
