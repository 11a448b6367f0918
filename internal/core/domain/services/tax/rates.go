package tax

import "printshop/internal/core/domain/model/kernel"

// combinedRates holds combined state plus average local sales tax rates,
// keyed by two-letter state abbreviation. States with no sales tax are
// omitted and resolve to zero.
var combinedRates = map[string]float64{
	"AL": 0.0929,
	"AK": 0.0182,
	"AZ": 0.0838,
	"AR": 0.0945,
	"CA": 0.0885,
	"CO": 0.0781,
	"CT": 0.0635,
	"DC": 0.0600,
	"FL": 0.0700,
	"GA": 0.0738,
	"HI": 0.0450,
	"ID": 0.0603,
	"IL": 0.0886,
	"IN": 0.0700,
	"IA": 0.0694,
	"KS": 0.0865,
	"KY": 0.0600,
	"LA": 0.0956,
	"ME": 0.0550,
	"MD": 0.0600,
	"MA": 0.0625,
	"MI": 0.0600,
	"MN": 0.0804,
	"MS": 0.0706,
	"MO": 0.0839,
	"NE": 0.0697,
	"NV": 0.0824,
	"NJ": 0.0660,
	"NM": 0.0762,
	"NY": 0.0853,
	"NC": 0.0700,
	"ND": 0.0704,
	"OH": 0.0724,
	"OK": 0.0899,
	"PA": 0.0634,
	"PR": 0.1150,
	"RI": 0.0700,
	"SC": 0.0750,
	"SD": 0.0611,
	"TN": 0.0955,
	"TX": 0.0820,
	"UT": 0.0725,
	"VT": 0.0636,
	"VA": 0.0577,
	"WA": 0.0938,
	"WV": 0.0657,
	"WI": 0.0570,
	"WY": 0.0544,
}

// RateForState returns the combined sales tax rate for a state abbreviation.
// Unknown states return zero.
func RateForState(state string) float64 {
	return combinedRates[state]
}

// RateForZip resolves a destination zip code straight to its sales tax rate.
// Zip codes outside any allocated prefix range are taxed at zero.
func RateForZip(zip kernel.ZipCode) float64 {
	state, ok := StateForZip(zip)
	if !ok {
		return 0
	}
	return RateForState(state)
}
