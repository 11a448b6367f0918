// Package tax resolves US sales tax for an order destination. A zip code
// maps to a state through its three-digit prefix, and the state maps to a
// combined state plus average local rate. Destinations that resolve to no
// state are taxed at zero rather than rejected, keeping every order quotable.
package tax
