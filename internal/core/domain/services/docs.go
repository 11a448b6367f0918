// Package services groups the domain services that implement pricing and
// fulfillment logic spanning multiple aggregates.
//
// The subpackages are:
//   - rating: shipping rate calculation (distance, zones, weight brackets,
//     rate tables)
//   - tax: destination sales tax resolution from ZIP codes
//   - quoting: full quote assembly over the material catalog and rating
//   - packing: box recommendations for outbound orders
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate root.
package services
