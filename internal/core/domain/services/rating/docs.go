// Package rating implements shipping price calculation for outbound parcels.
//
// A price is derived in four steps: the parcel weight is resolved to a
// carrier weight bracket, the destination zip code is resolved to a distance
// from the shop origin, the distance is resolved to a shipping zone, and the
// (tier, bracket, zone) triple is looked up in a static rate table. A local
// pickup discount applies to the economy tier only.
//
// All components are pure and deterministic; the only external input is the
// zip code coordinate index loaded at startup.
package rating
