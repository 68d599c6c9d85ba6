// Package drone provides the Drone aggregate: a fleet member with static
// capabilities (capacity, cruise speed, route range, battery consumption) and
// mutable flight state (status, position, battery, recharge cycles).
//
// The package includes:
//   - Drone: the aggregate, owned by the fleet slice and shared by pointer with flights
//   - Status: a closed enumeration with an explicit transition table
//
// Status transitions:
//
//	Idle ──> Loading ──> InFlight ──> Idle
//	  │                                 ▲
//	  └──────────> Recharging ──────────┘
//
// Delivering and Returning are display-only states; nothing transitions into them.
//
// Key business rules:
//   - Capacity, cruise speed, route range and consumption are strictly positive
//   - Battery stays within [0,100]; it only drops when a flight lands and only
//     returns to 100 when a recharge finishes
//   - Effective range shrinks with carried weight (see EffectiveRange)
package drone
