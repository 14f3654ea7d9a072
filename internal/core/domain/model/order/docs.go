// Package order provides domain entities for tracking order lifecycles
// through timestamped status events.
//
// The package includes:
//   - Order: The aggregate root holding the projected latest status
//   - StatusEvent: A single timestamped status observation in the ledger
//   - Status: The three-valued status code plus Unset for empty ledgers
//
// Key business rules:
//   - An order's current status is the status of its event with the greatest
//     created timestamp; ties are broken by the greatest event identifier
//   - An order with no events has latest status Unset
//   - Statuses carry no transition rules: any status may follow any other
//   - Deleting an order deletes all of its status events; deleting an event
//     never deletes the order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
