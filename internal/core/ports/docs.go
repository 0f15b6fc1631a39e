// Package ports declares the contracts between the core and its adapters:
// repositories and the unit of work, the geometry provider used for pricing
// and the notification sink.
package ports
