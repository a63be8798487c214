// Package types contains common types used across the event package.
package types
