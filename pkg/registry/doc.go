// Package registry provides a generic, ordered registry of named items.
// Items are listed in registration order, which is how swman keeps its
// managers in declaration order.
package registry
