// Package orderstore persists named load orders, one YAML file per order,
// under the data directory.
package orderstore
