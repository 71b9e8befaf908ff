// Package catalog holds the static resource catalog: which resources
// exist, which category each belongs to and how it is displayed. The
// catalog is the authority for every mutating request; the resources
// table is only a mirror so positions can reference resources by id.
package catalog
