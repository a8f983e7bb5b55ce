// Package board implements the filter and sort engine for the listing.
//
// Compute is a pure function of the dataset and a Filter. Filters combine
// with logical AND; sorting is stable so ties keep their input order.
package board
