// Package seatmap renders bus seat layouts into bookable grids. A layout is a
// rows×seats_per_row rectangle with a set of permanently excluded seat numbers;
// seats already referenced by a booking are unavailable for the current request only.
package seatmap

import "slices"

// Layout is the seat layout shape the core API attaches to a bus.
type Layout struct {
	Rows        int   `json:"row"`
	SeatsPerRow int   `json:"seats_per_row"`
	Exclude     []int `json:"exclude"`
}

type Seat struct {
	Number   int  `json:"number"`
	Excluded bool `json:"excluded"`
	Booked   bool `json:"booked"`
}

type Grid struct {
	Rows [][]Seat `json:"rows"`
}

// Build numbers seats row-major starting at 1 and marks each as excluded or booked.
func Build(layout Layout, bookedSeats []int) Grid {
	grid := Grid{Rows: make([][]Seat, 0, max(layout.Rows, 0))}

	number := 0

	for range layout.Rows {
		row := make([]Seat, 0, layout.SeatsPerRow)

		for range layout.SeatsPerRow {
			number++

			row = append(row, Seat{
				Number:   number,
				Excluded: slices.Contains(layout.Exclude, number),
				Booked:   slices.Contains(bookedSeats, number),
			})
		}

		grid.Rows = append(grid.Rows, row)
	}

	return grid
}

// Bookable reports whether the given seat number can be selected: it must exist in
// the grid and be neither excluded nor already booked.
func (g Grid) Bookable(number int) bool {
	for _, row := range g.Rows {
		for _, seat := range row {
			if seat.Number == number {
				return !seat.Excluded && !seat.Booked
			}
		}
	}

	return false
}

// Seats flattens the grid in seat-number order.
func (g Grid) Seats() []Seat {
	seats := []Seat{}

	for _, row := range g.Rows {
		seats = append(seats, row...)
	}

	return seats
}
