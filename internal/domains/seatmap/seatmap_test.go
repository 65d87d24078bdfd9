package seatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgate/internal/domains/seatmap"
)

func TestBuild(t *testing.T) {
	layout := seatmap.Layout{Rows: 3, SeatsPerRow: 4, Exclude: []int{1, 12}}

	grid := seatmap.Build(layout, []int{5})

	assert.Len(t, grid.Rows, 3)
	for _, row := range grid.Rows {
		assert.Len(t, row, 4)
	}

	seats := grid.Seats()
	assert.Len(t, seats, 12)
	assert.Equal(t, 1, seats[0].Number)
	assert.Equal(t, 12, seats[11].Number)

	assert.True(t, seats[0].Excluded)
	assert.True(t, seats[11].Excluded)
	assert.True(t, seats[4].Booked)
	assert.False(t, seats[1].Excluded)
	assert.False(t, seats[1].Booked)
}

func TestBuild_EmptyLayout(t *testing.T) {
	grid := seatmap.Build(seatmap.Layout{}, nil)

	assert.Empty(t, grid.Rows)
	assert.Empty(t, grid.Seats())
}

func TestBookable(t *testing.T) {
	layout := seatmap.Layout{Rows: 2, SeatsPerRow: 3, Exclude: []int{2}}
	grid := seatmap.Build(layout, []int{4})

	tests := []struct {
		name   string
		number int
		want   bool
	}{
		{name: "free seat", number: 1, want: true},
		{name: "excluded seat", number: 2, want: false},
		{name: "booked seat", number: 4, want: false},
		{name: "last seat", number: 6, want: true},
		{name: "out of range", number: 7, want: false},
		{name: "zero", number: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Bookable(tt.number))
		})
	}
}
