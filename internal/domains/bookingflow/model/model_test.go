package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripgate/internal/domains/bookingflow/model"
)

func mustRange(t *testing.T, start, end string) model.DateRange {
	t.Helper()

	r, err := model.ParseDateRange(start, end)
	assert.NoError(t, err)

	return r
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		first    [2]string
		second   [2]string
		expected bool
	}{
		{
			name:     "shared boundary day overlaps",
			first:    [2]string{"2024-05-01", "2024-05-05"},
			second:   [2]string{"2024-05-05", "2024-05-10"},
			expected: true,
		},
		{
			name:     "adjacent ranges do not overlap",
			first:    [2]string{"2024-05-01", "2024-05-05"},
			second:   [2]string{"2024-05-06", "2024-05-10"},
			expected: false,
		},
		{
			name:     "contained range overlaps",
			first:    [2]string{"2024-05-01", "2024-05-31"},
			second:   [2]string{"2024-05-10", "2024-05-12"},
			expected: true,
		},
		{
			name:     "disjoint before",
			first:    [2]string{"2024-04-01", "2024-04-10"},
			second:   [2]string{"2024-05-01", "2024-05-10"},
			expected: false,
		},
		{
			name:     "identical ranges overlap",
			first:    [2]string{"2024-05-01", "2024-05-05"},
			second:   [2]string{"2024-05-01", "2024-05-05"},
			expected: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			first := mustRange(t, test.first[0], test.first[1])
			second := mustRange(t, test.second[0], test.second[1])

			assert.Equal(t, test.expected, first.Overlaps(second))
			assert.Equal(t, test.expected, second.Overlaps(first))
		})
	}
}

func TestDateRange_DayCount(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{name: "four nights", start: "2024-05-01", end: "2024-05-05", expected: 4},
		{name: "same day", start: "2024-05-01", end: "2024-05-01", expected: 0},
		{name: "reversed floors at zero", start: "2024-05-05", end: "2024-05-01", expected: 0},
		{name: "one night", start: "2024-05-01", end: "2024-05-02", expected: 1},
		{name: "thirty nights", start: "2024-05-01", end: "2024-05-31", expected: 30},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := mustRange(t, test.start, test.end)

			assert.Equal(t, test.expected, r.DayCount())
		})
	}
}

func TestMonthCount(t *testing.T) {
	assert.Equal(t, 0, model.MonthCount(0))
	assert.Equal(t, 1, model.MonthCount(29))
	assert.Equal(t, 1, model.MonthCount(30))
	assert.Equal(t, 2, model.MonthCount(31))
	assert.Equal(t, 2, model.MonthCount(60))
	assert.Equal(t, 3, model.MonthCount(61))
}

func TestFlow_Steps(t *testing.T) {
	ticket := model.Flow{Kind: model.KindTicket}
	assert.Equal(t, []string{
		model.StateSelectSeat,
		model.StateForm,
		model.StatePayment,
		model.StateOTP,
		model.StateSuccess,
	}, ticket.Steps())

	room := model.Flow{Kind: model.KindRoom}
	assert.Equal(t, []string{
		model.StateForm,
		model.StatePayment,
		model.StateOTP,
		model.StateSuccess,
	}, room.Steps())
}

func TestFlow_PreviousState(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		state    string
		expected string
	}{
		{name: "payment back to form", kind: model.KindRoom, state: model.StatePayment, expected: model.StateForm},
		{name: "otp back to payment", kind: model.KindRoom, state: model.StateOTP, expected: model.StatePayment},
		{name: "first state has no previous", kind: model.KindRoom, state: model.StateForm, expected: ""},
		{name: "success is terminal", kind: model.KindRoom, state: model.StateSuccess, expected: ""},
		{name: "ticket form back to seat selection", kind: model.KindTicket, state: model.StateForm, expected: model.StateSelectSeat},
		{name: "ticket first state has no previous", kind: model.KindTicket, state: model.StateSelectSeat, expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flow := model.Flow{Kind: test.kind, State: test.state}

			assert.Equal(t, test.expected, flow.PreviousState())
		})
	}
}
