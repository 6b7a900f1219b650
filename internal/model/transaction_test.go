package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-15", "2024-01"},
		{"2024-01", "2024-01"},
		{"2024-1-5", "2024-1-"}, // a sloppy date still buckets by prefix
		{"2024", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthKey(tt.date), "date %q", tt.date)
	}
}

func TestTransactionMonth(t *testing.T) {
	tx := Transaction{Type: TypeExpenses, Date: "2024-05-09"}
	assert.Equal(t, "2024-05", tx.Month())
}
