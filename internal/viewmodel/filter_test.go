package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"peopleRegistry/models"
)

func TestFilter(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Ana", Email: "ana@x.com"},
		{ID: 2, Name: "Bob", Email: "bob@y.com"},
		{ID: 3, Name: "Estêvão", Email: "ESTEVAO@Z.COM"},
	}

	tests := []struct {
		term string
		want []int64
	}{
		{"an", []int64{1}},
		{"AN", []int64{1}},
		{"y.com", []int64{2}},
		{"ÊVÃ", []int64{3}},
		{"estevao@z", []int64{3}},
		{"@", []int64{1, 2, 3}},
		{"nobody", nil},
		{"", []int64{1, 2, 3}},
		{"   ", []int64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var got []int64
			for _, u := range Filter(users, tt.term) {
				got = append(got, u.ID)
			}
			require.Equal(t, tt.want, got)
		})
	}
}
