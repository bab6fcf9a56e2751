package model_test

import (
	"realestate_crud/internal/domain/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPropertyPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page           int
		size           int
		wantTotalPages int
	}{
		{name: "even split", total: 10, page: 0, size: 5, wantTotalPages: 2},
		{name: "partial last page", total: 11, page: 2, size: 5, wantTotalPages: 3},
		{name: "empty result", total: 0, page: 0, size: 5, wantTotalPages: 0},
		{name: "single element", total: 1, page: 0, size: 5, wantTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.NewPropertyPage(nil, tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalElements)
			assert.Equal(t, tt.page, p.Number)
			assert.Equal(t, tt.size, p.Size)
			assert.NotNil(t, p.Content, "content must marshal as [], not null")
		})
	}
}
