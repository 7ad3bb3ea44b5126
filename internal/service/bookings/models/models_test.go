package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "standard mobile number", phone: "5321234567", want: "5******67"},
		{name: "short number passes through", phone: "1234", want: "1234"},
		{name: "five digits", phone: "53212", want: "5*12"},
		{name: "empty", phone: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhone(tt.phone))
		})
	}
}
