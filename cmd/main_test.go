package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"serve"}, want: nil},
		{args: []string{"serve", "-c", "a.yml"}, want: []string{"-c", "a.yml"}},
		{args: []string{"--config", "b.yml", "migrate"}, want: []string{"-c", "b.yml"}},
		{args: []string{"migrate", "--config=c.yml"}, want: []string{"-c", "c.yml"}},
		{args: []string{"serve", "-c"}, want: nil},
		{args: []string{"serve", "--down", "x"}, want: nil},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, configArgs(tt.args), tt.args)
	}
}
