package sitechat_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
)

func TestHasTrigger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty text", text: "", want: false},
		{name: "no trigger", text: "hello there", want: false},
		{name: "english trigger", text: "Where are the docs?", want: true},
		{name: "german trigger", text: "Wo finde ich die Dokumentation?", want: true},
		{name: "case-insensitive", text: "LOGIN please", want: true},
		{name: "substring match", text: "homepage", want: true},
		{name: "community", text: "join the Community", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sitechat.HasTrigger(tt.text))
		})
	}
}
