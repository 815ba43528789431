package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlainText(t *testing.T) {
	tests := []struct {
		name  string
		spans []RichText
		want  string
	}{
		{name: "nil", spans: nil, want: ""},
		{name: "empty", spans: []RichText{}, want: ""},
		{name: "no separator", spans: []RichText{{PlainText: "a"}, {PlainText: "b"}}, want: "ab"},
		{name: "keeps order", spans: []RichText{{PlainText: "go "}, {PlainText: ""}, {PlainText: "1.25"}}, want: "go 1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPlainText(tt.spans))
		})
	}
}
