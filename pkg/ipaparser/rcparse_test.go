package ipaparser

import (
	"reflect"
	"testing"

	"github.com/danmysak/ipaparser/internal/strutil"
)

func TestParseRC(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Config
		wantErr bool
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    &Config{Brackets: strutil.Keep},
		},
		{
			name: "overrides substitutions and brackets",
			content: "substitutions = true\n" +
				"brackets = \"strip\"\n",
			want: &Config{Substitutions: true, Brackets: strutil.Strip},
		},
		{
			name: "combined sequences",
			content: "combined = [[\"t\", \"s\"], [\"d\", \"z\"]]\n",
			want: &Config{
				Brackets: strutil.Keep,
				Combined: [][]string{{"t", "s"}, {"d", "z"}},
			},
		},
		{
			name:    "unknown field is rejected",
			content: "unknown = true\n",
			wantErr: true,
		},
		{
			name:    "invalid brackets value fails validation",
			content: "brackets = \"loud\"\n",
			wantErr: true,
		},
		{
			name:    "malformed toml",
			content: "not valid toml {{{",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRC(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRC() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRC() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadRC_MissingFile(t *testing.T) {
	if _, err := LoadRC("/nonexistent/ipaparserrc.toml"); err == nil {
		t.Error("LoadRC() with a missing file: error = nil, want non-nil")
	}
}
