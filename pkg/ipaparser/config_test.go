package ipaparser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danmysak/ipaparser/internal/strutil"
)

func TestNewConfig(t *testing.T) {
	got, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	want := &Config{Substitutions: false, Brackets: strutil.Keep}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewConfig() = %+v, want %+v", got, want)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "defaults are valid",
			config: Config{Brackets: strutil.Keep},
		},
		{
			name:   "expand is valid",
			config: Config{Brackets: strutil.Expand},
		},
		{
			name:   "strip is valid",
			config: Config{Brackets: strutil.Strip},
		},
		{
			name:    "unrecognized bracket strategy",
			config:  Config{Brackets: "loud"},
			wantErr: &BracketStrategyError{},
		},
		{
			name:    "combined sequence too short",
			config:  Config{Brackets: strutil.Keep, Combined: [][]string{{"t"}}},
			wantErr: &CombinedLengthError{},
		},
		{
			name:    "combined sequence empty",
			config:  Config{Brackets: strutil.Keep, Combined: [][]string{{}}},
			wantErr: &CombinedLengthError{},
		},
		{
			name:    "combined member starts with a combining mark",
			config:  Config{Brackets: strutil.Keep, Combined: [][]string{{"t", "͡s"}}},
			wantErr: &CombinedSoundError{},
		},
		{
			name:    "combined member is empty",
			config:  Config{Brackets: strutil.Keep, Combined: [][]string{{"t", ""}}},
			wantErr: &CombinedSoundError{},
		},
		{
			name:   "well-formed combined sequence",
			config: Config{Brackets: strutil.Keep, Combined: [][]string{{"t", "s"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %T", tt.wantErr)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(tt.wantErr) {
				t.Errorf("Validate() error type = %T, want %T", err, tt.wantErr)
			}
		})
	}
}

func TestNewConfigWithOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ConfigOption
		want    *Config
		wantErr bool
	}{
		{
			name: "no options keeps defaults",
			opts: nil,
			want: &Config{Brackets: strutil.Keep},
		},
		{
			name: "options apply in order",
			opts: []ConfigOption{
				WithSubstitutions(true),
				WithBrackets(strutil.Strip),
				WithCombined([][]string{{"t", "s"}}),
			},
			want: &Config{
				Substitutions: true,
				Brackets:      strutil.Strip,
				Combined:      [][]string{{"t", "s"}},
			},
		},
		{
			name:    "invalid bracket strategy fails validation",
			opts:    []ConfigOption{WithBrackets("loud")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewConfigWithOptions(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewConfigWithOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewConfigWithOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWithSubstitutions(t *testing.T) {
	cfg := &Config{}
	WithSubstitutions(true)(cfg)
	if !cfg.Substitutions {
		t.Errorf("WithSubstitutions(true) left Substitutions = %v, want true", cfg.Substitutions)
	}
}

func TestWithBrackets(t *testing.T) {
	cfg := &Config{}
	WithBrackets(strutil.Expand)(cfg)
	if cfg.Brackets != strutil.Expand {
		t.Errorf("WithBrackets(Expand) left Brackets = %v, want %v", cfg.Brackets, strutil.Expand)
	}
}

func TestWithCombined(t *testing.T) {
	cfg := &Config{}
	combined := [][]string{{"t", "s"}, {"d", "z"}}
	WithCombined(combined)(cfg)
	if !reflect.DeepEqual(cfg.Combined, combined) {
		t.Errorf("WithCombined() left Combined = %v, want %v", cfg.Combined, combined)
	}
}

func TestConfig_Validate_ErrorMessages(t *testing.T) {
	err := (&Config{Brackets: "loud"}).Validate()
	var bse *BracketStrategyError
	if !errors.As(err, &bse) {
		t.Fatalf("Validate() error = %v, want *BracketStrategyError", err)
	}
	want := `"loud" is not a valid strategy; use one of the following: keep/expand/strip`
	if bse.Error() != want {
		t.Errorf("BracketStrategyError.Error() = %q, want %q", bse.Error(), want)
	}
}
