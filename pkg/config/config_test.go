package config

import (
	"testing"
	"time"
)

func TestFork_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *Fork
		wantErr bool
	}{
		{
			name: "defaults are valid",
			cfg:  &Fork{Timeout: DefaultTimeout, Restore: true},
		},
		{
			name: "minimum timeout",
			cfg:  &Fork{Timeout: 100 * time.Millisecond},
		},
		{
			name: "maximum timeout",
			cfg:  &Fork{Timeout: time.Minute},
		},
		{
			name:    "timeout too low",
			cfg:     &Fork{Timeout: 50 * time.Millisecond},
			wantErr: true,
		},
		{
			name:    "timeout zero",
			cfg:     &Fork{},
			wantErr: true,
		},
		{
			name:    "timeout too high",
			cfg:     &Fork{Timeout: 2 * time.Minute},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := tc.cfg.Validate()
			if (len(errs) > 0) != tc.wantErr {
				t.Errorf("Fork.Validate() errors = %v, wantErr %v", errs, tc.wantErr)
			}
		})
	}
}

func TestValidate_Aggregates(t *testing.T) {
	t.Parallel()

	good := &Fork{Timeout: DefaultTimeout}
	bad := &Fork{Timeout: time.Hour}

	if errs := Validate(good, bad); len(errs) != 1 {
		t.Errorf("Validate() collected %d errors, want 1", len(errs))
	}
	if errs := Validate(); len(errs) != 0 {
		t.Errorf("Validate() of nothing = %v, want none", errs)
	}
}
