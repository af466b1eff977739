package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpItemsSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpItemsSave,
			err:      errors.New("disk full"),
			expected: "Failed to save items: disk full",
		},
		{
			name:     "startup operation",
			op:       OpConfigLoad,
			err:      errors.New("bad toml"),
			expected: "Failed to load configuration: bad toml",
		},
		{
			name:     "render operation",
			op:       OpRender,
			err:      errors.New("no container for view type 3"),
			expected: "Failed to display list: no container for view type 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		subject  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpStoreOpen,
			subject:  "/tmp/x.db",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes subject",
			op:       OpStoreOpen,
			subject:  "/tmp/x.db",
			err:      errors.New("locked"),
			expected: "Failed to open item store '/tmp/x.db': locked",
		},
		{
			name:     "empty subject falls back to Format",
			op:       OpItemsLoad,
			subject:  "",
			err:      errors.New("corrupt"),
			expected: "Failed to load items: corrupt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.subject, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.subject, tt.err, result, tt.expected)
			}
		})
	}
}
