package model

import "testing"

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		if !c.IsValid() {
			t.Errorf("expected category %q to be valid", c)
		}
	}

	invalid := []Category{"", "electronics", "Gadgets", "TOOLS"}
	for _, c := range invalid {
		if c.IsValid() {
			t.Errorf("expected category %q to be invalid", c)
		}
	}
}
