package domain

import "testing"

func TestNewBookmarkValidate(t *testing.T) {
	valid := NewBookmark{Title: "t", URL: "https://a", Category: "Math"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	tests := []struct {
		name string
		b    NewBookmark
	}{
		{name: "missing title", b: NewBookmark{URL: "https://a", Category: "c"}},
		{name: "blank title", b: NewBookmark{Title: "   ", URL: "https://a", Category: "c"}},
		{name: "missing url", b: NewBookmark{Title: "t", Category: "c"}},
		{name: "missing category", b: NewBookmark{Title: "t", URL: "https://a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.b.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestNewUserValidate(t *testing.T) {
	if err := (NewUser{Username: "demo", Password: "pw"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (NewUser{Password: "pw"}).Validate(); err == nil {
		t.Error("Validate() without username = nil, want error")
	}
	if err := (NewUser{Username: "demo"}).Validate(); err == nil {
		t.Error("Validate() without password = nil, want error")
	}
}

func TestNewSearchHistoryValidate(t *testing.T) {
	if err := (NewSearchHistory{Query: "q"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (NewSearchHistory{}).Validate(); err == nil {
		t.Error("Validate() without query = nil, want error")
	}
}
