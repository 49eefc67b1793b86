package entity

import (
	"reflect"
	"testing"
)

func TestExcludedProductTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty string",
			raw:  "",
			want: []string{},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: []string{},
		},
		{
			name: "single token",
			raw:  "42",
			want: []string{"42"},
		},
		{
			name: "multiple tokens with spaces",
			raw:  " 1, 2 ,3 ",
			want: []string{"1", "2", "3"},
		},
		{
			name: "empty segments dropped",
			raw:  "1,,2,",
			want: []string{"1", "2"},
		},
		{
			name: "malformed tokens kept verbatim",
			raw:  "abc, 12x",
			want: []string{"abc", "12x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &StockVisibilitySettings{ExcludedProductIDs: tt.raw}
			got := s.ExcludedProductTokens()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExcludedProductTokens() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHiddenFromPage(t *testing.T) {
	tests := []struct {
		name  string
		flags map[PageType]bool
		page  PageType
		want  bool
	}{
		{
			name:  "nil map defaults to false",
			flags: nil,
			page:  PageTypeShop,
			want:  false,
		},
		{
			name:  "absent flag is false",
			flags: map[PageType]bool{PageTypeSearch: true},
			page:  PageTypeShop,
			want:  false,
		},
		{
			name:  "explicit false equals absent",
			flags: map[PageType]bool{PageTypeShop: false},
			page:  PageTypeShop,
			want:  false,
		},
		{
			name:  "set flag",
			flags: map[PageType]bool{PageTypeCategory: true},
			page:  PageTypeCategory,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &StockVisibilitySettings{PageFlags: tt.flags}
			if got := s.HiddenFromPage(tt.page); got != tt.want {
				t.Errorf("HiddenFromPage(%s) = %v, want %v", tt.page, got, tt.want)
			}
		})
	}
}

func TestHasAnyPageFlag(t *testing.T) {
	tests := []struct {
		name  string
		flags map[PageType]bool
		want  bool
	}{
		{
			name:  "no flags",
			flags: map[PageType]bool{},
			want:  false,
		},
		{
			name:  "all explicit false",
			flags: map[PageType]bool{PageTypeShop: false, PageTypeSearch: false},
			want:  false,
		},
		{
			name:  "one set",
			flags: map[PageType]bool{PageTypeSearch: true},
			want:  true,
		},
		{
			name:  "unknown page type ignored",
			flags: map[PageType]bool{PageType("checkout"): true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &StockVisibilitySettings{PageFlags: tt.flags}
			if got := s.HasAnyPageFlag(); got != tt.want {
				t.Errorf("HasAnyPageFlag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultStockVisibilitySettings(t *testing.T) {
	s := DefaultStockVisibilitySettings()

	if s.DisplayMode != DisplayModeHide {
		t.Errorf("default DisplayMode = %s, want %s", s.DisplayMode, DisplayModeHide)
	}
	if s.OutOfStockLabel != "" {
		t.Errorf("default OutOfStockLabel = %q, want empty", s.OutOfStockLabel)
	}
	if len(s.ExcludedProductTokens()) != 0 {
		t.Error("default settings should exempt no products")
	}
	if s.HasAnyPageFlag() {
		t.Error("default settings should have no page flags set")
	}
}
