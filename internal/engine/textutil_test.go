package engine

import (
	"reflect"
	"testing"
)

func TestFindEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain address", "contact: biz@example.com for inquiries", "biz@example.com"},
		{"first of several", "a@one.com or b@two.com", "a@one.com"},
		{"embedded in korean text", "문의는 hello@studio.kr 로 주세요", "hello@studio.kr"},
		{"no address", "DM me on instagram", ""},
		{"bare at sign", "meet @ 5pm", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindEmail(tt.in); got != tt.want {
				t.Errorf("FindEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractInts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"strict csv", "0, 3, 7", []int{0, 3, 7}},
		{"prose", "Videos 2 and 5 look sponsored, maybe 11 too.", []int{2, 5, 11}},
		{"none", "None of these look sponsored.", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractInts(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractInts(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("안녕하세요 구독자 여러분", 5); got != "안녕하세요" {
		t.Errorf("TruncateRunes = %q, want 안녕하세요", got)
	}
	if got := TruncateRunes("short", 100); got != "short" {
		t.Errorf("TruncateRunes = %q, want unchanged", got)
	}
	if got := TruncateRunes("abc", 0); got != "" {
		t.Errorf("TruncateRunes with 0 limit = %q, want empty", got)
	}
}

func TestIsNoneToken(t *testing.T) {
	for _, s := range []string{"None", "none", "  NONE\n"} {
		if !IsNoneToken(s) {
			t.Errorf("IsNoneToken(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "nothing", "none found"} {
		if IsNoneToken(s) {
			t.Errorf("IsNoneToken(%q) = true, want false", s)
		}
	}
}
