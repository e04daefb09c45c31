package domain

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"typical", "Python, Django, React", []string{"Python", "Django", "React"}},
		{"no spaces", "go,mongo,redis", []string{"go", "mongo", "redis"}},
		{"empty string", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"trailing comma", "go,", []string{"go"}},
		{"single item", "go", []string{"go"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJoinList(t *testing.T) {
	got := JoinList([]string{"Python", "Django", "React"})
	if got != "Python, Django, React" {
		t.Fatalf("JoinList = %q", got)
	}
	if JoinList(nil) != "" {
		t.Fatalf("JoinList(nil) should be empty")
	}
}

func TestPostExcerpt(t *testing.T) {
	short := &Post{Content: "short content"}
	if short.Excerpt() != "short content" {
		t.Fatalf("short content must pass through unchanged")
	}

	long := &Post{Content: strings.Repeat("a", 300)}
	got := long.Excerpt()
	if len(got) != 203 {
		t.Fatalf("excerpt length = %d, want 203", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long excerpt must end with ellipsis, got %q", got[190:])
	}
}

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Ada", LastName: "Lovelace"}
	if u.FullName() != "Ada Lovelace" {
		t.Fatalf("FullName = %q", u.FullName())
	}

	only := &User{FirstName: "Ada"}
	if only.FullName() != "Ada" {
		t.Fatalf("FullName with empty last name = %q", only.FullName())
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{"admin", "member", "viewer"} {
		if !ValidRole(r) {
			t.Fatalf("ValidRole(%q) = false", r)
		}
	}
	for _, r := range []string{"", "root", "Admin"} {
		if ValidRole(r) {
			t.Fatalf("ValidRole(%q) = true", r)
		}
	}
}
