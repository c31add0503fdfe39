package helper

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  Spaces  ", "trimmed-spaces"},
		{"Crème Brûlée!", "creme-brulee"},
		{"already-a-slug", "already-a-slug"},
		{"MiXeD CaSe 123", "mixed-case-123"},
		{"---", "item"},
		{"", "item"},
		{"!!!@@@###", "item"},
	}
	for _, c := range cases {
		if got := Slugify(c.in, 100); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("a very long title that keeps going on and on", 10)
	if len(got) > 10 {
		t.Fatalf("slug %q exceeds max length", got)
	}
	if got[len(got)-1] == '-' {
		t.Fatalf("slug %q ends with a hyphen", got)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(`CREATE TABLE articles (article_slug TEXT NOT NULL)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	insert := func(slug string) {
		t.Helper()
		if err := db.Exec(`INSERT INTO articles (article_slug) VALUES (?)`, slug).Error; err != nil {
			t.Fatalf("insert %q: %v", slug, err)
		}
	}

	got, err := EnsureUniqueSlug(db, "new-office", "articles", "article_slug")
	if err != nil {
		t.Fatalf("EnsureUniqueSlug: %v", err)
	}
	if got != "new-office" {
		t.Fatalf("free base: got %q, want %q", got, "new-office")
	}

	insert("new-office")
	got, err = EnsureUniqueSlug(db, "new-office", "articles", "article_slug")
	if err != nil {
		t.Fatalf("EnsureUniqueSlug: %v", err)
	}
	if got != "new-office-2" {
		t.Fatalf("taken base: got %q, want %q", got, "new-office-2")
	}

	insert("new-office-2")
	insert("new-office-7")
	got, err = EnsureUniqueSlug(db, "new-office", "articles", "article_slug")
	if err != nil {
		t.Fatalf("EnsureUniqueSlug: %v", err)
	}
	if got != "new-office-8" {
		t.Fatalf("gap in suffixes: got %q, want %q", got, "new-office-8")
	}
}
