package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thaipk_backend/internals/features/home/articles/model"
	"thaipk_backend/internals/helpers/errs"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.ArticleCategoryModel{}, &model.ArticleModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type noopStore struct {
	deleted []string
}

func (n *noopStore) Upload(ctx context.Context, path, ct string, data []byte) (string, error) {
	return "https://test/storage/v1/object/public/images/" + path, nil
}
func (n *noopStore) Delete(ctx context.Context, path string) error { return nil }
func (n *noopStore) DeleteByURL(ctx context.Context, url string) error {
	n.deleted = append(n.deleted, url)
	return nil
}

func TestCreateDerivesUniqueSlug(t *testing.T) {
	svc := NewArticleService(openTestDB(t), &noopStore{})
	ctx := context.Background()

	first, err := svc.Create(ctx, ArticleInput{Title: "New Office Opening", Content: "..."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ArticleSlug != "new-office-opening" {
		t.Fatalf("slug = %q", first.ArticleSlug)
	}

	second, err := svc.Create(ctx, ArticleInput{Title: "New Office Opening", Content: "..."})
	if err != nil {
		t.Fatalf("Create duplicate title: %v", err)
	}
	if second.ArticleSlug != "new-office-opening-2" {
		t.Fatalf("duplicate slug = %q", second.ArticleSlug)
	}
}

func TestCreateDefaultsToDraft(t *testing.T) {
	svc := NewArticleService(openTestDB(t), &noopStore{})

	a, err := svc.Create(context.Background(), ArticleInput{Title: "Draft piece", Content: "..."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ArticleStatus != model.ArticleStatusDraft {
		t.Fatalf("status = %q", a.ArticleStatus)
	}
	if a.ArticlePublishedAt != nil {
		t.Fatal("draft has published_at set")
	}
}

func TestCreatePublishedStampsTimestamp(t *testing.T) {
	svc := NewArticleService(openTestDB(t), &noopStore{})

	a, err := svc.Create(context.Background(), ArticleInput{
		Title:   "Go live",
		Content: "...",
		Status:  model.ArticleStatusPublished,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ArticlePublishedAt == nil {
		t.Fatal("published article missing published_at")
	}
}

func TestPublishTransitionStampsAndClears(t *testing.T) {
	svc := NewArticleService(openTestDB(t), &noopStore{})
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "Lifecycle", Content: "..."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := a.ArticleID.String()

	published := model.ArticleStatusPublished
	a, err = svc.Update(ctx, id, ArticleUpdate{Status: &published})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if a.ArticlePublishedAt == nil {
		t.Fatal("published_at not stamped on draft→published")
	}
	stamped := *a.ArticlePublishedAt

	// publishing again must not restamp
	a, err = svc.Update(ctx, id, ArticleUpdate{Status: &published})
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if a.ArticlePublishedAt == nil || !a.ArticlePublishedAt.Equal(stamped) {
		t.Fatal("published_at changed on a no-op status update")
	}

	draft := model.ArticleStatusDraft
	a, err = svc.Update(ctx, id, ArticleUpdate{Status: &draft})
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if a.ArticlePublishedAt != nil {
		t.Fatal("published_at not cleared on published→draft")
	}
}

func TestSlugStableAcrossTitleChange(t *testing.T) {
	svc := NewArticleService(openTestDB(t), &noopStore{})
	ctx := context.Background()

	a, err := svc.Create(ctx, ArticleInput{Title: "Original title", Content: "..."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	slug := a.ArticleSlug

	newTitle := "Completely different title"
	a, err = svc.Update(ctx, a.ArticleID.String(), ArticleUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if a.ArticleSlug != slug {
		t.Fatalf("slug changed: %q -> %q", slug, a.ArticleSlug)
	}
	if a.ArticleTitle != newTitle {
		t.Fatalf("title = %q", a.ArticleTitle)
	}
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	svc := NewArticleService(openTestDB(t), &noopStore{})
	ctx := context.Background()

	draft, err := svc.Create(ctx, ArticleInput{Title: "Hidden draft", Content: "..."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.GetBySlug(ctx, draft.ArticleSlug); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("draft reachable by slug: %v", err)
	}

	pub, err := svc.Create(ctx, ArticleInput{Title: "Visible", Content: "...", Status: model.ArticleStatusPublished})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.GetBySlug(ctx, pub.ArticleSlug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ArticleID != pub.ArticleID {
		t.Fatal("wrong article returned")
	}
}

func TestListPublishedExcludesDrafts(t *testing.T) {
	svc := NewArticleService(openTestDB(t), &noopStore{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, ArticleInput{Title: "d1", Content: "..."}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, ArticleInput{Title: "p1", Content: "...", Status: model.ArticleStatusPublished}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	pubs, err := svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(pubs) != 1 || pubs[0].ArticleTitle != "p1" {
		t.Fatalf("published feed = %+v", pubs)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list = %d, want 2", len(all))
	}
}

func TestUpdateReplacesFeaturedImage(t *testing.T) {
	store := &noopStore{}
	svc := NewArticleService(openTestDB(t), store)
	ctx := context.Background()

	old := "https://test/storage/v1/object/public/images/article-old.jpg"
	a, err := svc.Create(ctx, ArticleInput{Title: "Pics", Content: "...", ImageURL: &old})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	replacement := "https://test/storage/v1/object/public/images/article-new.jpg"
	if _, err := svc.Update(ctx, a.ArticleID.String(), ArticleUpdate{ImageURL: &replacement}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != old {
		t.Fatalf("deleted = %v", store.deleted)
	}
}

func TestDeleteRemovesFeaturedImage(t *testing.T) {
	store := &noopStore{}
	svc := NewArticleService(openTestDB(t), store)
	ctx := context.Background()

	url := "https://test/storage/v1/object/public/images/article-x.jpg"
	a, err := svc.Create(ctx, ArticleInput{Title: "Bye", Content: "...", ImageURL: &url})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, a.ArticleID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != url {
		t.Fatalf("deleted = %v", store.deleted)
	}
	if _, err := svc.Get(ctx, a.ArticleID.String()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatal("row still present")
	}
}

func TestCategoryDeleteDetachesArticles(t *testing.T) {
	db := openTestDB(t)
	articles := NewArticleService(db, &noopStore{})
	cats := NewArticleCategoryService(db)
	ctx := context.Background()

	cat, err := cats.Create(ctx, "ข่าวสาร", nil)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	catID := cat.ArticleCategoryID
	a, err := articles.Create(ctx, ArticleInput{Title: "In category", Content: "...", CategoryID: &catID})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}

	if err := cats.Delete(ctx, catID.String()); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	got, err := articles.Get(ctx, a.ArticleID.String())
	if err != nil {
		t.Fatalf("get article: %v", err)
	}
	if got.ArticleCategoryID != nil {
		t.Fatal("article still points at the deleted category")
	}
}

func TestCategorySlugProbing(t *testing.T) {
	cats := NewArticleCategoryService(openTestDB(t))
	ctx := context.Background()

	first, err := cats.Create(ctx, "Promotions", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := cats.Create(ctx, "Promotions", nil)
	if err != nil {
		t.Fatalf("Create duplicate: %v", err)
	}
	if first.ArticleCategorySlug == second.ArticleCategorySlug {
		t.Fatalf("duplicate slugs: %q", first.ArticleCategorySlug)
	}
	if second.ArticleCategorySlug != first.ArticleCategorySlug+"-2" {
		t.Fatalf("second slug = %q", second.ArticleCategorySlug)
	}
}
