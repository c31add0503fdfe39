package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thaipk_backend/internals/features/home/slides/model"
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
	if err := db.AutoMigrate(&model.SlideModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fakeStore struct {
	deleted []string
	fail    bool
}

func (f *fakeStore) Upload(ctx context.Context, path, ct string, data []byte) (string, error) {
	return "https://test/storage/v1/object/public/images/" + path, nil
}
func (f *fakeStore) Delete(ctx context.Context, path string) error { return nil }
func (f *fakeStore) DeleteByURL(ctx context.Context, url string) error {
	if f.fail {
		return errors.New("storage unavailable")
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func seedSlides(t *testing.T, svc *SlideService) []model.SlideModel {
	t.Helper()
	slides := []model.SlideModel{
		{SlideImageURL: "https://test/s1.jpg", SlideDisplayOrder: 2, SlideIsActive: true},
		{SlideImageURL: "https://test/s2.jpg", SlideDisplayOrder: 0, SlideIsActive: true},
		{SlideImageURL: "https://test/s3.jpg", SlideDisplayOrder: 1, SlideIsActive: false},
	}
	for i := range slides {
		if err := svc.Create(context.Background(), &slides[i]); err != nil {
			t.Fatalf("seed slide %d: %v", i, err)
		}
	}
	return slides
}

func TestListActiveFiltersAndOrders(t *testing.T) {
	svc := NewSlideService(openTestDB(t), &fakeStore{})
	seedSlides(t, svc)

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active = %d, want 2", len(active))
	}
	// display order ascending
	if active[0].SlideImageURL != "https://test/s2.jpg" || active[1].SlideImageURL != "https://test/s1.jpg" {
		t.Fatalf("order wrong: %s, %s", active[0].SlideImageURL, active[1].SlideImageURL)
	}
	for _, s := range active {
		if !s.SlideIsActive {
			t.Fatal("inactive slide in public list")
		}
	}
}

func TestListAllIncludesInactive(t *testing.T) {
	svc := NewSlideService(openTestDB(t), &fakeStore{})
	seedSlides(t, svc)

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
}

func TestSetActiveFlipsVisibility(t *testing.T) {
	svc := NewSlideService(openTestDB(t), &fakeStore{})
	slides := seedSlides(t, svc)
	ctx := context.Background()

	updated, err := svc.SetActive(ctx, slides[2].SlideID.String(), true)
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if !updated.SlideIsActive {
		t.Fatal("slide not activated")
	}

	active, _ := svc.ListActive(ctx)
	if len(active) != 3 {
		t.Fatalf("active after toggle = %d, want 3", len(active))
	}
}

func TestGetUnknownSlideIsNotFound(t *testing.T) {
	svc := NewSlideService(openTestDB(t), &fakeStore{})
	_, err := svc.Get(context.Background(), "1f8b0c52-0000-0000-0000-000000000000")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesBinaryThenRow(t *testing.T) {
	store := &fakeStore{}
	svc := NewSlideService(openTestDB(t), store)
	slides := seedSlides(t, svc)
	ctx := context.Background()

	if err := svc.Delete(ctx, slides[0].SlideID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != slides[0].SlideImageURL {
		t.Fatalf("deleted = %v", store.deleted)
	}
	if _, err := svc.Get(ctx, slides[0].SlideID.String()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("row still present: %v", err)
	}
}

func TestDeleteSurvivesStorageFailure(t *testing.T) {
	store := &fakeStore{fail: true}
	svc := NewSlideService(openTestDB(t), store)
	slides := seedSlides(t, svc)
	ctx := context.Background()

	if err := svc.Delete(ctx, slides[1].SlideID.String()); err != nil {
		t.Fatalf("Delete with stuck binary: %v", err)
	}
	if _, err := svc.Get(ctx, slides[1].SlideID.String()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatal("row should be gone even when the binary delete fails")
	}
}

func TestUpdatePersistsChanges(t *testing.T) {
	svc := NewSlideService(openTestDB(t), &fakeStore{})
	slides := seedSlides(t, svc)
	ctx := context.Background()

	title := "โปรโมชั่นหน้าฝน"
	slides[0].SlideTitle = &title
	slides[0].SlideDisplayOrder = 9
	if err := svc.Update(ctx, &slides[0]); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.Get(ctx, slides[0].SlideID.String())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.SlideTitle == nil || *got.SlideTitle != title {
		t.Fatalf("title = %v", got.SlideTitle)
	}
	if got.SlideDisplayOrder != 9 {
		t.Fatalf("order = %d", got.SlideDisplayOrder)
	}
}
