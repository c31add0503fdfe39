package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/gallery/albums/dto"
	"thaipk_backend/internals/features/gallery/albums/model"
	"thaipk_backend/internals/helpers/errs"
	"thaipk_backend/internals/helpers/images"
	"thaipk_backend/internals/helpers/storage"
)

type AlbumService struct {
	DB    *gorm.DB
	Store storage.ObjectStore
}

func NewAlbumService(db *gorm.DB, store storage.ObjectStore) *AlbumService {
	return &AlbumService{DB: db, Store: store}
}

// ============================
// Reads
// ============================

func (s *AlbumService) List(ctx context.Context) ([]model.AlbumModel, error) {
	var albums []model.AlbumModel
	if err := s.DB.WithContext(ctx).
		Order("album_created_at DESC").
		Find(&albums).Error; err != nil {
		return nil, errs.Backend("list albums", err)
	}
	return albums, nil
}

func (s *AlbumService) ListPaginated(ctx context.Context, offset, limit int) ([]model.AlbumModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.AlbumModel{}).Count(&total).Error; err != nil {
		return nil, 0, errs.Backend("count albums", err)
	}

	var albums []model.AlbumModel
	if err := s.DB.WithContext(ctx).
		Order("album_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&albums).Error; err != nil {
		return nil, 0, errs.Backend("list albums", err)
	}
	return albums, total, nil
}

func (s *AlbumService) Get(ctx context.Context, id string) (*model.AlbumModel, error) {
	var album model.AlbumModel
	if err := s.DB.WithContext(ctx).First(&album, "album_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Backend("get album", err)
	}
	return &album, nil
}

func (s *AlbumService) GetImages(ctx context.Context, albumID string) ([]model.AlbumImageModel, error) {
	var imgs []model.AlbumImageModel
	if err := s.DB.WithContext(ctx).
		Where("album_image_album_id = ?", albumID).
		Order("album_image_display_order ASC").
		Find(&imgs).Error; err != nil {
		return nil, errs.Backend("list album images", err)
	}
	return imgs, nil
}

// ============================
// Upload
// ============================

// UploadImage pushes one binary through the album preset. Uploads within a
// submission run sequentially so display_order follows input order.
func (s *AlbumService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	data, err := images.TransformFile(fh, images.PresetAlbum)
	if err != nil {
		return "", errs.Upload("transform album image", err)
	}
	url, err := s.Store.Upload(ctx, images.PresetAlbum.FileName(), images.PresetAlbum.ContentType(), data)
	if err != nil {
		return "", errs.Upload("upload album image", err)
	}
	return url, nil
}

// ============================
// Create
// ============================

// CreateWithImages uploads every file in input order, takes position 0 as the
// cover and persists the album plus one child row per image.
func (s *AlbumService) CreateWithImages(ctx context.Context, title string, description *string, files []*multipart.FileHeader) (*model.AlbumModel, error) {
	if len(files) == 0 {
		return nil, errs.Upload("create album", fmt.Errorf("at least one image is required"))
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		u, err := s.UploadImage(ctx, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}

	album := model.AlbumModel{
		AlbumTitle:         title,
		AlbumDescription:   description,
		AlbumCoverImageURL: urls[0],
	}
	if err := s.DB.WithContext(ctx).Create(&album).Error; err != nil {
		return nil, errs.Backend("create album", err)
	}

	if err := s.insertImageRows(ctx, album.AlbumID, urls); err != nil {
		return nil, err
	}
	return &album, nil
}

// ============================
// Update (layout engine)
// ============================

// ApplyLayout is the single edit path: the caller hands over the full ordered
// image list as a tagged union (existing URL | new upload). Position 0 becomes
// the cover; stored binaries whose URLs leave the layout are removed
// best-effort. Reorder-only layouts therefore never touch binaries, and a
// full-replacement layout drops every old one.
func (s *AlbumService) ApplyLayout(ctx context.Context, albumID string, layout []dto.ImageLayoutEntry, files []*multipart.FileHeader) (*model.AlbumModel, *storage.CleanupResult, error) {
	album, err := s.Get(ctx, albumID)
	if err != nil {
		return nil, nil, err
	}
	if len(layout) == 0 {
		return nil, nil, errs.Upload("update album", fmt.Errorf("image layout must not be empty"))
	}

	// Resolve the layout into the final URL list, uploading as needed.
	finalURLs := make([]string, 0, len(layout))
	for _, entry := range layout {
		switch entry.Kind {
		case "existing":
			if entry.URL == "" {
				return nil, nil, errs.Upload("update album", fmt.Errorf("existing entry without url"))
			}
			finalURLs = append(finalURLs, entry.URL)
		case "new":
			if entry.FileIndex < 0 || entry.FileIndex >= len(files) {
				return nil, nil, errs.Upload("update album", fmt.Errorf("file index %d out of range", entry.FileIndex))
			}
			u, uerr := s.UploadImage(ctx, files[entry.FileIndex])
			if uerr != nil {
				return nil, nil, uerr
			}
			finalURLs = append(finalURLs, u)
		default:
			return nil, nil, errs.Upload("update album", fmt.Errorf("unknown layout kind %q", entry.Kind))
		}
	}

	current, err := s.GetImages(ctx, albumID)
	if err != nil {
		return nil, nil, err
	}

	// Binaries that left the layout are orphans.
	kept := make(map[string]bool, len(finalURLs))
	for _, u := range finalURLs {
		kept[u] = true
	}
	var dropped []string
	for _, img := range current {
		if !kept[img.AlbumImageURL] {
			dropped = append(dropped, img.AlbumImageURL)
		}
	}
	if album.AlbumCoverImageURL != "" && !kept[album.AlbumCoverImageURL] {
		seen := false
		for _, d := range dropped {
			if d == album.AlbumCoverImageURL {
				seen = true
				break
			}
		}
		if !seen {
			dropped = append(dropped, album.AlbumCoverImageURL)
		}
	}

	// Rewrite the child rows with the new order.
	if err := s.deleteImageRows(ctx, album.AlbumID); err != nil {
		return nil, nil, err
	}
	if err := s.insertImageRows(ctx, album.AlbumID, finalURLs); err != nil {
		return nil, nil, err
	}

	album.AlbumCoverImageURL = finalURLs[0]
	if err := s.DB.WithContext(ctx).Save(album).Error; err != nil {
		return nil, nil, errs.Backend("update album", err)
	}

	cleanup := storage.CleanupURLs(ctx, s.Store, dropped)
	return album, cleanup, nil
}

// UpdateInfo changes title/description only.
func (s *AlbumService) UpdateInfo(ctx context.Context, albumID string, title string, description *string) (*model.AlbumModel, error) {
	album, err := s.Get(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		album.AlbumTitle = title
	}
	if description != nil {
		album.AlbumDescription = description
	}
	if err := s.DB.WithContext(ctx).Save(album).Error; err != nil {
		return nil, errs.Backend("update album", err)
	}
	return album, nil
}

// ============================
// Delete
// ============================

// Delete cascades: child binaries best-effort, child rows, the cover binary,
// then the album row. A stuck binary never blocks the row delete.
func (s *AlbumService) Delete(ctx context.Context, albumID string) (*storage.CleanupResult, error) {
	album, err := s.Get(ctx, albumID)
	if err != nil {
		return nil, err
	}
	imgs, err := s.GetImages(ctx, albumID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(imgs)+1)
	seen := make(map[string]bool, len(imgs)+1)
	for _, img := range imgs {
		if !seen[img.AlbumImageURL] {
			urls = append(urls, img.AlbumImageURL)
			seen[img.AlbumImageURL] = true
		}
	}
	if album.AlbumCoverImageURL != "" && !seen[album.AlbumCoverImageURL] {
		urls = append(urls, album.AlbumCoverImageURL)
	}

	cleanup := storage.CleanupURLs(ctx, s.Store, urls)

	if err := s.deleteImageRows(ctx, album.AlbumID); err != nil {
		return cleanup, err
	}
	if err := s.DB.WithContext(ctx).Delete(&model.AlbumModel{}, "album_id = ?", albumID).Error; err != nil {
		return cleanup, errs.Backend("delete album", err)
	}
	return cleanup, nil
}

// ============================
// internals
// ============================

func (s *AlbumService) insertImageRows(ctx context.Context, albumID uuid.UUID, urls []string) error {
	rows := make([]model.AlbumImageModel, 0, len(urls))
	for i, u := range urls {
		rows = append(rows, model.AlbumImageModel{
			AlbumImageAlbumID:      albumID,
			AlbumImageURL:          u,
			AlbumImageDisplayOrder: i,
		})
	}
	if err := s.DB.WithContext(ctx).Create(&rows).Error; err != nil {
		return errs.Backend("insert album images", err)
	}
	return nil
}

func (s *AlbumService) deleteImageRows(ctx context.Context, albumID uuid.UUID) error {
	if err := s.DB.WithContext(ctx).
		Delete(&model.AlbumImageModel{}, "album_image_album_id = ?", albumID).Error; err != nil {
		return errs.Backend("delete album image rows", err)
	}
	return nil
}
