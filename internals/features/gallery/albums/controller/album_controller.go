package controller

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/gallery/albums/dto"
	"thaipk_backend/internals/features/gallery/albums/service"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/errs"
	"thaipk_backend/internals/helpers/storage"
)

var validateAlbum = validator.New()

type AlbumController struct {
	Service *service.AlbumService
}

func NewAlbumController(db *gorm.DB, store storage.ObjectStore) *AlbumController {
	return &AlbumController{Service: service.NewAlbumService(db, store)}
}

// ✅ GET: public - albums newest first, optional pagination
func (ctrl *AlbumController) GetAlbums(c *fiber.Ctx) error {
	if c.Query("page") != "" || c.Query("per_page") != "" || c.Query("limit") != "" {
		paging := helper.ResolvePaging(c, 8, 50)
		albums, total, err := ctrl.Service.ListPaginated(c.UserContext(), paging.Offset, paging.Limit)
		if err != nil {
			log.Println("[ERROR] list albums:", err)
			return helper.JsonFromServiceError(c, err, "Failed to fetch albums")
		}
		pg := helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(albums))
		return helper.JsonList(c, dto.ToAlbumDTOList(albums), pg)
	}

	albums, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		log.Println("[ERROR] list albums:", err)
		return helper.JsonFromServiceError(c, err, "Failed to fetch albums")
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=60, stale-while-revalidate=120")
	return helper.JsonList(c, dto.ToAlbumDTOList(albums), nil)
}

func (ctrl *AlbumController) GetAlbumByID(c *fiber.Ctx) error {
	album, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to fetch album")
	}
	return helper.JsonOK(c, "OK", dto.ToAlbumDTO(*album))
}

// ✅ GET: images of one album in display order
func (ctrl *AlbumController) GetAlbumImages(c *fiber.Ctx) error {
	imgs, err := ctrl.Service.GetImages(c.UserContext(), c.Params("id"))
	if err != nil {
		log.Println("[ERROR] list album images:", err)
		return helper.JsonFromServiceError(c, err, "Failed to fetch album images")
	}
	return helper.JsonList(c, dto.ToAlbumImageDTOList(imgs), nil)
}

// ➕ POST: admin - create album. Multipart: title, description, repeated
// "images" files. The first image becomes the cover.
func (ctrl *AlbumController) CreateAlbum(c *fiber.Ctx) error {
	var body dto.CreateAlbumRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAlbum.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	files := formFiles(c, "images")
	if len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "At least one image is required")
	}

	var desc *string
	if v := strings.TrimSpace(body.AlbumDescription); v != "" {
		desc = &v
	}

	album, err := ctrl.Service.CreateWithImages(c.UserContext(), body.AlbumTitle, desc, files)
	if err != nil {
		log.Println("[ERROR] create album:", err)
		if errs.IsUpload(err) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create album")
	}

	return helper.JsonCreated(c, "Album created", dto.ToAlbumDTO(*album))
}

// 🔄 PUT: admin - update album.
//
// The admin panel sends the full ordered image list as "image_layout" (JSON
// array of {kind:"existing",url} | {kind:"new",file_index}) plus the new
// binaries under "images". Two legacy forms are still accepted: files without
// a layout mean full replacement, and "reordered_images" (JSON array of URLs)
// without files means row rewrite only.
func (ctrl *AlbumController) UpdateAlbum(c *fiber.Ctx) error {
	id := c.Params("id")
	files := formFiles(c, "images")

	layout, err := parseLayout(c, files)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var desc *string
	if v := c.FormValue("description"); v != "" {
		desc = &v
	}

	if len(layout) == 0 {
		// info-only edit
		album, uerr := ctrl.Service.UpdateInfo(c.UserContext(), id, c.FormValue("title"), desc)
		if uerr != nil {
			return helper.JsonFromServiceError(c, uerr, "Failed to update album")
		}
		return helper.JsonUpdated(c, "Album updated", dto.ToAlbumDTO(*album))
	}

	if _, uerr := ctrl.Service.UpdateInfo(c.UserContext(), id, c.FormValue("title"), desc); uerr != nil {
		return helper.JsonFromServiceError(c, uerr, "Failed to update album")
	}

	album, cleanup, err := ctrl.Service.ApplyLayout(c.UserContext(), id, layout, files)
	if err != nil {
		log.Println("[ERROR] update album images:", err)
		if errs.IsUpload(err) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
		}
		return helper.JsonFromServiceError(c, err, "Failed to update album")
	}
	cleanup.LogAll()

	return helper.JsonUpdated(c, "Album updated", dto.ToAlbumDTO(*album))
}

// 🗑️ DELETE: admin - cascade delete
func (ctrl *AlbumController) DeleteAlbum(c *fiber.Ctx) error {
	cleanup, err := ctrl.Service.Delete(c.UserContext(), c.Params("id"))
	if cleanup != nil {
		cleanup.LogAll()
	}
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to delete album")
	}
	return helper.JsonDeleted(c, "Album deleted", nil)
}

// ============================
// form parsing
// ============================

func formFiles(c *fiber.Ctx, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var out []*multipart.FileHeader
	for _, fh := range form.File[field] {
		if fh != nil && fh.Size > 0 && fh.Filename != "" {
			out = append(out, fh)
		}
	}
	return out
}

// parseLayout normalizes the three accepted edit shapes into one tagged list.
func parseLayout(c *fiber.Ctx, files []*multipart.FileHeader) ([]dto.ImageLayoutEntry, error) {
	if raw := c.FormValue("image_layout"); raw != "" {
		var layout []dto.ImageLayoutEntry
		if err := json.Unmarshal([]byte(raw), &layout); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid image_layout JSON")
		}
		return layout, nil
	}

	if raw := c.FormValue("reordered_images"); raw != "" && len(files) == 0 {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid reordered_images JSON")
		}
		layout := make([]dto.ImageLayoutEntry, 0, len(urls))
		for _, u := range urls {
			layout = append(layout, dto.ImageLayoutEntry{Kind: "existing", URL: u})
		}
		return layout, nil
	}

	if len(files) > 0 {
		// full replacement
		layout := make([]dto.ImageLayoutEntry, 0, len(files))
		for i := range files {
			layout = append(layout, dto.ImageLayoutEntry{Kind: "new", FileIndex: i})
		}
		return layout, nil
	}

	return nil, nil
}
