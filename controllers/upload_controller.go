package controllers

import (
	"path/filepath"
	"strings"

	"backend/pkg/resp"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

type UploadController struct{ Store storage.Store }

func NewUploadController(store storage.Store) *UploadController {
	return &UploadController{Store: store}
}

// นามสกุลที่รับ: รูปของบริจาค + เอกสารจดทะเบียน
var allowedExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".pdf": true,
}

const maxUploadBytes = 10 << 20 // 10MB

// POST /uploads (multipart, field "file", optional "kind" = item|doc)
func (h *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil { resp.BadRequest(c, "file is required"); return }
	if fh.Size > maxUploadBytes {
		resp.BadRequest(c, "file too large"); return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		resp.BadRequest(c, "unsupported file type"); return
	}

	kind := c.DefaultPostForm("kind", "item")
	if kind != "item" && kind != "doc" {
		resp.BadRequest(c, "kind must be item or doc"); return
	}

	f, err := fh.Open()
	if err != nil { resp.ServerError(c, err); return }
	defer f.Close()

	path, err := h.Store.Save(kind, fh.Filename, f)
	if err != nil { resp.ServerError(c, err); return }

	resp.Created(c, gin.H{"path": path})
}
