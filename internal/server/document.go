package server

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	documentdomain "github.com/orthoflow/orthoflow/internal/document/domain"
)

func (s *Server) DownloadDocument(c *gin.Context) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid value"))
		return
	}

	doc, err := s.docRepo.FindByID(c.Request.Context(), s.db, id.Int64())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if doc == nil {
		AbortWithError(c, documentdomain.ErrNotFound)
		return
	}

	path, err := s.docStore.Open(doc.FileURL)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(path, downloadName(doc))
}

func downloadName(doc *documentdomain.Document) string {
	return strings.ToLower(string(doc.Type)) + "-v" + strconv.Itoa(doc.Version) + ".pdf"
}
