package resumes

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/locate"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/util"
)

const reportMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ReportBuilder renders a parse result into an OOXML payload.
type ReportBuilder interface {
	Build(res ParsedResume) ([]byte, error)
}

// Handler wires HTTP handlers to the parse service.
type Handler struct {
	Svc            *Service
	Reports        ReportBuilder
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, reports ReportBuilder, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, Reports: reports, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/parse", h.parse)
	rg.POST("/resumes/report", h.report)
}

func (h *Handler) parse(c *gin.Context) {
	data, fileName, ok := h.readUpload(c)
	if !ok {
		return
	}

	res := h.Svc.Parse(c.Request.Context(), data, fileName)
	if res.Failed() {
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", res.Error, nil)
		return
	}

	respond.OK(c, toResponse(res))
}

func (h *Handler) report(c *gin.Context) {
	data, fileName, ok := h.readUpload(c)
	if !ok {
		return
	}

	res := h.Svc.Parse(c.Request.Context(), data, fileName)
	if res.Failed() {
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", res.Error, nil)
		return
	}

	payload, err := h.Reports.Build(res)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build report", nil)
		return
	}

	downloadName := "resume_analysis_" + time.Now().UTC().Format("20060102_150405") + ".docx"
	c.Header("Content-Disposition", `attachment; filename="`+downloadName+`"`)
	c.Data(http.StatusOK, reportMimeType, payload)
}

// readUpload pulls the multipart file, enforcing the extension allow-list
// and the upload size cap. It writes the error response itself.
func (h *Handler) readUpload(c *gin.Context) ([]byte, string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return nil, "", false
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return nil, "", false
	}
	if !locate.Supported(fileName) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only .pdf and .docx files are accepted", nil)
		return nil, "", false
	}
	c.Set("fileName", fileName)

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return nil, "", false
	}
	return data, fileName, true
}
