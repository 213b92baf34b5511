package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/file_catalog/internal/catalog"
	"github.com/kurochkinivan/file_catalog/internal/domain"
)

const (
	// maxMultipartMemory bounds the in-memory part of multipart parsing.
	maxMultipartMemory = 32 << 20

	// maxRequestBody caps the whole upload body. It sits well above the
	// acceptance limit: oversize uploads must still reach validation so
	// they can be recorded as rejected, but the body must not spool to
	// disk without bound.
	maxRequestBody = 64 << 20
)

type CatalogService interface {
	Upload(ctx context.Context, input catalog.UploadInput) (*domain.File, error)
	Files(ctx context.Context) ([]*domain.File, error)
	Delete(ctx context.Context, id int64) error
}

type ReportGenerator interface {
	Generate(files []*domain.File) ([]byte, error)
}

type Handler struct {
	log     *slog.Logger
	catalog CatalogService
	reports ReportGenerator
}

func NewHandler(log *slog.Logger, catalogService CatalogService, reports ReportGenerator) *Handler {
	return &Handler{
		log:     log,
		catalog: catalogService,
		reports: reports,
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type UploadResponse struct {
	Status     domain.Status `json:"status"`
	Reason     string        `json:"reason"`
	DatabaseID int64         `json:"database_id"`
	UploadedBy string        `json:"uploaded_by"`
}

type DashboardResponse struct {
	RetrievedBy string         `json:"retrieved_by"`
	TotalFiles  int            `json:"total_files"`
	Files       []*domain.File `json:"files"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "file-catalog",
	})
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}

		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, `multipart field "file" is required`)
		return
	}
	file.Close() // only metadata is stored

	record, err := h.catalog.Upload(r.Context(), catalog.UploadInput{
		Name:     header.Filename,
		FileType: header.Header.Get("Content-Type"),
		Size:     header.Size,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to record upload", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to record upload")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Status:     record.Status,
		Reason:     record.Reason,
		DatabaseID: record.ID,
		UploadedBy: UsernameFromContext(r.Context()),
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	files, err := h.catalog.Files(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to get files", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to get files")
		return
	}

	if files == nil {
		files = []*domain.File{}
	}

	writeJSON(w, http.StatusOK, DashboardResponse{
		RetrievedBy: UsernameFromContext(r.Context()),
		TotalFiles:  len(files),
		Files:       files,
	})
}

func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid file id")
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("File with id %d not found", id))
			return
		}

		h.log.ErrorContext(r.Context(), "failed to delete file", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to delete file")
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{
		Message: fmt.Sprintf("File with id %d deleted successfully", id),
	})
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	files, err := h.catalog.Files(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to get files", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to get files")
		return
	}

	pdf, err := h.reports.Generate(files)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to generate report", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.pdf"`)
	w.Write(pdf)
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Error: message})
}
