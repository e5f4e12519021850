package handlers

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucClient "github.com/BruksfildServices01/salon-agenda/internal/usecase/client"
)

// photoReadLimit is one byte over the upload limit so oversized photos
// reach the decoder and fail there with invalid_image.
const photoReadLimit = 5<<20 + 1

type ClientHandler struct {
	list    *ucClient.ListClients
	get     *ucClient.GetClient
	create  *ucClient.CreateClient
	update  *ucClient.UpdateClient
	imports *ucClient.ImportClients
	history *ucClient.ClientHistory
	photo   *ucClient.UploadPhoto
}

func NewClientHandler(
	list *ucClient.ListClients,
	get *ucClient.GetClient,
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	imports *ucClient.ImportClients,
	history *ucClient.ClientHistory,
	photo *ucClient.UploadPhoto,
) *ClientHandler {
	return &ClientHandler{
		list:    list,
		get:     get,
		create:  create,
		update:  update,
		imports: imports,
		history: history,
		photo:   photo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (r ClientRequest) input() domain.Input {
	return domain.Input{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Notes: r.Notes,
	}
}

type ImportClientsRequest struct {
	Contacts []ClientRequest `json:"contacts" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	var req ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Import(c *gin.Context) {
	var req ImportClientsRequest
	if !bindJSON(c, &req) {
		return
	}

	contacts := make([]domain.Input, 0, len(req.Contacts))
	for _, r := range req.Contacts {
		contacts = append(contacts, r.input())
	}

	res, err := h.imports.Execute(c.Request.Context(), middleware.UserID(c), contacts)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ClientHandler) Stats(c *gin.Context) {
	id, ok := uintParam(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	stats, err := h.history.Stats(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, stats)
}

// NextAppointment answers {"appointment": null} when nothing is ahead.
func (h *ClientHandler) NextAppointment(c *gin.Context) {
	id, ok := uintParam(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	ap, err := h.history.NextAppointment(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"appointment": ap})
}

func (h *ClientHandler) Notes(c *gin.Context) {
	id, ok := uintParam(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	raw := c.Query("variant") == "raw"
	notes, err := h.history.Notes(c.Request.Context(), id, raw)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, notes)
}

// ======================================================
// PHOTO
// ======================================================

// UploadPhoto accepts a multipart "photo" field or the image as the raw
// request body.
func (h *ClientHandler) UploadPhoto(c *gin.Context) {
	id, ok := uintParam(c, "id", "invalid_client_id")
	if !ok {
		return
	}

	data, err := readPhoto(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "could not read the uploaded photo")
		return
	}

	client, err := h.photo.Execute(c.Request.Context(), middleware.UserID(c), id, data)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, client)
}

func readPhoto(c *gin.Context) ([]byte, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("photo")
		if err != nil {
			return nil, err
		}
		return readFormFile(fh)
	}
	return io.ReadAll(io.LimitReader(c.Request.Body, photoReadLimit))
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, photoReadLimit))
}
