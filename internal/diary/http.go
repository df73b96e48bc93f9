// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package diary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/nikki/internal/platform/middleware"
	requestutil "github.com/taibuivan/nikki/internal/platform/request"
	"github.com/taibuivan/nikki/internal/platform/respond"
	"github.com/taibuivan/nikki/internal/platform/validate"
	"github.com/taibuivan/nikki/pkg/pagination"
	"github.com/taibuivan/nikki/pkg/tags"
)

// Handler implements the diary HTTP endpoints.
//
// The whole route group sits behind the auth guard: there is no anonymous
// access to any diary operation.
type Handler struct {
	diaryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{diaryService: service}
}

// Routes returns a [chi.Router] configured with the diary routes.
//
// # Endpoints
//   - GET    /     : Paginated list of the caller's entries.
//   - POST   /     : Creates an entry.
//   - GET    /{id} : Fetches one owned entry.
//   - PUT    /{id} : Replaces one owned entry.
//   - DELETE /{id} : Deletes one owned entry.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// # Request Payloads

type entryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

// validateEntry runs the shared create/update input rules.
func validateEntry(input entryRequest) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 100).
		Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, 10000).
		MaxLen(FieldMood, input.Mood, 30).
		Custom(FieldTags, len(input.Tags) > tags.MaxTags, "タグは10件までです")

	for _, tag := range input.Tags {
		validator.MaxLen(FieldTags, tag, tags.MaxTagLength)
	}

	return validator.Err()
}

// list handles GET /api/diaries?page=&limit=.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.diaryService.List(request.Context(), ownerID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// create handles POST /api/diaries.
//
// Validation runs before the service is called; nothing is persisted for
// invalid input.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input entryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateEntry(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.diaryService.Create(request.Context(), ownerID, EntryInput{
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
		Tags:    input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

// get handles GET /api/diaries/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.diaryService.Get(request.Context(), ownerID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// update handles PUT /api/diaries/{id} with full-field replace semantics.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input entryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validateEntry(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.diaryService.Update(request.Context(), ownerID, requestutil.Param(request, "id"), EntryInput{
		Title:   input.Title,
		Content: input.Content,
		Mood:    input.Mood,
		Tags:    input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// remove handles DELETE /api/diaries/{id}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.diaryService.Delete(request.Context(), ownerID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, msgDeleted)
}
