// Package httpapi exposes the catalog, accounts and reviews over HTTP/JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/reviews"
	"github.com/dmitrijs2005/bookshelf/internal/server/users"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	users   *users.Service
	reviews *reviews.Service
	books   *catalog.Catalog
	logger  logging.Logger
}

func NewHandler(us *users.Service, rs *reviews.Service, books *catalog.Catalog, l logging.Logger) *Handler {
	return &Handler{
		users:   us,
		reviews: rs,
		books:   books,
		logger:  l.With("module", "http"),
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type reviewsResponse struct {
	Message string            `json:"message,omitempty"`
	Reviews map[string]string `json:"reviews"`
}

// bookResponse is a catalog entry together with its current reviews.
type bookResponse struct {
	catalog.Book
	Reviews map[string]string `json:"reviews"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// decodeCredentials reads a credentials body. An empty body decodes to empty
// fields so that validation reports what is missing.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return credentialsRequest{}, nil
		}
		return credentialsRequest{}, common.ErrInvalidRequest
	}
	return req, nil
}

// pathParam returns the decoded value of a route parameter. chi routes on
// RawPath when it is set, so only then is the value still escaped.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {

	req, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.users.Register(r.Context(), req.Username, req.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User successfully registered. Now you can login"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {

	req, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "User successfully logged in", Token: token})
}

// PutReview takes the review text from the "review" query parameter. An empty
// value is stored as an empty review.
func (h *Handler) PutReview(w http.ResponseWriter, r *http.Request) {
	isbn := pathParam(r, "isbn")
	token := auth.BearerToken(r.Header.Get(common.AuthorizationHeaderName))

	result, err := h.reviews.Upsert(r.Context(), token, isbn, r.URL.Query().Get("review"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewsResponse{
		Message: fmt.Sprintf("Review for ISBN %s added/updated", isbn),
		Reviews: result,
	})
}

func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	isbn := pathParam(r, "isbn")
	token := auth.BearerToken(r.Header.Get(common.AuthorizationHeaderName))

	result, err := h.reviews.Delete(r.Context(), token, isbn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewsResponse{
		Message: fmt.Sprintf("Review for ISBN %s deleted", isbn),
		Reviews: result,
	})
}

func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviews.Get(r.Context(), pathParam(r, "isbn"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewsResponse{Reviews: result})
}

// ListBooks returns the whole catalog keyed by ISBN.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.withReviews(r.Context(), h.books.All())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make(map[string]bookResponse, len(books))
	for _, b := range books {
		out[b.ISBN] = b
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) BookByISBN(w http.ResponseWriter, r *http.Request) {
	b, err := h.books.Get(pathParam(r, "isbn"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	books, err := h.withReviews(r.Context(), []catalog.Book{b})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, books[0])
}

func (h *Handler) BooksByAuthor(w http.ResponseWriter, r *http.Request) {
	h.writeBooks(w, r, h.books.ByAuthor(pathParam(r, "author")))
}

func (h *Handler) BooksByTitle(w http.ResponseWriter, r *http.Request) {
	h.writeBooks(w, r, h.books.ByTitle(pathParam(r, "title")))
}

func (h *Handler) writeBooks(w http.ResponseWriter, r *http.Request, books []catalog.Book) {
	if len(books) == 0 {
		h.writeError(w, r, common.ErrBookNotFound)
		return
	}
	out, err := h.withReviews(r.Context(), books)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) withReviews(ctx context.Context, books []catalog.Book) ([]bookResponse, error) {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		rv, err := h.reviews.Get(ctx, b.ISBN)
		if err != nil {
			return nil, err
		}
		out = append(out, bookResponse{Book: b, Reviews: rv})
	}
	return out, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "OK"})
}
