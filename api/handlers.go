// Package api exposes the scheduling pipeline over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sched-lab/domain"
	scherrors "sched-lab/errors"
	"sched-lab/observability"
	"sched-lab/repositories"
	"sched-lab/services"
)

const defaultListLimit = 100

type Handler struct {
	service    services.ISchedulerService
	messages   repositories.IMessageRepository
	users      repositories.IUserRepository
	meetings   repositories.IMeetingRepository
	monitoring *observability.MonitoringManager
	validate   *validator.Validate
	log        *slog.Logger
}

func NewHandler(
	service services.ISchedulerService,
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
	meetings repositories.IMeetingRepository,
	monitoring *observability.MonitoringManager,
	log *slog.Logger,
) *Handler {
	return &Handler{
		service:    service,
		messages:   messages,
		users:      users,
		meetings:   meetings,
		monitoring: monitoring,
		validate:   validator.New(),
		log:        log,
	}
}

type PostMessageRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MeetingResponse struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled cancelled completed"`
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.error(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.service.RecordMessage(req.Email, req.Name, req.Message)
	if err != nil {
		h.log.Error("Storing message failed", "error", err)
		h.error(w, http.StatusInternalServerError, "storing message failed")
		return
	}
	h.respond(w, http.StatusCreated, toMessageResponse(msg))
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultListLimit)
	messages, err := h.messages.GetMessages(limit)
	if err != nil {
		h.log.Error("Listing messages failed", "error", err)
		h.error(w, http.StatusInternalServerError, "listing messages failed")
		return
	}
	h.respond(w, http.StatusOK, toMessageResponses(messages))
}

func (h *Handler) GetMessagesByUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	messages, err := h.messages.GetMessagesByAuthor(email)
	if err != nil {
		h.log.Error("Listing user messages failed", "email", email, "error", err)
		h.error(w, http.StatusInternalServerError, "listing messages failed")
		return
	}
	h.respond(w, http.StatusOK, toMessageResponses(messages))
}

func (h *Handler) SearchMessages(w http.ResponseWriter, r *http.Request) {
	terms := r.URL.Query().Get("q")
	if terms == "" {
		h.error(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	limit := queryInt(r, "limit", defaultListLimit)
	messages, err := h.messages.Search(r.Context(), terms, limit)
	if err != nil {
		h.log.Error("Search failed", "terms", terms, "error", err)
		h.error(w, http.StatusInternalServerError, "search failed")
		return
	}
	h.respond(w, http.StatusOK, toMessageResponses(messages))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.CreateUser(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, scherrors.ErrUserAlreadyExists) {
			h.error(w, http.StatusConflict, "user already exists")
			return
		}
		h.log.Error("Creating user failed", "email", req.Email, "error", err)
		h.error(w, http.StatusInternalServerError, "creating user failed")
		return
	}
	h.respond(w, http.StatusCreated, toUserResponse(user))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers()
	if err != nil {
		h.log.Error("Listing users failed", "error", err)
		h.error(w, http.StatusInternalServerError, "listing users failed")
		return
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	h.respond(w, http.StatusOK, out)
}

// RunScheduling triggers a full analysis of the recent history.
func (h *Handler) RunScheduling(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.service.RunScheduling(r.Context())
	if err != nil {
		h.log.Error("Scheduling run failed", "error", err)
		h.error(w, http.StatusInternalServerError, "scheduling run failed")
		return
	}
	h.respond(w, http.StatusOK, map[string]any{
		"meetings_scheduled": len(meetings),
		"meetings":           toMeetingResponses(meetings),
	})
}

func (h *Handler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetings.ListMeetings()
	if err != nil {
		h.log.Error("Listing meetings failed", "error", err)
		h.error(w, http.StatusInternalServerError, "listing meetings failed")
		return
	}
	h.respond(w, http.StatusOK, toMeetingResponses(meetings))
}

func (h *Handler) GetMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid meeting id")
		return
	}
	meeting, err := h.meetings.GetMeeting(id)
	if err != nil {
		if errors.Is(err, scherrors.ErrNotFound) {
			h.error(w, http.StatusNotFound, "meeting not found")
			return
		}
		h.log.Error("Fetching meeting failed", "id", id, "error", err)
		h.error(w, http.StatusInternalServerError, "fetching meeting failed")
		return
	}
	h.respond(w, http.StatusOK, toMeetingResponse(meeting))
}

func (h *Handler) UpdateMeetingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.error(w, http.StatusBadRequest, "invalid meeting id")
		return
	}
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.meetings.UpdateStatus(id, domain.MeetingStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, scherrors.ErrNotFound):
			h.error(w, http.StatusNotFound, "meeting not found")
		case errors.Is(err, scherrors.ErrInvalidStatus):
			h.error(w, http.StatusBadRequest, "invalid status")
		default:
			h.log.Error("Updating meeting failed", "id", id, "error", err)
			h.error(w, http.StatusInternalServerError, "updating meeting failed")
		}
		return
	}
	h.respond(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "sched-lab",
		"stats":   h.monitoring.GetLatest(),
	})
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics()
	if err != nil {
		h.log.Error("Computing statistics failed", "error", err)
		h.error(w, http.StatusInternalServerError, "computing statistics failed")
		return
	}
	h.respond(w, http.StatusOK, stats)
}

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("Encoding response failed", "error", err)
	}
}

func (h *Handler) error(w http.ResponseWriter, status int, message string) {
	h.respond(w, status, map[string]string{"error": message})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func toMessageResponse(msg domain.Message) MessageResponse {
	return MessageResponse{
		ID:        msg.ID.String(),
		Email:     msg.AuthorID,
		Name:      msg.AuthorName,
		Message:   msg.Content,
		Timestamp: msg.CreatedAt.Format(time.RFC3339),
	}
}

func toMessageResponses(messages []domain.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, toMessageResponse(msg))
	}
	return out
}

func toUserResponse(user domain.User) UserResponse {
	return UserResponse{ID: user.ID.String(), Name: user.Name, Email: user.Email}
}

func toMeetingResponse(meeting domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:           meeting.ID.String(),
		Date:         meeting.Date,
		Time:         meeting.Time,
		Participants: meeting.Participants,
		Title:        meeting.Title,
		Description:  meeting.Description,
		Status:       string(meeting.Status),
		CreatedAt:    meeting.CreatedAt.Format(time.RFC3339),
	}
}

func toMeetingResponses(meetings []domain.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, toMeetingResponse(m))
	}
	return out
}
