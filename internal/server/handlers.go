package server

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/notify"
)

const postTaskMaxSize = 4 << 10

type taskRequest struct {
	Name         string `json:"name"`
	DeadlineDays int    `json:"deadlineDays"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Summary   string    `json:"summary"`
	Detail    string    `json:"detail"`
	LifeMs    int64     `json:"life"`
	CreatedAt time.Time `json:"createdAt"`
}

type tasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

type addTaskResponse struct {
	Task         *domain.Task          `json:"task,omitempty"`
	Notification *notificationResponse `json:"notification,omitempty"`
}

type completeTaskResponse struct {
	Removed      int                   `json:"removed"`
	Notification *notificationResponse `json:"notification,omitempty"`
}

type notificationsResponse struct {
	Notifications []notificationResponse `json:"notifications"`
}

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, s *Server) {
	e.GET("/healthz", healthz())
	e.GET("/api/tasks", getTasks(s))
	e.POST("/api/tasks", postTask(s))
	e.DELETE("/api/tasks/:name", deleteTask(s))
	e.GET("/api/notifications", getNotifications(s))
	e.DELETE("/api/notifications/:id", deleteNotification(s))
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func getTasks(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := s.requestContext(c)
		defer cancel()

		s.mu.Lock()
		tasks, err := s.session.Tasks(ctx)
		s.mu.Unlock()
		if err != nil {
			s.logger.WithError(err).Error("list tasks")
			return c.String(http.StatusInternalServerError, errors.GetUserMessage(err))
		}
		if tasks == nil {
			tasks = []domain.Task{}
		}
		return c.JSON(http.StatusOK, tasksResponse{Tasks: tasks})
	}
}

func postTask(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		lr := io.LimitReader(c.Request().Body, postTaskMaxSize)
		dec := sonic.ConfigStd.NewDecoder(lr)
		dec.DisallowUnknownFields()

		var req taskRequest
		if err := dec.Decode(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}

		ctx, cancel := s.requestContext(c)
		defer cancel()

		s.mu.Lock()
		task, err := s.session.AddTask(ctx, req.Name, req.DeadlineDays)
		n, _ := s.session.LastNotification()
		s.mu.Unlock()

		resp := addTaskResponse{Notification: toNotificationResponse(n)}
		if err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeInvalidInput) {
				return c.JSON(http.StatusBadRequest, resp)
			}
			s.logger.WithError(err).Error("add task")
			return c.JSON(http.StatusInternalServerError, resp)
		}
		resp.Task = &task
		return c.JSON(http.StatusCreated, resp)
	}
}

func deleteTask(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := taskNameParam(c)

		ctx, cancel := s.requestContext(c)
		defer cancel()

		s.mu.Lock()
		removed, err := s.session.CompleteTask(ctx, name)
		n, _ := s.session.LastNotification()
		s.mu.Unlock()

		resp := completeTaskResponse{Removed: removed, Notification: toNotificationResponse(n)}
		if err != nil {
			s.logger.WithError(err).Error("complete task")
			return c.JSON(http.StatusInternalServerError, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// taskNameParam returns the decoded :name segment. The router matches on
// the raw path only when the request path carries escapes such as %2F, and
// leaves the param escaped in that case alone.
func taskNameParam(c echo.Context) string {
	name := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return name
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

func getNotifications(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		active := s.session.Notifications()
		s.mu.Unlock()

		resp := notificationsResponse{Notifications: make([]notificationResponse, 0, len(active))}
		for _, n := range active {
			resp.Notifications = append(resp.Notifications, *toNotificationResponse(n))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func deleteNotification(s *Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		found := s.session.DismissNotification(c.Param("id"))
		s.mu.Unlock()

		if !found {
			return c.NoContent(http.StatusNotFound)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func toNotificationResponse(n notify.Notification) *notificationResponse {
	if n.ID == "" {
		return nil
	}
	return &notificationResponse{
		ID:        n.ID,
		Severity:  string(n.Severity),
		Summary:   n.Summary,
		Detail:    n.Detail,
		LifeMs:    n.Life.Milliseconds(),
		CreatedAt: n.CreatedAt,
	}
}

func (s *Server) requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), s.timeout)
}

func logRequest(logger *log.Logger) func(c echo.Context, v requestValues) error {
	return func(c echo.Context, v requestValues) error {
		logger.WithFields(log.Fields{
			"method":  v.Method,
			"uri":     v.URI,
			"status":  v.Status,
			"latency": v.Latency,
		}).Debug("request")
		return nil
	}
}
