package users

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formintake/handler"
	"github.com/dmitrymomot/formintake/pkg/binder"
	"github.com/dmitrymomot/formintake/pkg/logger"
	"github.com/dmitrymomot/formintake/pkg/metrics"
	"github.com/dmitrymomot/formintake/pkg/multipartform"
	"github.com/dmitrymomot/formintake/pkg/newuser"
)

var startedAtKey = handler.NewContextKey("started_at")

// CreateUserService serves POST /create_user.
type CreateUserService struct {
	schema       *multipartform.Schema
	opts         []newuser.Option
	maxBodySize  int64
	log          *slog.Logger
	metrics      *metrics.Metrics
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewCreateUserService wires the endpoint. m may be nil.
func NewCreateUserService(cfg Config, log *slog.Logger, m *metrics.Metrics, views Views) (*CreateUserService, error) {
	schema, err := cfg.Schema()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("users"))

	return &CreateUserService{
		schema:      schema,
		opts:        cfg.Options(),
		maxBodySize: cfg.MaxBodySize.Bytes(),
		log:         log,
		metrics:     m,
		views:       views,
		errorHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		}),
	}, nil
}

// Schema returns the schema requests are checked against.
func (s *CreateUserService) Schema() *multipartform.Schema {
	return s.schema
}

// Handle returns the endpoint router, to be mounted at /create_user.
func (s *CreateUserService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(trackStart)
	if s.maxBodySize > 0 {
		r.Use(middleware.RequestSize(s.maxBodySize))
	}

	r.Post("/", handler.Wrap(s.create,
		handler.WithBinder[handler.Context, newuser.NewUser](binder.Multipart(s.decode)),
		handler.WithErrorHandler[handler.Context, newuser.NewUser](s.handleError),
	))

	return r
}

func (s *CreateUserService) decode(ctx context.Context, contentType string, body io.Reader) (newuser.NewUser, error) {
	return newuser.DecodeAndValidate(ctx, s.schema, contentType, body, s.opts...)
}

// CreatedResponse is the JSON body of a successful submission.
type CreatedResponse struct {
	Name       string `json:"name"`
	Age        int32  `json:"age"`
	AvatarSize int    `json:"avatar_size"`
}

func (s *CreateUserService) create(ctx handler.Context, u newuser.NewUser) handler.Response {
	if s.metrics != nil {
		s.metrics.Accepted(startedAt(ctx), len(u.Avatar))
	}
	s.log.InfoContext(ctx, "user submission accepted", logger.Event("user_created"), logger.Bytes(int64(len(u.Avatar))))

	r := ctx.Request()
	switch {
	case handler.WantsJSON(r):
		return handler.JSON(CreatedResponse{Name: u.User.Name, Age: u.User.Age, AvatarSize: len(u.Avatar)})
	case handler.IsDataStar(r) && s.views.Created != nil:
		return handler.Templ(
			s.views.Created(CreatedParams{Name: u.User.Name, Age: u.User.Age, AvatarSize: len(u.Avatar)}),
			handler.WithTarget("#result"),
			handler.WithPatchMode(handler.PatchOuter),
		)
	default:
		return handler.Text(greeting(u.User.Name, u.User.Age))
	}
}

func (s *CreateUserService) handleError(ctx handler.Context, err error) {
	if s.metrics != nil {
		info := handler.Classify(err)
		if info.StatusCode < http.StatusInternalServerError {
			s.metrics.Rejected(startedAt(ctx), info.Code)
		} else {
			s.metrics.Failed(startedAt(ctx))
		}
	}
	s.errorHandler(ctx, err)
}

func greeting(name string, age int32) string {
	return fmt.Sprintf("Hello, %d year old named %s!", age, name)
}

func trackStart(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), startedAtKey, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func startedAt(ctx context.Context) time.Time {
	if t, ok := handler.ContextValueOK[time.Time](ctx, startedAtKey); ok {
		return t
	}
	return time.Now()
}
