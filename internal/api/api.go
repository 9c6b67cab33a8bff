package api

import (
	"context"
	"fmt"
	"time"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/beegy-labs/girok-resume-api/internal/audit"
	"github.com/beegy-labs/girok-resume-api/internal/auth"
	"github.com/beegy-labs/girok-resume-api/internal/dto"
	"github.com/beegy-labs/girok-resume-api/internal/experience"
	"github.com/beegy-labs/girok-resume-api/internal/metrics"
)

// @title           Girok Resume API
// @version         1.0
// @description     Сервис резюме: профили, записи о занятости, расчёт суммарного стажа, обмен событиями через Kafka, журнал аудита с маскированием чувствительных полей.
//
//@license.name  MIT
// @license.url   https://opensource.org/license/mit
//
// @BasePath  /
// @schemes   http
// @accept    json
// @produce   json

type EventsRepository interface {
	ExistsMessage(ctx context.Context, messageID uuid.UUID) (bool, error)
	InsertEvent(ctx context.Context, ev dto.KafkaEvent) error
	InsertDLQ(ctx context.Context, dlq dto.KafkaDLQ) error
	ListEvents(ctx context.Context) ([]dto.KafkaEvent, error)
	ListDLQ(ctx context.Context) ([]dto.KafkaDLQ, error)
	ResetAll(ctx context.Context) error
}

type ProfileRepository interface {
	Create(ctx context.Context, p dto.CandidateProfile) error
	Update(ctx context.Context, p dto.CandidateProfile) error
	Delete(ctx context.Context, employeeID string) error
	GetProfile(ctx context.Context, employeeID string) (*dto.CandidateProfile, error)
	ListProfiles(ctx context.Context) ([]dto.CandidateProfile, error)
}

type EmploymentRepository interface {
	Insert(ctx context.Context, rec dto.EmploymentRecord) error
	Update(ctx context.Context, rec dto.EmploymentRecord) error
	Delete(ctx context.Context, id int64) error
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]dto.EmploymentRecord, error)
	ListAllByEmployee(ctx context.Context, employeeID string) ([]dto.EmploymentRecord, error)
	GetByID(ctx context.Context, id int64) (*dto.EmploymentRecord, error)
}

type AuditRepository interface {
	List(ctx context.Context, limit, offset int) ([]dto.AuditEntry, error)
}

type Producer interface {
	ProduceProfile(ctx context.Context, messageID uuid.UUID, p dto.CandidateProfile) error
	ProduceEmployment(ctx context.Context, messageID uuid.UUID, rec dto.EmploymentRecord) error
}

type ServiceDeps struct {
	Port      int
	JWTSecret string

	EventsRepo     EventsRepository
	ProfileRepo    ProfileRepository
	EmploymentRepo EmploymentRepository
	AuditRepo      AuditRepository

	Producer   Producer
	Calculator *experience.Calculator
	Audit      *audit.Interceptor
}

type Service struct {
	r         *router.Router
	port      int
	jwtSecret string

	events      EventsRepository
	profiles    ProfileRepository
	employments EmploymentRepository
	auditLog    AuditRepository
	producer    Producer
	calc        *experience.Calculator
	audit       *audit.Interceptor
}

func NewService(d ServiceDeps) *Service {
	rt := router.New()

	s := &Service{
		r:           rt,
		port:        d.Port,
		jwtSecret:   d.JWTSecret,
		events:      d.EventsRepo,
		profiles:    d.ProfileRepo,
		employments: d.EmploymentRepo,
		auditLog:    d.AuditRepo,
		producer:    d.Producer,
		calc:        d.Calculator,
		audit:       d.Audit,
	}

	if s.calc == nil {
		s.calc = experience.NewCalculator()
	}

	s.mountRoutes()

	return s
}

// handler собирает цепочку: recovery и логирование снаружи, затем
// метрики, авторизация и аудит (аудиту нужны claims из авторизации).
func (s *Service) handler() fasthttp.RequestHandler {
	h := s.r.Handler
	if s.audit != nil {
		h = s.audit.Wrap(h)
	}
	h = auth.Middleware(s.jwtSecret, h)
	h = MetricsMiddleware(h)
	return RecoveryMiddleware(LoggingMiddleware(CORS(h)))
}

func (s *Service) Start(ctx context.Context) error {
	server := fasthttp.Server{
		Handler:            s.handler(),
		Name:               "girok-resume-api",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 2 << 20, // 2 MiB
	}

	log.Info().Int("port", s.port).Msg("Starting resume API")

	emergencyShutdown := make(chan error)
	go func() {
		err := server.ListenAndServe(fmt.Sprintf(":%d", s.port))
		emergencyShutdown <- err
	}()

	select {
	case <-ctx.Done():
		return server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	s.r.POST("/producer/profile", s.producerProfile)
	s.r.POST("/producer/employment", s.producerEmployment)

	// Profiles
	s.r.POST("/profiles", s.createProfile)
	s.r.PUT("/profiles/{employee_id}", s.updateProfile)
	s.r.DELETE("/profiles/{employee_id}", s.deleteProfile)
	s.r.GET("/profiles", s.listProfiles)
	s.r.GET("/profiles/{employee_id}", s.getProfile)

	// Employments
	s.r.POST("/employments", s.createEmployment)
	s.r.PUT("/employments/{id}", s.updateEmployment)
	s.r.DELETE("/employments/{id}", s.deleteEmployment)
	s.r.GET("/employments/{employee_id}", s.listEmploymentsByEmployee)
	s.r.GET("/employments/{employee_id}/experience", s.employeeExperience)

	// Events/DLQ/Audit
	s.r.GET("/events", s.listEvents)
	s.r.GET("/dlq", s.listDLQ)
	s.r.GET("/audit", s.listAudit)

	// Admin & Health
	s.r.GET("/health", s.healthHandler)
	s.r.GET("/metrics", metrics.Handler())
	s.r.POST("/admin/reset", s.resetHandler)
}
