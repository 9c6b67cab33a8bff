package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beegy-labs/girok-resume-api/internal/api"
	"github.com/beegy-labs/girok-resume-api/internal/audit"
	"github.com/beegy-labs/girok-resume-api/internal/config"
	"github.com/beegy-labs/girok-resume-api/internal/exchange/consumer"
	"github.com/beegy-labs/girok-resume-api/internal/exchange/producer"
	"github.com/beegy-labs/girok-resume-api/internal/experience"
	auditrepo "github.com/beegy-labs/girok-resume-api/internal/repository/audit"
	"github.com/beegy-labs/girok-resume-api/internal/repository/employment"
	"github.com/beegy-labs/girok-resume-api/internal/repository/events"
	"github.com/beegy-labs/girok-resume-api/internal/repository/profile"
	"github.com/beegy-labs/girok-resume-api/library/pg"
	"github.com/beegy-labs/girok-resume-api/library/yamlreader"
	"github.com/beegy-labs/girok-resume-api/migrations"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	cfg := MustNewConfig(parseFlags())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	log.Info().Msgf("pg=%+v", cfg.Postgres.Conn.Value)
	log.Info().Msgf("kafka=%+v", cfg.Kafka.Bootstrap.Value)

	if err := runMigrations(cfg.Postgres.Conn.Value); err != nil {
		log.Fatal().Err(err).Msg("ошибка применения миграций")
	}

	pgClient, err := pg.NewPG(rootCtx, cfg.Postgres.Conn.Value, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres init failed")
	}
	defer pgClient.Close()

	eventsRepo := events.NewRepository(pgClient.Pool())
	profileRepo := profile.NewRepository(pgClient.Pool())
	employmentRepo := employment.NewRepository(pgClient.Pool())
	auditRepo := auditrepo.NewRepository(pgClient.Pool())

	resumeProducer, err := initResumeProducer(cfg.Kafka)
	if err != nil {
		log.Fatal().Err(err).Msg("kafka producer init failed")
	}
	defer func() { _ = resumeProducer.Close() }()

	apiService := api.NewService(api.ServiceDeps{
		Port:           cfg.UserAPI.Port.Value,
		JWTSecret:      cfg.Auth.JWTSecret.Value,
		EventsRepo:     eventsRepo,
		ProfileRepo:    profileRepo,
		EmploymentRepo: employmentRepo,
		AuditRepo:      auditRepo,
		Producer:       resumeProducer,
		Calculator:     experience.NewCalculator(),
		Audit:          audit.NewInterceptor(auditRepo, log.Logger),
	})

	consumerProfile := consumer.NewProfileRunner(
		cfg.Kafka.Bootstrap.Value,
		cfg.Kafka.Topics.Profile.Value,
		"consumer_profile",
		eventsRepo,
		profileRepo,
		log.Logger,
	)
	consumerEmployment := consumer.NewEmploymentRunner(
		cfg.Kafka.Bootstrap.Value,
		cfg.Kafka.Topics.Employment.Value,
		"consumer_employment",
		eventsRepo,
		employmentRepo,
		log.Logger,
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Msg("запуск HTTP API")
		if err := apiService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("HTTP API завершился с ошибкой")

			return err
		}

		log.Info().Msg("HTTP API остановлен")

		return nil
	})

	// Consumer profile
	group.Go(func() error {
		log.Info().Msg("запуск consumer_profile")

		if err := consumerProfile.Start(gctx); err != nil {
			log.Error().Err(err).Msg("consumer_profile завершился с ошибкой")

			return err
		}

		log.Info().Msg("consumer_profile остановлен")

		return nil
	})

	// Consumer employment
	group.Go(func() error {
		log.Info().Msg("запуск consumer_employment")
		if err := consumerEmployment.Start(gctx); err != nil {
			log.Error().Err(err).Msg("consumer_employment завершился с ошибкой")

			return err
		}

		log.Info().Msg("consumer_employment остановлен")

		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = group.Wait()
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("signal received, graceful shutdown...")
		<-done
		log.Info().Msg("all services stopped")
	case <-done:
		log.Info().Msg("all services stopped")
	}
}

func runMigrations(conn string) error {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.Up(db, ".")
}

func initResumeProducer(kafkaConfig config.KafkaConfig) (*producer.ResumeProducer, error) {
	sCfg := sarama.NewConfig()
	sCfg.Version = sarama.V3_3_2_0
	sCfg.ClientID = kafkaConfig.ProducerClientID.Value
	sCfg.Producer.Return.Successes = true
	sCfg.Producer.RequiredAcks = sarama.WaitForAll
	sCfg.Producer.Idempotent = true
	sCfg.Net.MaxOpenRequests = 1
	sCfg.Producer.Retry.Max = 5
	sCfg.Producer.Retry.Backoff = 200 * time.Millisecond

	sp, err := sarama.NewSyncProducer([]string{kafkaConfig.Bootstrap.Value}, sCfg)
	if err != nil {
		return nil, err
	}

	resumeProd := producer.NewResumeProducer(
		sp,
		producer.Config{
			TopicProfile:    kafkaConfig.Topics.Profile.Value,
			TopicEmployment: kafkaConfig.Topics.Employment.Value,
			Source:          "girok-resume-api",
		},
		log.Logger,
	)

	return resumeProd, nil
}

func MustNewConfig(path string) *config.Config {
	cfg, err := yamlreader.NewConfig[config.Config](path)

	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("ошибка чтения конфигурации приложения")
		return nil
	}

	return cfg
}

func parseFlags() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	godotenv.Load(".env")

	if configPath == "" {
		configPath = "config/application-local.yaml"
	}
	return configPath
}
