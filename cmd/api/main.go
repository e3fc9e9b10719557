package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/analyticsclient"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleauth"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole/searchconsoleclient"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/api"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/scheduler"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/collecting"
	"github.com/vfg2006/marketing-metrics-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Registra os coletores Prometheus expostos em /metrics
	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	analyticsDataRepo := repository.NewAnalyticsDataRepository(pgConn)
	searchConsoleDataRepo := repository.NewSearchConsoleDataRepository(pgConn)
	googleAdsDataRepo := repository.NewGoogleAdsDataRepository(pgConn)
	pageAnalyticsRepo := repository.NewPageAnalyticsRepository(pgConn)
	searchQueryRepo := repository.NewSearchQueryRepository(pgConn)
	searchPageRepo := repository.NewSearchPageRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// As três integrações Google compartilham o mesmo gerenciador de tokens
	tokenManager := googleauth.NewTokenManager(cfg)

	analyticsIntegrator := analytics.New(cfg, analyticsclient.NewClient(cfg, tokenManager))
	searchConsoleIntegrator := searchconsole.New(cfg, searchconsoleclient.NewClient(cfg, tokenManager))
	googleAdsIntegrator := googleads.New(cfg, googleadsclient.NewClient(cfg, tokenManager))

	collector := collecting.NewService(
		cfg,
		analyticsIntegrator,
		searchConsoleIntegrator,
		googleAdsIntegrator,
		analyticsDataRepo,
		searchConsoleDataRepo,
		googleAdsDataRepo,
		pageAnalyticsRepo,
		searchQueryRepo,
		searchPageRepo,
	)

	analyzer := analyzing.NewService(cfg, googleAdsDataRepo)

	// Inicializa os agendadores das rotinas de coleta e retenção
	dailySyncService := scheduler.NewDailyMetricsSyncService(collector, cfg)
	enhancedSyncService := scheduler.NewEnhancedMetricsSyncService(collector, cfg)
	retentionSweepService := scheduler.NewRetentionSweepService(collector, cfg)

	// Inicia os agendadores em background
	if err := dailySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da coleta diária de métricas")
	} else {
		logrus.Info("Agendador da coleta diária de métricas iniciado com sucesso")
	}

	if err := enhancedSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da coleta com quebras")
	} else {
		logrus.Info("Agendador da coleta com quebras iniciado com sucesso")
	}

	if err := retentionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de retenção")
	} else {
		logrus.Info("Agendador da varredura de retenção iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		collector,
		analyzer,
		authenticator,
		dailySyncService,
		enhancedSyncService,
		retentionSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
