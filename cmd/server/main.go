package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/config"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/domain/fiber/handler"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/logger"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/middleware"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/repository"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/service"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zlog := logger.InitLog(appConfig.LogLevel)
	defer func() { _ = zlog.Sync() }()
	slog := zap.S().Named("server")

	storeConfig := config.LoadStoreConfig()
	interviewConfig := config.LoadInterviewConfig()

	bank, err := config.LoadQuestionBank(interviewConfig.QuestionBankFile)
	if err != nil {
		slog.Fatalf("loading question bank: %v", err)
	}

	llm, err := service.NewLLMService(ctx, interviewConfig)
	if err != nil {
		slog.Fatalf("creating evaluator: %v", err)
	}

	candidates := repository.NewCandidateRepository(storeConfig.CandidatesFile, storeConfig.BackupDir, storeConfig.Sheet)
	sessions := repository.NewSessionRepository()

	interviewUC := usecase.NewInterviewUsecase(candidates, llm, interviewConfig.EvaluatorTimeout)
	sessionUC := usecase.NewSessionUsecase(sessions, candidates, llm, bank.Questions, interviewConfig.EvaluatorTimeout)
	questionUC := usecase.NewQuestionUsecase(candidates, llm, interviewConfig.EvaluatorTimeout)
	adminUC := usecase.NewAdminUsecase(candidates)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.IsDevelopment(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	if appConfig.Pprof {
		app.Use(pprof.New())
	}
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	handler.NewInterviewHandler(sessionUC, interviewUC, interviewConfig.KeepHistory).RegisterRoutes(app)
	handler.NewAdminHandler(adminUC, questionUC, interviewConfig.DefaultQuestionCount).RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			slog.Debugf("active goroutines: %d, live sessions: %d", runtime.NumGoroutine(), sessions.Count())
		}
	}()

	slog.Infof("server running on %s, candidates file %s", appConfig.Port, candidates.Path())
	if err := app.Listen(appConfig.Port); err != nil {
		slog.Fatal(err)
	}
}
