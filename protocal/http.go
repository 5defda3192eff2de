package protocal

import (
	"flag"
	"os"
	"os/signal"
	"time"

	"mindspace-api/configs"
	httpAdapter "mindspace-api/internal/adapters/input/http"
	"mindspace-api/internal/adapters/output/giphy"
	"mindspace-api/internal/adapters/output/groq"
	"mindspace-api/internal/adapters/output/memory"
	"mindspace-api/internal/adapters/output/postgres"
	"mindspace-api/internal/adapters/output/security"
	"mindspace-api/internal/adapters/output/smtp"
	"mindspace-api/internal/application"
	"mindspace-api/internal/domain"
	"mindspace-api/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()

	if conf.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if conf.App.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.Info(conf.App.Env)

	origin := conf.App.FrontendLocalURL
	if conf.App.IsProduction() {
		origin = conf.App.FrontendURL
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	dbConGorm, err := gorm.ConnectToPostgreSQL(
		conf.Postgres.Host,
		conf.Postgres.Port,
		conf.Postgres.Username,
		conf.Postgres.Password,
		conf.Postgres.DbName,
		conf.Postgres.SSLMode,
	)
	if err != nil {
		return err
	}
	domain.MigrateDatabase(dbConGorm.Postgres)

	// Output adapters
	userRepo := postgres.NewUserRepository(dbConGorm.Postgres)
	postRepo := postgres.NewPostRepository(dbConGorm.Postgres)
	journalRepo := postgres.NewJournalRepository(dbConGorm.Postgres)

	tokens, err := security.NewJWTManager(conf.JWT.Secret)
	if err != nil {
		logrus.Fatalf("Failed to create token manager: %v", err)
	}
	hasher := security.NewBcryptHasher(security.DefaultCost)
	gifs := giphy.NewGifClientAdapter(conf.Giphy)
	mailer := smtp.NewMailerAdapter(conf.SMTP)

	completion, err := groq.NewCompletionClientAdapter(conf.Groq)
	if err != nil {
		logrus.Fatalf("Failed to create completion client: %v", err)
	}

	idle := time.Duration(conf.Chat.CleanupInterval) * time.Minute
	store := memory.NewConversationStore(memory.ConversationStoreConfig{
		SystemPrompt:    conf.Chat.SystemPrompt,
		MaxMessages:     conf.Chat.MaxMessages,
		IdleTimeout:     idle,
		SweepInterval:   idle,
		PinSystemPrompt: conf.Chat.PinSystemPrompt,
	})
	store.Start()

	// Application services
	model := conf.Groq.Model
	if model == "" {
		model = domain.DefaultChatModel
	}
	authSrv := application.NewAuthService(userRepo, hasher, tokens, mailer)
	postSrv := application.NewPostService(postRepo, userRepo, gifs, conf.Giphy.FallbackURL)
	journalSrv := application.NewJournalService(journalRepo)
	chatSrv := application.NewChatService(store, completion, model)

	// Input adapter
	hdl := httpAdapter.New(authSrv, postSrv, journalSrv, chatSrv, dbConGorm.Postgres,
		httpAdapter.CookieConfig{Production: conf.App.IsProduction()})

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			logrus.Info("Gracefull shut down ...")
			store.Stop()
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				logrus.Errorf("Error when shutdown server: %v", err)
			}
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", hdl.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	hdl.Register(app, httpAdapter.DefaultRateLimits)

	logrus.Infof("Listening on port: %s", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}
