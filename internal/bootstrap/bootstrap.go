package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/studenthub/internal/app/controllers"
	appRepos "github.com/yigit/studenthub/internal/app/repositories"
	appRoutes "github.com/yigit/studenthub/internal/app/routes"
	appServices "github.com/yigit/studenthub/internal/app/services"
	"github.com/yigit/studenthub/internal/config"
	appMiddleware "github.com/yigit/studenthub/internal/middleware"
	pkgAuth "github.com/yigit/studenthub/internal/pkg/auth"
	"github.com/yigit/studenthub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	StudentService    appServices.StudentService
	AuthService       appServices.AuthService
	HomeController    *appControllers.HomeController
	StudentController *appControllers.StudentController
	AuthController    *appControllers.AuthController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	if cfg.JWT.Secret == config.DefaultJWTSecret {
		lgr.Warn().Msg("Using the default JWT secret; set JWT_SECRET before deploying")
	}

	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.HomeController = appControllers.NewHomeController()
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	appRoutes.SetupRouter(router,
		deps.HomeController,
		deps.StudentController,
		deps.AuthController,
		deps.AuthMiddleware,
		cfg.Auth.Enabled,
	)

	return router
}
