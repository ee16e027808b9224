package main

import (
	"context"
	"os"
	"strconv"

	"contractregistry/cmd/internal/domain/policy"
	"contractregistry/cmd/internal/domain/sqlite"
	"contractregistry/cmd/internal/domain/sqlite/repository"
	"contractregistry/cmd/internal/http/handler"
	custommw "contractregistry/cmd/internal/http/middleware"
	cognitoclient "contractregistry/cmd/internal/infrastructure/aws/cognito"
	"contractregistry/cmd/internal/infrastructure/aws/storage"
	"contractregistry/cmd/internal/infrastructure/minhareceita"
	"contractregistry/cmd/internal/service"
	"contractregistry/cmd/internal/service/jobs"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/uid"
	"contractregistry/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/contractregistry/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(nodeID())

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Cognito publishes the signing keys we validate tokens against
	err = utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("AWS_COGNITO_USER_POOL_ID"))
	if err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	receitaClient := minhareceita.NewClient()

	// Getting repos
	contractRepo := repository.NewContractRepository(db)
	amendmentRepo := repository.NewAmendmentRepository(db)
	endorsementRepo := repository.NewEndorsementRepository(db)
	supervisorRepo := repository.NewSupervisorRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Getting services
	contractPolicy := policy.NewContractPolicy()
	contractService := service.NewContractService(
		contractRepo, amendmentRepo, endorsementRepo,
		supervisorRepo, documentRepo, contractPolicy, validate,
	)
	supervisorService := service.NewSupervisorService(supervisorRepo, contractRepo, validate)
	documentService := service.NewDocumentService(documentRepo, contractRepo, s3Client)
	importService := service.NewImportService(contractRepo, supervisorRepo)
	userService := service.NewUserService(userRepo, roleRepo, validate, cogClient)
	miscService := service.NewMiscService(receitaClient, companyRepo)

	// Getting handlers
	contractRoutes := handler.NewContractRoute(contractService)
	supervisorRoutes := handler.NewSupervisorRoute(supervisorService)
	documentRoutes := handler.NewDocumentRoute(documentService)
	importRoutes := handler.NewImportRoute(importService)
	userRoutes := handler.NewUserRoute(userService)
	utilRoutes := handler.NewUtilRoute(miscService)

	authMiddleware := custommw.NewAuthMiddleware(&custommw.AuthMiddlewareConfig{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
	})
	adminMiddleware := custommw.NewAdminMiddleware()

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("30M"))

	// Public surface: citizens browse contracts anonymously
	e.GET("/api/contracts", contractRoutes.GetContracts)
	e.GET("/api/contracts/:id", contractRoutes.GetContract)

	// Users
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/login", userRoutes.CreateLogin)
	e.POST("/api/users/confirms", userRoutes.ConfirmSignup)
	e.POST("/api/users/confirms/resend", userRoutes.ResendConfirmation)
	e.GET("/api/users/@me", userRoutes.GetSelf, authMiddleware)

	// Admin console
	admin := e.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.POST("/contracts", contractRoutes.CreateContract)
	admin.PUT("/contracts/:id", contractRoutes.UpdateContract)
	admin.DELETE("/contracts/:id", contractRoutes.DeleteContract)
	admin.POST("/contracts/import", importRoutes.ImportSpreadsheet)
	admin.GET("/contracts/import/template", importRoutes.DownloadTemplate)
	admin.POST("/contracts/:id/supervisors", supervisorRoutes.AddSupervisor)
	admin.DELETE("/supervisors/:id", supervisorRoutes.DeleteSupervisor)
	admin.POST("/contracts/:id/documents", documentRoutes.UploadDocument)
	admin.DELETE("/documents/:id", documentRoutes.DeleteDocument)
	admin.GET("/dashboard/expiring", contractRoutes.GetExpiringCounts)
	admin.GET("/companies/:cnpj", utilRoutes.GetCompany)

	// Docker Compose healthcheck
	e.GET("/health", utilRoutes.GetHealth)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryWatcher := jobs.NewExpiryWatcher(contractRepo)
	cacheCleaner := jobs.NewCompanyCacheCleaner(companyRepo)
	go expiryWatcher.Start(ctx)
	go cacheCleaner.Start(ctx)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("modality", validators.IsModality)
	_ = validate.RegisterValidation("contractstatus", validators.IsContractStatus)
	_ = validate.RegisterValidation("amendmenttype", validators.IsAmendmentType)
	_ = validate.RegisterValidation("endorsementtype", validators.IsEndorsementType)
	_ = validate.RegisterValidation("doctype", validators.IsDocumentType)
}

func nodeID() int64 {
	raw := os.Getenv("NODE_ID")
	if raw == "" {
		return 1
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid NODE_ID %q: %v", raw, err)
	}
	return id
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}
