package factory

import (
	"blogapi/internal/config"
	"blogapi/internal/domain"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/pkg/logger"
	"blogapi/pkg/validation"
)

type Factory interface {
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetValidator() *validation.Validator

	GetUserRepository() domain.UserRepository
	GetPostRepository() domain.PostRepository

	GetUserService() domain.UserService
	GetPostService() domain.PostService
}

type AppFactory struct {
	config    *config.Config
	logger    logger.Logger
	validator *validation.Validator

	userRepository domain.UserRepository
	postRepository domain.PostRepository

	userService domain.UserService
	postService domain.PostService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	userRepository := repository.NewInMemoryUserRepository(log)
	postRepository := repository.NewInMemoryPostRepository(log)

	postService := service.NewPostService(postRepository, log)
	userService := service.NewUserService(userRepository, postService, log)

	return &AppFactory{
		config:         cfg,
		logger:         log,
		validator:      validation.New(),
		userRepository: userRepository,
		postRepository: postRepository,
		userService:    userService,
		postService:    postService,
	}, nil
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetValidator() *validation.Validator {
	return f.validator
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetPostRepository() domain.PostRepository {
	return f.postRepository
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetPostService() domain.PostService {
	return f.postService
}
