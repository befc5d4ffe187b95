package app

import (
	"database/sql"
	"sync"

	authRepository "github.com/allisson/userguard/internal/auth/repository"
	authUseCase "github.com/allisson/userguard/internal/auth/usecase"
	cryptoService "github.com/allisson/userguard/internal/crypto/service"
	userHTTP "github.com/allisson/userguard/internal/user/http"
	userRepository "github.com/allisson/userguard/internal/user/repository"
	userUsecase "github.com/allisson/userguard/internal/user/usecase"
)

// userComponents groups the user dependencies.
type userComponents struct {
	repo    userUsecase.UserRepository
	useCase userUsecase.UseCase
	handler *userHTTP.UserHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// UserRepository returns the user repository for the configured database driver.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.user.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		codec, err := c.FieldCodec()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.user.repo = newUserRepository(c.config.DBDriver, db, codec)
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.user.repo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.user.useCaseInit.Do(func() {
		repo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		passwordService, err := c.PasswordService()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.user.useCase = userUsecase.NewUserUseCase(repo, passwordService)
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.user.useCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	c.user.handlerInit.Do(func() {
		useCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["userHandler"] = err
			return
		}
		c.user.handler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.user.handler, nil
}

// newUserRepository selects the repository implementation by driver.
func newUserRepository(driver string, db *sql.DB, codec cryptoService.FieldCodec) userUsecase.UserRepository {
	if driver == "mysql" {
		return userRepository.NewMySQLUserRepository(db, codec)
	}
	return userRepository.NewPostgreSQLUserRepository(db, codec)
}

// newResetTokenRepository selects the repository implementation by driver.
func newResetTokenRepository(driver string, db *sql.DB) authUseCase.ResetTokenRepository {
	if driver == "mysql" {
		return authRepository.NewMySQLResetTokenRepository(db)
	}
	return authRepository.NewPostgreSQLResetTokenRepository(db)
}
