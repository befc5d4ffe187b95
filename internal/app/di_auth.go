package app

import (
	"sync"

	authHTTP "github.com/allisson/userguard/internal/auth/http"
	authService "github.com/allisson/userguard/internal/auth/service"
	authUseCase "github.com/allisson/userguard/internal/auth/usecase"
)

// authComponents groups the authentication dependencies.
type authComponents struct {
	tokenService      authService.TokenService
	resetTokenService authService.ResetTokenService
	passwordService   authService.PasswordService
	resetTokenRepo    authUseCase.ResetTokenRepository
	useCase           authUseCase.AuthUseCase
	handler           *authHTTP.AuthHandler

	tokenServiceInit      sync.Once
	resetTokenServiceInit sync.Once
	passwordServiceInit   sync.Once
	resetTokenRepoInit    sync.Once
	useCaseInit           sync.Once
	handlerInit           sync.Once
}

// TokenService returns the JWT access token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.auth.tokenServiceInit.Do(func() {
		svc, err := authService.NewJWTService(
			[]byte(c.config.JWTSigningKey),
			c.config.JWTIssuer,
			c.config.AuthTokenExpiration,
		)
		if err != nil {
			c.initErrors["tokenService"] = err
			return
		}
		c.auth.tokenService = svc
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.auth.tokenService, nil
}

// ResetTokenService returns the opaque reset token generator.
func (c *Container) ResetTokenService() authService.ResetTokenService {
	c.auth.resetTokenServiceInit.Do(func() {
		c.auth.resetTokenService = authService.NewResetTokenService()
	})
	return c.auth.resetTokenService
}

// PasswordService returns the Argon2id password hasher.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	c.auth.passwordServiceInit.Do(func() {
		svc, err := authService.NewPasswordService()
		if err != nil {
			c.initErrors["passwordService"] = err
			return
		}
		c.auth.passwordService = svc
	})
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.auth.passwordService, nil
}

// ResetTokenRepository returns the reset token repository for the configured
// database driver.
func (c *Container) ResetTokenRepository() (authUseCase.ResetTokenRepository, error) {
	c.auth.resetTokenRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["resetTokenRepo"] = err
			return
		}
		c.auth.resetTokenRepo = newResetTokenRepository(c.config.DBDriver, db)
	})
	if storedErr, exists := c.initErrors["resetTokenRepo"]; exists {
		return nil, storedErr
	}
	return c.auth.resetTokenRepo, nil
}

// AuthUseCase returns the authentication use case, decorated with metrics.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	c.auth.useCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		resetTokenRepo, err := c.ResetTokenRepository()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		passwordService, err := c.PasswordService()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}

		useCase := authUseCase.NewAuthenticationUseCase(
			txManager,
			userRepo,
			resetTokenRepo,
			tokenService,
			c.ResetTokenService(),
			passwordService,
			c.config.ResetTokenExpiration,
		)
		c.auth.useCase = authUseCase.NewAuthUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.auth.useCase, nil
}

// AuthHandler returns the auth HTTP handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	c.auth.handlerInit.Do(func() {
		useCase, err := c.AuthUseCase()
		if err != nil {
			c.initErrors["authHandler"] = err
			return
		}
		userUC, err := c.UserUseCase()
		if err != nil {
			c.initErrors["authHandler"] = err
			return
		}
		c.auth.handler = authHTTP.NewAuthHandler(useCase, userUC, c.Logger())
	})
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.auth.handler, nil
}
