package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
	"github.com/pttech/storefront/internal/rest"
	"github.com/pttech/storefront/internal/session"
	"github.com/pttech/storefront/internal/validate"
	"github.com/pttech/storefront/user/pkg/request"
	"github.com/pttech/storefront/user/pkg/response"
)

type UserService struct {
	client   *rest.Client
	session  *session.Store
	validate *validator.Validate
}

func NewUserService(client *rest.Client, store *session.Store) UserService {
	return UserService{client: client, session: store, validate: validate.New()}
}

// Login authenticates against the backend and persists the returned
// user id and bearer token through the session store.
func (s UserService) Login(c context.Context, param request.Login) (response.Login, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Login").
		Object("login", param).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating login").Logger()
	logger.Info().Msg("validating login")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return response.Login{}, valErr
	}
	logger.Info().Msg("validated login")

	logger = logger.With().Str(log.KeyProcess, "logging in").Logger()
	logger.Info().Msg("logging in")
	login := response.Login{}
	err := s.client.Post(c, "/api/users/login", nil, param, &login)
	if err != nil {
		err = fmt.Errorf("failed logging in with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Login{}, err
	}
	logger = logger.With().Str(log.KeyUserID, login.UserID).Logger()
	logger.Info().Msg("logged in")

	logger = logger.With().Str(log.KeyProcess, "persisting session").Logger()
	logger.Info().Msg("persisting session")
	if err = s.session.Login(c, login.UserID, login.AccessToken); err != nil {
		err = fmt.Errorf("failed persisting session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Login{}, err
	}
	logger.Info().Msg("persisted session")

	return login, nil
}

func (s UserService) Logout(c context.Context) error {
	c, span := otel.Tracer.Start(c, "UserService Logout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Logout").
		Str(log.KeyProcess, "clearing session").
		Logger()

	logger.Info().Msg("clearing session")
	if err := s.session.Logout(c); err != nil {
		err = fmt.Errorf("failed clearing session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("cleared session")

	return nil
}

func (s UserService) Register(c context.Context, param request.Register) error {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Register").
		Object("register", param).
		Logger()

	param.ApplyDefaults()

	logger = logger.With().Str(log.KeyProcess, "validating registration").Logger()
	logger.Info().Msg("validating registration")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return valErr
	}
	logger.Info().Msg("validated registration")

	logger = logger.With().Str(log.KeyProcess, "registering").Logger()
	logger.Info().Msg("registering")
	err := s.client.Post(c, "/api/users/register", nil, param, nil)
	if err != nil {
		err = fmt.Errorf("failed registering with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("registered")

	return nil
}

func (s UserService) ForgotPassword(c context.Context, param request.ForgotPassword) error {
	c, span := otel.Tracer.Start(c, "UserService ForgotPassword")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService ForgotPassword").
		Str(log.KeyEmail, param.Email).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating request").Logger()
	logger.Info().Msg("validating request")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return valErr
	}
	logger.Info().Msg("validated request")

	logger = logger.With().Str(log.KeyProcess, "requesting password reset mail").Logger()
	logger.Info().Msg("requesting password reset mail")
	err := s.client.Post(c, "/api/users/forgot-password", nil, param, nil)
	if err != nil {
		err = fmt.Errorf("failed requesting password reset mail with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("requested password reset mail")

	return nil
}

func (s UserService) ResetPassword(c context.Context, param request.ResetPassword) error {
	c, span := otel.Tracer.Start(c, "UserService ResetPassword")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService ResetPassword").
		Object("reset", param).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating request").Logger()
	logger.Info().Msg("validating request")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return valErr
	}
	logger.Info().Msg("validated request")

	logger = logger.With().Str(log.KeyProcess, "resetting password").Logger()
	logger.Info().Msg("resetting password")
	err := s.client.Post(c, "/api/users/reset-password", nil, param, nil)
	if err != nil {
		err = fmt.Errorf("failed resetting password with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("reset password")

	return nil
}

func (s UserService) FindProfile(c context.Context) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService FindProfile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService FindProfile").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "reading session").Logger()
	logger.Info().Msg("reading session")
	sess, err := s.session.Current(c)
	if err != nil {
		err = fmt.Errorf("failed reading session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger = logger.With().Str(log.KeyUserID, sess.UserID).Logger()
	logger.Info().Msg("read session")

	logger = logger.With().Str(log.KeyProcess, "finding profile").Logger()
	logger.Info().Msg("finding profile")
	user := response.User{}
	err = s.client.Get(c, "/api/users/"+sess.UserID, nil, &user)
	if err != nil {
		err = fmt.Errorf("failed finding profile with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("found profile")

	return user, nil
}

func (s UserService) UpdateProfile(
	c context.Context,
	param request.UpdateProfile,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService UpdateProfile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService UpdateProfile").
		Object("profile", param).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating profile").Logger()
	logger.Info().Msg("validating profile")
	if err := s.validate.StructCtx(c, param); err != nil {
		valErr := &inErrors.ValidationError{Err: err}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return response.User{}, valErr
	}
	logger.Info().Msg("validated profile")

	logger = logger.With().Str(log.KeyProcess, "reading session").Logger()
	logger.Info().Msg("reading session")
	sess, err := s.session.Current(c)
	if err != nil {
		err = fmt.Errorf("failed reading session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger = logger.With().Str(log.KeyUserID, sess.UserID).Logger()
	logger.Info().Msg("read session")

	logger = logger.With().Str(log.KeyProcess, "updating profile").Logger()
	logger.Info().Msg("updating profile")
	user := response.User{}
	err = s.client.Put(c, "/api/users/"+sess.UserID, nil, param, &user)
	if err != nil {
		err = fmt.Errorf("failed updating profile with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("updated profile")

	return user, nil
}
