package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
	"github.com/pttech/storefront/internal/session"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-Id"
	HeaderValueJson     = "application/json"
)

// Client is the single typed boundary to the storefront backend. Every
// request attaches the persisted bearer token when one exists; non-2xx
// responses map to *ServerError and transport failures to *NetworkError.
// There are no retries and no timeouts beyond the configured client one.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

func NewClient(baseURL string, store *session.Store, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		session: store,
	}
}

func (cl *Client) Get(c context.Context, path string, query url.Values, out interface{}) error {
	return cl.do(c, http.MethodGet, path, query, nil, out)
}

func (cl *Client) Post(c context.Context, path string, query url.Values, body, out interface{}) error {
	return cl.do(c, http.MethodPost, path, query, body, out)
}

func (cl *Client) Put(c context.Context, path string, query url.Values, body, out interface{}) error {
	return cl.do(c, http.MethodPut, path, query, body, out)
}

func (cl *Client) Delete(c context.Context, path string, query url.Values, out interface{}) error {
	return cl.do(c, http.MethodDelete, path, query, nil, out)
}

func (cl *Client) do(
	c context.Context,
	method string,
	path string,
	query url.Values,
	body interface{},
	out interface{},
) error {
	c, span := otel.Tracer.Start(c, "Client "+method+" "+path)
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Client do").
		Str("method", method).
		Str("path", path).
		Logger()

	endpoint := cl.baseURL + path
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}
	logger = logger.With().Str(log.KeyEndpoint, endpoint).Logger()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			err = fmt.Errorf("failed marshaling request body with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(c, method, endpoint, reader)
	if err != nil {
		err = fmt.Errorf("failed creating request with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if body != nil {
		req.Header.Set(HeaderContentType, HeaderValueJson)
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	logger = logger.With().Str("requestId", requestID).Logger()

	sess, err := cl.session.Current(c)
	switch {
	case err == nil:
		req.Header.Set(HeaderAuthorization, "Bearer "+sess.AccessToken)
	case errors.Is(err, inErrors.ErrNoSession):
		logger.Debug().Msg("no session, sending unauthenticated request")
	default:
		err = fmt.Errorf("failed reading session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	logger.Info().Msg("sending request")
	resp, err := cl.http.Do(req)
	if err != nil {
		netErr := &inErrors.NetworkError{Err: err}
		otel.RecordError(netErr, span)
		logger.Error().Err(netErr).Msg(netErr.Error())
		return netErr
	}
	defer resp.Body.Close()

	logger = logger.With().Int(log.KeyStatusCode, resp.StatusCode).Logger()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed reading response body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		srvErr := &inErrors.ServerError{StatusCode: resp.StatusCode, Body: string(raw)}
		otel.RecordError(srvErr, span)
		logger.Error().Err(srvErr).Msg(srvErr.Error())
		return srvErr
	}
	logger.Info().Msg("received response")

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		valErr := &inErrors.ValidationError{
			Err: fmt.Errorf("failed decoding response body with error=%w", err),
		}
		otel.RecordError(valErr, span)
		logger.Error().Err(valErr).Msg(valErr.Error())
		return valErr
	}
	return nil
}
