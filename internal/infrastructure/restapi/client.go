package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/pkg/logger"
)

// maxBody tamaño máximo de respuesta que se lee del backend.
const maxBody = 8 << 20

// Client cliente JSON del backend REST. Adjunta el token del usuario que viaja en el contexto.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin barra final, p. ej. http://localhost:5000/api.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("restapi"),
	}
}

// APIError respuesta no exitosa del backend, con el mensaje que envió (si lo hay).
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s %s: HTTP %d", e.Method, e.Path, e.Status)
}

// UserMessage mensaje del servidor para mostrar en la notificación.
func (e *APIError) UserMessage() string { return e.Message }

// Unwrap traduce el status a un error de dominio.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status >= 400 && e.Status < 500:
		return domain.ErrInvalidInput
	default:
		return domain.ErrUpstream
	}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do ejecuta la petición; in se serializa como JSON si no es nil y out recibe el cuerpo.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := repository.AccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend no disponible")
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %w", domain.ErrUpstream, ctx.Err())
		}
		return fmt.Errorf("%w: llamada HTTP fallida: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %w", domain.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, Status: resp.StatusCode}
		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Dur("latency", time.Since(start)).
			Str("message", apiErr.Message).
			Msg("backend respondió con error")
		return apiErr
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Msg("backend")

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: deserializar respuesta: %w", domain.ErrUpstream, err)
	}
	return nil
}

// listQuery arma page, limit y filtros.
func listQuery(q repository.ListQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	for k, s := range q.Filters {
		if s != "" {
			v.Set(k, s)
		}
	}
	return v
}

func escape(id string) string {
	return url.PathEscape(id)
}
