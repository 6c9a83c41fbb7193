package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"intent-relay/internal/domain/entity"
	"intent-relay/internal/mocks"
	"intent-relay/internal/usecase"
)

func newTestApp(t *testing.T, model *mocks.MockChatModel, profile string) *fiber.App {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := entity.LookupProfile(profile)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewChatHandler(usecase.NewOrchestrator(p, model, "", log), log)
	SetupRouter(app, handler, HealthInfo{Version: "test", Profile: profile, Provider: "mock"})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, entity.ChatResponse) {
	t.Helper()
	return doRequest(t, app, method, path, fiber.MIMEApplicationJSON, body)
}

func doRequest(t *testing.T, app *fiber.App, method, path, contentType, body string) (*http.Response, entity.ChatResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out entity.ChatResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func TestChatHandler(t *testing.T) {
	t.Run("should route support questions to canned replies", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Scholarship_support", nil).Times(len(ChatPaths))

		for _, path := range ChatPaths {
			resp, body := doJSON(t, newTestApp(t, model, entity.ProfileProfessor), http.MethodPost, path, `{"message":"scholarship office?"}`)

			req.Equal(http.StatusOK, resp.StatusCode)
			req.Equal(usecase.ScholarshipSupportReply, body.Message)
			req.Equal("Scholarship_support", body.Intent)
		}
	})

	t.Run("should relay lecture answers from the model", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		gomock.InOrder(
			model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("professor_lecture", nil),
			model.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c entity.Completion) (string, error) {
					req.Equal(0.5, c.Temperature)
					return "Interfaces are satisfied implicitly.", nil
				}),
		)

		resp, body := doJSON(t, newTestApp(t, model, entity.ProfileProfessor), http.MethodPost, "/chat",
			`{"message":"how do interfaces work?","temperature":0.5,"max_tokens":100}`)

		req.Equal(http.StatusOK, resp.StatusCode)
		req.Equal("Interfaces are satisfied implicitly.", body.Message)
		req.Equal("professor_lecture", body.Intent)
	})

	t.Run("should answer 400 for missing or blank messages without a model call", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)
		app := newTestApp(t, model, entity.ProfileProfessor)

		for _, body := range []string{`{"message":"   "}`, `{}`, ""} {
			resp, out := doJSON(t, app, http.MethodPost, "/chat", body)
			req.Equal(http.StatusBadRequest, resp.StatusCode)
			req.Equal("[bad-request] message is required", out.Message)
		}
	})

	t.Run("should answer 400 for malformed JSON", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)

		resp, out := doJSON(t, newTestApp(t, model, entity.ProfileProfessor), http.MethodPost, "/chat", `{"message":`)

		req.Equal(http.StatusBadRequest, resp.StatusCode)
		req.True(strings.HasPrefix(out.Message, "[bad-request]"))
	})

	t.Run("should read JSON bodies whatever the content type", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Major_support", nil).Times(2)
		app := newTestApp(t, model, entity.ProfileProfessor)

		for _, contentType := range []string{"", fiber.MIMETextPlain} {
			resp, out := doRequest(t, app, http.MethodPost, "/chat", contentType, `{"message":"which major suits me?"}`)
			req.Equal(http.StatusOK, resp.StatusCode, contentType)
			req.Equal(usecase.MajorSupportReply, out.Message)
		}

		resp, out := doRequest(t, app, http.MethodPost, "/chat", fiber.MIMETextPlain, `   `)
		req.Equal(http.StatusBadRequest, resp.StatusCode)
		req.Equal("[bad-request] invalid request body", out.Message)
	})

	t.Run("should answer 405 with an Allow header for other methods", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)
		app := newTestApp(t, model, entity.ProfileProfessor)

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			resp, out := doJSON(t, app, method, "/api/chat", `not even json`)
			req.Equal(http.StatusMethodNotAllowed, resp.StatusCode, method)
			req.Equal("POST", resp.Header.Get("Allow"))
			req.Equal("Method Not Allowed", out.Message)
		}
	})

	t.Run("should answer 500 with server-error when the model always fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("", &entity.UpstreamError{Provider: "azure", Status: 502, Body: "bad gateway"}).
			Times(2)

		resp, out := doJSON(t, newTestApp(t, model, entity.ProfileProfessor), http.MethodPost, "/chat", `{"message":"teach me"}`)

		req.Equal(http.StatusInternalServerError, resp.StatusCode)
		req.Contains(out.Message, "server-error")
		req.Equal("[server-error] UpstreamError: azure error 502: bad gateway", out.Message)
	})

	t.Run("should answer 500 naming missing configuration", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("", &entity.ConfigurationError{Provider: "azure", Missing: []string{"OPENAI_API_KEY"}}).
			Times(2)

		resp, out := doJSON(t, newTestApp(t, model, entity.ProfileProfessor), http.MethodPost, "/chat", `{"message":"teach me"}`)

		req.Equal(http.StatusInternalServerError, resp.StatusCode)
		req.Equal("[server-error] ConfigurationError: azure backend is missing OPENAI_API_KEY", out.Message)
	})

	t.Run("should omit the intent for profiles that do not report it", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		model := mocks.NewMockChatModel(ctrl)
		model.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("The exhibit is on floor two.", nil).Times(1)

		app := newTestApp(t, model, entity.ProfileGuide)
		httpReq := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"where is the exhibit?"}`))
		httpReq.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(httpReq, -1)
		req.NoError(err)
		defer resp.Body.Close()

		var raw map[string]any
		req.NoError(json.NewDecoder(resp.Body).Decode(&raw))
		req.Equal("The exhibit is on floor two.", raw["message"])
		req.NotContains(raw, "intent")
	})
}

func TestHealth(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	app := newTestApp(t, mocks.NewMockChatModel(ctrl), entity.ProfileProxy)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	req.NoError(err)
	defer resp.Body.Close()

	var body map[string]string
	req.NoError(json.NewDecoder(resp.Body).Decode(&body))
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("healthy", body["status"])
	req.Equal("proxy", body["profile"])
	req.NotEmpty(resp.Header.Get(fiber.HeaderXRequestID))
}
