package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Hema-A-05/MERN-flasklite/internal/config"
	"github.com/Hema-A-05/MERN-flasklite/internal/repository/memory"
	"github.com/Hema-A-05/MERN-flasklite/internal/router"
	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
)

type testServer struct {
	t   *testing.T
	h   http.Handler
	tok string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.New()
	auth := service.NewAuthService(store.Users(), utils.NewJWTIssuer("test-secret", 30*time.Minute))
	_, _, err := auth.EnsureUser(context.Background(), "admin@example.com", "admin-pw")
	require.NoError(t, err)

	cfg := config.Config{Env: "test", Origin: "http://localhost:8501", MaxUploadBytes: 1 << 20}
	h := router.New(zerolog.Nop(), router.Services{
		Auth:          auth,
		Agents:        service.NewAgentService(store.Agents()),
		Distributions: service.NewDistributionService(store.Agents(), store.Distributions(), zerolog.Nop()),
	}, cfg)
	return &testServer{t: t, h: h}
}

func (s *testServer) do(method, path string, body []byte, contentType string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.tok != "" {
		req.Header.Set("x-access-token", s.tok)
	}
	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, req)
	return w
}

func (s *testServer) doJSON(method, path string, v any) *httptest.ResponseRecorder {
	s.t.Helper()
	var body []byte
	if v != nil {
		b, err := json.Marshal(v)
		require.NoError(s.t, err)
		body = b
	}
	return s.do(method, path, body, "application/json")
}

func (s *testServer) login() {
	s.t.Helper()
	w := s.doJSON(http.MethodPost, "/login", map[string]string{"email": "admin@example.com", "password": "admin-pw"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var out struct{ Token string }
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(s.t, out.Token)
	s.tok = out.Token
}

func (s *testServer) upload(filename, content string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(s.t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())
	return s.do(http.MethodPost, "/upload-csv", buf.Bytes(), mw.FormDataContentType())
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct{ Message string }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Message
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.doJSON(http.MethodPost, "/login", map[string]string{"email": "admin@example.com", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid credentials", message(t, w))

	s.login()
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/agents", "/distributed-lists"} {
		w := s.do(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "Token is missing!", message(t, w))
	}

	s.tok = "garbage"
	w := s.do(http.MethodGet, "/agents", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Token is invalid!", message(t, w))
}

func TestAgentsEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w := s.doJSON(http.MethodPost, "/agents", map[string]string{"name": "Ann", "email": "ann@x", "mobile": "+1555"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing required fields", message(t, w))

	w = s.doJSON(http.MethodPost, "/agents", map[string]string{"name": "Ann", "email": "ann@x", "mobile": "+1555", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, "Agent added successfully", message(t, w))

	w = s.do(http.MethodGet, "/agents", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"name":"Ann","email":"ann@x","mobile":"+1555"}]`, w.Body.String())
	require.NotContains(t, w.Body.String(), "password")
}

func TestUploadAndList(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w := s.upload("c.csv", "FirstName,Phone,Notes\nA,1,x\n")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No agents available to distribute tasks.", message(t, w))

	for _, e := range []string{"a@x", "b@x"} {
		w := s.doJSON(http.MethodPost, "/agents", map[string]string{"name": e, "email": e, "mobile": "1", "password": "pw"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = s.upload("c.txt", "FirstName,Phone,Notes\n")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.upload("c.csv", "FirstName,Phone\nA,1\n")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, message(t, w), "Notes")

	w = s.do(http.MethodGet, "/distributed-lists", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = s.upload("c.csv", "FirstName,Phone,Notes\nA,1,x\nB,2,y\nC,3,z\n")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var up struct {
		Message          string                         `json:"message"`
		DistributedLists map[string][]map[string]string `json:"distributed_lists"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &up))
	require.NotEmpty(t, up.Message)
	require.Len(t, up.DistributedLists, 2)

	w = s.do(http.MethodGet, "/distributed-lists", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var lists []struct {
		AgentID    string              `json:"agent_id"`
		Tasks      []map[string]string `json:"tasks"`
		UploadDate time.Time           `json:"upload_date"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Len(t, lists, 2)
	require.Len(t, lists[0].Tasks, 2)
	require.Len(t, lists[1].Tasks, 1)
	require.Equal(t, "A", lists[0].Tasks[0]["FirstName"])
	require.Equal(t, "C", lists[1].Tasks[0]["FirstName"])
	require.Equal(t, up.DistributedLists[lists[1].AgentID][0]["Phone"], "3")

	w = s.do(http.MethodGet, "/distributed-lists?agent_id="+lists[1].AgentID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, strings.Count(w.Body.String(), `"agent_id"`))
}

func TestUploadWithoutFile(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w := s.doJSON(http.MethodPost, "/upload-csv", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No file part", message(t, w))
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
