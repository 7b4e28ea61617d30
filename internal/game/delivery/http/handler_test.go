package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/game"
	gameHTTP "telegram-bot-framework/internal/game/delivery/http"
	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/internal/middleware"
	"telegram-bot-framework/pkg/log"
	"telegram-bot-framework/pkg/telegram"
)

const validToken = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type mockUseCase struct {
	games     map[string]bool
	scores    []telegram.GameHighScore
	err       error
	setCalls  []int
	lastToken string
}

func (m *mockUseCase) SetScore(ctx context.Context, token string, score int) error {
	m.lastToken = token
	m.setCalls = append(m.setCalls, score)
	return m.err
}

func (m *mockUseCase) GetHighScores(ctx context.Context, token string) ([]telegram.GameHighScore, error) {
	m.lastToken = token
	return m.scores, m.err
}

func (m *mockUseCase) FindGameHandler(shortName string) (handler.GameHandler, bool) {
	if !m.games[shortName] {
		return nil, false
	}
	return game.NewStartHandler(shortName, nil), true
}

func setup(t *testing.T, uc *mockUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	l := log.NewNop()
	games := []bot.GameOptions{
		{ShortName: "snake", URL: "https://host/snake", ScoresURL: "https://host/bots/foo/games/snake/scores"},
		{ShortName: "pong", URL: "https://host/pong", ScoresURL: "https://host/bots/foo/games/pong/scores"},
	}
	paths, err := gameHTTP.RegisterRoutes(r, gameHTTP.New(l, uc), middleware.New(l, middleware.Config{}), games)
	if err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	if paths["snake"] != "/bots/foo/games/snake/scores" {
		t.Fatalf("unexpected paths %v", paths)
	}
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetScores(t *testing.T) {
	scores := []telegram.GameHighScore{{Position: 1, User: telegram.User{ID: 1, FirstName: "Ann"}, Score: 300}}

	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}, scores: scores}
		w := do(setup(t, uc), http.MethodGet, "/bots/foo/games/snake/scores?id="+validToken, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got []telegram.GameHighScore
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("body is not a score array: %v", err)
		}
		if len(got) != 1 || got[0].Score != 300 {
			t.Errorf("unexpected scores %+v", got)
		}
		if uc.lastToken != validToken {
			t.Errorf("token = %q", uc.lastToken)
		}
	})

	t.Run("missing or short id", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}}
		r := setup(t, uc)
		for _, target := range []string{
			"/bots/foo/games/snake/scores",
			"/bots/foo/games/snake/scores?id=short",
		} {
			if w := do(r, http.MethodGet, target, ""); w.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", target, w.Code)
			}
		}
	})

	t.Run("undecodable token", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}, err: errors.Join(game.ErrDecode, errors.New("auth failed"))}
		w := do(setup(t, uc), http.MethodGet, "/bots/foo/games/snake/scores?id="+validToken, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no handler for game", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}}
		w := do(setup(t, uc), http.MethodGet, "/bots/foo/games/pong/scores?id="+validToken, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}, err: errors.New("network down")}
		w := do(setup(t, uc), http.MethodGet, "/bots/foo/games/snake/scores?id="+validToken, "")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestSetScore(t *testing.T) {
	body := `{"playerId": "` + validToken + `", "score": 120}`

	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}}
		w := do(setup(t, uc), http.MethodPost, "/bots/foo/games/snake/scores", body)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if len(uc.setCalls) != 1 || uc.setCalls[0] != 120 || uc.lastToken != validToken {
			t.Errorf("unexpected call: %v %q", uc.setCalls, uc.lastToken)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}}
		r := setup(t, uc)
		for _, b := range []string{`{"playerId": `, `{"score": 1}`, `{"playerId": "short", "score": 1}`, `{"playerId": "` + validToken + `", "score": "high"}`} {
			if w := do(r, http.MethodPost, "/bots/foo/games/snake/scores", b); w.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", b, w.Code)
			}
		}
		if len(uc.setCalls) != 0 {
			t.Errorf("use case called for malformed bodies")
		}
	})

	t.Run("undecodable token", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{"snake": true}, err: game.ErrDecode}
		w := do(setup(t, uc), http.MethodPost, "/bots/foo/games/snake/scores", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no handler for game", func(t *testing.T) {
		uc := &mockUseCase{games: map[string]bool{}}
		w := do(setup(t, uc), http.MethodPost, "/bots/foo/games/snake/scores", body)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestRegisterRoutesSharedPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	games := []bot.GameOptions{
		{ShortName: "snake", ScoresURL: "https://host/scores"},
		{ShortName: "pong", ScoresURL: "https://host/scores?game=pong"},
	}

	_, err := gameHTTP.RegisterRoutes(gin.New(), gameHTTP.New(l, &mockUseCase{}), middleware.New(l, middleware.Config{}), games)
	var cfgErr *bot.ConfigurationError
	if !errors.As(err, &cfgErr) || !strings.Contains(cfgErr.Message, "share") {
		t.Errorf("expected ConfigurationError for shared path, got %v", err)
	}
}
