package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

type fixedPicker string

func (p fixedPicker) Pick(*words.List) string { return string(p) }

func newTestServer(t *testing.T) *Server {
	return newTestServerDaily(t, daily.Picker{Salt: "test"})
}

func newTestServerDaily(t *testing.T, dailyPicker words.Picker) *Server {
	t.Helper()
	l, err := words.NewList(5, []string{"crane", "slate", "brine"}, []string{"trace", "react"})
	require.NoError(t, err)
	return New(store.NewMemoryStore(), Options{
		Words:     l,
		Picker:    fixedPicker("brine"),
		Daily:     dailyPicker,
		MaxTries:  6,
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	})
}

type client struct {
	t     *testing.T
	srv   *Server
	token string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.srv.Router().ServeHTTP(rec, req)
	return rec
}

func (c *client) view(method, path string, body any) gameView {
	c.t.Helper()
	rec := c.do(method, path, body)
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	var v gameView
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (c *client) start(answer string) newGameRes {
	c.t.Helper()
	var body any
	if answer != "" {
		body = newGameReq{Answer: answer}
	}
	rec := c.do(http.MethodPost, "/game/new", body)
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	var res newGameRes
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &res))
	c.token = res.Token
	return res
}

func (c *client) typeWord(w string) gameView {
	var v gameView
	for _, r := range w {
		v = c.view(http.MethodPost, "/game/letter", letterReq{Letter: string(r)})
	}
	return v
}

// rawView checks the wire format of states.
type rawView struct {
	Rows     [][]map[string]string `json:"rows"`
	Keyboard map[string]string     `json:"keyboard"`
}

func TestHealth(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/game/submit", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	// simple requests are tagged but not short-circuited
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestGameRequiresToken(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.do(http.MethodGet, "/game", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c.token = "garbage"
	rec = c.do(http.MethodPost, "/game/submit", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewGameSetsCookieAndView(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.do(http.MethodPost, "/game/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.GameID)
	assert.NotEmpty(t, res.Token)
	assert.Len(t, res.View.Rows, 6)
	assert.Equal(t, 5, res.View.WordLength)
	assert.Empty(t, res.View.Answer, "answer hidden while playing")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "wordle_game", cookies[0].Name)

	// cookie alone authenticates
	req := httptest.NewRequest(http.MethodGet, "/game", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	c.srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewGameRejectsUnknownAnswer(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.do(http.MethodPost, "/game/new", newGameReq{Answer: "zzzzz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewGameRejectsGuessOnlyAnswer(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.do(http.MethodPost, "/game/new", newGameReq{Answer: "trace"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid_answer"}`, rec.Body.String())
}

func TestMaxTriesIsBounded(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	for _, n := range []int{game.MaxTriesLimit + 1, 1_000_000, 1 << 62, -1} {
		rec := c.do(http.MethodPost, "/game/new", newGameReq{MaxTries: n})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "maxTries=%d", n)
		assert.JSONEq(t, `{"error":"invalid_max_tries"}`, rec.Body.String())
	}

	rec := c.do(http.MethodPost, "/game/new", newGameReq{MaxTries: game.MaxTriesLimit})
	require.Equal(t, http.StatusOK, rec.Code)
	var res newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.View.Rows, game.MaxTriesLimit)
	c.token = res.Token

	rec = c.do(http.MethodPost, "/game/reset", resetReq{MaxTries: 1 << 62})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid_max_tries"}`, rec.Body.String())

	// the stored game is untouched and still renders
	v := c.view(http.MethodGet, "/game", nil)
	assert.Equal(t, game.MaxTriesLimit, v.MaxTries)
}

func TestPlayToWin(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	c.start("crane")

	rec := c.do(http.MethodPost, "/game/letter", letterReq{Letter: "7"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	v := c.typeWord("ZZZZ")
	assert.Equal(t, "zzzz", v.Buffer)
	assert.False(t, v.CanSubmit)
	v = c.typeWord("z")
	assert.True(t, v.CanSubmit)

	v = c.view(http.MethodPost, "/game/submit", nil)
	require.Len(t, v.Signals, 1)
	assert.Equal(t, "invalid_word", v.Signals[0].Type)
	assert.Equal(t, "zzzzz is not in word list.", v.Signals[0].Message)
	assert.Equal(t, "zzzzz", v.Buffer)
	assert.Equal(t, 0, v.Tries)

	for i := 0; i < 5; i++ {
		v = c.view(http.MethodPost, "/game/backspace", nil)
	}
	assert.Equal(t, "", v.Buffer)

	c.typeWord("slate")
	v = c.view(http.MethodPost, "/game/submit", nil)
	assert.Empty(t, v.Signals)
	assert.Equal(t, 1, v.Tries)

	c.typeWord("crane")
	rec = c.do(http.MethodPost, "/game/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.True(t, v.Ended)
	assert.True(t, v.Found)
	assert.Equal(t, "crane", v.Answer)
	require.Len(t, v.Signals, 1)
	assert.Equal(t, "game_end", v.Signals[0].Type)
	assert.True(t, v.Signals[0].Found)
	assert.Equal(t, 2, v.Signals[0].Tries)

	var raw rawView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw.Rows, 6)
	assert.Equal(t, "s", raw.Rows[0][0]["letter"])
	assert.Equal(t, "absent", raw.Rows[0][0]["state"])
	assert.Equal(t, "correct", raw.Rows[0][2]["state"])
	assert.Equal(t, "correct", raw.Rows[1][4]["state"])
	assert.Equal(t, "none", raw.Rows[5][0]["state"])
	assert.Equal(t, "correct", raw.Keyboard["a"])
	assert.Equal(t, "absent", raw.Keyboard["s"])

	// ended: further input is ignored
	v = c.view(http.MethodPost, "/game/letter", letterReq{Letter: "a"})
	assert.Equal(t, "", v.Buffer)
	v = c.view(http.MethodPost, "/game/submit", nil)
	assert.Empty(t, v.Signals)
}

func TestResetStartsFreshWord(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	first := c.start("crane")
	c.typeWord("cr")

	v := c.view(http.MethodPost, "/game/reset", resetReq{MaxTries: 3})
	assert.Equal(t, first.GameID, v.GameID)
	assert.Equal(t, 0, v.Tries)
	assert.Equal(t, "", v.Buffer)
	assert.Equal(t, 3, v.MaxTries)
	assert.Len(t, v.Rows, 3)

	// the picker chose "brine"
	c.typeWord("brine")
	v = c.view(http.MethodPost, "/game/submit", nil)
	assert.True(t, v.Found)
}

func TestDailyNew(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.do(http.MethodGet, "/daily", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var res newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, 6, res.View.MaxTries)
}

func TestDailyResetKeepsDailyWord(t *testing.T) {
	c := &client{t: t, srv: newTestServerDaily(t, fixedPicker("slate"))}
	rec := c.do(http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var res newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	c.token = res.Token

	c.view(http.MethodPost, "/game/reset", nil)
	c.typeWord("slate")
	v := c.view(http.MethodPost, "/game/submit", nil)
	assert.True(t, v.Found)
	assert.Equal(t, "slate", v.Answer)
}

func TestTokensAreScopedToGame(t *testing.T) {
	srv := newTestServer(t)
	a := &client{t: t, srv: srv}
	b := &client{t: t, srv: srv}
	a.start("crane")
	b.start("slate")

	a.typeWord("abc")
	v := b.view(http.MethodGet, "/game", nil)
	assert.Equal(t, "", v.Buffer)
}

func TestUnknownRoute(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.do(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestLetterStateJSON(t *testing.T) {
	b, err := json.Marshal(cellView{Letter: "a", State: game.Misplaced})
	require.NoError(t, err)
	assert.JSONEq(t, `{"letter":"a","state":"misplaced"}`, string(b))
}
