package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/textgraph/augment"
	"github.com/katalvlaran/textgraph/bfs"
	"github.com/katalvlaran/textgraph/bridge"
	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/dfs"
	"github.com/katalvlaran/textgraph/dijkstra"
	"github.com/katalvlaran/textgraph/dot"
	"github.com/katalvlaran/textgraph/pagerank"
	"github.com/katalvlaran/textgraph/rng"
	"github.com/katalvlaran/textgraph/walk"
)

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// GraphResponse is returned by /v1/graph.
type GraphResponse struct {
	Words   int         `json:"words"`
	Edges   []core.Edge `json:"edges"`
	Acyclic bool        `json:"acyclic"`
	Cycles  [][]string  `json:"cycles"`
}

// BridgeResponse is returned by /v1/bridge.
type BridgeResponse struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Words   []string `json:"words"`
	Message string   `json:"message"`
}

// GenerateRequest is the body of POST /v1/generate.
type GenerateRequest struct {
	Text string `json:"text" binding:"required"`
}

// GenerateResponse is returned by /v1/generate.
type GenerateResponse struct {
	Text string `json:"text"`
}

// PathResponse describes one shortest path.
type PathResponse struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Words   []string `json:"words,omitempty"`
	Length  int64    `json:"length"`
	Found   bool     `json:"found"`
	Message string   `json:"message"`
}

// RankResponse is one word's PageRank score.
type RankResponse struct {
	Word    string  `json:"word"`
	Score   float64 `json:"score"`
	Message string  `json:"message"`
}

// WalkResponse is returned by /v1/walk.
type WalkResponse struct {
	Words    []string `json:"words"`
	Repeated bool     `json:"repeated"`
	Text     string   `json:"text"`
}

// ReachResponse is returned by /v1/reach.
type ReachResponse struct {
	Word   string     `json:"word"`
	Layers [][]string `json:"layers"`
}

func abort(c *gin.Context, status int, err error, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Message: msg})
}

// missing writes a 404 for a *core.MissingWordsError and reports whether it did.
func missing(c *gin.Context, err error) bool {
	var mw *core.MissingWordsError
	if !errors.As(err, &mw) {
		return false
	}
	abort(c, http.StatusNotFound, err, mw.Message())

	return true
}

func (s *Server) handleHealth(c *gin.Context) {
	g := s.Graph()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"words":  g.Len(),
		"edges":  g.EdgeCount(),
	})
}

func (s *Server) handleGraph(c *gin.Context) {
	g := s.Graph()
	cycles := dfs.FindCycles(g)
	if cycles == nil {
		cycles = [][]string{}
	}
	c.JSON(http.StatusOK, GraphResponse{
		Words:   g.Len(),
		Edges:   g.Edges(),
		Acyclic: len(cycles) == 0,
		Cycles:  cycles,
	})
}

func (s *Server) handleDOT(c *gin.Context) {
	opts := s.opts.DOT
	if opts.Name == "" {
		opts = dot.DefaultOptions()
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot.String(s.Graph(), opts)))
}

func (s *Server) handleBridge(c *gin.Context) {
	res := bridge.Query(s.Graph(), c.Query("from"), c.Query("to"))
	err := res.Err()
	if missing(c, err) {
		return
	}
	words := res.Words
	if words == nil {
		words = []string{}
	}
	c.JSON(http.StatusOK, BridgeResponse{From: res.From, To: res.To, Words: words, Message: res.String()})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err, "body must be {\"text\": \"...\"}")
		return
	}
	r := rng.Derive(s.opts.Seed, s.reqs.Add(1))
	c.JSON(http.StatusOK, GenerateResponse{Text: augment.Augment(s.Graph(), req.Text, r)})
}

func (s *Server) handlePath(c *gin.Context) {
	g := s.Graph()
	from, to := c.Query("from"), c.Query("to")

	if to == "" {
		outs, err := dijkstra.AllFrom(g, from)
		if missing(c, err) {
			return
		}
		if err != nil {
			abort(c, http.StatusBadRequest, err, "")
			return
		}
		body := make([]PathResponse, 0, len(outs))
		for _, o := range outs {
			body = append(body, pathResponse(core.Normalize(from), o.To, o.Path, o.Err))
		}
		c.JSON(http.StatusOK, body)
		return
	}

	p, err := dijkstra.ShortestPath(g, from, to)
	if missing(c, err) {
		return
	}
	if err != nil && !errors.Is(err, dijkstra.ErrNoPath) {
		abort(c, http.StatusBadRequest, err, "")
		return
	}
	c.JSON(http.StatusOK, pathResponse(core.Normalize(from), core.Normalize(to), p, err))
}

func pathResponse(from, to string, p *dijkstra.Path, err error) PathResponse {
	out := PathResponse{From: from, To: to, Message: dijkstra.Describe(from, to, p, err)}
	if p != nil {
		out.Words, out.Length, out.Found = p.Words, p.Length, true
	}

	return out
}

func (s *Server) handleRank(c *gin.Context) {
	g := s.Graph()
	res, err := s.ranks(c.Request.Context(), g)
	if err != nil {
		abort(c, http.StatusUnprocessableEntity, err, "")
		return
	}

	word, ok := c.GetQuery("word")
	if !ok {
		c.JSON(http.StatusOK, res.Ranked())
		return
	}
	word = core.Normalize(word)
	score, found := res.Scores[word]
	if !found {
		abort(c, http.StatusNotFound, core.ErrWordNotFound, pagerank.Describe(word, pagerank.NotFound))
		return
	}
	c.JSON(http.StatusOK, RankResponse{Word: word, Score: score, Message: pagerank.Describe(word, score)})
}

func (s *Server) handleWalk(c *gin.Context) {
	res, err := walk.Walk(s.Graph(), rng.Derive(s.opts.Seed, s.reqs.Add(1)))
	if err != nil {
		abort(c, http.StatusUnprocessableEntity, err, "")
		return
	}
	c.JSON(http.StatusOK, WalkResponse{Words: res.Words, Repeated: res.Repeated, Text: res.String()})
}

func (s *Server) handleReach(c *gin.Context) {
	word := c.Query("word")
	opts := []bfs.Option{bfs.WithContext(c.Request.Context())}
	if raw := c.Query("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			abort(c, http.StatusBadRequest, err, "depth must be an integer")
			return
		}
		opts = append(opts, bfs.WithMaxDepth(d))
	}

	res, err := bfs.BFS(s.Graph(), word, opts...)
	if missing(c, err) {
		return
	}
	if err != nil {
		abort(c, http.StatusBadRequest, err, "")
		return
	}
	c.JSON(http.StatusOK, ReachResponse{Word: core.Normalize(word), Layers: res.Layers()})
}
