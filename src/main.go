package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/sirupsen/logrus"

	wordbrain "github.com/BcomedianC/WordBrain-Solver"
	"github.com/BcomedianC/WordBrain-Solver/internal"
	"github.com/BcomedianC/WordBrain-Solver/pkg/dictionary"
	"github.com/BcomedianC/WordBrain-Solver/pkg/vision"
)

type SolveGridRequest struct {
	Grid          string   `json:"grid"`
	Lengths       []int    `json:"lengths"`
	WordScope     string   `json:"wordScope"`
	Words         []string `json:"words"`
	ExcludedWords []string `json:"excludedWords"`
	// Rejected lists solutions the player already turned down, so a retry finds another.
	Rejected [][]string `json:"rejected"`
	// Screenshot is a base64 image, used when Grid is empty.
	Screenshot []byte `json:"screenshot"`
	MimeType   string `json:"mimeType"`
}

type SolveGridResponse struct {
	Success  bool     `json:"success"`
	Solution []string `json:"solution,omitempty"`
	Grid     string   `json:"grid,omitempty"`
	Lengths  []int    `json:"lengths,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type solveServer struct {
	// Nil when no BigQuery project is configured.
	fetchWords func(ctx context.Context, scope string) ([]string, error)
	// Nil when no Vertex AI project is configured.
	analyze func(ctx context.Context, image []byte, mimeType string) (*vision.Puzzle, error)

	log logrus.FieldLogger
}

func (s *solveServer) execute(ctx context.Context, req SolveGridRequest) (SolveGridResponse, error) {
	var resp SolveGridResponse

	if req.Grid == "" && len(req.Screenshot) > 0 {
		if s.analyze == nil {
			return resp, fmt.Errorf("screenshot analysis is not configured")
		}
		mimeType := req.MimeType
		if mimeType == "" {
			mimeType = "image/png"
		}
		puzzle, err := s.analyze(ctx, req.Screenshot, mimeType)
		if err != nil {
			return resp, fmt.Errorf("AnalyzeScreenshot: %w", err)
		}
		req.Grid = puzzle.GridText()
		if len(req.Lengths) == 0 {
			req.Lengths = puzzle.Lengths
		}
	}

	g, err := wordbrain.ParseGrid(req.Grid)
	if err != nil {
		return resp, err
	}
	resp.Grid = g.String()
	resp.Lengths = req.Lengths

	if len(req.Lengths) == 0 {
		return resp, fmt.Errorf("lengths must not be empty")
	}
	for _, n := range req.Lengths {
		if n <= 0 {
			return resp, fmt.Errorf("lengths must be positive, got %d", n)
		}
	}
	if sum := internal.Sum(req.Lengths); sum != g.NumLetters() {
		return resp, fmt.Errorf("lengths add up to %d but the grid has %d letters", sum, g.NumLetters())
	}

	words := req.Words
	if req.WordScope != "" {
		if s.fetchWords == nil {
			return resp, fmt.Errorf("wordScope is not supported without BigQuery")
		}
		scoped, err := s.fetchWords(ctx, req.WordScope)
		if err != nil {
			return resp, fmt.Errorf("fetchWords: %w", err)
		}
		s.log.WithFields(logrus.Fields{"scope": req.WordScope, "words": len(scoped)}).Info("loaded words")
		words = append(words, scoped...)
	}
	if len(words) == 0 {
		return resp, fmt.Errorf("words must not be empty")
	}

	dict, err := dictionary.New(ctx, dictionary.Params{
		Words:         words,
		ExcludedWords: req.ExcludedWords,
		MaxWordLength: g.NumLetters(),
	})
	if err != nil {
		return resp, fmt.Errorf("dictionary.New: %w", err)
	}

	var rejected wordbrain.RejectionSet
	for _, sol := range req.Rejected {
		for i, w := range sol {
			sol[i] = strings.ToLower(w)
		}
		rejected.Add(sol)
	}

	timeout := solveTimeout(ctx)
	s.log.WithField("timeout", timeout).Debug("setting timeout")
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	solver := wordbrain.NewSolver(dict, req.Lengths, wordbrain.WithLogger(s.log))
	sol, stats, err := solver.Solve(ctx, g, &rejected)
	s.log.WithFields(logrus.Fields{
		"frames":     stats.Frames,
		"backtracks": stats.Backtracks,
		"duration":   stats.Duration,
	}).Info("solve finished")
	if err != nil {
		return resp, err
	}
	resp.Solution = sol
	return resp, nil
}

const (
	defaultSolveTimeout = 1 * time.Minute
	// responseMargin is kept free before the request deadline to write the response.
	responseMargin = 5 * time.Second
)

// solveTimeout leaves responseMargin before the request deadline, unless that would leave
// less time than the margin itself; then the search gets whatever remains.
func solveTimeout(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return defaultSolveTimeout
	}
	remaining := time.Until(deadline)
	if remaining < 2*responseMargin {
		return remaining
	}
	return remaining - responseMargin
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (s *solveServer) solveGrid(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.WithError(err).Warn("error parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SolveGridResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	response, err := s.execute(r.Context(), req)
	response.Success = err == nil
	if err != nil {
		response.Error = err.Error()
		if errors.Is(err, wordbrain.ErrMalformedGrid) || errors.Is(err, vision.ErrInvalidPuzzle) {
			w.WriteHeader(http.StatusBadRequest)
		}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.log.WithError(err).Error("error marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func newServerFromEnv(ctx context.Context, log logrus.FieldLogger) (*solveServer, error) {
	s := &solveServer{log: log}

	if project := os.Getenv("BQ_PROJECT_ID"); project != "" {
		s.fetchWords = func(ctx context.Context, scope string) ([]string, error) {
			return dictionary.FetchWords(ctx, project, dictionary.DefaultWordsTable, scope)
		}
	}

	if project := os.Getenv("GCP_PROJECT_ID"); project != "" {
		reader, err := vision.NewReader(ctx, vision.Config{
			ProjectID: project,
			Region:    os.Getenv("GCP_REGION"),
			Model:     os.Getenv("GEMINI_MODEL"),
		})
		if err != nil {
			return nil, err
		}
		s.analyze = reader.AnalyzeScreenshot
	}
	return s, nil
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.StandardLogger()

	s, err := newServerFromEnv(context.Background(), log)
	if err != nil {
		log.WithError(err).Fatal("newServerFromEnv")
	}
	funcframework.RegisterHTTPFunction("/solve-grid", s.solveGrid)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.WithError(err).Fatal("funcframework.StartHostPort")
	}
}
