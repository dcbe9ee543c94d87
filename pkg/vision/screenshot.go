// Package vision reads a WordBrain puzzle from a screenshot.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"
)

var ErrInvalidPuzzle = errors.New("invalid puzzle")

const (
	DefaultRegion = "europe-west1"
	DefaultModel  = "gemini-2.5-flash"
)

// Config selects the Vertex AI project and model. Empty Region and Model fall back to
// DefaultRegion and DefaultModel.
type Config struct {
	ProjectID string
	Region    string
	Model     string
}

func (c Config) withDefaults() Config {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return c
}

// Reader turns screenshots into puzzles with a Gemini model. Credentials come from
// Application Default Credentials.
type Reader struct {
	models *genai.Models
	model  string
}

func NewReader(ctx context.Context, c Config) (*Reader, error) {
	if c.ProjectID == "" {
		return nil, errors.New("vision: no project ID")
	}
	c = c.withDefaults()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  c.ProjectID,
		Location: c.Region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}
	return &Reader{models: client.Models, model: c.Model}, nil
}

const analyzePrompt = `This is a screenshot of a WordBrain puzzle: a square grid of letters and,
below it, one row of blank boxes per word to find.

Extract it as JSON:
{
  "rows": ["<letters of row 1>", "<letters of row 2>", ...],
  "lengths": [<number of boxes of word 1>, <number of boxes of word 2>, ...]
}

Rules:
- Every row has as many characters as there are rows.
- Use "-" for a cell with no letter.
- Use lowercase letters.
- List the word lengths in the order shown, left to right then top to bottom.
- Answer ONLY with the JSON, no comment and no markdown.`

// Puzzle is what a screenshot shows: the grid rows and the required word lengths.
type Puzzle struct {
	Rows    []string `json:"rows"`
	Lengths []int    `json:"lengths"`
}

// GridText returns the rows in the text form read by the grid parser.
func (p *Puzzle) GridText() string {
	return strings.Join(p.Rows, "\n")
}

// ParsePuzzle decodes and checks a puzzle description: rows must form a square and the
// lengths must be positive and add up to the number of letters.
func ParsePuzzle(data []byte) (*Puzzle, error) {
	var p Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse puzzle JSON: %w", err)
	}

	size := len(p.Rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidPuzzle)
	}
	letters := 0
	for i, row := range p.Rows {
		row = strings.ToLower(strings.Join(strings.Fields(row), ""))
		p.Rows[i] = row
		if n := utf8.RuneCountInString(row); n != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPuzzle, i+1, n, size)
		}
		letters += size - strings.Count(row, "-")
	}

	if len(p.Lengths) == 0 {
		return nil, fmt.Errorf("%w: no word lengths", ErrInvalidPuzzle)
	}
	sum := 0
	for _, n := range p.Lengths {
		if n <= 0 {
			return nil, fmt.Errorf("%w: word length %d", ErrInvalidPuzzle, n)
		}
		sum += n
	}
	if sum != letters {
		return nil, fmt.Errorf("%w: word lengths add up to %d but the grid has %d letters", ErrInvalidPuzzle, sum, letters)
	}
	return &p, nil
}

// AnalyzeScreenshot sends a screenshot to the model and returns the puzzle it shows.
func (r *Reader) AnalyzeScreenshot(ctx context.Context, imageData []byte, mimeType string) (*Puzzle, error) {
	resp, err := r.models.GenerateContent(ctx, r.model,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: analyzePrompt},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.1)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenerateContent(%s): %w", r.model, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	p, err := ParsePuzzle([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w\nraw response: %s", err, text)
	}
	return p, nil
}
