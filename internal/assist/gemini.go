package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"support-desk-backend/internal/model"
)

// Request is one single-shot generation call.
type Request struct {
	Model  string
	System string
	Prompt string
	// Schema, when set, asks for a JSON response shaped by it.
	Schema *genai.Schema
}

// Generator performs one model call and returns the response text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type Models struct {
	Reply     string
	Sentiment string
	Category  string
}

var sentimentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"sentiment": {Type: genai.TypeString},
		"score":     {Type: genai.TypeNumber},
	},
	Required: []string{"sentiment", "score"},
}

// Gemini implements Assistant on top of a Generator. Each operation is a
// single attempt bounded by timeout.
type Gemini struct {
	gen     Generator
	models  Models
	timeout time.Duration
}

var _ Assistant = (*Gemini)(nil)

func NewGemini(gen Generator, models Models, timeout time.Duration) *Gemini {
	return &Gemini{gen: gen, models: models, timeout: timeout}
}

func (g *Gemini) call(ctx context.Context, req Request) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.gen.Generate(ctx, req)
}

func (g *Gemini) DraftReply(ctx context.Context, history []HistoryMessage, customer *CustomerContext) Reply {
	start := time.Now()
	text, err := g.call(ctx, Request{
		Model:  g.models.Reply,
		Prompt: replyPrompt(history, customer),
	})
	if err != nil {
		log.Printf("assist: %s failed: %v", opDraftReply, err)
		observe(opDraftReply, outcomeFallback, start)
		return Reply{Text: ReplyErrorFallback, Fallback: true}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("assist: %s returned no text", opDraftReply)
		observe(opDraftReply, outcomeFallback, start)
		return Reply{Text: ReplyEmptyFallback, Fallback: true}
	}
	observe(opDraftReply, outcomeOK, start)
	return Reply{Text: text}
}

func (g *Gemini) AnalyzeSentiment(ctx context.Context, history []HistoryMessage) Sentiment {
	start := time.Now()
	text := customerText(history)
	if strings.TrimSpace(text) == "" {
		observe(opSentiment, outcomeSkipped, start)
		return NeutralSentiment
	}

	raw, err := g.call(ctx, Request{
		Model:  g.models.Sentiment,
		System: sentimentInstruction,
		Prompt: sentimentPrompt(text),
		Schema: sentimentSchema,
	})
	if err == nil {
		var s Sentiment
		if s, err = parseSentiment(raw); err == nil {
			observe(opSentiment, outcomeOK, start)
			return s
		}
	}
	log.Printf("assist: %s failed: %v", opSentiment, err)
	observe(opSentiment, outcomeFallback, start)
	return NeutralSentiment
}

func parseSentiment(raw string) (Sentiment, error) {
	var payload struct {
		Sentiment string   `json:"sentiment"`
		Score     *float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Sentiment{}, fmt.Errorf("decode sentiment: %w", err)
	}
	// A missing score is treated as a failed call; an explicit 0 is kept.
	if payload.Score == nil {
		return Sentiment{}, errors.New("decode sentiment: missing score")
	}
	label := strings.ToLower(strings.TrimSpace(payload.Sentiment))
	if !validSentiment(label) {
		label = SentimentNeutral
	}
	return Sentiment{Label: label, Score: clampScore(*payload.Score)}, nil
}

func (g *Gemini) CategorizeTicket(ctx context.Context, description, subject string) model.TicketCategory {
	start := time.Now()
	raw, err := g.call(ctx, Request{
		Model:  g.models.Category,
		Prompt: categoryPrompt(description, subject),
	})
	if err != nil {
		log.Printf("assist: %s failed: %v", opCategorize, err)
		observe(opCategorize, outcomeFallback, start)
		return model.CategoryGeneral
	}
	category, ok := parseCategory(raw)
	if !ok {
		log.Printf("assist: %s returned unknown label %q", opCategorize, raw)
		observe(opCategorize, outcomeFallback, start)
		return category
	}
	observe(opCategorize, outcomeOK, start)
	return category
}

// genaiGenerator adapts a genai client to Generator.
type genaiGenerator struct {
	client *genai.Client
}

// NewGenAIGenerator connects to the Gemini API with apiKey.
func NewGenAIGenerator(ctx context.Context, apiKey string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("assist: create genai client: %w", err)
	}
	return &genaiGenerator{client: client}, nil
}

func (g *genaiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	var cfg *genai.GenerateContentConfig
	if req.System != "" || req.Schema != nil {
		cfg = &genai.GenerateContentConfig{}
		if req.System != "" {
			cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
		}
		if req.Schema != nil {
			cfg.ResponseMIMEType = "application/json"
			cfg.ResponseSchema = req.Schema
		}
	}
	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
