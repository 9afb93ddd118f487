// Package generator wraps the hosted Gemini model behind the five content
// generation operations: immersion research, content script, sale script,
// branding topics, and branding script. Prompt construction is deterministic;
// the only side effect of any operation is a single model call.
package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/khmercontent/reelkit/internal/angles"
	"github.com/khmercontent/reelkit/internal/models"
)

const modelName = "gemini-3-flash-preview"

// Typology count bounds for a valid immersion report. The prompt asks for a
// full set of twelve; models occasionally come up short, which is tolerated
// down to nine.
const (
	minTypologies = 9
	maxTypologies = 12
)

const brandingTopicCount = 5

// Client wraps the Gemini API. All operations issue exactly one generate
// call and never retry; transport and parse failures surface as typed errors.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel

	// generate is swapped out in tests to avoid network calls.
	generate func(ctx context.Context, prompt string) (string, error)
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: gc,
		model:  gc.GenerativeModel(modelName),
	}
	c.generate = c.generateContent
	return c, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// GenerateImmersion produces a full immersion research report for the
// client. The model is asked for a single JSON object; the response is
// fence-stripped, parsed, and validated against the report schema before it
// is returned, so a non-nil result is always complete.
func (c *Client) GenerateImmersion(ctx context.Context, client *models.Client) (*models.ImmersionData, error) {
	const op = "generate immersion"

	text, err := c.generate(ctx, buildImmersionPrompt(client))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	payload := extractPayload(text)

	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &sections); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	for _, key := range []string{"avatarProfile", "userTypologies", "offerAnalysis", "marketingInsights", "recommendations"} {
		if _, ok := sections[key]; !ok {
			return nil, &ParseError{Op: op, Err: fmt.Errorf("missing %q section", key)}
		}
	}

	var immersion models.ImmersionData
	if err := json.Unmarshal([]byte(payload), &immersion); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	if err := validateImmersion(&immersion); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	return &immersion, nil
}

func validateImmersion(im *models.ImmersionData) error {
	n := len(im.UserTypologies)
	if n < minTypologies || n > maxTypologies {
		return fmt.Errorf("expected %d-%d user typologies, got %d", minTypologies, maxTypologies, n)
	}
	for i, t := range im.UserTypologies {
		if t.TypologyName == "" || t.Mindset == "" || t.CorePain == "" || t.CoreDesire == "" ||
			t.BuyingTrigger == "" || t.BestContentAngle == "" || t.CTAStyle == "" {
			return fmt.Errorf("typology %d is missing required fields", i+1)
		}
	}
	return nil
}

// GenerateScript renders the storytelling-structure script prompt and
// returns the model's text verbatim. Typology and guidance are optional;
// when a typology is present the prompt forces the hook and turning point
// onto its core pain and buying trigger, and when it is absent the prompt
// falls back to angle-only instructions.
func (c *Client) GenerateScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error) {
	text, err := c.generate(ctx, buildScriptPrompt(client, angle, typology, guidance))
	if err != nil {
		return "", &TransportError{Op: "generate script", Err: err}
	}
	return text, nil
}

// GenerateSaleScript is the harder-selling variant: same contract shape as
// GenerateScript with a hook→solution→agitation→promise→CTA structure and a
// longer target duration.
func (c *Client) GenerateSaleScript(ctx context.Context, client *models.Client, angle angles.Angle, typology *models.UserTypology, guidance string) (string, error) {
	text, err := c.generate(ctx, buildSaleScriptPrompt(client, angle, typology, guidance))
	if err != nil {
		return "", &TransportError{Op: "generate sale script", Err: err}
	}
	return text, nil
}

// GenerateBrandingTopics asks for exactly five short topics as a JSON array
// and refuses anything else.
func (c *Client) GenerateBrandingTopics(ctx context.Context, client *models.Client) ([]string, error) {
	const op = "generate branding topics"

	text, err := c.generate(ctx, buildBrandingTopicsPrompt(client))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	payload := extractPayload(text)

	var topics []string
	if err := json.Unmarshal([]byte(payload), &topics); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	if len(topics) != brandingTopicCount {
		return nil, &ParseError{Op: op, Err: fmt.Errorf("expected %d topics, got %d", brandingTopicCount, len(topics))}
	}
	return topics, nil
}

// GenerateBrandingScript produces the fixed-structure listicle script for a
// free-text topic. The optional angle only changes how the opening line is
// framed.
func (c *Client) GenerateBrandingScript(ctx context.Context, topic string, angle *angles.Angle) (string, error) {
	text, err := c.generate(ctx, buildBrandingScriptPrompt(topic, angle))
	if err != nil {
		return "", &TransportError{Op: "generate branding script", Err: err}
	}
	return text, nil
}
