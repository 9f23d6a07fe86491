package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/lead-scoring/internal/entity"
	"github.com/xavierca1/lead-scoring/internal/metrics"
)

const (
	reasonHighSignals = "Heuristic: decision maker or strong buying signals."
	reasonExploratory = "Heuristic: exploratory language found."
	reasonNoSignals   = "Heuristic: no strong buying signals."
)

var (
	intentLabelPattern = regexp.MustCompile(`(?i)Intent\s*[:\-]\s*(High|Medium|Low)`)

	buyingSignalKeywords = []string{
		"looking for", "interested in", "evaluate", "purchase", "buy",
		"decision", "budget", "ready to buy",
	}
	exploratoryKeywords = []string{
		"curious", "exploring", "considering", "research", "trial",
		"pilot", "planning",
	}
	seniorRoleKeywords = []string{"head", "director", "vp", "cto", "ceo", "founder"}

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// IntentClassifier labels a lead's buying intent. It asks the remote model
// when one is configured and falls back to a keyword heuristic otherwise or
// when the model call fails. Classify never returns an error.
type IntentClassifier struct {
	model   IntentModel
	timeout time.Duration
}

// NewIntentClassifier builds a classifier. A nil model means heuristic only.
func NewIntentClassifier(model IntentModel, timeout time.Duration) *IntentClassifier {
	return &IntentClassifier{model: model, timeout: timeout}
}

func (c *IntentClassifier) Classify(ctx context.Context, lead entity.Lead, offer entity.Offer) entity.Classification {
	result := c.classify(ctx, lead, offer)
	metrics.RecordClassification(string(result.Source), string(result.Intent))
	return result
}

func (c *IntentClassifier) classify(ctx context.Context, lead entity.Lead, offer entity.Offer) entity.Classification {
	if c.model == nil {
		return ClassifyHeuristic(lead)
	}

	result, err := c.classifyWithModel(ctx, lead, offer)
	if err != nil {
		// a cancelled caller is not a model failure
		if ctx.Err() == nil {
			metrics.RecordIntegrationError("intent_model")
			log.Warn().Err(err).Str("lead", lead.Name).Msg("intent model call failed, using heuristic")
		}
		return ClassifyHeuristic(lead)
	}
	return result
}

func (c *IntentClassifier) classifyWithModel(ctx context.Context, lead entity.Lead, offer entity.Offer) (entity.Classification, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.model.Complete(ctx, BuildPrompt(lead, offer))
	if err != nil {
		return entity.Classification{}, fmt.Errorf("classify %q: %w", lead.Name, err)
	}
	return ParseModelResponse(text), nil
}

// BuildPrompt renders the classification prompt for one lead.
func BuildPrompt(lead entity.Lead, offer entity.Offer) string {
	var b strings.Builder
	b.WriteString("You are a sales-assistant classifier.\n\n")
	fmt.Fprintf(&b, "Product/Offer: %s\n", offer.Name)
	fmt.Fprintf(&b, "Value props: %s\n", strings.Join(offer.ValueProps, ", "))
	fmt.Fprintf(&b, "Ideal use cases: %s\n\n", strings.Join(offer.IdealUseCases, ", "))
	b.WriteString("Prospect:\n")
	fmt.Fprintf(&b, "  Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "  Role: %s\n", lead.Role)
	fmt.Fprintf(&b, "  Company: %s\n", lead.Company)
	fmt.Fprintf(&b, "  Industry: %s\n", lead.Industry)
	fmt.Fprintf(&b, "  Location: %s\n", lead.Location)
	fmt.Fprintf(&b, "  LinkedIn bio: %s\n\n", lead.LinkedInBio)
	b.WriteString("Task: Classify the prospect intent as High, Medium, or Low.\n")
	b.WriteString("Respond in this format:\n")
	b.WriteString("Intent: <High/Medium/Low>\n")
	b.WriteString("Reason: <1-2 sentence explanation>\n")
	return b.String()
}

// ParseModelResponse extracts the intent label from free model text.
// Without a recognizable label the intent defaults to Medium; the full text
// is always kept as reasoning, with line endings normalized to \n so the
// reasoning survives a CSV export unchanged.
func ParseModelResponse(text string) entity.Classification {
	text = strings.TrimSpace(lineEndings.Replace(text))
	intent := entity.IntentMedium
	if m := intentLabelPattern.FindStringSubmatch(text); m != nil {
		if parsed, ok := entity.ParseIntent(m[1]); ok {
			intent = parsed
		}
	}
	return entity.Classification{
		Intent:    intent,
		Reasoning: text,
		Source:    entity.SourceModel,
	}
}

// ClassifyHeuristic is the deterministic keyword fallback.
func ClassifyHeuristic(lead entity.Lead) entity.Classification {
	bio := strings.ToLower(lead.LinkedInBio)
	role := strings.ToLower(lead.Role)

	switch {
	case containsAny(bio, buyingSignalKeywords) || containsAny(role, seniorRoleKeywords):
		return heuristic(entity.IntentHigh, reasonHighSignals)
	case containsAny(bio, exploratoryKeywords):
		return heuristic(entity.IntentMedium, reasonExploratory)
	default:
		return heuristic(entity.IntentLow, reasonNoSignals)
	}
}

func heuristic(intent entity.Intent, reason string) entity.Classification {
	return entity.Classification{Intent: intent, Reasoning: reason, Source: entity.SourceHeuristic}
}
