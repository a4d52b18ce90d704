package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/buildledger/dto"
	"github.com/buildledger/lib/genai"
	"github.com/buildledger/lib/intent"
	"github.com/buildledger/utils"
)

// Intents surfaced only by the dispatcher, beyond the parser's own kinds.
const (
	IntentQuotaError = "quota_error"
	IntentError      = "error"
)

const quotaApology = "I'm sorry, the assistant is temporarily unavailable because the answer-generation quota is exhausted. Your data is fine: you can still browse projects, purchases and reports directly."

const genericApology = "Sorry, something went wrong while answering that. Please try rephrasing your question."

// suggestionLimit caps the "did you mean" entity lists.
const suggestionLimit = 5

// ChatService turns a free-text question into a data-backed answer. Every
// path terminates in a well-formed envelope: entity misses become
// suggestions, generation failures fall back to deterministic templates,
// and panics are converted to a generic error message at this boundary.
type ChatService struct {
	queries   *ChatQueryService
	generator genai.Generator
	backoff   time.Duration
}

// NewChatService creates a chat service. The generator is injected so
// tests can substitute a fake; a nil generator means every answer uses
// the deterministic templates.
func NewChatService(generator genai.Generator) *ChatService {
	return &ChatService{
		queries:   NewChatQueryService(),
		generator: generator,
		backoff:   2 * time.Second,
	}
}

// Resolve answers a raw user query for a company. It never returns an
// error: failures degrade into the envelope itself.
func (s *ChatService) Resolve(ctx context.Context, companyID, query string) (env dto.ChatEnvelope) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chat: recovered panic resolving query: %v", r)
			env = s.envelope(genericApology, nil, IntentError)
		}
	}()

	parsed := intent.Parse(query)

	switch parsed.Kind {
	case intent.KindPhaseSpending:
		return s.resolvePhaseSpending(ctx, companyID, parsed)
	case intent.KindItemPurchases:
		return s.resolveItemPurchases(ctx, companyID, parsed)
	case intent.KindCompareProjects:
		return s.resolveCompareProjects(ctx, companyID, parsed)
	case intent.KindVendorSpending:
		return s.resolveVendorSpending(ctx, companyID, parsed)
	case intent.KindProjectSummary:
		return s.resolveProjectSummary(ctx, companyID, parsed)
	default:
		return s.resolveGeneral(ctx, companyID, parsed)
	}
}

func (s *ChatService) resolvePhaseSpending(ctx context.Context, companyID string, parsed intent.Result) dto.ChatEnvelope {
	if parsed.Phase == "" {
		return s.phaseNotFound(companyID, parsed)
	}

	result, err := s.queries.PhaseSpending(companyID, parsed.Phase)
	if err != nil {
		return s.internalError(parsed, err)
	}
	if result == nil {
		return s.phaseNotFound(companyID, parsed)
	}

	return s.answer(ctx, parsed, result, formatPhaseSpending(*result))
}

func (s *ChatService) phaseNotFound(companyID string, parsed intent.Result) dto.ChatEnvelope {
	names, err := s.queries.phaseRepo.Names(companyID, suggestionLimit)
	if err != nil || len(names) == 0 {
		return s.envelope("I couldn't find that phase, and you don't seem to have any phases yet.", nil, string(parsed.Kind))
	}
	msg := fmt.Sprintf("I couldn't find a phase matching %q. Your phases include: %s.", parsed.Phase, joinOrList(names))
	if parsed.Phase == "" {
		msg = fmt.Sprintf("Which phase do you mean? Your phases include: %s.", joinOrList(names))
	}
	return s.envelope(msg, nil, string(parsed.Kind))
}

func (s *ChatService) resolveItemPurchases(ctx context.Context, companyID string, parsed intent.Result) dto.ChatEnvelope {
	var records []dto.PurchaseRecord
	var err error
	scope := ""

	if parsed.ThisMonth {
		records, err = s.queries.CurrentMonthPurchases(companyID, parsed.Item)
		scope = "this month"
	} else {
		records, err = s.queries.ItemPurchases(companyID, parsed.Item, nil, nil)
	}
	if err != nil {
		return s.internalError(parsed, err)
	}

	if len(records) == 0 {
		what := "purchases"
		if parsed.Item != "" {
			what = parsed.Item + " purchases"
		}
		if scope != "" {
			what += " " + scope
		}
		return s.envelope(fmt.Sprintf("No %s found.", what), records, string(parsed.Kind))
	}

	return s.answer(ctx, parsed, records, formatPurchases(records, scope))
}

func (s *ChatService) resolveCompareProjects(ctx context.Context, companyID string, parsed intent.Result) dto.ChatEnvelope {
	if len(parsed.Projects) < 2 {
		names, _ := s.queries.projectRepo.Names(companyID, suggestionLimit)
		msg := "Which two projects should I compare? Try: \"compare <project A> to <project B>\"."
		if len(names) > 0 {
			msg += " Your projects include: " + joinOrList(names) + "."
		}
		return s.envelope(msg, nil, string(parsed.Kind))
	}

	comparison, err := s.queries.CompareProjects(companyID, parsed.Projects[0], parsed.Projects[1])
	if err != nil {
		return s.internalError(parsed, err)
	}
	if comparison == nil {
		names, _ := s.queries.projectRepo.Names(companyID, suggestionLimit)
		msg := fmt.Sprintf("I couldn't find both %q and %q.", parsed.Projects[0], parsed.Projects[1])
		if len(names) > 0 {
			msg += " Your projects include: " + joinOrList(names) + "."
		}
		return s.envelope(msg, nil, string(parsed.Kind))
	}

	return s.answer(ctx, parsed, comparison, formatComparison(*comparison))
}

func (s *ChatService) resolveVendorSpending(ctx context.Context, companyID string, parsed intent.Result) dto.ChatEnvelope {
	vendors, err := s.queries.VendorSpending(companyID, parsed.Vendor, "")
	if err != nil {
		return s.internalError(parsed, err)
	}

	if len(vendors) == 0 {
		msg := "No vendor spending data found yet."
		if parsed.Vendor != "" {
			msg = fmt.Sprintf("No spending found for a vendor matching %q.", parsed.Vendor)
			if names, _ := s.queries.vendorRepo.Names(companyID, suggestionLimit); len(names) > 0 {
				msg += " Your vendors include: " + joinOrList(names) + "."
			}
		}
		return s.envelope(msg, vendors, string(parsed.Kind))
	}

	return s.answer(ctx, parsed, vendors, formatVendorSpending(vendors))
}

func (s *ChatService) resolveProjectSummary(ctx context.Context, companyID string, parsed intent.Result) dto.ChatEnvelope {
	if parsed.AllProjects {
		summaries, err := s.queries.AllProjectSummaries(companyID)
		if err != nil {
			return s.internalError(parsed, err)
		}
		if len(summaries) == 0 {
			return s.envelope("You don't have any projects yet.", summaries, string(parsed.Kind))
		}
		return s.answer(ctx, parsed, summaries, formatSummaries(summaries))
	}

	summary, err := s.queries.ProjectSummary(companyID, parsed.Project)
	if err != nil {
		return s.internalError(parsed, err)
	}
	if summary == nil {
		names, _ := s.queries.projectRepo.Names(companyID, suggestionLimit)
		msg := fmt.Sprintf("I couldn't find a project matching %q.", parsed.Project)
		if len(names) > 0 {
			msg += " Your projects include: " + joinOrList(names) + "."
		}
		return s.envelope(msg, nil, string(parsed.Kind))
	}

	return s.answer(ctx, parsed, summary, formatSummaries([]dto.ProjectSummary{*summary}))
}

func (s *ChatService) resolveGeneral(ctx context.Context, companyID string, parsed intent.Result) dto.ChatEnvelope {
	fallback := "I can answer questions about phase spending, item purchases, vendor spending and project budgets. " +
		"Try asking things like \"How much was spent on the Grey phase?\" or \"Compare project A to project B\"."

	return s.answer(ctx, parsed, nil, fallback)
}

// answer pairs fetched data with a generation attempt. Rate limiting gets
// one retry after a fixed backoff; quota exhaustion short-circuits into
// its own envelope with no data; anything else falls back to the
// deterministic template so the user always gets a data-backed reply.
func (s *ChatService) answer(ctx context.Context, parsed intent.Result, data any, fallback string) dto.ChatEnvelope {
	text, failure := s.phrase(ctx, parsed.Raw, data, fallback)
	if failure == phraseQuota {
		return s.envelope(quotaApology, nil, IntentQuotaError)
	}
	return s.envelope(text, data, string(parsed.Kind))
}

type phraseFailure int

const (
	phraseOK phraseFailure = iota
	phraseQuota
)

func (s *ChatService) phrase(ctx context.Context, question string, data any, fallback string) (string, phraseFailure) {
	if s.generator == nil {
		return fallback, phraseOK
	}

	prompt := buildPrompt(question, data)
	text, err := s.generator.Generate(ctx, prompt)
	if errors.Is(err, genai.ErrRateLimited) {
		time.Sleep(s.backoff)
		text, err = s.generator.Generate(ctx, prompt)
	}
	if err == nil {
		return text, phraseOK
	}
	if errors.Is(err, genai.ErrQuotaExhausted) {
		return "", phraseQuota
	}
	log.Printf("chat: generation failed, using template: %v", err)
	return fallback, phraseOK
}

func buildPrompt(question string, data any) string {
	if data == nil {
		return "You are a helpful assistant for a construction cost tracking application. " +
			"Answer briefly and only about construction cost tracking.\nQuestion: " + question
	}
	blob, err := json.Marshal(data)
	if err != nil {
		blob = []byte("{}")
	}
	return "You are a helpful assistant for a construction cost tracking application. " +
		"Answer the question concisely using only this data.\n" +
		"Question: " + question + "\nData: " + string(blob)
}

func (s *ChatService) internalError(parsed intent.Result, err error) dto.ChatEnvelope {
	log.Printf("chat: query failed for intent %s: %v", parsed.Kind, err)
	return s.envelope(genericApology, nil, IntentError)
}

func (s *ChatService) envelope(message string, data any, intentName string) dto.ChatEnvelope {
	return dto.ChatEnvelope{
		Message:   message,
		Data:      data,
		Intent:    intentName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func joinOrList(names []string) string {
	if len(names) > suggestionLimit {
		names = names[:suggestionLimit]
	}
	return utils.JoinNames(names)
}
