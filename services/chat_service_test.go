package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/buildledger/lib/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator pops errors from seq first, then repeats err, then
// succeeds with text.
type fakeGenerator struct {
	seq   []error
	err   error
	text  string
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if len(g.seq) > 0 {
		e := g.seq[0]
		g.seq = g.seq[1:]
		if e != nil {
			return "", e
		}
		return g.text, nil
	}
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func newTestChatService(generator genai.Generator) *ChatService {
	svc := NewChatService(generator)
	svc.backoff = 0
	return svc
}

func TestResolve_TemplatesWithoutGenerator(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	f.addPurchase(t, db, f.cement, &f.acme.ID, 1000, 50, 10)
	f.addPurchase(t, db, f.steel, &f.buildCo.ID, 15, 1000, 5)

	env := svc.Resolve(context.Background(), f.company.ID, "What's the total spent on Grey phase?")

	assert.Equal(t, "phase_spending", env.Intent)
	assert.Contains(t, env.Message, "Grey")
	assert.Contains(t, env.Message, "65,000.00")
	assert.Contains(t, env.Message, "35,000.00")
	require.NotNil(t, env.Data)

	ts, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestResolve_UsesGeneratedText(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	gen := &fakeGenerator{text: "You spent plenty on that phase."}
	svc := newTestChatService(gen)

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)

	env := svc.Resolve(context.Background(), f.company.ID, "What's the total spent on Grey phase?")

	assert.Equal(t, "phase_spending", env.Intent)
	assert.Equal(t, "You spent plenty on that phase.", env.Message)
	assert.NotNil(t, env.Data)
	assert.Equal(t, 1, gen.calls)
}

func TestResolve_QuotaExhausted(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	gen := &fakeGenerator{err: genai.ErrQuotaExhausted}
	svc := newTestChatService(gen)

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)

	env := svc.Resolve(context.Background(), f.company.ID, "What's the total spent on Grey phase?")

	assert.Equal(t, IntentQuotaError, env.Intent)
	assert.Equal(t, quotaApology, env.Message)
	assert.Nil(t, env.Data)
}

func TestResolve_RateLimitRetriesOnce(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	gen := &fakeGenerator{seq: []error{genai.ErrRateLimited, nil}, text: "Here is your answer."}
	svc := newTestChatService(gen)

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)

	env := svc.Resolve(context.Background(), f.company.ID, "What's the total spent on Grey phase?")

	assert.Equal(t, "phase_spending", env.Intent)
	assert.Equal(t, "Here is your answer.", env.Message)
	assert.Equal(t, 2, gen.calls)
}

func TestResolve_GenerationFailureFallsBackToTemplate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := newTestChatService(gen)

	f.addPurchase(t, db, f.cement, &f.acme.ID, 1000, 50, 10)

	env := svc.Resolve(context.Background(), f.company.ID, "What's the total spent on Grey phase?")

	// The user still gets the data-backed template answer.
	assert.Equal(t, "phase_spending", env.Intent)
	assert.Contains(t, env.Message, "50,000.00")
	assert.NotNil(t, env.Data)
}

func TestResolve_PhaseNotFoundSuggestsAlternatives(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	env := svc.Resolve(context.Background(), f.company.ID, "What's the total spent on landscaping?")

	assert.Equal(t, "phase_spending", env.Intent)
	assert.Contains(t, env.Message, "landscaping")
	assert.Contains(t, env.Message, "Grey")
	assert.Nil(t, env.Data)
}

func TestResolve_CompareNeedsTwoProjects(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	env := svc.Resolve(context.Background(), f.company.ID, "compare my spending")

	assert.Equal(t, "compare_projects", env.Intent)
	assert.Contains(t, env.Message, "Which two projects")
	assert.Nil(t, env.Data)
}

func TestResolve_CompareProjects(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	f.addPurchase(t, db, f.cement, &f.acme.ID, 1000, 50, 10)

	env := svc.Resolve(context.Background(), f.company.ID, "Compare Downtown Tower to Tech Plaza")

	assert.Equal(t, "compare_projects", env.Intent)
	assert.Contains(t, env.Message, "Downtown Tower vs Tech Plaza")
	assert.NotNil(t, env.Data)
}

func TestResolve_EmptyPurchaseListIsFriendly(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	env := svc.Resolve(context.Background(), f.company.ID, "show cement purchases")

	assert.Equal(t, "item_purchases", env.Intent)
	assert.Equal(t, "No cement purchases found.", env.Message)
}

func TestResolve_VendorSpendingEmptyIsFriendly(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	env := svc.Resolve(context.Background(), f.company.ID, "Which vendors did we use the most?")

	assert.Equal(t, "vendor_spending", env.Intent)
	assert.Equal(t, "No vendor spending data found yet.", env.Message)
}

func TestResolve_ProjectSummaryAll(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	env := svc.Resolve(context.Background(), f.company.ID, "Give me a summary of all projects")

	assert.Equal(t, "project_summary", env.Intent)
	assert.Contains(t, env.Message, "You have 2 projects")
	assert.NotNil(t, env.Data)
}

func TestResolve_GeneralFallback(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(nil)

	env := svc.Resolve(context.Background(), f.company.ID, "hello there")

	assert.Equal(t, "general", env.Intent)
	assert.Contains(t, env.Message, "phase spending")
	assert.Nil(t, env.Data)
}

func TestResolve_GeneratorPanicBecomesErrorEnvelope(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newTestChatService(panicGenerator{})

	f.addPurchase(t, db, f.cement, &f.acme.ID, 100, 12, 3)

	env := svc.Resolve(context.Background(), f.company.ID, "What's the total spent on Grey phase?")

	assert.Equal(t, IntentError, env.Intent)
	assert.Equal(t, genericApology, env.Message)
	assert.Nil(t, env.Data)
}

type panicGenerator struct{}

func (panicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	panic("generator blew up")
}
