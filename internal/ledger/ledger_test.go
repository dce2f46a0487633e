package ledger

import (
	"math"
	"testing"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

func TestRecordCostAccumulates(t *testing.T) {
	c := NewController()
	id := core.SessionID("s1")
	c.InitSession(id)

	c.RecordCost(id, "claude", 0.10, 1000, 1)
	c.RecordCost(id, "gpt", 0.05, 800, 1)
	c.RecordCost(id, "claude", 0.20, 2000, 2)

	snap, ok := c.Snapshot(id)
	if !ok {
		t.Fatal("Snapshot() missing session")
	}

	if math.Abs(snap.TotalCostUSD-0.35) > 1e-9 {
		t.Errorf("TotalCostUSD = %v, want 0.35", snap.TotalCostUSD)
	}
	if math.Abs(snap.ByParticipant["claude"]-0.30) > 1e-9 {
		t.Errorf("ByParticipant[claude] = %v, want 0.30", snap.ByParticipant["claude"])
	}
	if snap.TotalTokens != 3800 {
		t.Errorf("TotalTokens = %v, want 3800", snap.TotalTokens)
	}

	// Round buckets are 1-indexed.
	if len(snap.ByRound) != 2 {
		t.Fatalf("ByRound len = %d, want 2", len(snap.ByRound))
	}
	if math.Abs(snap.ByRound[0]-0.15) > 1e-9 || math.Abs(snap.ByRound[1]-0.20) > 1e-9 {
		t.Errorf("ByRound = %v, want [0.15 0.20]", snap.ByRound)
	}
}

func TestRecordCostGrowsSparseRounds(t *testing.T) {
	c := NewController()
	id := core.SessionID("s1")
	c.InitSession(id)

	c.RecordCost(id, "gemini", 0.02, 100, 3)

	snap, _ := c.Snapshot(id)
	if len(snap.ByRound) != 3 {
		t.Fatalf("ByRound len = %d, want 3", len(snap.ByRound))
	}
	if snap.ByRound[0] != 0 || snap.ByRound[1] != 0 {
		t.Errorf("earlier buckets should be zero: %v", snap.ByRound)
	}
}

func TestInitSessionIdempotent(t *testing.T) {
	c := NewController()
	id := core.SessionID("s1")

	c.InitSession(id)
	c.RecordCost(id, "claude", 0.50, 100, 1)
	c.InitSession(id)

	if got := c.CurrentCost(id); got != 0.50 {
		t.Errorf("CurrentCost() = %v after re-init, want 0.50", got)
	}
}

func TestCheckBudget(t *testing.T) {
	c := NewController()
	id := core.SessionID("s1")
	c.InitSession(id)
	c.RecordCost(id, "claude", 0.80, 100, 1)

	status := c.CheckBudget(id, 1.00)
	if !status.WithinBudget {
		t.Error("0.80 of 1.00 should be within budget")
	}
	if math.Abs(status.RemainingUSD-0.20) > 1e-9 {
		t.Errorf("RemainingUSD = %v, want 0.20", status.RemainingUSD)
	}
	if !status.WarningCrossed {
		t.Error("80% spend should cross the 75% warning threshold")
	}

	c.RecordCost(id, "gpt", 0.30, 100, 2)
	status = c.CheckBudget(id, 1.00)
	if status.WithinBudget {
		t.Error("1.10 of 1.00 should exceed budget")
	}
	if status.RemainingUSD != 0 {
		t.Errorf("RemainingUSD = %v, want 0 (clamped)", status.RemainingUSD)
	}
}

func TestCurrentCostUnknownSession(t *testing.T) {
	c := NewController()
	if got := c.CurrentCost("nope"); got != 0 {
		t.Errorf("CurrentCost(unknown) = %v, want 0", got)
	}
	if _, ok := c.Snapshot("nope"); ok {
		t.Error("Snapshot(unknown) should report missing")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	c := NewController()
	c.InitSession("a")
	c.InitSession("b")
	c.RecordCost("a", "claude", 1.0, 10, 1)

	if got := c.CurrentCost("b"); got != 0 {
		t.Errorf("session b cost = %v, want 0", got)
	}
}
