package spacedrep

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestQualityFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  Quality
	}{
		{100, QualityPerfect},
		{99, QualityCorrectHesitation},
		{80, QualityCorrectHesitation},
		{60, QualityCorrectDifficult},
		{59, QualityIncorrectFamiliar},
		{0, QualityBlackout},
		{-40, QualityBlackout},
		{150, QualityPerfect},
	}
	for _, tt := range tests {
		if got := QualityFromScore(tt.score); got != tt.want {
			t.Errorf("QualityFromScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestReview_Progression(t *testing.T) {
	rs := NewReviewState("p1")

	steps := []struct {
		q            Quality
		wantInterval int
		wantReps     int
		wantEF       float64
	}{
		{QualityPerfect, 1, 1, 2.6},
		{QualityPerfect, 6, 2, 2.7},
		{QualityPerfect, 17, 3, 2.8},
		{QualityCorrectHesitation, 48, 4, 2.8},
	}

	now := t0
	for i, s := range steps {
		Review(rs, s.q, now)
		if rs.IntervalDays != s.wantInterval {
			t.Errorf("step %d: interval = %d, want %d", i, rs.IntervalDays, s.wantInterval)
		}
		if rs.Repetitions != s.wantReps {
			t.Errorf("step %d: repetitions = %d, want %d", i, rs.Repetitions, s.wantReps)
		}
		if math.Abs(rs.Easiness-s.wantEF) > 1e-9 {
			t.Errorf("step %d: easiness = %f, want %f", i, rs.Easiness, s.wantEF)
		}
		if want := now.AddDate(0, 0, s.wantInterval); !rs.NextReview.Equal(want) {
			t.Errorf("step %d: next review = %v, want %v", i, rs.NextReview, want)
		}
		if rs.LastQuality != s.q || !rs.LastReview.Equal(now) {
			t.Errorf("step %d: last review not recorded", i)
		}
		now = rs.NextReview
	}
}

func TestReview_FailureResets(t *testing.T) {
	rs := &ReviewState{PhraseID: "p1", Repetitions: 4, IntervalDays: 40, Easiness: 2.5}

	Review(rs, QualityIncorrectFamiliar, t0)

	if rs.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", rs.Repetitions)
	}
	if rs.IntervalDays != FirstIntervalDays {
		t.Errorf("interval = %d, want %d", rs.IntervalDays, FirstIntervalDays)
	}
	if math.Abs(rs.Easiness-2.18) > 1e-9 {
		t.Errorf("easiness = %f, want 2.18", rs.Easiness)
	}
}

func TestReview_EasinessFloor(t *testing.T) {
	rs := NewReviewState("p1")
	Review(rs, QualityBlackout, t0)
	if math.Abs(rs.Easiness-1.7) > 1e-9 {
		t.Errorf("easiness = %f, want 1.7", rs.Easiness)
	}
	Review(rs, QualityBlackout, t0)
	if rs.Easiness != MinEasiness {
		t.Errorf("easiness = %f, want %f", rs.Easiness, MinEasiness)
	}
}

func TestReview_IntervalCap(t *testing.T) {
	rs := &ReviewState{PhraseID: "p1", Repetitions: 6, IntervalDays: 300, Easiness: 2.5}
	Review(rs, QualityPerfect, t0)
	if rs.IntervalDays != MaxIntervalDays {
		t.Errorf("interval = %d, want %d", rs.IntervalDays, MaxIntervalDays)
	}
}

func TestDue_Ordering(t *testing.T) {
	fresh := NewReviewState("new")
	hard := &ReviewState{PhraseID: "hard", Easiness: 1.5, LastReview: t0.AddDate(0, 0, -3), NextReview: t0.AddDate(0, 0, -2)}
	old := &ReviewState{PhraseID: "old", Easiness: 2.5, LastReview: t0.AddDate(0, 0, -10), NextReview: t0.AddDate(0, 0, -5)}
	recent := &ReviewState{PhraseID: "recent", Easiness: 2.5, LastReview: t0.AddDate(0, 0, -2), NextReview: t0.AddDate(0, 0, -1)}
	future := &ReviewState{PhraseID: "future", Easiness: 1.3, LastReview: t0, NextReview: t0.AddDate(0, 0, 3)}

	got := Due([]*ReviewState{recent, future, old, hard, fresh}, t0, 0)
	want := []string{"new", "hard", "old", "recent"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].PhraseID != want[i] {
			t.Errorf("due[%d] = %s, want %s", i, got[i].PhraseID, want[i])
		}
	}

	if got := Due([]*ReviewState{recent, old, hard}, t0, 2); len(got) != 2 {
		t.Errorf("limited len = %d, want 2", len(got))
	}
}

func TestReviewState_Status(t *testing.T) {
	tests := []struct {
		name string
		rs   *ReviewState
		want ReviewStatus
	}{
		{"new", NewReviewState("p"), StatusNew},
		{"due", &ReviewState{LastReview: t0.AddDate(0, 0, -2), NextReview: t0.AddDate(0, 0, -1)}, StatusDue},
		{"learning", &ReviewState{Repetitions: 2, IntervalDays: 6, LastReview: t0, NextReview: t0.AddDate(0, 0, 6)}, StatusLearning},
		{"mastered", &ReviewState{Repetitions: 5, IntervalDays: 40, LastReview: t0, NextReview: t0.AddDate(0, 0, 40)}, StatusMastered},
		{"long but few", &ReviewState{Repetitions: 3, IntervalDays: 40, LastReview: t0, NextReview: t0.AddDate(0, 0, 40)}, StatusLearning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rs.Status(t0); got != tt.want {
				t.Errorf("Status() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReviewState_DaysUntilReview(t *testing.T) {
	rs := &ReviewState{LastReview: t0, NextReview: t0.AddDate(0, 0, 6)}
	if got := rs.DaysUntilReview(t0); got != 6 {
		t.Errorf("DaysUntilReview = %d, want 6", got)
	}
	if got := rs.DaysUntilReview(t0.Add(time.Hour)); got != 6 {
		t.Errorf("DaysUntilReview = %d, want 6 (partial day rounds up)", got)
	}
	if got := rs.DaysUntilReview(t0.AddDate(0, 0, 6)); got != 0 {
		t.Errorf("DaysUntilReview at due date = %d, want 0", got)
	}
	if got := rs.OverdueDays(t0.AddDate(0, 0, 8)); got != 2 {
		t.Errorf("OverdueDays = %f, want 2", got)
	}
}

func TestSortForDisplay(t *testing.T) {
	b := &ReviewState{PhraseID: "b", NextReview: t0.AddDate(0, 0, 3)}
	a := &ReviewState{PhraseID: "a", NextReview: t0.AddDate(0, 0, 3)}
	c := &ReviewState{PhraseID: "c", NextReview: t0.AddDate(0, 0, 1)}

	got := SortForDisplay([]*ReviewState{b, a, c})
	want := []string{"c", "a", "b"}
	for i, rs := range got {
		if rs.PhraseID != want[i] {
			t.Errorf("position %d = %s, want %s", i, rs.PhraseID, want[i])
		}
	}
}
