package live

import (
	"testing"
	"time"

	"netpay/internal/domain/earnings"
)

func TestProgress(t *testing.T) {
	result := earnings.Result{GrossPay: 160, NetPay: 125.02}

	tests := []struct {
		name      string
		worked    float64
		scheduled float64
		elapsed   time.Duration
		want      Snapshot
	}{
		{
			name:      "just started",
			scheduled: 8,
			want:      Snapshot{HoursTotal: 0, GrossEarned: 0, NetEarned: 0},
		},
		{
			name:      "half way",
			scheduled: 8,
			elapsed:   4 * time.Hour,
			want:      Snapshot{HoursElapsed: 4, HoursTotal: 4, Fraction: 0.5, GrossEarned: 80, NetEarned: 62.51},
		},
		{
			name:      "worked before tracking",
			worked:    2,
			scheduled: 8,
			elapsed:   2 * time.Hour,
			want:      Snapshot{HoursElapsed: 2, HoursTotal: 4, Fraction: 0.5, GrossEarned: 80, NetEarned: 62.51},
		},
		{
			name:      "capped at schedule",
			worked:    6,
			scheduled: 8,
			elapsed:   10 * time.Hour,
			want:      Snapshot{HoursElapsed: 2, HoursTotal: 8, Fraction: 1, GrossEarned: 160, NetEarned: 125.02, Complete: true},
		},
		{
			name:      "worked past schedule",
			worked:    9,
			scheduled: 8,
			want:      Snapshot{HoursTotal: 8, Fraction: 1, GrossEarned: 160, NetEarned: 125.02, Complete: true},
		},
		{
			name:    "no schedule",
			worked:  3,
			elapsed: time.Hour,
			want:    Snapshot{},
		},
		{
			name:      "clock went backwards",
			scheduled: 8,
			elapsed:   -time.Hour,
			want:      Snapshot{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(result, tc.worked, tc.scheduled, tc.elapsed)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestProgressNeverExceedsPay(t *testing.T) {
	result := earnings.Result{GrossPay: 99.99, NetPay: 70.5}
	for minutes := 0; minutes <= 24*60; minutes += 7 {
		snap := Progress(result, 1.5, 6, time.Duration(minutes)*time.Minute)
		if snap.GrossEarned > result.GrossPay || snap.NetEarned > result.NetPay {
			t.Fatalf("at %d minutes earned more than the shift pays: %+v", minutes, snap)
		}
		if snap.Fraction < 0 || snap.Fraction > 1 {
			t.Fatalf("fraction out of range: %+v", snap)
		}
	}
}

func TestNewSession(t *testing.T) {
	scheduled := 8.0
	start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	in := earnings.Input{HourlyWage: 20, EmploymentClass: earnings.ClassW2, StateCode: "CA", HoursWorkedSoFar: 1, HoursScheduledToday: &scheduled}
	s := NewSession(in, earnings.Compute(nil, in), start)
	if !s.Valid() {
		t.Fatalf("expected valid session, got %+v", s)
	}
	snap := s.At(start.Add(3 * time.Hour))
	if snap.HoursTotal != 4 || snap.GrossEarned != 80 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	in.HoursScheduledToday = nil
	if NewSession(in, earnings.Compute(nil, in), start).Valid() {
		t.Fatal("expected session without a schedule to be invalid")
	}
}
