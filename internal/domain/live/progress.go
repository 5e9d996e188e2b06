package live

import (
	"math"
	"time"

	"netpay/internal/domain/earnings"
)

// Session is a shift being tracked: the computed pay for the whole
// schedule, the hours already worked when tracking began, and when it began.
type Session struct {
	Result           earnings.Result
	HoursWorkedSoFar float64
	HoursScheduled   float64
	StartedAt        time.Time
}

func (s Session) Valid() bool {
	return s.HoursScheduled > 0 && !math.IsInf(s.HoursScheduled, 0) && s.Result.GrossPay >= 0
}

// NewSession builds a session from a computed input. Only inputs with a
// positive schedule can be tracked.
func NewSession(in earnings.Input, result earnings.Result, startedAt time.Time) Session {
	s := Session{
		Result:           result,
		HoursWorkedSoFar: math.Max(in.HoursWorkedSoFar, 0),
		StartedAt:        startedAt,
	}
	if in.HoursScheduledToday != nil {
		s.HoursScheduled = *in.HoursScheduledToday
	}
	return s
}

type Snapshot struct {
	HoursElapsed float64 `json:"hoursElapsed"`
	HoursTotal   float64 `json:"hoursTotal"`
	Fraction     float64 `json:"fraction"`
	GrossEarned  float64 `json:"grossEarned"`
	NetEarned    float64 `json:"netEarned"`
	Complete     bool    `json:"complete"`
}

// Progress scales the shift's pay by how much of the schedule is done:
// the hours worked before tracking plus the elapsed time, never more than
// the schedule.
func Progress(result earnings.Result, hoursWorked, hoursScheduled float64, elapsed time.Duration) Snapshot {
	if hoursScheduled <= 0 || math.IsNaN(hoursScheduled) || math.IsInf(hoursScheduled, 0) {
		return Snapshot{}
	}
	hoursWorked = math.Max(hoursWorked, 0)

	remaining := math.Max(hoursScheduled-hoursWorked, 0)
	elapsedHours := math.Min(math.Max(elapsed.Hours(), 0), remaining)
	total := math.Min(hoursWorked+elapsedHours, hoursScheduled)
	fraction := total / hoursScheduled

	return Snapshot{
		HoursElapsed: elapsedHours,
		HoursTotal:   total,
		Fraction:     fraction,
		GrossEarned:  scaled(result.GrossPay, fraction),
		NetEarned:    scaled(result.NetPay, fraction),
		Complete:     total >= hoursScheduled,
	}
}

func (s Session) At(now time.Time) Snapshot {
	return Progress(s.Result, s.HoursWorkedSoFar, s.HoursScheduled, now.Sub(s.StartedAt))
}

func scaled(amount, fraction float64) float64 {
	return math.Round(math.Min(amount*fraction, amount)*100) / 100
}
