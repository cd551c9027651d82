package domain

// Initiative is one entry of the 30-day action plan, tied to the lever
// whose upside it realizes. Titles and descriptions are display copy kept
// here as data so the prioritizer stays total over a closed set.
type Initiative struct {
	Lever       LeverID `json:"lever"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// Initiatives returns the fixed plan table. Order matters: the prioritizer
// tie-breaks by this declared order.
func Initiatives() []Initiative {
	return []Initiative{
		{
			Lever:       LeverRetention,
			Title:       "Run a churn-save program",
			Description: "Call every at-risk account before renewal and fix the top three cancellation reasons.",
		},
		{
			Lever:       LeverActivation,
			Title:       "Rebuild onboarding around first value",
			Description: "Cut time-to-first-value with a guided setup checklist and a day-3 check-in.",
		},
		{
			Lever:       LeverMonetization,
			Title:       "Reprice around delivered value",
			Description: "Introduce a higher tier and move expansion conversations to usage milestones.",
		},
	}
}

// RankedInitiative pairs an initiative with its remaining unrealized upside
// at the current lever setting.
type RankedInitiative struct {
	Initiative     Initiative `json:"initiative"`
	UpsideAtTarget int64      `json:"upsideAtTarget"`
	CurrentImpact  int64      `json:"currentImpact"`
	Remaining      int64      `json:"remaining"`
}
