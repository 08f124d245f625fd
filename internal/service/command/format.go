package command

import (
	"fmt"

	"github.com/feretizpina/uber-slack/internal/domain/ride"
)

// formatEstimate renders a quote as a single conversational sentence.
func formatEstimate(est *ride.Estimate) string {
	minutes := est.DurationSeconds / 60
	duration := fmt.Sprintf("%d minutes", minutes)
	if minutes == 1 {
		duration = "one minute"
	}

	surge := "No surge currently in effect."
	if est.SurgeMultiplier != 1 {
		surge = fmt.Sprintf("Includes current surge at %v.", est.SurgeMultiplier)
	}

	return fmt.Sprintf("Let's see... That trip would take about %s and cost %s. %s",
		duration, est.DisplayCost, surge)
}

// formatArrival renders the driver ETA after a successful booking.
// Whole minutes only: anything under a minute reads as "very soon".
func formatArrival(etaSeconds int) string {
	minutes := etaSeconds / 60

	var when string
	switch {
	case minutes == 0:
		when = "very soon"
	case minutes == 1:
		when = "in 1 minute"
	default:
		when = fmt.Sprintf("in %d minutes", minutes)
	}

	return fmt.Sprintf("Thanks! We are looking for a driver and we expect them to arrive %s.", when)
}
