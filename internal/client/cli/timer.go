package cli

import (
	"context"
	"fmt"
	"time"
)

// Timer controls the cooking timer.
//
//	timer <recipe id>  — start a countdown for the recipe's cooking time
//	timer              — show the current countdown
//	timer pause        — pause the countdown
//	timer resume       — resume a paused countdown
//	timer stop         — reset the timer
func (a *App) Timer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		st := a.timer.Snapshot()
		if st.ActiveRecipeID == "" {
			printlnFn("No timer running.")
			return nil
		}
		verb := "running"
		if !st.Active {
			verb = "paused"
		}
		printlnFn(fmt.Sprintf("Timer for recipe %s: %s left (%s).",
			st.ActiveRecipeID, formatSeconds(st.TimeLeft), verb))
		return nil
	}

	switch args[0] {
	case "pause":
		a.timer.Pause()
		printlnFn("Timer paused.")
	case "resume":
		a.timer.Resume()
		printlnFn("Timer resumed.")
	case "stop":
		a.timer.Reset()
		printlnFn("Timer stopped.")
	default:
		id := args[0]
		if err := a.recipes.FetchRecipeByID(ctx, id); err != nil {
			printlnFn("Error:", a.recipes.Snapshot().Err)
			return err
		}
		r := a.recipes.Snapshot().Current
		if r == nil {
			printlnFn("Recipe not found.")
			return nil
		}
		a.timer.Start(r.ID, r.CookingTime*60)
		printlnFn(fmt.Sprintf("Timer started for %s: %d min.", r.Title, r.CookingTime))
	}
	return nil
}

// StartTimerTicker drives the countdown, one Tick per interval, until ctx is
// cancelled. It announces once when the countdown reaches zero.
func (a *App) StartTimerTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			before := a.timer.Snapshot()
			a.timer.Tick()
			if before.Active && before.TimeLeft == 1 {
				printlnFn("Cooking timer finished!")
			}
		case <-ctx.Done():
			return
		}
	}
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
