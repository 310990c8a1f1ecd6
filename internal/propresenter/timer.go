package propresenter

import (
	"context"
	"net/http"
)

// GetTimersArgs has no parameters.
type GetTimersArgs struct{}

// GetTimers lists all timers with their current state.
func (c *Client) GetTimers(ctx context.Context, args GetTimersArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/timers", nil)
}

// StartTimerArgs identifies a timer.
type StartTimerArgs struct {
	TimerID string `json:"timer_id" jsonschema:"required" jsonschema_description:"UUID of the timer, as returned by propresenter_get_timers"`
}

// StartTimer starts a timer.
func (c *Client) StartTimer(ctx context.Context, args StartTimerArgs) Result {
	return c.timerOperation(ctx, args.TimerID, "start")
}

// StopTimerArgs identifies a timer.
type StopTimerArgs struct {
	TimerID string `json:"timer_id" jsonschema:"required" jsonschema_description:"UUID of the timer to stop"`
}

// StopTimer stops a running timer.
func (c *Client) StopTimer(ctx context.Context, args StopTimerArgs) Result {
	return c.timerOperation(ctx, args.TimerID, "stop")
}

// ResetTimerArgs identifies a timer.
type ResetTimerArgs struct {
	TimerID string `json:"timer_id" jsonschema:"required" jsonschema_description:"UUID of the timer to reset"`
}

// ResetTimer resets a timer to its configured starting value.
func (c *Client) ResetTimer(ctx context.Context, args ResetTimerArgs) Result {
	return c.timerOperation(ctx, args.TimerID, "reset")
}

// timerOperation issues one of the timer control endpoints (start/stop/reset).
func (c *Client) timerOperation(ctx context.Context, timerID, operation string) Result {
	if err := requireID("timer_id", timerID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/timer/"+pathParam(timerID)+"/"+operation, nil)
}
