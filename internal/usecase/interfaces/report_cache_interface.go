package interfaces

import "context"

// IReportCache stores computed dashboard reports for a short time.
//
// Get reports a miss with found == false. Invalidate drops every cached
// report; it is called after any write that changes a rollup.
type IReportCache interface {
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context) error
}
