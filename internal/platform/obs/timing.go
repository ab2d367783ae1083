package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the duration and outcome of one named operation. Use with a
// named error return:
//
//	defer obs.Time(ctx, "querylog.Append")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
