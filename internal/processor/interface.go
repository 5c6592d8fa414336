package processor

import "context"

// Processor turns one media file into transcript (and optionally summary)
// documents in the output folder.
type Processor interface {
	Process(ctx context.Context, mediaPath string) error
}
