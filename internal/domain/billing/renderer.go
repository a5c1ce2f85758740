package billing

import (
	"context"

	"github.com/societyerp/backend/internal/domain/society"
)

// DocumentRenderer renders a fully-resolved billing document against the
// project's letterhead/bank assets and returns the stored path of the result.
// Layout and storage are external concerns; the engine only records the path.
type DocumentRenderer interface {
	RenderBill(ctx context.Context, bill *Bill, project *society.Project, unit *society.Unit) (string, error)
	RenderLetter(ctx context.Context, letter *Letter, project *society.Project, unit *society.Unit) (string, error)
}
