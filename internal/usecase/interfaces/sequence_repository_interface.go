package interfaces

import "context"

// ISequenceRepository allocates monotonically increasing sequence numbers
// for application and certificate numbering. Implementations must
// allocate with an atomic increment (DynamoDB ADD) so concurrent
// allocations never collide.
type ISequenceRepository interface {
	Next(ctx context.Context, name string, year int) (int64, error)
}
