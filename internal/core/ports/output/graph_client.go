package ports

import "context"

// GraphClient is the outbound port for Microsoft Graph drive operations. The
// adapter only needs folder creation; everything else SharePoint-side is out of
// scope.
type GraphClient interface {
	// EnsureFolder creates the folder at path (relative to the drive root),
	// creating missing parents. Returns created=false when the folder already
	// existed.
	EnsureFolder(ctx context.Context, path string) (created bool, err error)
}
